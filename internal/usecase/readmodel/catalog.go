package readmodel

type CategoryRM struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductRM struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	Category    CategoryRM `json:"category"`
}
