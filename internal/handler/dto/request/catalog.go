package request

import "extinguard/internal/usecase"

type CategoryRef struct {
	ID int64 `json:"id" binding:"required"`
}

type CreateProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Price       float64     `json:"price" binding:"min=0"`
	Stock       int         `json:"stock" binding:"min=0"`
	Category    CategoryRef `json:"category" binding:"required"`
}

func (r *CreateProductRequest) ToParams() usecase.CreateProductParams {
	return usecase.CreateProductParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		CategoryID:  r.Category.ID,
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
