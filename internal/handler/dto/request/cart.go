package request

type AddCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

type UpdateCartItemRequest struct {
	Qty int `json:"qty" binding:"required"`
}
