package readmodel

import "extinguard/internal/domain/cart"

type CartRM struct {
	Items []cart.Item `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}
