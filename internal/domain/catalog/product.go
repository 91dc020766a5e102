package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyProductName = errors.New("product name is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeStock    = errors.New("stock cannot be negative")
	ErrMissingCategory  = errors.New("category is required")
)

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  int64
}

func NewProduct(name, description string, price float64, stock int, categoryID int64) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrEmptyProductName
	}
	if price < 0 {
		return Product{}, ErrNegativePrice
	}
	if stock < 0 {
		return Product{}, ErrNegativeStock
	}
	if categoryID <= 0 {
		return Product{}, ErrMissingCategory
	}
	return Product{
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	}, nil
}
