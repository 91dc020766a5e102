package catalog

import (
	"errors"
	"strings"
)

var ErrEmptyCategoryName = errors.New("category name is required")

type Category struct {
	ID   int64
	Name string
}

func NewCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyCategoryName
	}
	return Category{Name: name}, nil
}
