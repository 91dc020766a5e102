package cart

import "errors"

var (
	ErrItemNotFound    = errors.New("item not in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Item is a product snapshot plus quantity. Price is captured at the moment
// the product is added so later catalog edits do not silently reprice a cart.
type Item struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

type Cart struct {
	Items []Item `json:"items"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add puts a product in the cart, incrementing the quantity when it is
// already present.
func (c *Cart) Add(productID int64, name string, price float64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty++
			return
		}
	}
	c.Items = append(c.Items, Item{ProductID: productID, Name: name, Price: price, Qty: 1})
}

func (c *Cart) UpdateQty(productID int64, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty = qty
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) Remove(productID int64) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Qty)
	}
	return total
}

func (c *Cart) Count() int {
	var count int
	for _, it := range c.Items {
		count += it.Qty
	}
	return count
}
