// Package cart holds the shopping cart of a single session.
//
// A Cart is not safe for concurrent use; callers serialize access through
// the owning session.
package cart

import (
	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

// MaxQuantity is the most units of one product a cart holds
const MaxQuantity = 99

// Cart is an ordered list of products with quantities.
// Every item present has 0 < Quantity <= MaxQuantity.
type Cart struct {
	items []models.CartItem
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of product into the cart. An existing entry for the
// same product ID is incremented instead of duplicated.
func (c *Cart) Add(product models.Product) {
	c.AddN(product, 1)
}

// AddN puts n units of product into the cart, capping the entry at
// MaxQuantity. Non-positive n is ignored.
func (c *Cart) AddN(product models.Product, n int) {
	if n <= 0 {
		return
	}
	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity = clampAdd(c.items[i].Quantity, n)
		return
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: clampAdd(0, n)})
}

// UpdateQuantity adjusts the quantity of productID by delta, clamping at
// zero and MaxQuantity. Entries that reach zero are removed. Unknown IDs
// are ignored.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	if delta > -c.items[i].Quantity {
		c.items[i].Quantity = clampAdd(c.items[i].Quantity, delta)
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Remove drops productID from the cart regardless of its quantity
func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.UpdateQuantity(productID, -c.items[i].Quantity)
	}
}

// Quantity returns the quantity held for productID, or 0
func (c *Cart) Quantity(productID string) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Count returns the total number of units across all items
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of price × quantity over all items
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Items returns a copy of the cart entries in insertion order
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct products
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds nothing
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
}

// clampAdd returns qty+n limited to MaxQuantity without overflowing.
// qty is within [0, MaxQuantity].
func clampAdd(qty, n int) int {
	if n >= MaxQuantity-qty {
		return MaxQuantity
	}
	return qty + n
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
