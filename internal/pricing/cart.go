// Package pricing implements the POS cart and pricing computation:
// cart line management, discount resolution, loyalty point redemption
// and accrual, and final totals. Everything here is pure and
// synchronous; persistence and stock authority stay in the services.
package pricing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrOutOfStock is returned when adding a product with no available stock
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrStockLimit is returned when a quantity change would exceed available stock
	ErrStockLimit = errors.New("quantity exceeds available stock")
	// ErrLineNotFound is returned when the cart has no line for the product
	ErrLineNotFound = errors.New("product is not in the cart")
)

// CartProduct is the product snapshot captured when a line is created.
// UnitPrice and AvailableStock are frozen at add time, not re-fetched.
type CartProduct struct {
	ID             uuid.UUID
	Name           string
	SKU            string
	UnitPrice      float64
	AvailableStock int
}

// CartLine is one product entry in the active cart
type CartLine struct {
	ProductID      uuid.UUID
	Name           string
	SKU            string
	Quantity       int
	UnitPrice      float64
	LineDiscount   float64
	AvailableStock int
}

// LineTotal returns quantity * unitPrice - lineDiscount, floored at 0
func (l CartLine) LineTotal() float64 {
	total := float64(l.Quantity)*l.UnitPrice - l.LineDiscount
	if total < 0 {
		return 0
	}
	return total
}

// Cart holds the ordered line items of an in-progress sale along with
// the customer, discount, and point-redemption selections that belong
// to it. Clear resets all of them together.
type Cart struct {
	lines []CartLine

	CustomerID     *uuid.UUID
	DiscountID     *uuid.UUID
	RedeemPoints   bool
	PointsToRedeem int
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddLine adds one unit of the product to the cart. An existing line
// is incremented; a new line starts at quantity 1. Returns
// ErrOutOfStock or ErrStockLimit without mutating the cart when the
// product's captured stock does not allow it.
func (c *Cart) AddLine(p CartProduct) error {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			if c.lines[i].Quantity+1 > c.lines[i].AvailableStock {
				return ErrStockLimit
			}
			c.lines[i].Quantity++
			return nil
		}
	}

	if p.AvailableStock <= 0 {
		return ErrOutOfStock
	}

	c.lines = append(c.lines, CartLine{
		ProductID:      p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		Quantity:       1,
		UnitPrice:      p.UnitPrice,
		AvailableStock: p.AvailableStock,
	})
	return nil
}

// UpdateQuantity applies a signed delta to a line's quantity. A
// positive delta past available stock is rejected whole with
// ErrStockLimit. The result is clamped to zero at the bottom, and a
// zero quantity removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, delta int) error {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}

		next := c.lines[i].Quantity + delta
		if delta > 0 && next > c.lines[i].AvailableStock {
			return ErrStockLimit
		}
		if next <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
		c.lines[i].Quantity = next
		return nil
	}
	return ErrLineNotFound
}

// RemoveLine removes the line for the product if present
func (c *Cart) RemoveLine(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart and resets the customer, discount, and point
// redemption selections as one transactional reset
func (c *Cart) Clear() {
	c.lines = nil
	c.CustomerID = nil
	c.DiscountID = nil
	c.RedeemPoints = false
	c.PointsToRedeem = 0
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal returns the sum of all line totals
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.LineTotal()
	}
	return sum
}
