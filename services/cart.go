package services

import (
	"sync"

	"salonpos-backend/models"
)

// TaxRate is the flat sales tax applied to every order. The register does
// not support per-jurisdiction rates.
const TaxRate = 0.08

// CartLine is one entry in the register cart. A line is identified by the
// (ID, Type) pair, so a service and a product may share the same textual id
// without colliding.
type CartLine struct {
	ID        string          `json:"id"`
	Type      models.ItemType `json:"type"`
	Name      string          `json:"name"`
	UnitPrice float64         `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Cart is the point-of-sale order being rung up. There is one register and
// one cashier; the mutex only serializes concurrent HTTP handlers, there is
// no multi-cart coordination. Totals are recomputed from the lines on every
// read, never cached.
type Cart struct {
	mu         sync.Mutex
	lines      []CartLine
	customerID string
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing (id, type) line or appends
// a new line with quantity 1. First-insertion order is preserved.
func (c *Cart) AddItem(id string, itemType models.ItemType, name string, unitPrice float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id && c.lines[i].Type == itemType {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ID:        id,
		Type:      itemType,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// RemoveItem deletes the line matching (id, type). Removing an absent line
// is a no-op.
func (c *Cart) RemoveItem(id string, itemType models.ItemType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(id, itemType)
}

// SetQuantity replaces a line's quantity. A quantity below 1 removes the
// line. No upper bound is enforced; the register does not check stock.
func (c *Cart) SetQuantity(id string, itemType models.ItemType, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		c.remove(id, itemType)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id && c.lines[i].Type == itemType {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) remove(id string, itemType models.ItemType) {
	for i := range c.lines {
		if c.lines[i].ID == id && c.lines[i].Type == itemType {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Totals computes subtotal, tax, and total from the current lines.
func (c *Cart) Totals() CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subtotal float64
	for _, line := range c.lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	tax := subtotal * TaxRate
	return CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

func (c *Cart) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// SetCustomer attaches an optional customer to the order.
func (c *Cart) SetCustomer(customerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerID = customerID
}

func (c *Cart) CustomerID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customerID
}

// Clear empties the cart and drops the selected customer. Checkout calls
// this after surfacing the confirmation; nothing else is persisted.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.customerID = ""
}
