package client

import (
	"github.com/Likhithagandham/Digital-Cafe/models"
)

// CartLine is one menu item in the cart with its selected quantity. Name and
// price are copied from the menu item so the line survives menu edits.
type CartLine struct {
	MenuItemID string
	Name       string
	Price      float64
	Qty        int
}

// Cart is the client-local, unpersisted order draft. Lines keep insertion
// order, matching how the drawer renders them.
type Cart struct {
	lines []CartLine
}

// Add puts one unit of item in the cart: an existing line (matched by menu
// item id) gets its quantity bumped, otherwise a new qty-1 line is appended.
func (c *Cart) Add(item models.MenuItem) {
	id := item.ID.Hex()
	for i := range c.lines {
		if c.lines[i].MenuItemID == id {
			c.lines[i].Qty++
			return
		}
	}

	line := CartLine{MenuItemID: id, Qty: 1}
	if item.Name != nil {
		line.Name = *item.Name
	}
	if item.Price != nil {
		line.Price = *item.Price
	}
	c.lines = append(c.lines, line)
}

// Remove takes one unit of the identified item out of the cart; the line
// disappears entirely when its quantity reaches zero.
func (c *Cart) Remove(menuItemID string) {
	for i := range c.lines {
		if c.lines[i].MenuItemID != menuItemID {
			continue
		}
		if c.lines[i].Qty > 1 {
			c.lines[i].Qty--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Qty)
	}
	return total
}

// Count is the number of units in the cart, shown on the cart badge.
func (c *Cart) Count() int {
	var count int
	for _, line := range c.lines {
		count += line.Qty
	}
	return count
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}

// Checkout builds the order payload from the current lines, with the total
// the server will store verbatim.
func (c *Cart) Checkout() OrderRequest {
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, models.OrderItem{
			Name:  line.Name,
			Price: line.Price,
			Qty:   line.Qty,
		})
	}
	return OrderRequest{Items: items, Total: c.Total()}
}
