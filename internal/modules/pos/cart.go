package pos

import (
	"github.com/google/uuid"

	"github.com/labarberia/pos-backend/internal/modules/catalog"
)

// Line is one cart entry: a catalog item plus the quantity being sold.
// Quantity is always >= 1; a line that would drop to zero is removed
// from the cart instead.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Subtotal is the line's price contribution.
func (l Line) Subtotal() float64 { return l.Item.Price * float64(l.Quantity) }

// Cart is the operator's in-progress selection of lines, one per
// distinct catalog item, in the order they were first added. All
// operations are synchronous and leave the cart valid on every exit:
// no negative quantities, no product line above its stock ceiling.
type Cart struct {
	order  []uuid.UUID
	lines  map[uuid.UUID]*Line
	frozen bool
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[uuid.UUID]*Line)}
}

// AddItem puts one unit of the item in the cart. A product with no
// remaining stock is rejected with ErrOutOfStock. Incrementing an
// existing product line past its stock ceiling is a silent no-op:
// the shop can't oversell, but the tap isn't an invalid request.
func (c *Cart) AddItem(item catalog.Item) error {
	if c.frozen {
		return ErrCartFrozen
	}
	if !item.HasStock(1) {
		return ErrOutOfStock
	}
	if line, ok := c.lines[item.ID]; ok {
		if !item.HasStock(line.Quantity + 1) {
			return nil
		}
		line.Quantity++
		return nil
	}
	c.order = append(c.order, item.ID)
	c.lines[item.ID] = &Line{Item: item, Quantity: 1}
	return nil
}

// AdjustQuantity applies delta to a line's quantity. The result is
// clamped at zero (removing the line); increases past a product's
// stock ceiling leave the line unchanged.
func (c *Cart) AdjustQuantity(itemID uuid.UUID, delta int) error {
	if c.frozen {
		return ErrCartFrozen
	}
	line, ok := c.lines[itemID]
	if !ok {
		return ErrLineNotFound
	}
	next := line.Quantity + delta
	if delta > 0 && !line.Item.HasStock(next) {
		return nil
	}
	if next <= 0 {
		c.remove(itemID)
		return nil
	}
	line.Quantity = next
	return nil
}

// RemoveItem deletes the line unconditionally.
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	if c.frozen {
		return ErrCartFrozen
	}
	if _, ok := c.lines[itemID]; !ok {
		return ErrLineNotFound
	}
	c.remove(itemID)
	return nil
}

func (c *Cart) remove(itemID uuid.UUID) {
	delete(c.lines, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Total recomputes the cart total from its lines on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Lines returns copies of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int { return len(c.lines) }

// Clear empties the cart. It works even on a frozen cart: the commit
// path clears the consumed cart itself after resolution.
func (c *Cart) Clear() {
	c.order = nil
	c.lines = make(map[uuid.UUID]*Line)
}

// Freeze blocks cart edits while a commit is being prepared or is in
// flight. Thaw lifts the block.
func (c *Cart) Freeze() { c.frozen = true }

func (c *Cart) Thaw() { c.frozen = false }

// Frozen reports whether edits are currently blocked.
func (c *Cart) Frozen() bool { return c.frozen }
