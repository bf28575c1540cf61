package cart

import (
	"math"

	"restaurant-order/internal/pricing"
)

// MaxQuantity is the largest quantity one line may hold; order_lines.quantity
// is a 32-bit INTEGER.
const MaxQuantity = math.MaxInt32

// Cart holds the lines of one session. It is not safe for concurrent use.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add appends item or, when the same menu item is already present, adds to
// its quantity.
func (c *Cart) Add(item Item) error {
	if item.ItemID == 0 || item.Price.IsNegative() {
		return ErrInvalidItem
	}
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if item.Quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}

	for i := range c.items {
		if c.items[i].ItemID == item.ItemID {
			if c.items[i].Quantity > MaxQuantity-item.Quantity {
				return ErrQuantityTooLarge
			}
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the line at 1-based position pos and returns it.
func (c *Cart) Remove(pos int) (Item, error) {
	idx, err := c.index(pos)
	if err != nil {
		return Item{}, err
	}

	removed := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return removed, nil
}

// UpdateQuantity replaces the quantity of the line at 1-based position pos.
func (c *Cart) UpdateQuantity(pos, qty int) error {
	idx, err := c.index(pos)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > MaxQuantity {
		return ErrQuantityTooLarge
	}
	c.items[idx].Quantity = qty
	return nil
}

func (c *Cart) index(pos int) (int, error) {
	if len(c.items) == 0 {
		return 0, ErrCartEmpty
	}
	if pos < 1 || pos > len(c.items) {
		return 0, ErrInvalidPosition
	}
	return pos - 1, nil
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the lines in cart order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Requests() []LineRequest {
	out := make([]LineRequest, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, LineRequest{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return out
}

// Quote prices the cart from its snapshot prices. It is a preview only.
func (c *Cart) Quote() (pricing.Quote, error) {
	if c.IsEmpty() {
		return pricing.Quote{}, ErrCartEmpty
	}

	lines := make([]pricing.Line, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, pricing.Line{UnitPrice: it.Price, Quantity: it.Quantity})
	}
	return pricing.Compute(lines)
}
