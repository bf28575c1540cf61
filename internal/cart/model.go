package cart

import "github.com/shopspring/decimal"

// Item is one cart line. Name and Price are snapshots taken when the item
// was added; checkout re-reads the current menu price.
type Item struct {
	ItemID   uint
	Name     string
	Price    decimal.Decimal
	Quantity int
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineRequest is the (item id, quantity) pair handed to checkout.
type LineRequest struct {
	ItemID   uint
	Quantity int
}
