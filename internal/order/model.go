package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "Pending"
)

type Order struct {
	ID        uint
	AccountID uint
	OrderDate time.Time
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Final     decimal.Decimal
	Status    Status

	// ItemSummary is "Name xQty, ..." for listings. Lines is filled by
	// detail lookups only.
	ItemSummary string
	Lines       []OrderLine
}

type OrderLine struct {
	ID         uint
	OrderID    uint
	MenuItemID uint
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

// Receipt is what a successful checkout reports back.
type Receipt struct {
	OrderID  uint
	PlacedAt time.Time
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Final    decimal.Decimal
	Lines    []OrderLine
}
