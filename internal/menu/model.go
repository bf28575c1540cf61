package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID        uint
	Name      string
	Category  string
	Price     decimal.Decimal
	Available bool
	CreatedAt time.Time
}

type AddItemParams struct {
	Name      string
	Category  string
	Price     decimal.Decimal
	Available bool
}
