// Package pricing turns order lines into subtotal, tax and final amounts.
//
// All arithmetic is exact decimal. Tax is 5% of the subtotal rounded UP to
// the next cent, never to nearest.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// TaxRatePercent is the flat tax applied to every order.
	TaxRatePercent = 5

	centPlaces = 2
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNegativePrice   = errors.New("unit price must not be negative")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal is UnitPrice × Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(centPlaces)
}

type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Final    decimal.Decimal
}

// Compute prices a non-empty set of lines.
func Compute(lines []Line) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, ErrEmptyCart
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		if l.UnitPrice.IsNegative() {
			return Quote{}, ErrNegativePrice
		}
		if l.Quantity <= 0 {
			return Quote{}, ErrInvalidQuantity
		}
		subtotal = subtotal.Add(l.Subtotal())
	}
	subtotal = subtotal.Round(centPlaces)

	tax := Tax(subtotal)

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Final:    subtotal.Add(tax),
	}, nil
}

// Tax returns ceil(subtotal × 5) / 100 in currency units.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.
		Mul(decimal.NewFromInt(TaxRatePercent)).
		Shift(-2).
		RoundCeil(centPlaces)
}
