package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		lines    []Line
		subtotal string
		tax      string
		final    string
	}{
		{
			name:     "two lines",
			lines:    []Line{{UnitPrice: d("100.00"), Quantity: 2}, {UnitPrice: d("50.00"), Quantity: 1}},
			subtotal: "250.00",
			tax:      "12.50",
			final:    "262.50",
		},
		{
			name:     "tax rounds up",
			lines:    []Line{{UnitPrice: d("33.33"), Quantity: 3}},
			subtotal: "99.99",
			tax:      "5.00",
			final:    "104.99",
		},
		{
			name:     "smallest fraction rounds up to a cent",
			lines:    []Line{{UnitPrice: d("0.01"), Quantity: 1}},
			subtotal: "0.01",
			tax:      "0.01",
			final:    "0.02",
		},
		{
			name:     "free items",
			lines:    []Line{{UnitPrice: d("0.00"), Quantity: 4}},
			subtotal: "0.00",
			tax:      "0.00",
			final:    "0.00",
		},
		{
			name:     "exact cents are not bumped",
			lines:    []Line{{UnitPrice: d("19.80"), Quantity: 1}},
			subtotal: "19.80",
			tax:      "0.99",
			final:    "20.79",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compute(tt.lines)
			require.NoError(t, err)
			assertAmount(t, tt.subtotal, q.Subtotal)
			assertAmount(t, tt.tax, q.Tax)
			assertAmount(t, tt.final, q.Final)
			assert.True(t, q.Final.Equal(q.Subtotal.Add(q.Tax)))
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	_, err := Compute(nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = Compute([]Line{{UnitPrice: d("-1.00"), Quantity: 1}})
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = Compute([]Line{{UnitPrice: d("1.00"), Quantity: 0}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestTax_NeverBelowExactRate(t *testing.T) {
	rate := decimal.NewFromInt(TaxRatePercent).Shift(-2)

	// Every subtotal from 0.00 to 50.00 in cent steps.
	for cents := int64(0); cents <= 5000; cents++ {
		subtotal := decimal.New(cents, -2)
		tax := Tax(subtotal)
		exact := subtotal.Mul(rate)

		if tax.LessThan(exact) {
			t.Fatalf("tax %s below exact %s for subtotal %s", tax, exact, subtotal)
		}
		// Integer-cents form: ceil(cents*5/100)
		wantCents := (cents*TaxRatePercent + 99) / 100
		if !tax.Equal(decimal.New(wantCents, -2)) {
			t.Fatalf("tax %s, want %d cents for subtotal %s", tax, wantCents, subtotal)
		}
		if tax.Sub(exact).GreaterThanOrEqual(decimal.New(1, -2)) {
			t.Fatalf("tax %s overshoots exact %s by a full cent", tax, exact)
		}
	}
}

func TestLine_Subtotal(t *testing.T) {
	l := Line{UnitPrice: d("12.25"), Quantity: 3}
	assertAmount(t, "36.75", l.Subtotal())
}
