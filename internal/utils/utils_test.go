package utils

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointers(t *testing.T) {
	s := StrPtr("Mains")
	assert.Equal(t, "Mains", *s)
}

func TestToUint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint
		wantErr error
	}{
		{"Valid", "42", 42, nil},
		{"Padded", "  7 ", 7, nil},
		{"Empty", "", 0, ErrEmptyInput},
		{"Negative", "-1", 0, ErrNotANumber},
		{"Letters", "abc", 0, ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUint(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParsePositiveInt("0")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = ParsePositiveInt("-2")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = ParsePositiveInt("two")
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = ParsePositiveInt(" ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	n, err = ParsePositiveInt("2147483647")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, n)

	_, err = ParsePositiveInt("2147483648")
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = ParsePositiveInt("99999999999999999999999")
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = ParsePositiveInt("-99999999999999999999999")
	assert.ErrorIs(t, err, ErrNotPositive)
}

func TestParsePrice(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := ParsePrice("180")
		require.NoError(t, err)
		assert.Equal(t, "180.00", d.StringFixed(2))
	})

	t.Run("RoundsToCents", func(t *testing.T) {
		d, err := ParsePrice("10.555")
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("10.56")))
	})

	t.Run("Zero", func(t *testing.T) {
		d, err := ParsePrice("0")
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := ParsePrice("-5")
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParsePrice("12,50")
		assert.ErrorIs(t, err, ErrNotANumber)
	})
}

func TestParseYesNo(t *testing.T) {
	assert.True(t, ParseYesNo("Y", false))
	assert.True(t, ParseYesNo(" yes ", false))
	assert.False(t, ParseYesNo("n", true))
	assert.False(t, ParseYesNo("NO", true))
	assert.True(t, ParseYesNo("", true))
	assert.False(t, ParseYesNo("maybe", false))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹262.50", FormatMoney(decimal.RequireFromString("262.5")))
	assert.Equal(t, "₹0.00", FormatMoney(decimal.Zero))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Lassi", Truncate("Lassi", 10))
	assert.Equal(t, "Paneer ...", Truncate("Paneer Tikka Masala", 10))
	assert.Equal(t, "Pan", Truncate("Paneer", 3))
}

func TestReceiptNumber(t *testing.T) {
	at := time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20240302-000042", ReceiptNumber(42, at))
	assert.Regexp(t, `^ORD-\d{8}-\d{6}$`, ReceiptNumber(7, time.Now()))
}
