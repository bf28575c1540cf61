package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrNotANumber    = errors.New("not a valid number")
	ErrNotPositive   = errors.New("must be greater than zero")
	ErrTooLarge      = errors.New("number is too large")
	ErrNegativePrice = errors.New("price cannot be negative")
)

func StrPtr(s string) *string {
	return &s
}

// ToUint parses a trimmed decimal id.
func ToUint(s string) (uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	return uint(n), nil
}

// ParsePositiveInt accepts integers in 1..math.MaxInt32.
func ParsePositiveInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return 0, ErrNotPositive
		}
		return 0, ErrTooLarge
	}
	if err != nil {
		return 0, ErrNotANumber
	}
	if n <= 0 {
		return 0, ErrNotPositive
	}
	if n > math.MaxInt32 {
		return 0, ErrTooLarge
	}
	return int(n), nil
}

// ParsePrice accepts a non-negative decimal amount and rounds it to cents.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyInput
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	return d.Round(2), nil
}

// ParseYesNo reads y/yes/n/no in any case; anything else yields def.
func ParseYesNo(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}

func FormatMoney(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}
