package order

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("login required")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and 2147483647")
	ErrItemUnavailable   = errors.New("item not available")
	ErrOrderNotFound     = errors.New("order not found")
	ErrForbidden         = errors.New("cannot access another account's order")
	ErrTransactionFailed = errors.New("order could not be placed")
)

// ItemUnavailableError names the menu item that stopped a checkout.
type ItemUnavailableError struct {
	ItemID uint
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("item %d not available", e.ItemID)
}

func (e *ItemUnavailableError) Is(target error) bool {
	return target == ErrItemUnavailable
}
