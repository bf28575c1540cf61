package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity  = errors.New("invalid cart quantity")
	ErrInvalidPosition  = errors.New("invalid cart item number")
	ErrInvalidItem      = errors.New("invalid cart item")
	ErrQuantityTooLarge = errors.New("cart quantity exceeds the per-item limit")

	// -- Resource State --
	ErrCartEmpty = errors.New("cart is empty")
)
