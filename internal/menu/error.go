package menu

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired  = errors.New("item name is required")
	ErrInvalidPrice  = errors.New("price must not be negative")
	ErrPriceTooLarge = errors.New("price exceeds 99999999.99")

	// -- Resource State --
	ErrItemNotFound = errors.New("menu item not found")
)
