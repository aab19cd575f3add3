package errors

import (
	"errors"
)

var (
	ErrEmptyAuth    = errors.New("missing authorization")
	ErrTokenInvalid = errors.New("invalid token")

	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidCursor    = errors.New("invalid cursor")
	ErrNoValidItems     = errors.New("no valid items in selection")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")
)
