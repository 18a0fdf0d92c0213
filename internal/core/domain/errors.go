package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is the only failure a login ever reports.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound stays behind the credential verifier.
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionInvalid = errors.New("session invalid")
	ErrUnauthorized   = errors.New("insufficient role")

	ErrConfigurationFatal = errors.New("fatal configuration error")

	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")

	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrEmptyCart             = errors.New("cart is empty")
)

func invalidProduct(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidProduct, msg)
}
