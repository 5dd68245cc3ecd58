package services

import "errors"

// Sentinel errors surfaced by the service layer. Handlers translate them
// into structured JSON responses.
var (
	// ErrEmptyCart is returned when checkout is attempted with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutFailed wraps any failure during the checkout transaction.
	// All partial writes are rolled back before it is returned.
	ErrCheckoutFailed = errors.New("checkout failed")

	// ErrInvalidQuantity is returned for a non-positive add quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// ErrInvalidDiscountSpec is returned when a price break supplies
	// neither or both of percentage and new price, or a value outside the
	// allowed range.
	ErrInvalidDiscountSpec = errors.New("exactly one of percentage or new_price is required")

	// ErrInvalidStatus is returned for an unknown order or delivery status.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when a blocked user tries to log in.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrNotOwner is returned when a seller acts on a product they do not
	// own.
	ErrNotOwner = errors.New("product does not belong to seller")
)
