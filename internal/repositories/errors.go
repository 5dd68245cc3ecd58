package repositories

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// errors.Is and translate them at the boundary.
var (
	// ErrNotFound is returned when the requested record does not exist or
	// is not visible to the requester.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert would violate a uniqueness
	// invariant (one review per shopper/seller, one discount per product).
	ErrDuplicate = errors.New("record already exists")

	// ErrInsufficientStock is returned when a conditional stock decrement
	// affects no rows because the product's stock is below the requested
	// quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)
