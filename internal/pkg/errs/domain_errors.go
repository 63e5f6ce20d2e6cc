package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Wizard errors
	ErrDraftNotFound   = errors.New("draft not found")
	ErrNoQuoteDerived  = errors.New("no quote derived yet")
	ErrCheckoutNotOpen = errors.New("checkout not open")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrDraftStoreFailed        = errors.New("draft store operation failed")
)
