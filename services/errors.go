package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOrderID   = errors.New("order id is not a valid uuid")
	ErrOrderNotFound    = errors.New("order not found")
	ErrMissingTable     = errors.New("table number is required for dine-in")
	ErrConflict         = errors.New("order was changed by someone else, refresh and retry")
	ErrPermissionDenied = errors.New("your role is read-only")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrNoNextStep       = errors.New("no next step from the current status")
	ErrMenuUnavailable  = errors.New("menu item is not available")

	// ErrAtomicUnavailable is returned by an order store when the atomic
	// create-with-items call cannot be used; the submitter then falls back
	// to the two-step insert.
	ErrAtomicUnavailable = errors.New("atomic order creation unavailable")
)

// IllegalTransitionError names the exact current/target pair that was refused.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("transition from %q to %q is not allowed", e.From, e.To)
}

// PartialSubmissionError reports that the order header exists but a later
// step failed. The order must not be resubmitted; it needs manual follow-up.
type PartialSubmissionError struct {
	OrderID string
	Stage   string
	Err     error
}

func (e *PartialSubmissionError) Error() string {
	return fmt.Sprintf("order %s was created but %s failed: %v", e.OrderID, e.Stage, e.Err)
}

func (e *PartialSubmissionError) Unwrap() error { return e.Err }
