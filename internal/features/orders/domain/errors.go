package domain

import "errors"

var (
	// ErrNoDraft is returned when a session has no draft to price or submit.
	ErrNoDraft = errors.New("no draft order")
	// ErrBusy is returned while the same draft operation is already in flight.
	ErrBusy = errors.New("draft operation already in progress")
	// ErrActionNotAvailable is returned when an order's state does not offer the action.
	ErrActionNotAvailable = errors.New("action not available for this order")
	// ErrMissingReference is returned when an order id, tracking code or driver id is blank.
	ErrMissingReference = errors.New("order reference is required")
)
