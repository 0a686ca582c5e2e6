package order

import (
	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing ──> Shipped
//	          │
//	          └──> Cancelled
//
// Cancelled and Failed are terminal states with no outgoing transitions.
// Failed is never produced by order creation: a declined initial charge
// persists no order at all. The state exists for payments that die after
// authorization in later flows.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status, set once payment authorization succeeds.
	// Only pending orders may be cancelled by their owner.
	Pending

	// Processing indicates fulfillment has picked up the order.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Cancelled indicates the owner cancelled the order while it was pending.
	// This is a terminal state.
	Cancelled

	// Failed indicates the order's payment failed after authorization.
	// This is a terminal state.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Cancelled:  "cancelled",
		Failed:     "failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Cancelled:  "cancelled",
		Failed:     "failed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Cancelled, Failed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase name of the status, the form used in API
// responses and status breakdowns.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Failed
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (owner-initiated cancellation)
//
// Any other source status fails: orders already in fulfillment
// (Processing, Shipped) and terminal orders cannot be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, *errs.InvalidStateError) if cancellation is not allowed
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (fulfillment picked up the order)
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (0, *errs.InvalidStateError) if the order is not pending
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError(s.String(), Processing.String())
	}

	return Processing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Processing -> Shipped (order left the warehouse)
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, *errs.InvalidStateError) if the order is not processing
func (s Status) Ship() (Status, error) {
	if s != Processing {
		return 0, errs.NewInvalidStateError(s.String(), Shipped.String())
	}

	return Shipped, nil
}
