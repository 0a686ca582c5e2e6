package payment

import (
	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment transaction.
//
// State transitions:
//
//	Pending ──> Processing ──┬──> Completed ──> Refunded
//	                         └──> Failed
//
// A transaction ends Completed or Failed; only completed transactions
// can be refunded.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state of a freshly created transaction.
	StatusPending

	// StatusProcessing indicates the charge has been sent to the provider.
	StatusProcessing

	// StatusCompleted indicates the provider accepted the charge.
	StatusCompleted

	// StatusFailed indicates the provider declined the charge.
	// A decline is a business outcome, not an error.
	StatusFailed

	// StatusRefunded indicates a completed charge was returned.
	StatusRefunded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
		StatusRefunded:   "refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
		StatusRefunded:   "refunded",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Process transitions the status to Processing.
// Only pending transactions can move to processing.
func (s Status) Process() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateError(s.String(), StatusProcessing.String())
	}
	return StatusProcessing, nil
}

// Complete transitions the status to Completed.
// Only processing transactions can complete.
func (s Status) Complete() (Status, error) {
	if s != StatusProcessing {
		return 0, errs.NewInvalidStateError(s.String(), StatusCompleted.String())
	}
	return StatusCompleted, nil
}

// Fail transitions the status to Failed.
// Only processing transactions can fail.
func (s Status) Fail() (Status, error) {
	if s != StatusProcessing {
		return 0, errs.NewInvalidStateError(s.String(), StatusFailed.String())
	}
	return StatusFailed, nil
}

// Refund transitions the status to Refunded.
// Only completed transactions can be refunded.
func (s Status) Refund() (Status, error) {
	if s != StatusCompleted {
		return 0, errs.NewInvalidStateError(s.String(), StatusRefunded.String())
	}
	return StatusRefunded, nil
}
