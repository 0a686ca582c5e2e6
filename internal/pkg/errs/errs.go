package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Each error type in this package unwraps to one of these.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrObjectNotFound     = errors.New("object not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidState       = errors.New("invalid state transition")
	ErrConflict           = errors.New("conflict")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)

// sanitize makes arbitrary values safe for single-line error messages.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for a value outside its allowed range.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates an error for a value outside its
// allowed range with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %v, max value is %v",
		sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that an object could not be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// NotAuthorizedError indicates that the caller does not own the requested resource.
type NotAuthorizedError struct {
	ResourceName string
	ID           string
	Cause        error
}

// NewNotAuthorizedError creates an error for an ownership check failure.
func NewNotAuthorizedError(resourceName, id string) *NotAuthorizedError {
	return &NotAuthorizedError{ResourceName: resourceName, ID: id}
}

// NewNotAuthorizedErrorWithCause creates an error for an ownership check failure
// with an underlying cause.
func NewNotAuthorizedErrorWithCause(resourceName, id string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{ResourceName: resourceName, ID: id, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrNotAuthorized, e.ResourceName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrNotAuthorized, e.ResourceName, e.ID)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// InvalidStateError indicates that a lifecycle transition precondition is not met.
type InvalidStateError struct {
	CurrentState string
	TargetState  string
	Cause        error
}

// NewInvalidStateError creates an error for a forbidden state transition.
func NewInvalidStateError(currentState, targetState string) *InvalidStateError {
	return &InvalidStateError{CurrentState: currentState, TargetState: targetState}
}

// NewInvalidStateErrorWithCause creates an error for a forbidden state transition
// with an underlying cause.
func NewInvalidStateErrorWithCause(currentState, targetState string, cause error) *InvalidStateError {
	return &InvalidStateError{CurrentState: currentState, TargetState: targetState, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidState, e.CurrentState, e.TargetState, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidState, e.CurrentState, e.TargetState)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ConflictError indicates a store-level race, such as a duplicate identifier
// on insert or a lost compare-and-swap.
type ConflictError struct {
	ResourceName string
	ID           string
	Cause        error
}

// NewConflictError creates an error for a store-level conflict.
func NewConflictError(resourceName, id string) *ConflictError {
	return &ConflictError{ResourceName: resourceName, ID: id}
}

// NewConflictErrorWithCause creates an error for a store-level conflict
// with an underlying cause.
func NewConflictErrorWithCause(resourceName, id string, cause error) *ConflictError {
	return &ConflictError{ResourceName: resourceName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrConflict, e.ResourceName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrConflict, e.ResourceName, e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// PaymentDeclinedError indicates a business-level decline by a payment provider.
// A decline is a valid outcome, not an infrastructure fault.
type PaymentDeclinedError struct {
	Provider string
	Amount   string
	Cause    error
}

// NewPaymentDeclinedError creates an error for a declined charge.
func NewPaymentDeclinedError(provider, amount string) *PaymentDeclinedError {
	return &PaymentDeclinedError{Provider: provider, Amount: amount}
}

// NewPaymentDeclinedErrorWithCause creates an error for a declined charge
// with an underlying cause.
func NewPaymentDeclinedErrorWithCause(provider, amount string, cause error) *PaymentDeclinedError {
	return &PaymentDeclinedError{Provider: provider, Amount: amount, Cause: cause}
}

func (e *PaymentDeclinedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s charge of %s (cause: %s)", ErrPaymentDeclined, e.Provider, e.Amount, e.Cause)
	}
	return fmt.Sprintf("%s: %s charge of %s", ErrPaymentDeclined, e.Provider, e.Amount)
}

func (e *PaymentDeclinedError) Unwrap() error {
	return ErrPaymentDeclined
}

// PaymentUnavailableError indicates an infrastructure-level payment fault,
// such as an unreachable provider or a timed-out charge.
type PaymentUnavailableError struct {
	Provider string
	Cause    error
}

// NewPaymentUnavailableError creates an error for an unreachable payment provider.
func NewPaymentUnavailableError(provider string) *PaymentUnavailableError {
	return &PaymentUnavailableError{Provider: provider}
}

// NewPaymentUnavailableErrorWithCause creates an error for an unreachable payment
// provider with an underlying cause.
func NewPaymentUnavailableErrorWithCause(provider string, cause error) *PaymentUnavailableError {
	return &PaymentUnavailableError{Provider: provider, Cause: cause}
}

func (e *PaymentUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPaymentUnavailable, e.Provider, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPaymentUnavailable, e.Provider)
}

func (e *PaymentUnavailableError) Unwrap() error {
	return ErrPaymentUnavailable
}
