package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrPartialFailure     = errors.New("partial failure")
)

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// ObjectNotFoundError reports a lookup by id, name or email with no match.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a status change attempted from a terminal
// or non-adjacent state. From and To hold the status names.
type InvalidTransitionError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

func NewInvalidTransitionError(paramName string, from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{ParamName: paramName, From: from.String(), To: to.String()}
}

func NewInvalidTransitionErrorWithCause(
	paramName string,
	from, to fmt.Stringer,
	cause error,
) *InvalidTransitionError {
	return &InvalidTransitionError{ParamName: paramName, From: from.String(), To: to.String(), Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot change from %s to %s", ErrInvalidTransition, e.ParamName, e.From, e.To)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// IntegrityViolationError reports a reference to a missing row, a broken
// uniqueness constraint, or a second link of an already linked order.
type IntegrityViolationError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewIntegrityViolationError(paramName string, value any) *IntegrityViolationError {
	return &IntegrityViolationError{ParamName: paramName, Value: value}
}

func NewIntegrityViolationErrorWithCause(paramName string, value any, cause error) *IntegrityViolationError {
	return &IntegrityViolationError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *IntegrityViolationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrIntegrityViolation, e.ParamName)
	if e.Value != nil {
		msg = fmt.Sprintf("%s is %s", msg, sanitize(e.Value))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}

// PartialFailureError reports a multi-row operation that could not be made
// durable as a whole. The caller retries the full operation.
type PartialFailureError struct {
	Operation string
	Cause     error
}

func NewPartialFailureError(operation string, cause error) *PartialFailureError {
	return &PartialFailureError{Operation: operation, Cause: cause}
}

func (e *PartialFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s must be retried as a whole (cause: %v)", ErrPartialFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s must be retried as a whole", ErrPartialFailure, e.Operation)
}

// Unwrap exposes the sentinel and the cause, so typed causes stay visible to errors.As.
func (e *PartialFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPartialFailure}
	}
	return []error{ErrPartialFailure, e.Cause}
}
