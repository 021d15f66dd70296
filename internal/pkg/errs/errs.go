package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors enable classification via errors.Is regardless of the
// concrete error type carrying the details.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrValidation        = errors.New("validation failed")
	ErrJobUnavailable    = errors.New("job unavailable")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrForbidden         = errors.New("forbidden")
	ErrStorageFailure    = errors.New("storage failure")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a mandatory value was missing.
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
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed a domain rule.
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
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates an entity lookup came back empty.
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
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValidationError aggregates every issue found in a single request so the
// caller can fix all of them in one round trip. Issues keep insertion order.
type ValidationError struct {
	Issues []string
}

func NewValidationError(issues ...string) *ValidationError {
	return &ValidationError{Issues: issues}
}

// Append adds one more issue, formatted fmt.Sprintf style.
func (e *ValidationError) Append(format string, args ...any) {
	e.Issues = append(e.Issues, fmt.Sprintf(format, args...))
}

// HasIssues reports whether any issue was collected.
func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

func (e *ValidationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Issues, "; ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// JobUnavailableError indicates a claim lost the race or the order is no
// longer claimable. The caller recovers by re-listing jobs and retrying.
type JobUnavailableError struct {
	OrderID string
}

func NewJobUnavailableError(orderID string) *JobUnavailableError {
	return &JobUnavailableError{OrderID: orderID}
}

func (e *JobUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s is not pending or already has a courier",
		ErrJobUnavailable, e.OrderID))
}

func (e *JobUnavailableError) Unwrap() error {
	return ErrJobUnavailable
}

// InvalidTransitionError indicates an operation is not legal from the order's
// current status.
type InvalidTransitionError struct {
	Event      string
	FromStatus string
}

func NewInvalidTransitionError(event, fromStatus string) *InvalidTransitionError {
	return &InvalidTransitionError{Event: event, FromStatus: fromStatus}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s an order in status %s",
		ErrInvalidTransition, e.Event, e.FromStatus))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError indicates the caller lacks the required relationship to the
// order (wrong customer, or a courier who is not the assigned one).
type ForbiddenError struct {
	Action string
	Reason string
}

func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrForbidden, e.Action, e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// StorageFailureError indicates the transaction layer could not complete.
// No partial effect is ever persisted, so the caller may retry the whole
// operation.
type StorageFailureError struct {
	Op    string
	Cause error
}

func NewStorageFailureError(op string, cause error) *StorageFailureError {
	return &StorageFailureError{Op: op, Cause: cause}
}

func (e *StorageFailureError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrStorageFailure, e.Op, e.Cause))
}

func (e *StorageFailureError) Unwrap() error {
	return ErrStorageFailure
}
