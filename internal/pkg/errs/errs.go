package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy.
// Each concrete error type below unwraps to one of these, so callers can
// classify failures with errors.Is without depending on concrete types.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrUnknownReference       = errors.New("unknown reference")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrIdentifierExhausted    = errors.New("identifier keyspace exhausted")
	ErrVersionConflict        = errors.New("version conflict")
	ErrDuplicateValue         = errors.New("duplicate value")
	ErrInvalidCredentialInput = errors.New("credential input is invalid")
	ErrCorruptCredential      = errors.New("credential is corrupt")
)

// sanitize strips newlines from error message parts so a single log line
// cannot be split by attacker-controlled input.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that an object referenced by an identifier
// does not exist in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or
// violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its
// allowed interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that a persisted aggregate version is malformed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
	}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// UnknownReferenceError indicates that an entity cites a hub or route key
// that does not resolve to an existing object.
type UnknownReferenceError struct {
	ParamName string
	Key       any
	Cause     error
}

// NewUnknownReferenceError creates an UnknownReferenceError for the given parameter and key.
func NewUnknownReferenceError(paramName string, key any) *UnknownReferenceError {
	return &UnknownReferenceError{
		ParamName: paramName,
		Key:       key,
	}
}

// NewUnknownReferenceErrorWithCause creates an UnknownReferenceError wrapping an underlying cause.
func NewUnknownReferenceErrorWithCause(paramName string, key any, cause error) *UnknownReferenceError {
	return &UnknownReferenceError{
		ParamName: paramName,
		Key:       key,
		Cause:     cause,
	}
}

func (e *UnknownReferenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, key is: %s (cause: %s)",
			ErrUnknownReference, e.ParamName, e.Key, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnknownReference, e.Key))
}

func (e *UnknownReferenceError) Unwrap() error {
	return ErrUnknownReference
}

// InvalidTransitionError indicates that a requested status change violates
// the shipment state graph, including any attempt to leave a terminal state.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given states.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From: from,
		To:   to,
	}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:  from,
		To:    to,
		Cause: cause,
	}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: from %s to %s (cause: %s)",
			ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// IdentifierExhaustedError indicates that identifier generation gave up after
// the bounded number of collision retries. Treated as fatal and alerting, not
// user-retryable.
type IdentifierExhaustedError struct {
	ParamName string
	Attempts  int
}

// NewIdentifierExhaustedError creates an IdentifierExhaustedError for the given parameter.
func NewIdentifierExhaustedError(paramName string, attempts int) *IdentifierExhaustedError {
	return &IdentifierExhaustedError{
		ParamName: paramName,
		Attempts:  attempts,
	}
}

func (e *IdentifierExhaustedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s after %d attempts", ErrIdentifierExhausted, e.ParamName, e.Attempts))
}

func (e *IdentifierExhaustedError) Unwrap() error {
	return ErrIdentifierExhausted
}

// VersionConflictError indicates that a concurrent writer modified the
// aggregate between read and write. The caller should retry.
type VersionConflictError struct {
	ParamName string
	ID        any
}

// NewVersionConflictError creates a VersionConflictError for the given parameter and identifier.
func NewVersionConflictError(paramName string, id any) *VersionConflictError {
	return &VersionConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

func (e *VersionConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently", ErrVersionConflict, e.ParamName, e.ID))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// DuplicateValueError indicates that a value violating a uniqueness
// constraint already exists in storage.
type DuplicateValueError struct {
	ParamName string
	Value     any
}

// NewDuplicateValueError creates a DuplicateValueError for the given parameter and value.
func NewDuplicateValueError(paramName string, value any) *DuplicateValueError {
	return &DuplicateValueError{
		ParamName: paramName,
		Value:     value,
	}
}

func (e *DuplicateValueError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s already exists", ErrDuplicateValue, e.ParamName, e.Value))
}

func (e *DuplicateValueError) Unwrap() error {
	return ErrDuplicateValue
}

// InvalidCredentialInputError indicates that a plaintext passed to the
// credential store is malformed (empty or oversized). The plaintext itself is
// never included in the message.
type InvalidCredentialInputError struct {
	Cause error
}

// NewInvalidCredentialInputError creates an InvalidCredentialInputError wrapping an underlying cause.
func NewInvalidCredentialInputError(cause error) *InvalidCredentialInputError {
	return &InvalidCredentialInputError{Cause: cause}
}

func (e *InvalidCredentialInputError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrInvalidCredentialInput, e.Cause))
	}
	return ErrInvalidCredentialInput.Error()
}

func (e *InvalidCredentialInputError) Unwrap() error {
	return ErrInvalidCredentialInput
}

// CorruptCredentialError indicates that a stored credential is structurally
// invalid and cannot be verified against at all.
type CorruptCredentialError struct {
	Cause error
}

// NewCorruptCredentialError creates a CorruptCredentialError wrapping an underlying cause.
func NewCorruptCredentialError(cause error) *CorruptCredentialError {
	return &CorruptCredentialError{Cause: cause}
}

func (e *CorruptCredentialError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrCorruptCredential, e.Cause))
	}
	return ErrCorruptCredential.Error()
}

func (e *CorruptCredentialError) Unwrap() error {
	return ErrCorruptCredential
}
