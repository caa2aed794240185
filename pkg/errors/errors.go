package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category so callers and tests can match on it
// without parsing messages.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Transition registration errors
	ErrTransitionInvalid       ErrorCode = "TRANSITION_INVALID"
	ErrTransitionNotRegistered ErrorCode = "TRANSITION_NOT_REGISTERED"
	ErrDuplicateRegistration   ErrorCode = "DUPLICATE_REGISTRATION"
	ErrRegistryFrozen          ErrorCode = "REGISTRY_FROZEN"
	ErrTableSealed             ErrorCode = "TABLE_SEALED"

	// Output errors
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
)

// GearboxError pairs a machine-matchable code with a human message. Details
// carries structured context (offending type, phase, path) for renderers and
// tests; Wrapped keeps the underlying cause reachable through errors.Is/As.
type GearboxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error formats as "[CODE] message", followed by ": cause" when wrapping
func (e *GearboxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *GearboxError) Unwrap() error {
	return e.Wrapped
}

// Is matches any GearboxError carrying the same code, whatever its message
func (e *GearboxError) Is(target error) bool {
	var targetErr *GearboxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New returns an error with an empty details map ready for WithDetail
func New(code ErrorCode, message string) *GearboxError {
	return &GearboxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf is New with a fmt.Sprintf message
func Newf(code ErrorCode, format string, args ...interface{}) *GearboxError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to err. A nil err yields nil, so check err
// before returning the result through an error interface.
func Wrap(err error, code ErrorCode, message string) *GearboxError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a fmt.Sprintf message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GearboxError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail records key=value on e and returns e for chaining
func (e *GearboxError) WithDetail(key string, value interface{}) *GearboxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether the first GearboxError in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	var gErr *GearboxError
	if errors.As(err, &gErr) {
		return gErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of the first GearboxError in err's chain, or
// ErrUnknown when there is none
func GetErrorCode(err error) ErrorCode {
	var gErr *GearboxError
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the first GearboxError in err's
// chain, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var gErr *GearboxError
	if errors.As(err, &gErr) {
		return gErr.Details
	}
	return nil
}
