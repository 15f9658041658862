package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a name has no binding anywhere reachable.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a required field is missing or malformed.
	ErrBadParameter = "bad_parameter"
	// ErrUpstreamUnavailable means that a delegation target timed out or failed.
	ErrUpstreamUnavailable = "upstream_unavailable"
	// ErrUnknownMethod means that the dispatcher has no method with the requested name.
	ErrUnknownMethod = "unknown_method"
	// ErrInvocation means that a method failed while executing.
	ErrInvocation = "invocation_error"
	// ErrNamingUnavailable means that a naming node could not be reached or answered non-2xx.
	ErrNamingUnavailable = "naming_unavailable"
)

// MyError represents an error within the context of mynaming services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

// NewUpstreamUnavailableError wraps a failed delegation attempt. The inner error is kept as is,
// even when it already is a MyError, so the target's own code stays visible in logs.
func NewUpstreamUnavailableError(message string, inner error) *MyError {
	return NewMyError(ErrUpstreamUnavailable, message, inner)
}

func NewUnknownMethodError(message string, inner error) *MyError {
	return NewMyError(ErrUnknownMethod, message, inner)
}

func NewInvocationError(message string, inner error) *MyError {
	return NewMyError(ErrInvocation, message, inner)
}

func NewNamingUnavailableError(message string, inner error) *MyError {
	return NewMyError(ErrNamingUnavailable, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a mynaming error, or nil if it is not a mynaming error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsUpstreamUnavailableError(err error) bool {
	return IsMyError(err, ErrUpstreamUnavailable)
}

func IsUnknownMethodError(err error) bool {
	return IsMyError(err, ErrUnknownMethod)
}

func IsInvocationError(err error) bool {
	return IsMyError(err, ErrInvocation)
}

func IsNamingUnavailableError(err error) bool {
	return IsMyError(err, ErrNamingUnavailable)
}
