package router

import (
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrInternalCode   = "INTERNAL_ERROR"
	ErrBadRequestCode = "BAD_REQUEST"
	ErrNotFoundCode   = "NOT_FOUND"
)

// RequestError represents errors that occur during request handling.
type RequestError struct {
	Reason     string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return e.Reason
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a request error with an HTTP status.
func NewRequestError(statusCode int, reason string, err error) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Reason:     reason,
		Err:        err,
	}
}

// NewBadRequestError creates a 400 request error.
func NewBadRequestError(reason string, err error) *RequestError {
	return NewRequestError(http.StatusBadRequest, reason, err)
}

func (e *RequestError) Code() string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequestCode
	case http.StatusNotFound:
		return ErrNotFoundCode
	default:
		return ErrInternalCode
	}
}

// String includes the wrapped cause for diagnostics.
func (e *RequestError) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code(), e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code(), e.Reason)
}
