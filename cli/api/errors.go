package api

import (
	"errors"
	"fmt"
)

// ErrNoTasks is returned before any network I/O when an analysis is
// requested for an empty task collection.
var ErrNoTasks = errors.New("add at least one task before analyzing")

// TransportError wraps a failure to reach the analysis service at all:
// DNS, connection refused, timeouts. The user-facing message stays
// generic; the cause is kept for logs.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return "could not reach the analysis service"
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Diagnostic returns the detailed failure for logging.
func (e *TransportError) Diagnostic() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Cause)
}

// RemoteError covers responses the client cannot use: non-2xx statuses
// and 2xx bodies that do not decode. The raw body is captured for
// diagnostics only and never shown to the user.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
	Cause      error
}

func (e *RemoteError) Error() string {
	return "the analysis service returned an unexpected response"
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// Diagnostic returns the detailed failure for logging.
func (e *RemoteError) Diagnostic() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: status %d: decode failed: %v (body: %s)", e.Op, e.StatusCode, e.Cause, truncateBody(e.Body))
	}
	return fmt.Sprintf("%s: status %d (body: %s)", e.Op, e.StatusCode, truncateBody(e.Body))
}

const maxDiagnosticBody = 512

func truncateBody(body string) string {
	if len(body) > maxDiagnosticBody {
		return body[:maxDiagnosticBody] + "..."
	}
	return body
}
