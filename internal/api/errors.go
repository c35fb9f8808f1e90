package api

import (
	"fmt"
	"net/http"
)

// Error is the normalized error for any failed backend call. For envelope
// errors it carries the server message and any field-level detail the server
// attached; for transport failures StatusCode is zero and Cause holds the
// underlying error.
type Error struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	Cause      error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil && e.Message != "":
		return fmt.Sprintf("api error: %s: %v", e.Message, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("api error: %v", e.Cause)
	case e.StatusCode > 0:
		return fmt.Sprintf("api error (HTTP %d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("api error: %s", e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsTransport reports whether the request never produced an HTTP response.
func (e *Error) IsTransport() bool { return e.StatusCode == 0 }

// IsUnauthorized reports an authentication failure (HTTP 401).
func (e *Error) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports an authorization failure (HTTP 403).
func (e *Error) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// IsNotFound reports a missing resource (HTTP 404).
func (e *Error) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// UserMessage maps the error onto the message shown to the user, following
// one fixed taxonomy: transport, authentication, authorization, not-found,
// and everything else surfaced with the server's own message.
func (e *Error) UserMessage() string {
	switch {
	case e.IsTransport():
		return "could not reach the server, please try again"
	case e.IsUnauthorized():
		return "session expired, please log in"
	case e.IsForbidden():
		return "insufficient permissions"
	case e.IsNotFound():
		return "resource not found"
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("request failed (HTTP %d)", e.StatusCode)
	}
}
