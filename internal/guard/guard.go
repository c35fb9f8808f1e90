// Package guard gates the editor surface on session state. The session is
// injected explicitly; there is no ambient global auth state.
package guard

import "errors"

// ErrLoginRequired is returned when an admin operation is attempted without
// a session.
var ErrLoginRequired = errors.New("please log in first (portfolio_console login)")

// Session is the read-only view of authentication state the guard needs.
type Session interface {
	IsAuthenticated() bool
}

// Check returns ErrLoginRequired unless the session holds a token.
func Check(s Session) error {
	if s == nil || !s.IsAuthenticated() {
		return ErrLoginRequired
	}
	return nil
}
