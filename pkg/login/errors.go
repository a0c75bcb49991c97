package login

import "errors"

var (
	// ErrInvalidCredentials is returned for a missing user and for a wrong
	// password alike, so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
