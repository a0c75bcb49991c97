package signup

import "errors"

var (
	// ErrAccountExists is returned when the username is already registered
	ErrAccountExists = errors.New("account already exists")
)
