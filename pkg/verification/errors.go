package verification

import "errors"

var (
	// ErrInvalidCode is returned when no code record exists for the username
	// or the submitted code does not match the stored one
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrCodeExpired is returned when the matching code is past its expiry
	ErrCodeExpired = errors.New("verification code has expired")

	// ErrUserNotFound is returned by Resend when the username has no account
	ErrUserNotFound = errors.New("user not found")
)
