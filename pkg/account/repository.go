package account

import (
	"context"
	"errors"
	"time"
)

// User is a registered account, keyed by username. Usernames are unique and
// case-sensitive. Verified only ever moves from false to true.
type User struct {
	Username     string `json:"username" firestore:"username"`
	PasswordHash string `json:"password" firestore:"password"`
	Email        string `json:"email" firestore:"email"`
	Verified     bool   `json:"verified" firestore:"verified"`
}

// VerificationCode is the single live emailed code for a username. Issuing a
// new code replaces the record entirely; no history is kept.
type VerificationCode struct {
	ID        string    `json:"id" firestore:"id"`
	Username  string    `json:"username" firestore:"username"`
	Code      string    `json:"code" firestore:"code"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	ExpiresAt time.Time `json:"expires_at" firestore:"expires_at"`
}

var (
	// ErrUserNotFound is returned when no user record exists for a username
	ErrUserNotFound = errors.New("user not found")

	// ErrCodeNotFound is returned when no verification code record exists for a username
	ErrCodeNotFound = errors.New("verification code not found")
)

// UserRepository provides keyed get/set access to user records. No
// compare-and-swap or transaction is offered; concurrent writers to the same
// username resolve last-write-wins.
type UserRepository interface {
	GetUser(ctx context.Context, username string) (User, error)
	SetUser(ctx context.Context, user User) error
}

// VerificationCodeRepository provides keyed get/set access to verification
// code records, one per username.
type VerificationCodeRepository interface {
	GetCode(ctx context.Context, username string) (VerificationCode, error)
	SetCode(ctx context.Context, code VerificationCode) error
}
