package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/instantchat/instantchat-api/pkg/account"
)

// Service authenticates stored credentials and reports the email
// verification gate alongside a successful match.
type Service struct {
	users  account.UserRepository
	hasher PasswordHasher
}

// Option defines configuration options for the login service
type Option func(*Service)

// WithPasswordHasher overrides the default bcrypt hasher
func WithPasswordHasher(hasher PasswordHasher) Option {
	return func(s *Service) {
		s.hasher = hasher
	}
}

// NewService creates a new login service
func NewService(users account.UserRepository, opts ...Option) *Service {
	s := &Service{
		users:  users,
		hasher: &BcryptHasher{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result carries a successful authentication. Verified false means the login
// is gated pending email verification, not that it failed.
type Result struct {
	Username string
	Email    string
	Verified bool
}

// Login checks the submitted credentials against the stored record.
func (s *Service) Login(ctx context.Context, username, password string) (Result, error) {
	// An empty password can never match a stored hash. Rejecting it up
	// front keeps the error identical whether or not the username exists.
	if password == "" {
		return Result{}, ErrInvalidCredentials
	}

	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		slog.Error("Failed to load user", "username", username, "error", err)
		return Result{}, fmt.Errorf("failed to load user: %w", err)
	}

	match, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		slog.Error("Failed to verify password", "username", username, "error", err)
		return Result{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return Result{}, ErrInvalidCredentials
	}

	return Result{
		Username: user.Username,
		Email:    user.Email,
		Verified: user.Verified,
	}, nil
}
