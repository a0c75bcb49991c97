package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/instantchat/instantchat-api/pkg/account"
	"github.com/instantchat/instantchat-api/pkg/login"
	"github.com/instantchat/instantchat-api/pkg/verification"
)

// Service registers new accounts and dispatches their first verification code.
type Service struct {
	users        account.UserRepository
	verification *verification.Service
	hasher       login.PasswordHasher
}

// Option defines configuration options for the signup service
type Option func(*Service)

// WithPasswordHasher overrides the default bcrypt hasher
func WithPasswordHasher(hasher login.PasswordHasher) Option {
	return func(s *Service) {
		s.hasher = hasher
	}
}

// NewService creates a new signup service
func NewService(users account.UserRepository, verificationService *verification.Service, opts ...Option) *Service {
	s := &Service{
		users:        users,
		verification: verificationService,
		hasher:       &login.BcryptHasher{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result reports a completed registration. EmailSent false means the account
// was created but the verification code could not be stored or delivered;
// the account is repaired by requesting a resend.
type Result struct {
	Username  string
	Email     string
	EmailSent bool
}

// Register creates an unverified account and sends its verification code.
// The plaintext password is hashed immediately and never stored or logged.
func (s *Service) Register(ctx context.Context, username, password, email string) (Result, error) {
	_, err := s.users.GetUser(ctx, username)
	if err == nil {
		return Result{}, ErrAccountExists
	}
	if !errors.Is(err, account.ErrUserNotFound) {
		slog.Error("Failed to check for existing user", "username", username, "error", err)
		return Result{}, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return Result{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := account.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Verified:     false,
	}

	// The user record is written before any notification is attempted, so a
	// delivery failure still leaves an account that a resend can repair.
	if err := s.users.SetUser(ctx, user); err != nil {
		slog.Error("Failed to create user", "username", username, "error", err)
		return Result{}, fmt.Errorf("failed to create user: %w", err)
	}

	result := Result{Username: username, Email: email, EmailSent: true}
	if err := s.verification.IssueCode(ctx, username, email); err != nil {
		slog.Error("Failed to issue verification code", "username", username, "error", err)
		result.EmailSent = false
	}

	slog.Info("User registered", "username", username, "email_sent", result.EmailSent)
	return result, nil
}
