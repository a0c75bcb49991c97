package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/instantchat/instantchat-api/pkg/account"
	"github.com/instantchat/instantchat-api/pkg/notification"
)

const emailSubject = "Email Verification"

// DefaultCodeExpiry is how long an issued code stays valid.
const DefaultCodeExpiry = 10 * time.Minute

// Service issues, re-issues and checks one-time email verification codes.
type Service struct {
	users      account.UserRepository
	codes      account.VerificationCodeRepository
	notifier   notification.Notifier
	codeExpiry time.Duration
	generate   CodeGenerator
}

// Option defines configuration options for the verification service
type Option func(*Service)

// WithCodeExpiry sets the code expiration duration
func WithCodeExpiry(expiry time.Duration) Option {
	return func(s *Service) {
		s.codeExpiry = expiry
	}
}

// WithCodeGenerator overrides the default code generator
func WithCodeGenerator(generate CodeGenerator) Option {
	return func(s *Service) {
		s.generate = generate
	}
}

// NewService creates a new verification service
func NewService(
	users account.UserRepository,
	codes account.VerificationCodeRepository,
	notifier notification.Notifier,
	opts ...Option,
) *Service {
	s := &Service{
		users:      users,
		codes:      codes,
		notifier:   notifier,
		codeExpiry: DefaultCodeExpiry,
		generate:   GenerateCode,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IssueCode generates a fresh code for username, writes it over any prior
// record, and emails it. The old code, if any, is invalid from this point.
func (s *Service) IssueCode(ctx context.Context, username, email string) error {
	now := time.Now().UTC()
	code := account.VerificationCode{
		ID:        uuid.New().String(),
		Username:  username,
		Code:      s.generate(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.codeExpiry),
	}

	if err := s.codes.SetCode(ctx, code); err != nil {
		slog.Error("Failed to store verification code", "username", username, "error", err)
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	err := s.notifier.Send(notification.NotificationData{
		To:      email,
		Subject: emailSubject,
		Body:    fmt.Sprintf("Your verification code is: %s", code.Code),
	})
	if err != nil {
		slog.Error("Failed to send verification email", "username", username, "error", err)
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	slog.Info("Verification code issued", "username", username, "code_id", code.ID, "expires_at", code.ExpiresAt)
	return nil
}

// Verify checks the submitted code and marks the user verified on success.
// The code record is not consumed: re-verifying with the same still-valid
// code succeeds again and re-writes an already true flag, a no-op.
func (s *Service) Verify(ctx context.Context, username, submitted string) error {
	stored, err := s.codes.GetCode(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrCodeNotFound) {
			return ErrInvalidCode
		}
		slog.Error("Failed to load verification code", "username", username, "error", err)
		return fmt.Errorf("failed to load verification code: %w", err)
	}

	if stored.Code != submitted {
		return ErrInvalidCode
	}

	if time.Now().UTC().After(stored.ExpiresAt) {
		slog.Warn("Verification code expired", "username", username, "expires_at", stored.ExpiresAt)
		return ErrCodeExpired
	}

	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			// A code record with no matching account; treat it as a bad code.
			return ErrInvalidCode
		}
		slog.Error("Failed to load user", "username", username, "error", err)
		return fmt.Errorf("failed to load user: %w", err)
	}

	user.Verified = true
	if err := s.users.SetUser(ctx, user); err != nil {
		slog.Error("Failed to mark user verified", "username", username, "error", err)
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	slog.Info("Email verified", "username", username)
	return nil
}

// Resend issues a new code for an existing user, superseding the prior one.
// The verified flag is not checked; resending to a verified account is
// accepted as harmless.
func (s *Service) Resend(ctx context.Context, username string) error {
	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			return ErrUserNotFound
		}
		slog.Error("Failed to load user", "username", username, "error", err)
		return fmt.Errorf("failed to load user: %w", err)
	}

	return s.IssueCode(ctx, username, user.Email)
}
