// Package verification manages one-time email verification codes.
//
// A code is a random six-digit number delivered by email and valid for a
// short window (ten minutes by default). Each username holds at most one
// live code: issuing a new one, whether at signup or through a resend,
// replaces the prior record entirely.
//
// # Basic Usage
//
//	service := verification.NewService(users, codes, notifier,
//		verification.WithCodeExpiry(10*time.Minute),
//	)
//
//	// Issue a code at registration (stores the record and emails it)
//	err := service.IssueCode(ctx, username, email)
//
//	// Check a submitted code and mark the user verified
//	err = service.Verify(ctx, username, submittedCode)
//
//	// Re-issue after the code expired or the email never arrived
//	err = service.Resend(ctx, username)
//
// Verify distinguishes two failures: ErrInvalidCode for a missing or
// mismatched code and ErrCodeExpired for a matching code past its window.
// A successful Verify does not consume the record, so repeating it with the
// same still-valid code succeeds again.
package verification
