package account

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection = "users"
	codesCollection = "verification_codes"
)

// FirestoreUserRepository implements UserRepository on top of a Firestore
// collection with the username as document ID.
type FirestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new Firestore-backed user repository
func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{client: client}
}

// GetUser returns the user record for username
func (r *FirestoreUserRepository) GetUser(ctx context.Context, username string) (User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(username).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}

	var user User
	if err := doc.DataTo(&user); err != nil {
		return User{}, fmt.Errorf("failed to decode user: %w", err)
	}

	return user, nil
}

// SetUser writes the user record, overwriting any existing document
func (r *FirestoreUserRepository) SetUser(ctx context.Context, user User) error {
	_, err := r.client.Collection(usersCollection).Doc(user.Username).Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to set user: %w", err)
	}

	return nil
}

// FirestoreCodeRepository implements VerificationCodeRepository on top of a
// Firestore collection with the username as document ID.
type FirestoreCodeRepository struct {
	client *firestore.Client
}

// NewFirestoreCodeRepository creates a new Firestore-backed verification code repository
func NewFirestoreCodeRepository(client *firestore.Client) *FirestoreCodeRepository {
	return &FirestoreCodeRepository{client: client}
}

// GetCode returns the live verification code record for username
func (r *FirestoreCodeRepository) GetCode(ctx context.Context, username string) (VerificationCode, error) {
	doc, err := r.client.Collection(codesCollection).Doc(username).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return VerificationCode{}, ErrCodeNotFound
		}
		return VerificationCode{}, fmt.Errorf("failed to get verification code: %w", err)
	}

	var code VerificationCode
	if err := doc.DataTo(&code); err != nil {
		return VerificationCode{}, fmt.Errorf("failed to decode verification code: %w", err)
	}

	return code, nil
}

// SetCode writes the verification code record, fully replacing any prior document
func (r *FirestoreCodeRepository) SetCode(ctx context.Context, code VerificationCode) error {
	_, err := r.client.Collection(codesCollection).Doc(code.Username).Set(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to set verification code: %w", err)
	}

	return nil
}
