package account

import (
	"context"
	"sync"
)

// InMemoryUserRepository implements UserRepository using in-memory storage
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewInMemoryUserRepository creates a new in-memory user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]User),
	}
}

// GetUser returns the user record for username
func (r *InMemoryUserRepository) GetUser(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return User{}, ErrUserNotFound
	}

	return user, nil
}

// SetUser writes the user record, overwriting any existing record for the username
func (r *InMemoryUserRepository) SetUser(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Username] = user
	return nil
}

// InMemoryCodeRepository implements VerificationCodeRepository using in-memory storage
type InMemoryCodeRepository struct {
	mu    sync.RWMutex
	codes map[string]VerificationCode
}

// NewInMemoryCodeRepository creates a new in-memory verification code repository
func NewInMemoryCodeRepository() *InMemoryCodeRepository {
	return &InMemoryCodeRepository{
		codes: make(map[string]VerificationCode),
	}
}

// GetCode returns the live verification code record for username
func (r *InMemoryCodeRepository) GetCode(ctx context.Context, username string) (VerificationCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	code, exists := r.codes[username]
	if !exists {
		return VerificationCode{}, ErrCodeNotFound
	}

	return code, nil
}

// SetCode writes the verification code record, fully replacing any prior one
func (r *InMemoryCodeRepository) SetCode(ctx context.Context, code VerificationCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codes[code.Username] = code
	return nil
}
