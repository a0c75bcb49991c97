package login

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instantchat/instantchat-api/pkg/account"
)

func seedUser(t *testing.T, users account.UserRepository, username, password, email string, verified bool) {
	t.Helper()

	hasher := &BcryptHasher{}
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	require.NoError(t, users.SetUser(context.Background(), account.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Verified:     verified,
	}))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users := account.NewInMemoryUserRepository()
	service := NewService(users)

	seedUser(t, users, "alice", "pw1", "a@x.com", false)
	seedUser(t, users, "dave", "pw4", "d@x.com", true)

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := service.Login(ctx, "nobody", "pw1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := service.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPasswordAndUnknownUserAreIndistinguishable", func(t *testing.T) {
		_, unknownErr := service.Login(ctx, "nobody", "pw1")
		_, wrongErr := service.Login(ctx, "alice", "wrong")
		assert.Equal(t, unknownErr, wrongErr, "Missing user and wrong password must surface the same error")
	})

	t.Run("EmptyPasswordIsIndistinguishableToo", func(t *testing.T) {
		_, existingErr := service.Login(ctx, "alice", "")
		assert.ErrorIs(t, existingErr, ErrInvalidCredentials)

		_, unknownErr := service.Login(ctx, "nobody", "")
		assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)

		assert.Equal(t, existingErr, unknownErr, "An empty password must not reveal whether the username exists")
	})

	t.Run("UnverifiedUserIsGatedNotRejected", func(t *testing.T) {
		result, err := service.Login(ctx, "alice", "pw1")
		require.NoError(t, err)
		assert.Equal(t, "alice", result.Username)
		assert.False(t, result.Verified)
	})

	t.Run("VerifiedUser", func(t *testing.T) {
		result, err := service.Login(ctx, "dave", "pw4")
		require.NoError(t, err)
		assert.True(t, result.Verified)
		assert.Equal(t, "d@x.com", result.Email)
	})
}
