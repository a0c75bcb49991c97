package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	t.Run("GetMissingUser", func(t *testing.T) {
		_, err := repo.GetUser(ctx, "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("SetAndGetUser", func(t *testing.T) {
		user := User{Username: "alice", PasswordHash: "hash", Email: "a@x.com"}
		require.NoError(t, repo.SetUser(ctx, user))

		got, err := repo.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.False(t, got.Verified)
	})

	t.Run("OverwriteUser", func(t *testing.T) {
		user := User{Username: "alice", PasswordHash: "hash", Email: "a@x.com", Verified: true}
		require.NoError(t, repo.SetUser(ctx, user))

		got, err := repo.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, got.Verified)
	})

	t.Run("CaseSensitiveKeys", func(t *testing.T) {
		_, err := repo.GetUser(ctx, "Alice")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestInMemoryCodeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryCodeRepository()

	t.Run("GetMissingCode", func(t *testing.T) {
		_, err := repo.GetCode(ctx, "nobody")
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("SetAndGetCode", func(t *testing.T) {
		code := VerificationCode{
			ID:        "id-1",
			Username:  "alice",
			Code:      "123456",
			CreatedAt: time.Now().UTC(),
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		}
		require.NoError(t, repo.SetCode(ctx, code))

		got, err := repo.GetCode(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, code, got)
	})

	t.Run("NewCodeReplacesPrior", func(t *testing.T) {
		replacement := VerificationCode{
			ID:        "id-2",
			Username:  "alice",
			Code:      "654321",
			CreatedAt: time.Now().UTC(),
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		}
		require.NoError(t, repo.SetCode(ctx, replacement))

		got, err := repo.GetCode(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "654321", got.Code)
		assert.Equal(t, "id-2", got.ID)
	})
}
