package account

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileUserRepository(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()

	repo, err := NewFileUserRepository(dataDir)
	require.NoError(t, err)

	t.Run("GetMissingUser", func(t *testing.T) {
		_, err := repo.GetUser(ctx, "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("SetUserPersistsToDisk", func(t *testing.T) {
		user := User{Username: "alice", PasswordHash: "hash", Email: "a@x.com"}
		require.NoError(t, repo.SetUser(ctx, user))

		data, err := os.ReadFile(filepath.Join(dataDir, "users.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "alice")

		_, err = os.Stat(filepath.Join(dataDir, "users.json.tmp"))
		assert.True(t, os.IsNotExist(err), "The temp file should be renamed away")
	})

	t.Run("SurvivesReopen", func(t *testing.T) {
		reopened, err := NewFileUserRepository(dataDir)
		require.NoError(t, err)

		got, err := reopened.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", got.Email)
		assert.False(t, got.Verified)
	})

	t.Run("OverwriteUser", func(t *testing.T) {
		user := User{Username: "alice", PasswordHash: "hash", Email: "a@x.com", Verified: true}
		require.NoError(t, repo.SetUser(ctx, user))

		got, err := repo.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, got.Verified)
	})
}

func TestFileCodeRepository(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()

	repo, err := NewFileCodeRepository(dataDir)
	require.NoError(t, err)

	t.Run("GetMissingCode", func(t *testing.T) {
		_, err := repo.GetCode(ctx, "nobody")
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("SetGetAndReplace", func(t *testing.T) {
		expires := time.Now().UTC().Add(10 * time.Minute)
		code := VerificationCode{
			ID:        "id-1",
			Username:  "alice",
			Code:      "123456",
			CreatedAt: time.Now().UTC(),
			ExpiresAt: expires,
		}
		require.NoError(t, repo.SetCode(ctx, code))

		got, err := repo.GetCode(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "123456", got.Code)
		assert.True(t, got.ExpiresAt.Equal(expires))

		replacement := code
		replacement.ID = "id-2"
		replacement.Code = "654321"
		require.NoError(t, repo.SetCode(ctx, replacement))

		got, err = repo.GetCode(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "654321", got.Code)
	})

	t.Run("SurvivesReopen", func(t *testing.T) {
		reopened, err := NewFileCodeRepository(dataDir)
		require.NoError(t, err)

		got, err := reopened.GetCode(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "654321", got.Code)
	})
}
