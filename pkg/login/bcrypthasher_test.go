package login

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher(t *testing.T) {
	hasher := &BcryptHasher{}

	t.Run("ValidPassword", func(t *testing.T) {
		password := "validPassword123"
		hashedPassword, err := hasher.Hash(password)
		assert.NoError(t, err)

		match, err := hasher.Verify(password, hashedPassword)
		assert.NoError(t, err)
		assert.True(t, match, "The password should match the hashed password")
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.Error(t, err)

		match, err := hasher.Verify("", "")
		assert.Error(t, err)
		assert.False(t, match, "Empty password and hash should not match")
	})

	t.Run("IncorrectPassword", func(t *testing.T) {
		hashedPassword, err := hasher.Hash("correctPassword")
		assert.NoError(t, err)

		match, err := hasher.Verify("incorrectPassword", hashedPassword)
		assert.NoError(t, err)
		assert.False(t, match, "Incorrect password should not match the hashed password")
	})

	t.Run("CorruptedHashedPassword", func(t *testing.T) {
		match, err := hasher.Verify("correctPassword", "invalidHash")
		assert.Error(t, err)
		assert.False(t, match, "Corrupted hashed password should not match")
	})

	t.Run("HashIsNotPlaintext", func(t *testing.T) {
		password := "myPassword"
		hashedPassword, err := hasher.Hash(password)
		assert.NoError(t, err)
		assert.NotEmpty(t, hashedPassword)
		assert.NotEqual(t, password, hashedPassword)
	})

	t.Run("SaltedHashesDiffer", func(t *testing.T) {
		first, err := hasher.Hash("samePassword")
		assert.NoError(t, err)
		second, err := hasher.Hash("samePassword")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second, "Each hash should carry its own salt")
	})
}
