package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("produces PHC-format argon2id hash", func(t *testing.T) {
		hash, err := HashPassword("hunter2hunter2")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	})

	t.Run("hash never contains the plaintext", func(t *testing.T) {
		const plain = "super-secret-password"
		hash, err := HashPassword(plain)
		require.NoError(t, err)
		require.NotEqual(t, plain, hash)
		require.NotContains(t, hash, plain)
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		a, err := HashPassword("same-password")
		require.NoError(t, err)
		b, err := HashPassword("same-password")
		require.NoError(t, err)
		require.NotEqual(t, a, b) // random salt
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("accepts matching password", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("wrong password", hash), ErrPasswordMismatch)
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		require.Error(t, VerifyPassword("anything", "not-a-phc-string"))
	})

	t.Run("rejects non-argon2id hash", func(t *testing.T) {
		require.Error(t, VerifyPassword("anything", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"))
	})
}
