package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	maker := NewMaker("test-secret", time.Hour, "janus")

	token, jti, err := maker.Sign("user-123", "paciente")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := maker.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "paciente", claims.Role)
	require.Equal(t, jti, claims.ID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	maker := NewMaker("test-secret", -time.Minute, "janus")
	token, _, err := maker.Sign("user-123", "terapeuta")
	require.NoError(t, err)

	_, err = maker.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewMaker("secret-a", time.Hour, "janus")
	verifier := NewMaker("secret-b", time.Hour, "janus")

	token, _, err := signer.Sign("user-123", "paciente")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	maker := NewMaker("test-secret", time.Hour, "janus")
	token, _, err := maker.Sign("user-123", "paciente")
	require.NoError(t, err)

	_, err = maker.Verify(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessAndResetMakersAreNotInterchangeable(t *testing.T) {
	t.Parallel()

	access := NewMaker("access-secret", time.Hour, "janus")
	reset := NewMaker("reset-secret", time.Hour, "janus")

	token, _, err := reset.Sign("user-123", "paciente")
	require.NoError(t, err)

	_, err = access.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
