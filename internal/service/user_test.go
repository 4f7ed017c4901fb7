package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janus-care/janus/internal/domain"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	user := seedUser(t, st, "perfil@janus.test", domain.RolePatient, "")

	t.Run("get by id", func(t *testing.T) {
		got, err := svc.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, got.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetUserByID(ctx, "missing")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("update profile changes name only", func(t *testing.T) {
		require.NoError(t, svc.UpdateProfile(ctx, user.ID, "Marta", "López"))

		got, err := svc.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "Marta", got.Name)
		require.Equal(t, "López", got.Surname)
		require.Equal(t, user.Email, got.Email)
		require.Equal(t, user.Role, got.Role)
	})

	t.Run("empty fields fail validation", func(t *testing.T) {
		require.ErrorIs(t, svc.UpdateProfile(ctx, user.ID, "", "López"), ErrValidation)
	})
}
