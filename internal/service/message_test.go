package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janus-care/janus/internal/domain"
)

func TestMessaging(t *testing.T) {
	ctx := context.Background()

	t.Run("patient and assigned therapist exchange messages", func(t *testing.T) {
		st := newTestStore(t)
		svc := &MessageService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "paciente@janus.test", domain.RolePatient, therapist.ID)

		_, err := svc.Send(ctx, patient.ID, therapist.ID, "hola")
		require.NoError(t, err)
		_, err = svc.Send(ctx, therapist.ID, patient.ID, "hola, ¿qué tal?")
		require.NoError(t, err)

		msgs, err := svc.Conversation(ctx, patient.ID, therapist.ID, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		require.Equal(t, "hola", msgs[0].Body)
		require.Equal(t, "hola, ¿qué tal?", msgs[1].Body)

		// Same thread regardless of which side asks.
		fromTherapist, err := svc.Conversation(ctx, therapist.ID, patient.ID, 0)
		require.NoError(t, err)
		require.Equal(t, msgs, fromTherapist)
	})

	t.Run("unlinked pairs cannot talk", func(t *testing.T) {
		st := newTestStore(t)
		svc := &MessageService{Store: st}

		myTherapist := seedUser(t, st, "mia@janus.test", domain.RoleTherapist, "")
		otherTherapist := seedUser(t, st, "ajena@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "paciente@janus.test", domain.RolePatient, myTherapist.ID)

		_, err := svc.Send(ctx, patient.ID, otherTherapist.ID, "hola?")
		require.ErrorIs(t, err, ErrForbidden)
		_, err = svc.Conversation(ctx, otherTherapist.ID, patient.ID, 0)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("patients cannot message each other", func(t *testing.T) {
		st := newTestStore(t)
		svc := &MessageService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		a := seedUser(t, st, "a@janus.test", domain.RolePatient, therapist.ID)
		b := seedUser(t, st, "b@janus.test", domain.RolePatient, therapist.ID)

		_, err := svc.Send(ctx, a.ID, b.ID, "psst")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty body and self-messages are invalid", func(t *testing.T) {
		st := newTestStore(t)
		svc := &MessageService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "paciente@janus.test", domain.RolePatient, therapist.ID)

		_, err := svc.Send(ctx, patient.ID, therapist.ID, "")
		require.ErrorIs(t, err, ErrValidation)
		_, err = svc.Send(ctx, patient.ID, patient.ID, "yo")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("conversation window keeps the newest messages", func(t *testing.T) {
		st := newTestStore(t)
		svc := &MessageService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "paciente@janus.test", domain.RolePatient, therapist.ID)

		for i := 0; i < 5; i++ {
			_, err := svc.Send(ctx, patient.ID, therapist.ID, fmt.Sprintf("msg %d", i))
			require.NoError(t, err)
		}

		msgs, err := svc.Conversation(ctx, patient.ID, therapist.ID, 3)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		require.Equal(t, "msg 2", msgs[0].Body)
		require.Equal(t, "msg 4", msgs[2].Body)
	})
}
