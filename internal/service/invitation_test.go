package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janus-care/janus/internal/domain"
)

func TestInvitationIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("issues and mails an invitation", func(t *testing.T) {
		st := newTestStore(t)
		mail := &captureMailer{}
		svc := &InvitationService{Store: st, Mail: mail, RegisterURL: "https://app.janus.test/register"}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")

		inv, err := svc.Issue(ctx, therapist.ID, " Nuevo@Janus.Test ")
		require.NoError(t, err)
		require.Equal(t, "nuevo@janus.test", inv.Email)
		require.Equal(t, therapist.ID, inv.TherapistID)
		require.Equal(t, 1, mail.count())
		require.Equal(t, "nuevo@janus.test", mail.last().To)
	})

	t.Run("rejects a duplicate open invitation for the same pair", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InvitationService{Store: st, Mail: &captureMailer{}, RegisterURL: "https://app.janus.test/register"}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")

		_, err := svc.Issue(ctx, therapist.ID, "uno@janus.test")
		require.NoError(t, err)
		_, err = svc.Issue(ctx, therapist.ID, "uno@janus.test")
		require.ErrorIs(t, err, ErrDuplicateInvitation)
	})

	t.Run("allows reissuing after the original was accepted", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InvitationService{Store: st, Mail: &captureMailer{}, RegisterURL: "https://app.janus.test/register"}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "paciente@janus.test", domain.RolePatient, therapist.ID)

		inv, err := svc.Issue(ctx, therapist.ID, "otra@janus.test")
		require.NoError(t, err)
		require.NoError(t, st.Invitations().MarkInvitationAccepted(ctx, inv.ID, patient.ID))

		// The partial unique index only covers open invitations, so a
		// fresh one for the same pair is legal.
		_, err = svc.Issue(ctx, therapist.ID, "otra@janus.test")
		require.NoError(t, err)
	})

	t.Run("non-therapists cannot issue", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InvitationService{Store: st, Mail: &captureMailer{}, RegisterURL: "https://app.janus.test/register"}

		patient := seedUser(t, st, "paciente@janus.test", domain.RolePatient, "")

		_, err := svc.Issue(ctx, patient.ID, "alguien@janus.test")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("mail failure keeps the invitation on the ledger", func(t *testing.T) {
		st := newTestStore(t)
		mail := &captureMailer{fail: errors.New("smtp down")}
		svc := &InvitationService{Store: st, Mail: mail, RegisterURL: "https://app.janus.test/register"}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")

		inv, err := svc.Issue(ctx, therapist.ID, "sincorreo@janus.test")
		require.ErrorIs(t, err, ErrInvitationMailFailed)
		require.NotEmpty(t, inv.ID)

		stored, err := st.Invitations().GetUnacceptedInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, "sincorreo@janus.test", stored.Email)
	})
}

func TestInvitationLookup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InvitationService{Store: st, Mail: &captureMailer{}, RegisterURL: "https://app.janus.test/register"}

	therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
	inv := seedInvitation(t, st, "buscado@janus.test", therapist.ID)

	t.Run("resolves by id", func(t *testing.T) {
		got, err := svc.Lookup(ctx, inv.ID, "")
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
	})

	t.Run("resolves by normalized email", func(t *testing.T) {
		got, err := svc.Lookup(ctx, "", " Buscado@Janus.Test ")
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
	})

	t.Run("id takes precedence over email", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "no-such-id", "buscado@janus.test")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("accepted invitations are invisible", func(t *testing.T) {
		patient := seedUser(t, st, "buscado@janus.test", domain.RolePatient, therapist.ID)
		require.NoError(t, st.Invitations().MarkInvitationAccepted(ctx, inv.ID, patient.ID))

		_, err := svc.Lookup(ctx, inv.ID, "")
		require.ErrorIs(t, err, ErrNotFound)
		_, err = svc.Lookup(ctx, "", "buscado@janus.test")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
