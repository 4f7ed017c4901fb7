package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/mailer"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/pkg/idx"
	"github.com/janus-care/janus/pkg/slogx"
)

var (
	// ErrDuplicateInvitation means an unaccepted invitation already exists
	// for this (email, therapist) pair.
	ErrDuplicateInvitation = errors.New("an open invitation for this email already exists")

	// ErrInvitationMailFailed means the invitation was persisted but the
	// notification email could not be delivered. The caller must be told;
	// the invitation itself stays valid.
	ErrInvitationMailFailed = errors.New("invitation created but the email could not be sent")
)

// InvitationService manages the invitation ledger gating patient
// registration.
type InvitationService struct {
	Store store.Store
	Mail  mailer.Mailer

	// RegisterURL is the SPA registration page included in invitation
	// emails.
	RegisterURL string
}

// Issue creates an invitation from therapistID to invitedEmail and mails
// the invite. Issuance is an atomic conditional insert: the partial unique
// index over unaccepted invitations decides duplicates at write time, so
// two concurrent issues for the same pair cannot both succeed.
func (s *InvitationService) Issue(ctx context.Context, therapistID, invitedEmail string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	email := NormalizeEmail(invitedEmail)
	if email == "" {
		return domain.Invitation{}, ErrValidation
	}

	// Only therapists hold the ledger pen. The HTTP layer enforces this
	// too; re-checking here keeps the invariant when the service is called
	// from elsewhere.
	therapist, err := s.Store.Users().GetUserByID(ctx, therapistID)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("lookup therapist: %w", err)
	}
	if therapist.Role != domain.RoleTherapist {
		return domain.Invitation{}, ErrForbidden
	}

	inv := domain.Invitation{
		ID:          idx.New().String(),
		Email:       email,
		TherapistID: therapistID,
	}
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invitation{}, ErrDuplicateInvitation
		}
		return domain.Invitation{}, fmt.Errorf("create invitation: %w", err)
	}

	log.Info("invitation issued",
		"invitation_id", inv.ID,
		"therapist_id", therapistID,
	)

	// The email failure propagates as a server error, but the invitation
	// stays on the ledger: the therapist is told delivery failed, not that
	// issuance failed.
	msg := mailer.Message{
		To:      email,
		Subject: fmt.Sprintf("%s %s te invita a JANUS", therapist.Name, therapist.Surname),
		Text: fmt.Sprintf(
			"Tu terapeuta te ha invitado a registrarte en JANUS. Abre %s y usa este correo para crear tu cuenta.",
			s.RegisterURL,
		),
		HTML: fmt.Sprintf(
			`<p>Tu terapeuta te ha invitado a registrarte en JANUS.</p><p><a href=%q>Crear mi cuenta</a></p>`,
			s.RegisterURL,
		),
	}
	if err := s.Mail.Send(ctx, msg); err != nil {
		log.Error("invitation email failed", "invitation_id", inv.ID, "err", err)
		return inv, ErrInvitationMailFailed
	}

	return inv, nil
}

// Lookup resolves an unaccepted invitation. Id takes precedence over email
// when both are supplied, mirroring the registration workflow. By-email
// lookup returns the oldest unaccepted match.
func (s *InvitationService) Lookup(ctx context.Context, id, email string) (domain.Invitation, error) {
	if id != "" {
		inv, err := s.Store.Invitations().GetUnacceptedInvitationByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrNotFound
		}
		return inv, err
	}

	email = NormalizeEmail(email)
	if email == "" {
		return domain.Invitation{}, ErrValidation
	}
	inv, err := s.Store.Invitations().GetUnacceptedInvitationByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, ErrNotFound
	}
	return inv, err
}
