package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/janus-care/janus/internal/domain"
)

type invitationsRepo struct {
	db db
}

const invitationColumns = `id, email, therapist_id, accepted, accepted_by, created_at, updated_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		acceptedBy sql.NullString
	)
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.TherapistID, &inv.Accepted,
		&acceptedBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.AcceptedBy = mapNullString(acceptedBy)
	return inv, nil
}

// CreateInvitation inserts the invitation. The partial unique index
// uq_invitations_open turns a duplicate unaccepted (email, therapist) pair
// into a constraint violation, which surfaces as store.ErrAlreadyExists.
func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, email, therapist_id, accepted, accepted_by, created_at, updated_at)
		 VALUES (?, ?, ?, 0, NULL, ?, ?)`,
		inv.ID, inv.Email, inv.TherapistID, now, now,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetUnacceptedInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ? AND accepted = 0`, id)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetUnacceptedInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		 WHERE email = ? AND accepted = 0
		 ORDER BY created_at
		 LIMIT 1`, email)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

// MarkInvitationAccepted seals the invitation. The accepted = 0 guard makes
// this a compare-and-set: of two racing registrations, exactly one sees a
// row affected; the other gets store.ErrNotFound.
func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, invitationID, acceptedByUserID string) error {
	return execExpectingRow(ctx, r.db,
		`UPDATE invitations SET accepted = 1, accepted_by = ?, updated_at = ? WHERE id = ? AND accepted = 0`,
		acceptedByUserID, time.Now().UTC(), invitationID,
	)
}
