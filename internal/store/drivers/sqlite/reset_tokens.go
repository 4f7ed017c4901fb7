package sqlite

import (
	"context"
	"time"

	"github.com/janus-care/janus/internal/domain"
)

type resetTokensRepo struct {
	db db
}

func (r *resetTokensRepo) CreateResetToken(ctx context.Context, t domain.ResetToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reset_tokens (id, user_id, expires_at, used, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		t.ID, t.UserID, t.ExpiresAt, time.Now().UTC(),
	)
	return mapConstraint(err)
}

// ConsumeResetToken flips used to 1, guarded by used = 0, so a token can be
// spent exactly once. Replays get store.ErrNotFound.
func (r *resetTokensRepo) ConsumeResetToken(ctx context.Context, id string) error {
	return execExpectingRow(ctx, r.db,
		`UPDATE reset_tokens SET used = 1 WHERE id = ? AND used = 0`, id)
}

func (r *resetTokensRepo) DeleteExpiredResetTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM reset_tokens WHERE expires_at < ?`, time.Now().UTC())
	return err
}
