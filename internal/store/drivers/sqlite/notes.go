package sqlite

import (
	"context"

	"github.com/janus-care/janus/internal/domain"
)

type sessionNotesRepo struct {
	db db
}

func (r *sessionNotesRepo) CreateSessionNote(ctx context.Context, n domain.SessionNote) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_notes (id, patient_id, therapist_id, body, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.PatientID, n.TherapistID, n.Body, n.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *sessionNotesRepo) ListSessionNotes(ctx context.Context, patientID string) ([]domain.SessionNote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, patient_id, therapist_id, body, created_at
		 FROM session_notes WHERE patient_id = ? ORDER BY created_at, id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SessionNote
	for rows.Next() {
		var n domain.SessionNote
		if err := rows.Scan(&n.ID, &n.PatientID, &n.TherapistID, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
