package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/janus-care/janus/internal/domain"
)

type diaryRepo struct {
	db db
}

func (r *diaryRepo) CreateDiaryEntry(ctx context.Context, e domain.DiaryEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO diary_entries (id, patient_id, entry_date, emotion, intensity, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.PatientID, e.EntryDate, e.Emotion, e.Intensity, e.Note, e.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *diaryRepo) ListDiaryEntries(ctx context.Context, patientID string, from, to time.Time) ([]domain.DiaryEntry, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT id, patient_id, entry_date, emotion, intensity, note, created_at
		 FROM diary_entries WHERE patient_id = ?`)
	args = append(args, patientID)

	if !from.IsZero() {
		sb.WriteString(` AND entry_date >= ?`)
		args = append(args, from)
	}
	if !to.IsZero() {
		sb.WriteString(` AND entry_date <= ?`)
		args = append(args, to)
	}
	sb.WriteString(` ORDER BY entry_date, id`)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DiaryEntry
	for rows.Next() {
		var e domain.DiaryEntry
		if err := rows.Scan(&e.ID, &e.PatientID, &e.EntryDate, &e.Emotion, &e.Intensity, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
