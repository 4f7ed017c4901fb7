package sqlite

import (
	"context"

	"github.com/janus-care/janus/internal/domain"
)

type routinesRepo struct {
	db db
}

const routineColumns = `id, patient_id, title, weekday, time_of_day, active, created_at`

func scanRoutine(row interface{ Scan(...any) error }) (domain.Routine, error) {
	var r domain.Routine
	err := row.Scan(&r.ID, &r.PatientID, &r.Title, &r.Weekday, &r.TimeOfDay, &r.Active, &r.CreatedAt)
	if err != nil {
		return domain.Routine{}, err
	}
	return r, nil
}

func (r *routinesRepo) CreateRoutine(ctx context.Context, rt domain.Routine) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO routines (id, patient_id, title, weekday, time_of_day, active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rt.ID, rt.PatientID, rt.Title, rt.Weekday, rt.TimeOfDay, rt.Active, rt.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *routinesRepo) ListRoutines(ctx context.Context, patientID string) ([]domain.Routine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+routineColumns+` FROM routines WHERE patient_id = ? ORDER BY weekday, time_of_day`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Routine
	for rows.Next() {
		rt, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *routinesRepo) GetRoutineByID(ctx context.Context, id string) (domain.Routine, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+routineColumns+` FROM routines WHERE id = ?`, id)
	rt, err := scanRoutine(row)
	if err != nil {
		return domain.Routine{}, mapNotFound(err)
	}
	return rt, nil
}

func (r *routinesRepo) SetRoutineActive(ctx context.Context, id string, active bool) error {
	return execExpectingRow(ctx, r.db,
		`UPDATE routines SET active = ? WHERE id = ?`, active, id)
}

func (r *routinesRepo) DeleteRoutine(ctx context.Context, id string) error {
	return execExpectingRow(ctx, r.db, `DELETE FROM routines WHERE id = ?`, id)
}
