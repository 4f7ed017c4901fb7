package sqlite

import (
	"context"
	"time"

	"github.com/janus-care/janus/internal/domain"
)

type tasksRepo struct {
	db db
}

const taskColumns = `id, patient_id, title, description, due_date, status, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (domain.Task, error) {
	var (
		t      domain.Task
		status string
	)
	err := row.Scan(&t.ID, &t.PatientID, &t.Title, &t.Description, &t.DueDate, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	t.Status = domain.TaskStatus(status)
	return t, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, patient_id, title, description, due_date, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.PatientID, t.Title, t.Description, t.DueDate, string(t.Status), now, now,
	)
	return mapConstraint(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context, patientID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE patient_id = ? ORDER BY due_date, id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	return execExpectingRow(ctx, r.db,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	return execExpectingRow(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, id)
}
