package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/janus-care/janus/internal/domain"
)

type usersRepo struct {
	db db
}

const userColumns = `id, name, surname, email, birth_date, password_hash, role, therapist_id, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u           domain.User
		role        string
		therapistID sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Surname, &u.Email, &u.BirthDate,
		&u.PasswordHash, &role, &therapistID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.TherapistID = mapNullString(therapistID)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, surname, email, birth_date, password_hash, role, therapist_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Surname, u.Email, u.BirthDate,
		u.PasswordHash, u.Role.String(), mapStringNull(u.TherapistID), now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, name, surname string) error {
	return execExpectingRow(ctx, r.db,
		`UPDATE users SET name = ?, surname = ?, updated_at = ? WHERE id = ?`,
		name, surname, time.Now().UTC(), userID,
	)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return execExpectingRow(ctx, r.db,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID,
	)
}

func (r *usersRepo) ListPatientsByTherapist(ctx context.Context, therapistID string) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE therapist_id = ? ORDER BY created_at`, therapistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
