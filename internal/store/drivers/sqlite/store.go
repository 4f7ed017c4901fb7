package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/janus-care/janus/internal/store"
)

// db is the subset of *sql.DB / *sql.Tx the repositories need, so the same
// repository code runs inside and outside transactions.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	conn *sql.DB
	dsn  string
}

func NewStore(dsn string) (*Store, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := conn.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Store{conn: conn, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.conn.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users               { return &usersRepo{db: s.conn} }
func (s *Store) Invitations() store.Invitations   { return &invitationsRepo{db: s.conn} }
func (s *Store) ResetTokens() store.ResetTokens   { return &resetTokensRepo{db: s.conn} }
func (s *Store) Messages() store.Messages         { return &messagesRepo{db: s.conn} }
func (s *Store) DiaryEntries() store.DiaryEntries { return &diaryRepo{db: s.conn} }
func (s *Store) Tasks() store.Tasks               { return &tasksRepo{db: s.conn} }
func (s *Store) Routines() store.Routines         { return &routinesRepo{db: s.conn} }
func (s *Store) SessionNotes() store.SessionNotes { return &sessionNotesRepo{db: s.conn} }
func (s *Store) GameResults() store.GameResults   { return &gameResultsRepo{db: s.conn} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint converts SQLite unique-constraint violations to
// store.ErrAlreadyExists so callers can match on a driver-independent error.
func mapConstraint(err error) error {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// execExpectingRow runs an UPDATE/DELETE that must affect exactly one row
// and maps "no rows affected" to store.ErrNotFound. Conditional updates
// (e.g. sealing an invitation, consuming a reset token) rely on this to
// make the state transition exactly-once under concurrency.
func execExpectingRow(ctx context.Context, d db, query string, args ...any) error {
	res, err := d.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
