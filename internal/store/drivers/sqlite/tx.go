package sqlite

import (
	"context"
	"database/sql"

	"github.com/janus-care/janus/internal/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions. The connection is already established
// when the transaction is created, so we just return nil.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users               { return &usersRepo{db: t.tx} }
func (t *txStore) Invitations() store.Invitations   { return &invitationsRepo{db: t.tx} }
func (t *txStore) ResetTokens() store.ResetTokens   { return &resetTokensRepo{db: t.tx} }
func (t *txStore) Messages() store.Messages         { return &messagesRepo{db: t.tx} }
func (t *txStore) DiaryEntries() store.DiaryEntries { return &diaryRepo{db: t.tx} }
func (t *txStore) Tasks() store.Tasks               { return &tasksRepo{db: t.tx} }
func (t *txStore) Routines() store.Routines         { return &routinesRepo{db: t.tx} }
func (t *txStore) SessionNotes() store.SessionNotes { return &sessionNotesRepo{db: t.tx} }
func (t *txStore) GameResults() store.GameResults   { return &gameResultsRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations should be applied before starting a tx
