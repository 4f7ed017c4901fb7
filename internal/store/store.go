package store

import (
	"context"
	"errors"
	"time"

	"github.com/janus-care/janus/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Invitations() Invitations
	ResetTokens() ResetTokens
	Messages() Messages
	DiaryEntries() DiaryEntries
	Tasks() Tasks
	Routines() Routines
	SessionNotes() SessionNotes
	GameResults() GameResults

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step operations that must be atomic
	// (e.g., user insert + invitation seal during patient registration).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken; uniqueness is
	// enforced by the database index, not by a prior read.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name and surname and bumps updated_at.
	UpdateProfile(ctx context.Context, userID, name, surname string) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// ListPatientsByTherapist returns every patient assigned to the
	// therapist, oldest registration first.
	ListPatientsByTherapist(ctx context.Context, therapistID string) ([]domain.User, error)
}

type Invitations interface {
	// CreateInvitation inserts a new invitation. A partial unique index on
	// (email, therapist_id) over unaccepted rows makes this an atomic
	// conditional insert: a concurrent duplicate surfaces as
	// ErrAlreadyExists for all but one caller.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetUnacceptedInvitationByID returns the invitation only while it has
	// not been accepted.
	GetUnacceptedInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetUnacceptedInvitationByEmail returns the oldest unaccepted
	// invitation for the normalized email.
	GetUnacceptedInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error)

	// MarkInvitationAccepted seals the invitation: accepted=1,
	// accepted_by=userID, updated_at=now, guarded by accepted=0 so exactly
	// one racing caller succeeds. Losers get ErrNotFound.
	MarkInvitationAccepted(ctx context.Context, invitationID, acceptedByUserID string) error
}

type ResetTokens interface {
	// CreateResetToken records an issued reset token by its jti.
	CreateResetToken(ctx context.Context, t domain.ResetToken) error

	// ConsumeResetToken marks the token used, guarded by used=0. A second
	// consumption (replay) gets ErrNotFound.
	ConsumeResetToken(ctx context.Context, id string) error

	// DeleteExpiredResetTokens is housekeeping.
	DeleteExpiredResetTokens(ctx context.Context) error
}

type Messages interface {
	// CreateMessage stores one chat message.
	CreateMessage(ctx context.Context, m domain.Message) error

	// ListConversation returns up to limit messages exchanged between the
	// two users, oldest first.
	ListConversation(ctx context.Context, userA, userB string, limit int) ([]domain.Message, error)
}

type DiaryEntries interface {
	CreateDiaryEntry(ctx context.Context, e domain.DiaryEntry) error

	// ListDiaryEntries returns the patient's entries within [from, to]
	// (zero times mean unbounded), oldest first.
	ListDiaryEntries(ctx context.Context, patientID string, from, to time.Time) ([]domain.DiaryEntry, error)
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error
	ListTasks(ctx context.Context, patientID string) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) error
	DeleteTask(ctx context.Context, id string) error
}

type Routines interface {
	CreateRoutine(ctx context.Context, r domain.Routine) error
	ListRoutines(ctx context.Context, patientID string) ([]domain.Routine, error)
	GetRoutineByID(ctx context.Context, id string) (domain.Routine, error)
	SetRoutineActive(ctx context.Context, id string, active bool) error
	DeleteRoutine(ctx context.Context, id string) error
}

type SessionNotes interface {
	CreateSessionNote(ctx context.Context, n domain.SessionNote) error
	ListSessionNotes(ctx context.Context, patientID string) ([]domain.SessionNote, error)
}

type GameResults interface {
	CreateGameResult(ctx context.Context, g domain.GameResult) error

	// ListGameResults returns the patient's results, optionally filtered
	// by game key ("" means all), oldest first.
	ListGameResults(ctx context.Context, patientID, game string) ([]domain.GameResult, error)
}
