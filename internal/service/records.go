package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/pkg/idx"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// RecordsService owns the clinical record stores attached to a patient:
// emotion diary, task planner, weekly routines, session notes and game
// results.
type RecordsService struct {
	Store store.Store
}

// authorizePatientAccess grants access to a patient's records to the
// patient themselves and to their assigned therapist, nobody else. It
// returns the patient so callers can reuse the lookup.
func (s *RecordsService) authorizePatientAccess(ctx context.Context, actorID, patientID string) (domain.User, error) {
	patient, err := s.Store.Users().GetUserByID(ctx, patientID)
	if err != nil {
		return domain.User{}, mapUserLookup(err)
	}
	if patient.Role != domain.RolePatient {
		return domain.User{}, ErrNotFound
	}
	if actorID != patient.ID && actorID != patient.TherapistID {
		return domain.User{}, ErrForbidden
	}
	return patient, nil
}

// AddDiaryEntry records one emotion diary entry for the patient.
func (s *RecordsService) AddDiaryEntry(ctx context.Context, actorID, patientID string, e domain.DiaryEntry) (domain.DiaryEntry, error) {
	if e.Emotion == "" || e.Intensity < 1 || e.Intensity > 10 {
		return domain.DiaryEntry{}, ErrValidation
	}
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return domain.DiaryEntry{}, err
	}

	e.ID = idx.New().String()
	e.PatientID = patientID
	if e.EntryDate.IsZero() {
		e.EntryDate = time.Now().UTC()
	}
	e.CreatedAt = time.Now().UTC()

	if err := s.Store.DiaryEntries().CreateDiaryEntry(ctx, e); err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("create diary entry: %w", err)
	}
	return e, nil
}

// ListDiaryEntries returns the patient's diary entries inside the optional
// [from, to] window, oldest first.
func (s *RecordsService) ListDiaryEntries(ctx context.Context, actorID, patientID string, from, to time.Time) ([]domain.DiaryEntry, error) {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return nil, err
	}
	entries, err := s.Store.DiaryEntries().ListDiaryEntries(ctx, patientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	return entries, nil
}

// AddTask creates a planner task for the patient. New tasks always start
// pending.
func (s *RecordsService) AddTask(ctx context.Context, actorID, patientID string, t domain.Task) (domain.Task, error) {
	if t.Title == "" {
		return domain.Task{}, ErrValidation
	}
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	t.ID = idx.New().String()
	t.PatientID = patientID
	t.Status = domain.TaskPending
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// ListTasks returns the patient's planner tasks.
func (s *RecordsService) ListTasks(ctx context.Context, actorID, patientID string) ([]domain.Task, error) {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return nil, err
	}
	tasks, err := s.Store.Tasks().ListTasks(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// SetTaskStatus moves a task between pending and done.
func (s *RecordsService) SetTaskStatus(ctx context.Context, actorID, patientID, taskID string, status domain.TaskStatus) error {
	if _, ok := domain.ParseTaskStatus(string(status)); !ok {
		return ErrValidation
	}
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return err
	}
	if err := s.requireTaskOwnership(ctx, taskID, patientID); err != nil {
		return err
	}
	err := s.Store.Tasks().UpdateTaskStatus(ctx, taskID, status)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}

// DeleteTask removes a planner task.
func (s *RecordsService) DeleteTask(ctx context.Context, actorID, patientID, taskID string) error {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return err
	}
	if err := s.requireTaskOwnership(ctx, taskID, patientID); err != nil {
		return err
	}
	err := s.Store.Tasks().DeleteTask(ctx, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// requireTaskOwnership stops a caller from reaching another patient's task
// through a mismatched path.
func (s *RecordsService) requireTaskOwnership(ctx context.Context, taskID, patientID string) error {
	task, err := s.Store.Tasks().GetTaskByID(ctx, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup task: %w", err)
	}
	if task.PatientID != patientID {
		return ErrNotFound
	}
	return nil
}

// AddRoutine creates a weekly routine for the patient.
func (s *RecordsService) AddRoutine(ctx context.Context, actorID, patientID string, r domain.Routine) (domain.Routine, error) {
	if r.Title == "" || r.Weekday < 0 || r.Weekday > 6 || !timeOfDayPattern.MatchString(r.TimeOfDay) {
		return domain.Routine{}, ErrValidation
	}
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return domain.Routine{}, err
	}

	r.ID = idx.New().String()
	r.PatientID = patientID
	r.Active = true
	r.CreatedAt = time.Now().UTC()

	if err := s.Store.Routines().CreateRoutine(ctx, r); err != nil {
		return domain.Routine{}, fmt.Errorf("create routine: %w", err)
	}
	return r, nil
}

// ListRoutines returns the patient's routines.
func (s *RecordsService) ListRoutines(ctx context.Context, actorID, patientID string) ([]domain.Routine, error) {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return nil, err
	}
	routines, err := s.Store.Routines().ListRoutines(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	return routines, nil
}

// SetRoutineActive toggles a routine on or off without deleting it.
func (s *RecordsService) SetRoutineActive(ctx context.Context, actorID, patientID, routineID string, active bool) error {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return err
	}
	if err := s.requireRoutineOwnership(ctx, routineID, patientID); err != nil {
		return err
	}
	err := s.Store.Routines().SetRoutineActive(ctx, routineID, active)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set routine active: %w", err)
	}
	return nil
}

// DeleteRoutine removes a routine.
func (s *RecordsService) DeleteRoutine(ctx context.Context, actorID, patientID, routineID string) error {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return err
	}
	if err := s.requireRoutineOwnership(ctx, routineID, patientID); err != nil {
		return err
	}
	err := s.Store.Routines().DeleteRoutine(ctx, routineID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}

func (s *RecordsService) requireRoutineOwnership(ctx context.Context, routineID, patientID string) error {
	routine, err := s.Store.Routines().GetRoutineByID(ctx, routineID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup routine: %w", err)
	}
	if routine.PatientID != patientID {
		return ErrNotFound
	}
	return nil
}

// AddSessionNote records a therapist's note about a session. Only the
// patient's assigned therapist may write notes, and only that therapist
// and the patient may read them.
func (s *RecordsService) AddSessionNote(ctx context.Context, therapistID, patientID, body string) (domain.SessionNote, error) {
	if body == "" {
		return domain.SessionNote{}, ErrValidation
	}
	patient, err := s.authorizePatientAccess(ctx, therapistID, patientID)
	if err != nil {
		return domain.SessionNote{}, err
	}
	if patient.TherapistID != therapistID {
		return domain.SessionNote{}, ErrForbidden
	}

	note := domain.SessionNote{
		ID:          idx.New().String(),
		PatientID:   patientID,
		TherapistID: therapistID,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.SessionNotes().CreateSessionNote(ctx, note); err != nil {
		return domain.SessionNote{}, fmt.Errorf("create session note: %w", err)
	}
	return note, nil
}

// ListSessionNotes returns every note written about the patient.
func (s *RecordsService) ListSessionNotes(ctx context.Context, actorID, patientID string) ([]domain.SessionNote, error) {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return nil, err
	}
	notes, err := s.Store.SessionNotes().ListSessionNotes(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list session notes: %w", err)
	}
	return notes, nil
}

// AddGameResult stores one play of a gamified assessment module.
func (s *RecordsService) AddGameResult(ctx context.Context, actorID, patientID string, g domain.GameResult) (domain.GameResult, error) {
	if g.Game == "" {
		return domain.GameResult{}, ErrValidation
	}
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return domain.GameResult{}, err
	}

	g.ID = idx.New().String()
	g.PatientID = patientID
	if g.PlayedAt.IsZero() {
		g.PlayedAt = time.Now().UTC()
	}

	if err := s.Store.GameResults().CreateGameResult(ctx, g); err != nil {
		return domain.GameResult{}, fmt.Errorf("create game result: %w", err)
	}
	return g, nil
}

// ListGameResults returns the patient's results, optionally for one game.
func (s *RecordsService) ListGameResults(ctx context.Context, actorID, patientID, game string) ([]domain.GameResult, error) {
	if _, err := s.authorizePatientAccess(ctx, actorID, patientID); err != nil {
		return nil, err
	}
	results, err := s.Store.GameResults().ListGameResults(ctx, patientID, game)
	if err != nil {
		return nil, fmt.Errorf("list game results: %w", err)
	}
	return results, nil
}
