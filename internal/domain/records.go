package domain

import "time"

// TaskStatus is the closed set of task planner states.
type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
)

// ParseTaskStatus maps a wire string onto the closed status set.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskPending, TaskDone:
		return TaskStatus(s), true
	default:
		return "", false
	}
}

// DiaryEntry is one emotion diary record.
type DiaryEntry struct {
	ID        string
	PatientID string
	EntryDate time.Time // calendar date of the diary entry
	Emotion   string
	Intensity int // 1..10
	Note      string
	CreatedAt time.Time
}

// Task is one planned daily activity ("time machine" planner).
type Task struct {
	ID          string
	PatientID   string
	Title       string
	Description string
	DueDate     time.Time
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Routine is a recurring weekly activity.
type Routine struct {
	ID        string
	PatientID string
	Title     string
	Weekday   int    // 0 = Sunday .. 6 = Saturday
	TimeOfDay string // "HH:MM"
	Active    bool
	CreatedAt time.Time
}

// SessionNote is a therapist's note about a session with a patient.
type SessionNote struct {
	ID          string
	PatientID   string
	TherapistID string
	Body        string
	CreatedAt   time.Time
}

// GameResult is one play of a gamified assessment module ("planet"
// interest mapping and friends). Payload is an opaque JSON document owned
// by the SPA.
type GameResult struct {
	ID        string
	PatientID string
	Game      string
	Score     float64
	Payload   string
	PlayedAt  time.Time
}
