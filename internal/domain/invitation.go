package domain

import "time"

// Invitation is a therapist-issued, single-use authorization permitting one
// specific email to register as a patient under that therapist. Once
// accepted it is sealed forever; it is never deleted.
type Invitation struct {
	ID          string
	Email       string // normalized (trimmed + lowercased)
	TherapistID string
	Accepted    bool
	AcceptedBy  string // user id of the patient who consumed it, "" until sealed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
