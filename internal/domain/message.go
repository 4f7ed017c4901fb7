package domain

import "time"

// Message is one entry in a two-party chat between a patient and their
// assigned therapist.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Body        string
	CreatedAt   time.Time
}
