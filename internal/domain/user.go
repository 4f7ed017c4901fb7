package domain

import "time"

// Role is the closed set of account roles. The values are the wire-level
// strings the SPA sends and receives.
type Role string

const (
	RolePatient   Role = "paciente"
	RoleTherapist Role = "terapeuta"
	RoleParent    Role = "padre"
	RoleTutor     Role = "tutor"
)

// ParseRole maps a wire string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePatient, RoleTherapist, RoleParent, RoleTutor:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }

type User struct {
	ID           string
	Name         string // nombre
	Surname      string // apellidos
	Email        string // unique, normalized (trimmed + lowercased)
	BirthDate    time.Time
	PasswordHash string // argon2id encoded
	Role         Role
	// TherapistID is the assigned therapist for patients. Set at most once,
	// at registration, from the invitation that authorized it. Empty for
	// non-patients and never reassigned.
	TherapistID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
