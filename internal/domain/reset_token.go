package domain

import "time"

// ResetToken records one issued password-reset token so it can be consumed
// exactly once. ID is the jti claim of the signed token.
type ResetToken struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
