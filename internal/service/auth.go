package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/mailer"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/pkg/cryptox"
	"github.com/janus-care/janus/pkg/idx"
	"github.com/janus-care/janus/pkg/jwtx"
	"github.com/janus-care/janus/pkg/slogx"
)

var (
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrNoValidInvitation is the hard registration gate for patients: no
	// unaccepted invitation matching the request means no account.
	ErrNoValidInvitation = errors.New("no valid invitation for this registration")

	// ErrInvalidCredentials is deliberately identical for unknown email and
	// wrong password, so login cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrNoSuchUser = errors.New("no account with this email")

	// ErrInvalidResetToken covers tampered, expired and already-consumed
	// reset tokens alike.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	ErrUserNotFound = errors.New("user not found")
)

// AuthService implements the registration and authentication workflow.
// Every attempt is terminal: an operation either fully commits (user
// persisted, invitation sealed, password updated) or leaves no persisted
// change behind.
type AuthService struct {
	Store        store.Store
	AccessTokens *jwtx.Maker
	ResetTokens  *jwtx.Maker
	Mail         mailer.Mailer

	// ResetURL is the SPA page that consumes reset tokens; the token is
	// appended as a query parameter in the reset email.
	ResetURL string
}

// RegisterInput mirrors the SPA registration form.
type RegisterInput struct {
	Name         string
	Surname      string
	BirthDate    string
	Email        string
	Password     string
	Role         string
	InvitationID string
}

// AuthResult is what both registration and login hand back to the caller.
type AuthResult struct {
	Token string
	User  domain.User
}

// Register runs the full registration state machine:
// START -> VALIDATED -> INVITED (patients only) -> PERSISTED -> TOKEN_ISSUED.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate required personal fields.
	email := NormalizeEmail(in.Email)
	if in.Name == "" || in.Surname == "" || in.BirthDate == "" || email == "" || in.Password == "" {
		return AuthResult{}, ErrValidation
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return AuthResult{}, ErrValidation
	}

	// 2. Reject an already-registered email early. The unique index on
	// users.email re-checks this atomically at insert time, so a racing
	// duplicate still cannot slip through.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return AuthResult{}, fmt.Errorf("check existing email: %w", err)
	}

	// 3. Parse the birth date (two accepted literal formats only).
	birthDate, err := ParseBirthDate(in.BirthDate)
	if err != nil {
		return AuthResult{}, err
	}

	// 4. Patients must present a sealed, matching, unaccepted invitation.
	// Id takes precedence over email, mirroring the lookup endpoint.
	var invitation domain.Invitation
	if role == domain.RolePatient {
		invitation, err = s.findInvitation(ctx, in.InvitationID, email)
		if err != nil {
			return AuthResult{}, err
		}
	}

	// 5. Hash the password. The plaintext goes no further than this frame.
	passwordHash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        email,
		BirthDate:    birthDate,
		PasswordHash: passwordHash,
		Role:         role,
		TherapistID:  invitation.TherapistID,
	}

	// 6. Persist the user and seal the invitation atomically. The seal is a
	// conditional update (accepted = 0 guard), so of two registrations
	// racing on one invitation exactly one commits; the loser rolls back
	// without a user record.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		if role == domain.RolePatient {
			return tx.Invitations().MarkInvitationAccepted(ctx, invitation.ID, user.ID)
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return AuthResult{}, ErrDuplicateEmail
	case errors.Is(err, store.ErrNotFound):
		// Invitation was consumed between lookup and seal.
		return AuthResult{}, ErrNoValidInvitation
	case err != nil:
		return AuthResult{}, fmt.Errorf("persist registration: %w", err)
	}

	// 7. Issue the access token bound to (userID, role-lowercased).
	token, _, err := s.AccessTokens.Sign(user.ID, strings.ToLower(user.Role.String()))
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign access token: %w", err)
	}

	log.Info("user registered",
		"user_id", user.ID,
		"role", user.Role.String(),
		"via_invitation", invitation.ID != "",
	)

	// 8. Welcome email is best-effort: a delivery failure is logged and
	// never rolls back the registration.
	s.sendWelcomeAsync(log, user)

	return AuthResult{Token: token, User: user}, nil
}

// findInvitation resolves the unaccepted invitation authorizing a patient
// registration, by id when supplied, otherwise by normalized email.
func (s *AuthService) findInvitation(ctx context.Context, invitationID, email string) (domain.Invitation, error) {
	var (
		inv domain.Invitation
		err error
	)
	if invitationID != "" {
		inv, err = s.Store.Invitations().GetUnacceptedInvitationByID(ctx, invitationID)
	} else {
		inv, err = s.Store.Invitations().GetUnacceptedInvitationByEmail(ctx, email)
	}
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, ErrNoValidInvitation
	}
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("lookup invitation: %w", err)
	}
	return inv, nil
}

func (s *AuthService) sendWelcomeAsync(log *slog.Logger, user domain.User) {
	msg := mailer.Message{
		To:      user.Email,
		Subject: "Bienvenido a JANUS",
		Text:    fmt.Sprintf("Hola %s, tu cuenta en JANUS ya está activa.", user.Name),
		HTML:    fmt.Sprintf("<p>Hola %s,</p><p>Tu cuenta en JANUS ya está activa.</p>", user.Name),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.Mail.Send(ctx, msg); err != nil {
			log.Error("welcome email failed", "user_id", user.ID, "err", err)
		}
	}()
}

// Login authenticates by email and password. Lookup failure and password
// mismatch are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login failed", "user_id", user.ID)
		return AuthResult{}, ErrInvalidCredentials
	}

	token, _, err := s.AccessTokens.Sign(user.ID, strings.ToLower(user.Role.String()))
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign access token: %w", err)
	}

	return AuthResult{Token: token, User: user}, nil
}

// ForgotPassword issues a short-lived single-use reset token and mails a
// reset link. Unknown emails surface as ErrNoSuchUser.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return ErrNoSuchUser
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	// The jti of the signed token doubles as the ledger key that makes the
	// token single-use (see ResetPassword).
	token, jti, err := s.ResetTokens.Sign(user.ID, strings.ToLower(user.Role.String()))
	if err != nil {
		return fmt.Errorf("sign reset token: %w", err)
	}

	err = s.Store.ResetTokens().CreateResetToken(ctx, domain.ResetToken{
		ID:        jti,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.ResetTokens.TTL()),
	})
	if err != nil {
		return fmt.Errorf("record reset token: %w", err)
	}

	link := s.ResetURL + "?token=" + token
	msg := mailer.Message{
		To:      user.Email,
		Subject: "Restablecer tu contraseña de JANUS",
		Text:    "Para restablecer tu contraseña, abre este enlace: " + link,
		HTML:    fmt.Sprintf(`<p>Para restablecer tu contraseña, <a href=%q>haz clic aquí</a>.</p>`, link),
	}
	if err := s.Mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	return nil
}

// ResetPassword verifies a reset token, consumes it (exactly once) and
// stores the new password hash, all in one transaction.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	if newPassword == "" {
		return ErrValidation
	}

	// 1. Fail closed on signature, expiry or wrong-purpose tokens.
	claims, err := s.ResetTokens.Verify(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	// 2. The subject must still exist.
	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	passwordHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// 3. Consume the token and update the hash atomically. The conditional
	// consume (used = 0 guard) makes a replayed token fail here even inside
	// its validity window.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.ResetTokens().ConsumeResetToken(ctx, claims.ID); err != nil {
			return err
		}
		return tx.Users().UpdatePasswordHash(ctx, user.ID, passwordHash)
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("persist password reset: %w", err)
	}

	log.Info("password reset", "user_id", user.ID)
	return nil
}
