package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/mailer"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/internal/store/drivers/sqlite"
	"github.com/janus-care/janus/pkg/cryptox"
	"github.com/janus-care/janus/pkg/idx"
	"github.com/janus-care/janus/pkg/jwtx"
)

// captureMailer records sent messages instead of delivering them.
type captureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail error
}

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *captureMailer) last() mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T, st store.Store, mail *captureMailer) *AuthService {
	t.Helper()
	return &AuthService{
		Store:        st,
		AccessTokens: jwtx.NewMaker("access-secret", time.Hour, "janus-test"),
		ResetTokens:  jwtx.NewMaker("reset-secret", 15*time.Minute, "janus-test"),
		Mail:         mail,
		ResetURL:     "https://app.janus.test/reset",
	}
}

func seedUser(t *testing.T, st store.Store, email string, role domain.Role, therapistID string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword("secret123")
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Name:         "Ana",
		Surname:      "García",
		Email:        email,
		BirthDate:    time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
		PasswordHash: hash,
		Role:         role,
	}
	if role == domain.RolePatient {
		user.TherapistID = therapistID
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func seedInvitation(t *testing.T, st store.Store, email, therapistID string) domain.Invitation {
	t.Helper()

	inv := domain.Invitation{
		ID:          idx.New().String(),
		Email:       email,
		TherapistID: therapistID,
	}
	require.NoError(t, st.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}
