package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/janus-care/janus/internal/mailer"
	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/internal/store/drivers/sqlite"
	"github.com/janus-care/janus/pkg/jwtx"
)

// newTestServer wires a full router against an in-memory store, mirroring
// the production wiring in internal/app.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.DiscardHandler)
	mail := &mailer.LogMailer{Log: logger}

	accessTokens := jwtx.NewMaker("test-access-secret", time.Hour, "janus-test")
	resetTokens := jwtx.NewMaker("test-reset-secret", 15*time.Minute, "janus-test")

	router := NewRouter(accessTokens, "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:        st,
		AccessTokens: accessTokens,
		ResetTokens:  resetTokens,
		Mail:         mail,
		ResetURL:     "https://app.janus.test/reset",
	}
	router.InvitationService = &service.InvitationService{
		Store:       st,
		Mail:        mail,
		RegisterURL: "https://app.janus.test/register",
	}
	router.UserService = &service.UserService{Store: st}
	router.MessageService = &service.MessageService{Store: st}
	router.RecordsService = &service.RecordsService{Store: st}
	router.DashboardService = &service.DashboardService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, raw
}

// registerTherapist signs up a therapist through the API and returns the
// access token and user id.
func registerTherapist(t *testing.T, srv *httptest.Server, email string) (token, id string) {
	t.Helper()

	resp, raw := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Nombre:          "Clara",
		Apellidos:       "Ruiz",
		FechaNacimiento: "1985-03-21",
		Email:           email,
		Password:        "secret123",
		Role:            "terapeuta",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var body RegisterResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Token, body.User.ID
}

func TestInvitationRegistrationFlow(t *testing.T) {
	srv := newTestServer(t)

	therapistToken, therapistID := registerTherapist(t, srv, "clara@janus.test")

	// Therapist issues an invitation.
	resp, raw := doJSON(t, srv, http.MethodPost, "/api/invitations", therapistToken, CreateInvitationRequest{
		InvitedEmail: "Nuevo@Janus.Test",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var created CreateInvitationResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	require.Equal(t, "nuevo@janus.test", created.Invitation.Email)
	require.Equal(t, therapistID, created.Invitation.TherapistID)

	// The invitation validates before registration.
	resp, raw = doJSON(t, srv, http.MethodGet, "/api/invitations?invitationId="+created.Invitation.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var check ValidateInvitationResponse
	require.NoError(t, json.Unmarshal(raw, &check))
	require.True(t, check.Valid)
	require.Equal(t, therapistID, check.Therapist)

	// The invited patient registers.
	resp, raw = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Nombre:          "Nuevo",
		Apellidos:       "Paciente",
		FechaNacimiento: "12/04/2010",
		Email:           "nuevo@janus.test",
		Password:        "secret123",
		Role:            "paciente",
		InvitationID:    created.Invitation.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var registered RegisterResponse
	require.NoError(t, json.Unmarshal(raw, &registered))
	require.Equal(t, "paciente", registered.Role)
	require.NotEmpty(t, registered.Token)

	// The patient is bound to the inviting therapist.
	resp, raw = doJSON(t, srv, http.MethodGet, "/api/users/me", registered.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me UserView
	require.NoError(t, json.Unmarshal(raw, &me))
	require.Equal(t, therapistID, me.TherapistID)

	// The consumed invitation no longer validates.
	resp, raw = doJSON(t, srv, http.MethodGet, "/api/invitations?invitationId="+created.Invitation.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &check))
	require.False(t, check.Valid)

	// And cannot authorize a second registration.
	resp, raw = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Nombre:          "Otro",
		Apellidos:       "Tarde",
		FechaNacimiento: "2010-04-12",
		Email:           "otro@janus.test",
		Password:        "secret123",
		Role:            "paciente",
		InvitationID:    created.Invitation.ID,
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode, string(raw))
}

func TestAuthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	registerTherapist(t, srv, "clara@janus.test")

	t.Run("login succeeds with the right password", func(t *testing.T) {
		resp, raw := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", LoginRequest{
			Email:    "clara@janus.test",
			Password: "secret123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body LoginResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Equal(t, "terapeuta", body.Role)
		require.NotEmpty(t, body.Token)
	})

	t.Run("login rejects a wrong password with 400", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", LoginRequest{
			Email:    "clara@janus.test",
			Password: "nope",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("forgot password for an unknown email is 404", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/auth/forgot-password", "", ForgotPasswordRequest{
			Email: "nadie@janus.test",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/login", bytes.NewReader([]byte("{")))
		require.NoError(t, err)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestResetPasswordBadTokenStatus(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/auth/reset-password", "", ResetPasswordRequest{
		Token:    "not-a-token",
		Password: "newsecret123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthorizationBoundaries(t *testing.T) {
	srv := newTestServer(t)
	therapistToken, therapistID := registerTherapist(t, srv, "clara@janus.test")

	// Register a patient under the therapist.
	_, raw := doJSON(t, srv, http.MethodPost, "/api/invitations", therapistToken, CreateInvitationRequest{
		InvitedEmail: "p@janus.test",
	})
	var created CreateInvitationResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Nombre: "Pe", Apellidos: "Paciente", FechaNacimiento: "2012-06-01",
		Email: "p@janus.test", Password: "secret123", Role: "paciente",
		InvitationID: created.Invitation.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var patient RegisterResponse
	require.NoError(t, json.Unmarshal(raw, &patient))

	t.Run("missing token is 401", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodGet, "/api/users/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("patients cannot issue invitations", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/invitations", patient.Token, CreateInvitationRequest{
			InvitedEmail: "amigo@janus.test",
		})
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("patients cannot open the dashboard", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodGet, "/api/dashboard/patients", patient.Token, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("therapist dashboard lists the patient", func(t *testing.T) {
		resp, raw := doJSON(t, srv, http.MethodGet, "/api/dashboard/patients", therapistToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var patients []UserView
		require.NoError(t, json.Unmarshal(raw, &patients))
		require.Len(t, patients, 1)
		require.Equal(t, patient.User.ID, patients[0].ID)
		require.Equal(t, therapistID, patients[0].TherapistID)
	})
}

func TestRecordsAndDashboardEndpoints(t *testing.T) {
	srv := newTestServer(t)
	therapistToken, _ := registerTherapist(t, srv, "clara@janus.test")

	_, raw := doJSON(t, srv, http.MethodPost, "/api/invitations", therapistToken, CreateInvitationRequest{
		InvitedEmail: "p@janus.test",
	})
	var created CreateInvitationResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	_, raw = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Nombre: "Pe", Apellidos: "Paciente", FechaNacimiento: "2012-06-01",
		Email: "p@janus.test", Password: "secret123", Role: "paciente",
		InvitationID: created.Invitation.ID,
	})
	var patient RegisterResponse
	require.NoError(t, json.Unmarshal(raw, &patient))
	base := "/api/patients/" + patient.User.ID

	t.Run("diary round trip", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, base+"/diary", patient.Token, AddDiaryEntryRequest{
			Emotion:   "alegría",
			Intensity: 8,
			Note:      "excursión",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, raw := doJSON(t, srv, http.MethodGet, base+"/diary", therapistToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []DiaryEntryView
		require.NoError(t, json.Unmarshal(raw, &entries))
		require.Len(t, entries, 1)
		require.Equal(t, 8, entries[0].Intensity)
	})

	t.Run("task lifecycle", func(t *testing.T) {
		resp, raw := doJSON(t, srv, http.MethodPost, base+"/tasks", therapistToken, AddTaskRequest{
			Title:   "Respiración",
			DueDate: "2026-09-15",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var task TaskView
		require.NoError(t, json.Unmarshal(raw, &task))
		require.Equal(t, "pending", task.Status)

		resp, _ = doJSON(t, srv, http.MethodPut, fmt.Sprintf("%s/tasks/%s/status", base, task.ID), patient.Token, UpdateTaskStatusRequest{Status: "done"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("%s/tasks/%s", base, task.ID), patient.Token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("notes are therapist-only at the route", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, base+"/notes", patient.Token, AddSessionNoteRequest{Body: "yo"})
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = doJSON(t, srv, http.MethodPost, base+"/notes", therapistToken, AddSessionNoteRequest{Body: "sesión inicial"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, raw := doJSON(t, srv, http.MethodGet, base+"/notes", patient.Token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var notes []SessionNoteView
		require.NoError(t, json.Unmarshal(raw, &notes))
		require.Len(t, notes, 1)
	})

	t.Run("summary aggregates", func(t *testing.T) {
		for _, g := range []AddGameResultRequest{
			{Game: "planetas", Score: 10},
			{Game: "planetas", Score: 20},
		} {
			resp, _ := doJSON(t, srv, http.MethodPost, base+"/games", patient.Token, g)
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}

		resp, raw := doJSON(t, srv, http.MethodGet, "/api/dashboard/patients/"+patient.User.ID+"/summary", therapistToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var summary PatientSummaryResponse
		require.NoError(t, json.Unmarshal(raw, &summary))
		require.Equal(t, 1, summary.Diary.EntryCount)
		require.Len(t, summary.Games, 1)
		require.Equal(t, 2, summary.Games[0].Plays)
		require.InDelta(t, 15.0, summary.Games[0].MeanScore, 1e-9)
	})

	t.Run("messaging between the pair", func(t *testing.T) {
		resp, raw := doJSON(t, srv, http.MethodGet, "/api/users/me", patient.Token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var me UserView
		require.NoError(t, json.Unmarshal(raw, &me))

		resp, _ = doJSON(t, srv, http.MethodPost, "/api/messages", patient.Token, SendMessageRequest{
			RecipientID: me.TherapistID,
			Body:        "hola",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, raw = doJSON(t, srv, http.MethodGet, "/api/messages/"+patient.User.ID, therapistToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var msgs []MessageView
		require.NoError(t, json.Unmarshal(raw, &msgs))
		require.Len(t, msgs, 1)
		require.Equal(t, "hola", msgs[0].Body)
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, raw := doJSON(t, srv, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(raw, &health))
	require.Equal(t, "ok", health.Status)

	resp, raw = doJSON(t, srv, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &health))
	require.Equal(t, "ok", health.Checks.Database)
}
