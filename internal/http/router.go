package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/pkg/httpx"
	"github.com/janus-care/janus/pkg/slogx"

	_ "github.com/janus-care/janus/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	InvitationService *service.InvitationService
	UserService       *service.UserService
	MessageService    *service.MessageService
	RecordsService    *service.RecordsService
	DashboardService  *service.DashboardService
}

func NewRouter(
	verifier httpx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvitations()
	r.registerUsers()
	r.registerMessages()
	r.registerPatientRecords()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			JANUS Therapy Support API
//	@version		0.1.0
//	@description	Backend for the JANUS therapy-support platform: invitation-gated patient registration, therapist-patient binding, clinical record keeping and messaging.
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	passwordHandler := &PasswordHandler{AuthService: r.AuthService}

	// Credential endpoints get the strict per-IP limit (brute force and
	// enumeration prevention).
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(passwordHandler.HandleForgot),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(passwordHandler.HandleReset),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	// POST /api/invitations - therapist-only
	r.Mux.Handle("POST /api/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("terapeuta"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /api/invitations - public (pre-registration check)
	r.Mux.Handle("GET /api/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleValidate),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /api/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{MessageService: r.MessageService}

	r.Mux.Handle("POST /api/messages",
		httpx.Chain(http.HandlerFunc(h.HandleSend),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/messages/{userId}",
		httpx.Chain(http.HandlerFunc(h.HandleConversation),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPatientRecords() {
	diary := &DiaryHandler{RecordsService: r.RecordsService}
	tasks := &TasksHandler{RecordsService: r.RecordsService}
	routines := &RoutinesHandler{RecordsService: r.RecordsService}
	notes := &NotesHandler{RecordsService: r.RecordsService}
	games := &GamesHandler{RecordsService: r.RecordsService}

	// Record access is authenticated and further narrowed by the service
	// (patient self or assigned therapist).
	secured := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/patients/{id}/diary", secured(diary.HandleAdd))
	r.Mux.Handle("GET /api/patients/{id}/diary", secured(diary.HandleList))

	r.Mux.Handle("POST /api/patients/{id}/tasks", secured(tasks.HandleAdd))
	r.Mux.Handle("GET /api/patients/{id}/tasks", secured(tasks.HandleList))
	r.Mux.Handle("PUT /api/patients/{id}/tasks/{taskId}/status", secured(tasks.HandleUpdateStatus))
	r.Mux.Handle("DELETE /api/patients/{id}/tasks/{taskId}", secured(tasks.HandleDelete))

	r.Mux.Handle("POST /api/patients/{id}/routines", secured(routines.HandleAdd))
	r.Mux.Handle("GET /api/patients/{id}/routines", secured(routines.HandleList))
	r.Mux.Handle("PUT /api/patients/{id}/routines/{routineId}/active", secured(routines.HandleSetActive))
	r.Mux.Handle("DELETE /api/patients/{id}/routines/{routineId}", secured(routines.HandleDelete))

	// Writing notes is therapist-only at the route level too.
	r.Mux.Handle("POST /api/patients/{id}/notes",
		httpx.Chain(http.HandlerFunc(notes.HandleAdd),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("terapeuta"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/patients/{id}/notes", secured(notes.HandleList))

	r.Mux.Handle("POST /api/patients/{id}/games", secured(games.HandleAdd))
	r.Mux.Handle("GET /api/patients/{id}/games", secured(games.HandleList))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}

	secured := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("terapeuta"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /api/dashboard/patients", secured(h.HandlePatients))
	r.Mux.Handle("GET /api/dashboard/patients/{id}/summary", secured(h.HandleSummary))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
