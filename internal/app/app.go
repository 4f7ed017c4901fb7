package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/janus-care/janus/internal/http"
	"github.com/janus-care/janus/internal/mailer"
	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/internal/store/drivers/sqlite"
	"github.com/janus-care/janus/pkg/jwtx"
	"github.com/janus-care/janus/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the JANUS backend with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	mail mailer.Mailer

	authService         *service.AuthService
	invitationService   *service.InvitationService
	userService         *service.UserService
	messageService      *service.MessageService
	recordsService      *service.RecordsService
	dashboardService    *service.DashboardService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "janus-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.AccessSecret == "" || cfg.ResetSecret == "" {
		return nil, errors.New("JANUS_ACCESS_SECRET and JANUS_RESET_SECRET must be set")
	}
	if cfg.AccessSecret == cfg.ResetSecret {
		return nil, errors.New("access and reset token secrets must differ")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("janus api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down janus api...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("janus api stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("no SMTP host configured, outbound mail will only be logged")
		app.mail = &mailer.LogMailer{Log: app.logger}
		return
	}

	app.mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host: app.cfg.SMTPHost,
		Port: app.cfg.SMTPPort,
		User: app.cfg.SMTPUser,
		Pass: app.cfg.SMTPPass,
		From: app.cfg.MailFrom,
	})
}

func (app *Application) initServices() {
	accessTokens := jwtx.NewMaker(app.cfg.AccessSecret, app.cfg.AccessTTL, app.cfg.Issuer)
	resetTokens := jwtx.NewMaker(app.cfg.ResetSecret, app.cfg.ResetTTL, app.cfg.Issuer)

	app.authService = &service.AuthService{
		Store:        app.db,
		AccessTokens: accessTokens,
		ResetTokens:  resetTokens,
		Mail:         app.mail,
		ResetURL:     app.cfg.ResetURL,
	}
	app.invitationService = &service.InvitationService{
		Store:       app.db,
		Mail:        app.mail,
		RegisterURL: app.cfg.RegisterURL,
	}
	app.userService = &service.UserService{Store: app.db}
	app.messageService = &service.MessageService{Store: app.db}
	app.recordsService = &service.RecordsService{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.authService.AccessTokens,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.InvitationService = app.invitationService
	router.UserService = app.userService
	router.MessageService = app.messageService
	router.RecordsService = app.recordsService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
