package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Issuer claim for signed tokens
	AccessSecret string // Required: HS256 secret for access tokens
	ResetSecret  string // Required: HS256 secret for reset tokens, must differ from AccessSecret
	AccessTTL    time.Duration
	ResetTTL     time.Duration

	DatabaseFile string // Path to the SQLite database file (default: ./janus.db)

	SMTPHost string // Optional: when empty, outbound mail is logged instead of sent
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	RegisterURL string // SPA registration page, linked in invitation emails
	ResetURL    string // SPA reset page, linked in reset emails

	Env                  string
	LogLevel             string
	LogFormat            string
	Port                 int
	ShutdownGracePeriod  time.Duration
	HousekeepingInterval time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("JANUS_ISSUER", "janus-api"),
		AccessSecret: os.Getenv("JANUS_ACCESS_SECRET"),
		ResetSecret:  os.Getenv("JANUS_RESET_SECRET"),
		AccessTTL:    getEnvDurationOrDefault("JANUS_ACCESS_TTL", 1*time.Hour),
		ResetTTL:     getEnvDurationOrDefault("JANUS_RESET_TTL", 15*time.Minute),

		DatabaseFile: getEnvOrDefault("JANUS_DATABASE_FILE", "janus.db"),

		SMTPHost: os.Getenv("JANUS_SMTP_HOST"),
		SMTPPort: getEnvOrDefault("JANUS_SMTP_PORT", "587"),
		SMTPUser: os.Getenv("JANUS_SMTP_USER"),
		SMTPPass: os.Getenv("JANUS_SMTP_PASS"),
		MailFrom: getEnvOrDefault("JANUS_MAIL_FROM", "no-reply@janus.example"),

		RegisterURL: getEnvOrDefault("JANUS_REGISTER_URL", "http://localhost:5173/register"),
		ResetURL:    getEnvOrDefault("JANUS_RESET_URL", "http://localhost:5173/reset-password"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are read as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
