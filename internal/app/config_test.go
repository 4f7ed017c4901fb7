package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Clear any ambient overrides so defaults are actually exercised.
	for _, key := range []string{
		"JANUS_ACCESS_TTL", "JANUS_RESET_TTL", "JANUS_SMTP_PORT", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	require.Equal(t, 1*time.Hour, cfg.AccessTTL)
	require.Equal(t, 15*time.Minute, cfg.ResetTTL)
	require.Equal(t, "587", cfg.SMTPPort)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "janus-api", cfg.Issuer)
}

func TestLoadConfigDurationOverrides(t *testing.T) {
	t.Setenv("JANUS_ACCESS_TTL", "30m")

	// Bare integers are read as minutes.
	t.Setenv("JANUS_RESET_TTL", "10")

	cfg := LoadConfig()

	require.Equal(t, 30*time.Minute, cfg.AccessTTL)
	require.Equal(t, 10*time.Minute, cfg.ResetTTL)
}
