package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 8*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "password123", cfg.DefaultPassword)
	assert.Equal(t, "10-M", cfg.LoginRateLimit)
	assert.Equal(t, "300-M", cfg.APIRateLimit)
	assert.True(t, cfg.RunSeed)
	assert.NotEmpty(t, cfg.JWTSecret)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("RUN_SEED", "false")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.False(t, cfg.RunSeed)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestValidate(t *testing.T) {
	base := Config{
		Environment:    "production",
		JWTSecret:      "0123456789abcdef0123456789abcdef",
		JWTTTL:         time.Hour,
		MaxBodyBytes:   4096,
		LoginRateLimit: "10-M",
		LogFormat:      "json",
	}
	require.NoError(t, base.Validate())

	weak := base
	weak.JWTSecret = "short"
	assert.Error(t, weak.Validate())

	badRate := base
	badRate.LoginRateLimit = "lots"
	assert.Error(t, badRate.Validate())

	badAPIRate := base
	badAPIRate.APIRateLimit = "lots"
	assert.Error(t, badAPIRate.Validate())

	badZone := base
	badZone.Timezone = "Mars/Olympus"
	assert.Error(t, badZone.Validate())

	badFormat := base
	badFormat.LogFormat = "xml"
	assert.Error(t, badFormat.Validate())
}

func TestEmailAndReminderSettings(t *testing.T) {
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("ATTENDANCE_REMINDER_INTERVAL", "1h")

	cfg := Load()
	assert.True(t, cfg.EmailEnabled)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, time.Hour, cfg.AttendanceReminderInterval)
	require.NoError(t, cfg.Validate())

	cfg.SMTPHost = ""
	assert.Error(t, cfg.Validate())
}
