package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const insecureDevSecret = "dev-insecure-secret-change-me"

type Config struct {
	Addr                 string
	Environment          string
	JWTSecret            string
	JWTTTL               time.Duration
	Timezone             string
	RunSeed              bool
	SeedFile             string
	DefaultPassword      string
	PayslipEncryptionKey string
	MaxBodyBytes         int64
	LoginRateLimit       string
	APIRateLimit         string
	MetricsEnabled       bool
	LogLevel             string
	LogFormat            string

	EmailEnabled bool
	EmailFrom    string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPUseTLS   bool

	AttendanceReminderInterval time.Duration
}

// Load reads an optional .env file, then the process environment. Real
// environment variables win over .env entries.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "8h")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("RUN_SEED", true)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("DEFAULT_PASSWORD", "password123")
	v.SetDefault("PAYSLIP_ENCRYPTION_KEY", "")
	v.SetDefault("MAX_BODY_BYTES", 1048576)
	v.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	v.SetDefault("API_RATE_LIMIT", "300-M")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("EMAIL_ENABLED", false)
	v.SetDefault("EMAIL_FROM", "no-reply@hrdesk.local")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_USE_TLS", true)
	v.SetDefault("ATTENDANCE_REMINDER_INTERVAL", "0s")
	v.AutomaticEnv()

	cfg := Config{
		Addr:                 v.GetString("APP_ADDR"),
		Environment:          v.GetString("APP_ENV"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTTTL:               v.GetDuration("JWT_TTL"),
		Timezone:             v.GetString("TIMEZONE"),
		RunSeed:              v.GetBool("RUN_SEED"),
		SeedFile:             v.GetString("SEED_FILE"),
		DefaultPassword:      v.GetString("DEFAULT_PASSWORD"),
		PayslipEncryptionKey: v.GetString("PAYSLIP_ENCRYPTION_KEY"),
		MaxBodyBytes:         v.GetInt64("MAX_BODY_BYTES"),
		LoginRateLimit:       v.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:         v.GetString("API_RATE_LIMIT"),
		MetricsEnabled:       v.GetBool("METRICS_ENABLED"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),

		EmailEnabled: v.GetBool("EMAIL_ENABLED"),
		EmailFrom:    v.GetString("EMAIL_FROM"),
		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUser:     v.GetString("SMTP_USER"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),
		SMTPUseTLS:   v.GetBool("SMTP_USE_TLS"),

		AttendanceReminderInterval: v.GetDuration("ATTENDANCE_REMINDER_INTERVAL"),
	}
	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = 8 * time.Hour
	}
	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		slog.Warn("JWT_SECRET not set, using insecure development secret")
		cfg.JWTSecret = insecureDevSecret
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func (c Config) Validate() error {
	if c.IsProduction() {
		if strings.TrimSpace(c.JWTSecret) == "" || c.JWTSecret == insecureDevSecret {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if len(c.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
		}
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if _, err := limiter.NewRateFromFormatted(c.LoginRateLimit); err != nil {
		return fmt.Errorf("LOGIN_RATE_LIMIT is invalid: %w", err)
	}
	if c.APIRateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.APIRateLimit); err != nil {
			return fmt.Errorf("API_RATE_LIMIT is invalid: %w", err)
		}
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}
	if c.EmailEnabled && strings.TrimSpace(c.SMTPHost) == "" {
		return fmt.Errorf("SMTP_HOST is required when EMAIL_ENABLED is set")
	}
	if c.AttendanceReminderInterval < 0 {
		return fmt.Errorf("ATTENDANCE_REMINDER_INTERVAL must not be negative")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}
	return nil
}

// Location resolves Timezone; empty and "Local" mean the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
