package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ulule/limiter/v3"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/audit"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/meeting"
	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/crypto"
	"hrdesk/internal/platform/email"
	"hrdesk/internal/platform/jobs"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/platform/seed"
	"hrdesk/internal/store"
	attendancehandler "hrdesk/internal/transport/http/handlers/attendance"
	audithandler "hrdesk/internal/transport/http/handlers/audit"
	authhandler "hrdesk/internal/transport/http/handlers/auth"
	corehandler "hrdesk/internal/transport/http/handlers/core"
	jobshandler "hrdesk/internal/transport/http/handlers/jobs"
	leavehandler "hrdesk/internal/transport/http/handlers/leave"
	meetinghandler "hrdesk/internal/transport/http/handlers/meeting"
	notificationshandler "hrdesk/internal/transport/http/handlers/notifications"
	payrollhandler "hrdesk/internal/transport/http/handlers/payroll"
	reportshandler "hrdesk/internal/transport/http/handlers/reports"
	"hrdesk/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Store   *store.Store
	Metrics *metrics.Collector
	Jobs    *jobs.Service
	Router  http.Handler

	// Reminder is the attendance reminder job, scheduled by Run.
	Reminder jobs.Func

	ready atomic.Bool
}

type Option func(*options)

type options struct {
	clock  core.Clock
	logger *slog.Logger
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock core.Clock) Option {
	return func(o *options) { o.clock = clock }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New builds the store, services and router. The demo fixture is applied
// when cfg.RunSeed is set.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	o := options{clock: core.SystemClock{Location: loc}, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	cryptoSvc, err := crypto.New(cfg.PayslipEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("payslip encryption: %w", err)
	}
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return nil, fmt.Errorf("login rate limit: %w", err)
	}
	var apiLimiter *limiter.Limiter
	if cfg.APIRateLimit != "" {
		if apiLimiter, err = middleware.NewLimiter(cfg.APIRateLimit); err != nil {
			return nil, fmt.Errorf("api rate limit: %w", err)
		}
	}

	clock := o.clock
	app := &App{Config: cfg, Store: store.New(), Metrics: metrics.New(), Jobs: jobs.New(clock)}

	if cfg.RunSeed {
		if err := applySeed(ctx, app.Store, cfg.SeedFile, clock.Now()); err != nil {
			return nil, err
		}
		o.logger.Info("seed applied", "source", seedSource(cfg.SeedFile))
	}

	perms := auth.StaticPermissions{}
	employees := core.NewService(app.Store, clock, cfg.DefaultPassword)
	attendanceSvc := attendance.NewService(app.Store, clock)
	leaveSvc := leave.NewService(app.Store, clock)
	meetingSvc := meeting.NewService(app.Store, clock)
	payrollSvc := payroll.NewService(app.Store, clock, cryptoSvc)
	reportsSvc := reports.NewService(app.Store, payrollSvc, clock)
	authSvc := auth.NewService(app.Store, cfg.JWTSecret, cfg.JWTTTL)
	auditSvc := audit.New(clock)
	notifySvc := notifications.New(clock)
	notifySvc.Mailer = email.New(cfg)
	if cfg.EmailFrom != "" {
		notifySvc.DefaultFrom = cfg.EmailFrom
	}
	app.Reminder = jobs.AttendanceReminder(clock, employees, attendanceSvc, notifySvc)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(o.logger, app.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !app.ready.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(app.Metrics.Snapshot()); err != nil {
				o.logger.Warn("metrics encode failed", "err", err)
			}
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(apiLimiter, middleware.ActorOrIP))
		authhandler.NewHandler(authSvc, employees, auditSvc, loginLimiter, app.Metrics).RegisterRoutes(r)
		corehandler.NewHandler(employees, perms, notifySvc, auditSvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc, perms).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc, employees, perms, notifySvc, auditSvc, app.Metrics).RegisterRoutes(r)
		meetinghandler.NewHandler(meetingSvc, employees, perms, notifySvc, auditSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc, perms, auditSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc, employees, perms, clock).RegisterRoutes(r)
		audithandler.NewHandler(auditSvc, perms).RegisterRoutes(r)
		notificationshandler.NewHandler(notifySvc).RegisterRoutes(r)
		jobshandler.NewHandler(app.Jobs, app.Reminder, perms).RegisterRoutes(r)
	})

	app.Router = router
	app.ready.Store(true)
	return app, nil
}

// Close marks the app as not ready. The store has nothing to release.
func (a *App) Close() {
	a.ready.Store(false)
}

func applySeed(ctx context.Context, st *store.Store, path string, now time.Time) error {
	if path == "" {
		return seed.Demo(ctx, st, now)
	}
	fixture, err := seed.Load(path)
	if err != nil {
		return err
	}
	return seed.Apply(ctx, st, fixture, now)
}

func seedSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger(cfg config.Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, handlerOpts))
}

func Run() error {
	cfg := config.Load()
	logger := NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, WithLogger(logger))
	if err != nil {
		return err
	}
	defer app.Close()
	app.Jobs.Start(ctx, cfg.AttendanceReminderInterval, app.Reminder)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	app.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
