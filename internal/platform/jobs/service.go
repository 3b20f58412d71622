// Package jobs runs background work on a single worker and keeps a short
// history of runs in memory.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/domain/core"
)

const (
	JobAttendanceReminder = "attendance_reminder"

	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"

	historyLimit = 100
)

type Run struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Details     any        `json:"details,omitempty"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type Func func(context.Context) (any, error)

type job struct {
	Type string
	Run  Func
}

type Service struct {
	clock core.Clock
	queue chan job

	mu   sync.Mutex
	runs []Run
}

func New(clock core.Clock) *Service {
	return &Service{clock: clock, queue: make(chan job, 128)}
}

// Start launches the worker and, when interval is positive, the attendance
// reminder schedule. Both stop with ctx.
func (s *Service) Start(ctx context.Context, interval time.Duration, reminder Func) {
	go s.worker(ctx)
	if interval > 0 && reminder != nil {
		go s.schedule(ctx, interval, JobAttendanceReminder, reminder)
	}
}

// Enqueue hands the job to the worker; it is dropped when the queue is full.
func (s *Service) Enqueue(jobType string, run Func) bool {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
		return true
	default:
		slog.Warn("job queue full", "jobType", jobType)
		return false
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run Func) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// Runs returns the recorded runs, newest first.
func (s *Service) Runs() []Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Run, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		out = append(out, s.runs[i])
	}
	return out
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	id := s.begin(j.Type)
	details, err := j.Run(ctx)
	s.finish(id, details, err)
	return details, err
}

func (s *Service) begin(jobType string) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, Run{ID: id, Type: jobType, Status: StatusRunning, StartedAt: s.clock.Now()})
	if len(s.runs) > historyLimit {
		s.runs = s.runs[len(s.runs)-historyLimit:]
	}
	return id
}

func (s *Service) finish(id string, details any, err error) {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.runs {
		if s.runs[i].ID != id {
			continue
		}
		s.runs[i].Status = StatusCompleted
		s.runs[i].Details = details
		s.runs[i].CompletedAt = &now
		if err != nil {
			s.runs[i].Status = StatusFailed
			s.runs[i].Error = err.Error()
		}
		return
	}
}

func (s *Service) schedule(ctx context.Context, interval time.Duration, jobType string, run Func) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(jobType, run)
		}
	}
}
