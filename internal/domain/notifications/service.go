package notifications

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/domain/core"
)

var ErrNotFound = errors.New("notifications: not found")

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ReadAt    time.Time `json:"readAt,omitzero"`
	CreatedAt time.Time `json:"createdAt"`
}

// Mailer delivers an email copy of a notification.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// Service is a per-user inbox held in memory.
type Service struct {
	mu    sync.RWMutex
	clock core.Clock
	inbox map[string][]Notification

	Mailer      Mailer
	DefaultFrom string
}

func New(clock core.Clock) *Service {
	return &Service{clock: clock, inbox: map[string][]Notification{}, DefaultFrom: "no-reply@hrdesk.local"}
}

// Create stores the notification and, with a Mailer configured, emails a
// copy when the user id is an address. Mail failures are logged only.
func (s *Service) Create(ctx context.Context, userID, ntype, title, body string) error {
	if userID == "" {
		return nil
	}
	s.mu.Lock()
	s.inbox[userID] = append(s.inbox[userID], Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Body:      body,
		CreatedAt: s.clock.Now(),
	})
	s.mu.Unlock()

	if s.Mailer != nil && strings.Contains(userID, "@") {
		if err := s.Mailer.Send(ctx, s.DefaultFrom, userID, title, body); err != nil {
			slog.Warn("notification email failed", "userId", userID, "type", ntype, "err", err)
		}
	}
	return nil
}

// List returns the user's notifications newest first.
func (s *Service) List(_ context.Context, userID string, limit, offset int) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.inbox[userID]
	out := make([]Notification, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	if offset >= len(out) {
		return []Notification{}
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *Service) Count(_ context.Context, userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inbox[userID])
}

func (s *Service) Unread(_ context.Context, userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unread := 0
	for _, n := range s.inbox[userID] {
		if n.ReadAt.IsZero() {
			unread++
		}
	}
	return unread
}

func (s *Service) MarkRead(_ context.Context, userID, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.inbox[userID]
	for i := range items {
		if items[i].ID == notificationID {
			if items[i].ReadAt.IsZero() {
				items[i].ReadAt = s.clock.Now()
			}
			return nil
		}
	}
	return ErrNotFound
}
