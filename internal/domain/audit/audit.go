package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/domain/core"
)

type Event struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actorId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	RequestID  string          `json:"requestId"`
	IP         string          `json:"ip"`
	CreatedAt  time.Time       `json:"createdAt"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
}

type Filter struct {
	Action     string
	EntityType string
	ActorUser  string
}

func (f Filter) matches(evt Event) bool {
	if f.Action != "" && evt.Action != f.Action {
		return false
	}
	if f.EntityType != "" && evt.EntityType != f.EntityType {
		return false
	}
	if f.ActorUser != "" && evt.ActorID != f.ActorUser {
		return false
	}
	return true
}

// Service keeps the audit trail in memory for the life of the process.
type Service struct {
	mu     sync.RWMutex
	clock  core.Clock
	events []Event
}

func New(clock core.Clock) *Service {
	return &Service{clock: clock}
}

func (s *Service) Record(_ context.Context, actorID, action, entityType, entityID, requestID, ip string, before, after any) error {
	var beforeJSON, afterJSON []byte
	if before != nil {
		payload, err := json.Marshal(before)
		if err != nil {
			return err
		}
		beforeJSON = payload
	}
	if after != nil {
		payload, err := json.Marshal(after)
		if err != nil {
			return err
		}
		afterJSON = payload
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  requestID,
		IP:         ip,
		CreatedAt:  s.clock.Now(),
		Before:     beforeJSON,
		After:      afterJSON,
	})
	return nil
}

// List returns matching events newest first along with the total match
// count. Snapshots are omitted unless includeDetails is set.
func (s *Service) List(_ context.Context, filter Filter, includeDetails bool, limit, offset int) ([]Event, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []Event
	for i := len(s.events) - 1; i >= 0; i-- {
		evt := s.events[i]
		if !filter.matches(evt) {
			continue
		}
		if !includeDetails {
			evt.Before, evt.After = nil, nil
		}
		matched = append(matched, evt)
	}
	total := len(matched)
	if offset >= total {
		return []Event{}, total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return matched[offset:end], total
}
