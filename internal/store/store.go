// Package store holds every record of the running process in memory.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/meeting"
)

var ErrReadOnlyScope = errors.New("store: write attempted inside read-only scope")

// Store is the single source of truth. All access is serialized by mu;
// WithinReadWrite and WithinReadOnly let callers group several calls under
// one acquisition.
type Store struct {
	mu         sync.RWMutex
	employees  map[string]core.Employee
	attendance []attendance.Record
	meetings   []meeting.Meeting
	leaves     []leave.Request
	newID      func() string
}

func New() *Store {
	return &Store{
		employees: map[string]core.Employee{},
		newID:     uuid.NewString,
	}
}

type scopeKey struct{}

type scope struct {
	store *Store
	write bool
}

func (s *Store) scopeFrom(ctx context.Context) (scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(scope)
	if !ok || sc.store != s {
		return scope{}, false
	}
	return sc, true
}

// WithinReadWrite runs fn holding the write lock. Store calls made with the
// context passed to fn do not lock again.
func (s *Store) WithinReadWrite(ctx context.Context, fn func(ctx context.Context) error) error {
	if sc, ok := s.scopeFrom(ctx); ok {
		if !sc.write {
			return ErrReadOnlyScope
		}
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, scopeKey{}, scope{store: s, write: true}))
}

// WithinReadOnly runs fn holding the read lock.
func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := s.scopeFrom(ctx); ok {
		return fn(ctx)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(context.WithValue(ctx, scopeKey{}, scope{store: s}))
}

func (s *Store) rlock(ctx context.Context) func() {
	if _, ok := s.scopeFrom(ctx); ok {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock(ctx context.Context) (func(), error) {
	if sc, ok := s.scopeFrom(ctx); ok {
		if !sc.write {
			return nil, ErrReadOnlyScope
		}
		return func() {}, nil
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}
