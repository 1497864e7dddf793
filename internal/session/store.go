// Package session provides the in-memory per-user conversation store.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/akravets/dbrain-bot/internal/domain"
)

// Store owns all live sessions, keyed by user ID. Session values handed out
// by Get are copies; only Create, AppendTurn, SetState and Clear mutate the
// stored state. State is process-local and does not survive a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*entry

	// Per-user execution locks. An entry outlives the session it guards so
	// that a turn racing a cancel still serializes against the next /new.
	lockMu sync.Mutex
	locks  map[int64]*sync.Mutex
}

type entry struct {
	sess domain.Session

	// cancel aborts the in-flight processor call for this session, when
	// cancellation propagation is enabled. Nil when no call is outstanding.
	cancel context.CancelFunc
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*entry),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Acquire takes the execution lock for a user and returns its release func.
// The orchestrator holds the lock across append-turn + processor call +
// append-result, so two events from the same user can never race one
// session's history. Different users never contend.
func (s *Store) Acquire(userID int64) func() {
	s.lockMu.Lock()
	mu, ok := s.locks[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[userID] = mu
	}
	s.lockMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// Create starts a new session for a user, replacing any existing one.
func (s *Store) Create(userID int64, d domain.MapDomain) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, exists := s.sessions[userID]; exists {
		if old.cancel != nil {
			old.cancel()
		}
		slog.Info("Replacing existing session", "user_id", userID, "old_domain", old.sess.Domain)
	}
	s.sessions[userID] = &entry{
		sess: domain.Session{
			UserID:    userID,
			Domain:    d,
			State:     domain.StateActive,
			StartedAt: time.Now(),
		},
	}
	slog.Info("Session created", "user_id", userID, "domain", d)
}

// Get returns a copy of the user's session, if one exists. The history
// slice is copied so callers cannot mutate stored state.
func (s *Store) Get(userID int64) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[userID]
	if !ok {
		return domain.Session{}, false
	}
	sess := e.sess
	sess.History = append([]domain.Turn(nil), e.sess.History...)
	return sess, true
}

// AppendTurn appends a turn to the user's session history. It is a logged
// no-op when no session exists; callers must create before appending.
func (s *Store) AppendTurn(userID int64, turn domain.Turn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[userID]
	if !ok {
		slog.Warn("AppendTurn without session", "user_id", userID, "role", turn.Role)
		return false
	}
	e.sess.History = append(e.sess.History, turn)
	return true
}

// SetState updates the session's state. No-op when no session exists.
func (s *Store) SetState(userID int64, state domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[userID]; ok {
		e.sess.State = state
	}
}

// Clear removes the user's session and reports whether one existed.
// The boolean makes terminal transitions idempotent: only the caller that
// actually removed the session runs its completion side effects.
func (s *Store) Clear(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[userID]
	if !ok {
		return false
	}
	if e.cancel != nil {
		e.cancel()
	}
	delete(s.sessions, userID)
	slog.Info("Session cleared", "user_id", userID, "turns", len(e.sess.History))
	return true
}

// SetInFlight records the cancel func of an outstanding processor call so
// an explicit cancel event can propagate to it. No-op without a session.
func (s *Store) SetInFlight(userID int64, cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[userID]; ok {
		e.cancel = cancel
	}
}

// ClearInFlight forgets the in-flight cancel func after a call resolves.
func (s *Store) ClearInFlight(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[userID]; ok {
		e.cancel = nil
	}
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
