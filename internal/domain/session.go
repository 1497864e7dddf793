package domain

import (
	"time"
)

// Role tags a conversation turn by its author.
type Role string

const (
	// RoleUser marks a turn written by the user.
	RoleUser Role = "user"
	// RoleAssistant marks a turn produced by the processor.
	RoleAssistant Role = "assistant"
)

// Turn is one message exchanged within a session. Immutable once appended.
type Turn struct {
	Role    Role
	Content string
}

// SessionState describes where a session is in the creation flow.
type SessionState string

const (
	// StateActive means the session is awaiting the next user turn.
	StateActive SessionState = "active"
	// StateProcessing means an external call is in flight for this session.
	// It is a sub-state of StateActive and is not addressable by events.
	StateProcessing SessionState = "processing"
)

// Session is the live multi-turn map creation context for one user.
// At most one session exists per user; creating a new one replaces it.
// History is append-only and must never be reordered, which keeps
// continuation prompts deterministic.
type Session struct {
	UserID    int64
	Domain    MapDomain
	State     SessionState
	History   []Turn
	StartedAt time.Time
}
