// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/akravets/dbrain-bot/internal/domain"
)

// SessionRecord is the audit entry written when a session completes.
type SessionRecord struct {
	UserID      int64
	Domain      domain.MapDomain
	Transcript  []domain.Turn
	CompletedAt time.Time
}

// Repository defines persistence for bot state that must survive restarts.
// Live session state deliberately does not: only the Telegram update offset
// and the completed-session archive are durable.
type Repository interface {
	// GetUpdateOffset returns the last processed Telegram update ID,
	// or 0 when none has been recorded.
	GetUpdateOffset(ctx context.Context) (int64, error)

	// SetUpdateOffset records the last processed Telegram update ID.
	SetUpdateOffset(ctx context.Context, offset int64) error

	// ArchiveSession appends a completed session to the audit archive.
	ArchiveSession(ctx context.Context, rec SessionRecord) error

	// CountArchivedSessions returns the total number of archived sessions.
	CountArchivedSessions(ctx context.Context) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
