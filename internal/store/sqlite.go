package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const offsetKey = "telegram_update_offset"

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS bot_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_archive (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		domain TEXT NOT NULL,
		turns INTEGER NOT NULL,
		transcript_json TEXT NOT NULL,
		completed_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_session_archive_user ON session_archive(user_id, completed_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetUpdateOffset returns the last processed Telegram update ID.
func (s *SQLiteStore) GetUpdateOffset(ctx context.Context) (int64, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM bot_state WHERE key = ?`, offsetKey)

	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scan update offset: %w", err)
	}

	var offset int64
	if _, err := fmt.Sscan(value, &offset); err != nil {
		return 0, fmt.Errorf("parse update offset %q: %w", value, err)
	}
	return offset, nil
}

// SetUpdateOffset records the last processed Telegram update ID.
func (s *SQLiteStore) SetUpdateOffset(ctx context.Context, offset int64) error {
	query := `
	INSERT INTO bot_state (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, offsetKey, fmt.Sprint(offset)); err != nil {
		return fmt.Errorf("set update offset: %w", err)
	}
	return nil
}

// ArchiveSession appends a completed session to the audit archive.
func (s *SQLiteStore) ArchiveSession(ctx context.Context, rec SessionRecord) error {
	transcript, err := json.Marshal(rec.Transcript)
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}

	query := `
	INSERT INTO session_archive (user_id, domain, turns, transcript_json, completed_at)
	VALUES (?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		rec.UserID, string(rec.Domain), len(rec.Transcript),
		string(transcript), rec.CompletedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("archive session: %w", err)
	}
	return nil
}

// CountArchivedSessions returns the total number of archived sessions.
func (s *SQLiteStore) CountArchivedSessions(ctx context.Context) (int64, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM session_archive`)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count archived sessions: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
