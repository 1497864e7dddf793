package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akravets/dbrain-bot/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "bot.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return repo
}

func TestUpdateOffsetRoundTrip(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	offset, err := repo.GetUpdateOffset(ctx)
	if err != nil {
		t.Fatalf("GetUpdateOffset failed: %v", err)
	}
	if offset != 0 {
		t.Errorf("fresh store offset = %d, want 0", offset)
	}

	if err := repo.SetUpdateOffset(ctx, 42); err != nil {
		t.Fatalf("SetUpdateOffset failed: %v", err)
	}
	// Overwrite, not append.
	if err := repo.SetUpdateOffset(ctx, 100); err != nil {
		t.Fatalf("SetUpdateOffset failed: %v", err)
	}

	offset, err = repo.GetUpdateOffset(ctx)
	if err != nil {
		t.Fatalf("GetUpdateOffset failed: %v", err)
	}
	if offset != 100 {
		t.Errorf("offset = %d, want 100", offset)
	}
}

func TestOffsetSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bot.db")
	ctx := context.Background()

	repo, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	if err := repo.SetUpdateOffset(ctx, 7); err != nil {
		t.Fatalf("SetUpdateOffset failed: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	repo, err = NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer repo.Close()

	offset, err := repo.GetUpdateOffset(ctx)
	if err != nil {
		t.Fatalf("GetUpdateOffset failed: %v", err)
	}
	if offset != 7 {
		t.Errorf("offset after reopen = %d, want 7", offset)
	}
}

func TestArchiveSession(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	count, err := repo.CountArchivedSessions(ctx)
	if err != nil {
		t.Fatalf("CountArchivedSessions failed: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh store archive count = %d, want 0", count)
	}

	rec := SessionRecord{
		UserID: 123,
		Domain: domain.DomainBusiness,
		Transcript: []domain.Turn{
			{Role: domain.RoleUser, Content: "grow revenue"},
			{Role: domain.RoleAssistant, Content: "MAP_CREATED hypothesis/business/growth.md"},
		},
		CompletedAt: time.Now(),
	}
	if err := repo.ArchiveSession(ctx, rec); err != nil {
		t.Fatalf("ArchiveSession failed: %v", err)
	}
	if err := repo.ArchiveSession(ctx, rec); err != nil {
		t.Fatalf("second ArchiveSession failed: %v", err)
	}

	count, err = repo.CountArchivedSessions(ctx)
	if err != nil {
		t.Fatalf("CountArchivedSessions failed: %v", err)
	}
	if count != 2 {
		t.Errorf("archive count = %d, want 2", count)
	}
}

func TestArchiveEmptyTranscript(t *testing.T) {
	repo := newTestStore(t)

	rec := SessionRecord{UserID: 1, Domain: domain.DomainPersonal, CompletedAt: time.Now()}
	if err := repo.ArchiveSession(context.Background(), rec); err != nil {
		t.Fatalf("ArchiveSession with empty transcript failed: %v", err)
	}
}

func TestPing(t *testing.T) {
	repo := newTestStore(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
