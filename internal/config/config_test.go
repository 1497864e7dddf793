package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ALLOWED_USER_IDS", "11, 22,33")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ProcessorAddr != "localhost:50051" {
		t.Errorf("ProcessorAddr = %q", cfg.ProcessorAddr)
	}
	if cfg.HeartbeatInterval != 30*time.Second {
		t.Errorf("HeartbeatInterval = %v", cfg.HeartbeatInterval)
	}
	if len(cfg.AllowedUserIDs) != 3 || cfg.AllowedUserIDs[1] != 22 {
		t.Errorf("AllowedUserIDs = %v", cfg.AllowedUserIDs)
	}
	if cfg.CancelInFlight {
		t.Error("CancelInFlight should default to false")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("ALLOWED_USER_IDS", "11")

	if _, err := Load(); err == nil {
		t.Error("expected error with empty BOT_TOKEN")
	}
}

func TestLoadRequiresAllowList(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ALLOWED_USER_IDS", "")
	t.Setenv("ALLOW_ALL_USERS", "")

	if _, err := Load(); err == nil {
		t.Error("expected error with no allow-list and ALLOW_ALL_USERS unset")
	}

	t.Setenv("ALLOW_ALL_USERS", "true")
	if _, err := Load(); err != nil {
		t.Errorf("Load failed with ALLOW_ALL_USERS: %v", err)
	}
}

func TestLoadRejectsBadUserID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ALLOWED_USER_IDS", "11,notanumber")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric user ID")
	}
}

func TestParseUserIDs(t *testing.T) {
	ids, err := parseUserIDs(" 1 ,, 2,3 ")
	if err != nil {
		t.Fatalf("parseUserIDs failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Errorf("ids = %v", ids)
	}
}
