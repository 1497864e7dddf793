// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	BotToken       string
	AllowedUserIDs []int64
	AllowAllUsers  bool

	ProcessorAddr string
	VaultPath     string
	DBPath        string
	Port          string

	HeartbeatInterval time.Duration
	PollTimeout       time.Duration
	CancelInFlight    bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	allowed, err := parseUserIDs(getEnv("ALLOWED_USER_IDS", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		BotToken:          getEnv("BOT_TOKEN", ""),
		AllowedUserIDs:    allowed,
		AllowAllUsers:     getEnvBool("ALLOW_ALL_USERS", false),
		ProcessorAddr:     getEnv("PROCESSOR_ADDR", "localhost:50051"),
		VaultPath:         getEnv("VAULT_PATH", "./vault"),
		DBPath:            getEnv("DB_PATH", "./data/bot.db"),
		Port:              getEnv("PORT", "8080"),
		HeartbeatInterval: time.Duration(getEnvInt("HEARTBEAT_INTERVAL_SECONDS", 30)) * time.Second,
		PollTimeout:       time.Duration(getEnvInt("POLL_TIMEOUT_SECONDS", 30)) * time.Second,
		CancelInFlight:    getEnvBool("CANCEL_IN_FLIGHT", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN cannot be empty")
	}
	if c.ProcessorAddr == "" {
		return fmt.Errorf("PROCESSOR_ADDR cannot be empty")
	}
	if c.VaultPath == "" {
		return fmt.Errorf("VAULT_PATH cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("HEARTBEAT_INTERVAL_SECONDS must be > 0")
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("POLL_TIMEOUT_SECONDS must be > 0")
	}
	if !c.AllowAllUsers && len(c.AllowedUserIDs) == 0 {
		return fmt.Errorf("ALLOWED_USER_IDS cannot be empty unless ALLOW_ALL_USERS is set")
	}
	return nil
}

// parseUserIDs parses a comma-separated ID list, tolerating blanks.
func parseUserIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ALLOWED_USER_IDS entry %q is not an integer", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
