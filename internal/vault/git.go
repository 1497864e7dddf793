// Package vault wraps git operations on the hypothesis vault.
package vault

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const gitTimeout = 60 * time.Second

// Git commits and pushes vault changes. All operations are best-effort from
// the orchestrator's perspective: a failed push never rolls back a session
// outcome already shown to the user.
type Git struct {
	dir    string
	logger *slog.Logger
}

// NewGit creates a git gateway rooted at the vault directory.
func NewGit(dir string, logger *slog.Logger) *Git {
	if logger == nil {
		logger = slog.Default()
	}
	return &Git{dir: dir, logger: logger}
}

// CommitAndPush stages everything, commits with the given message and pushes.
// A clean tree ("nothing to commit") is success, not an error.
func (g *Git) CommitAndPush(ctx context.Context, message string) error {
	if _, err := g.run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	out, err := g.run(ctx, "commit", "-m", message)
	if err != nil {
		if strings.Contains(out, "nothing to commit") {
			g.logger.Info("Vault clean, nothing to commit", "dir", g.dir)
			return nil
		}
		return fmt.Errorf("git commit: %w", err)
	}

	if _, err := g.run(ctx, "push"); err != nil {
		return fmt.Errorf("git push: %w", err)
	}

	g.logger.Info("Vault committed and pushed", "dir", g.dir, "message", message)
	return nil
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
