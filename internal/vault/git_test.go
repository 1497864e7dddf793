package vault

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupVault creates a working repo wired to a local bare remote so push
// has somewhere to go.
func setupVault(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	root := t.TempDir()
	remote := filepath.Join(root, "remote.git")
	work := filepath.Join(root, "vault")

	cmds := [][]string{
		{"init", "--bare", remote},
		{"init", work},
		{"-C", work, "config", "user.email", "bot@test"},
		{"-C", work, "config", "user.name", "bot"},
		{"-C", work, "remote", "add", "origin", remote},
	}
	for _, args := range cmds {
		if out, err := exec.Command("git", args...).CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}

	// Seed an initial commit so push has an upstream branch to create.
	if err := os.WriteFile(filepath.Join(work, ".gitkeep"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	for _, args := range [][]string{
		{"-C", work, "add", "-A"},
		{"-C", work, "commit", "-m", "init"},
		{"-C", work, "push", "-u", "origin", "HEAD"},
	} {
		if out, err := exec.Command("git", args...).CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	return work
}

func TestCommitAndPush(t *testing.T) {
	work := setupVault(t)
	g := NewGit(work, nil)

	path := filepath.Join(work, "hypothesis", "business")
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "growth.md"), []byte("# map\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := g.CommitAndPush(context.Background(), "feat: create hypothesis map"); err != nil {
		t.Fatalf("CommitAndPush failed: %v", err)
	}

	out, err := exec.Command("git", "-C", work, "log", "-1", "--format=%s").Output()
	if err != nil {
		t.Fatalf("git log failed: %v", err)
	}
	if got := string(out); got != "feat: create hypothesis map\n" {
		t.Errorf("last commit subject = %q", got)
	}
}

func TestCommitAndPushCleanTree(t *testing.T) {
	work := setupVault(t)
	g := NewGit(work, nil)

	// Nothing changed since setup's push; this must be a no-op success.
	if err := g.CommitAndPush(context.Background(), "feat: create hypothesis map"); err != nil {
		t.Errorf("CommitAndPush on a clean tree failed: %v", err)
	}
}

func TestCommitAndPushOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	g := NewGit(t.TempDir(), nil)

	if err := g.CommitAndPush(context.Background(), "msg"); err == nil {
		t.Error("expected error outside a git repository")
	}
}
