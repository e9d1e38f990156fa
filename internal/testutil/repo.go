package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// InitRepo creates a git repository in dir and commits one change per
// message, oldest first. Each commit is one minute newer than the previous
// so history order is deterministic.
func InitRepo(t *testing.T, dir string, messages ...string) *git.Repository {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("get worktree: %v", err)
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		name := "file.txt"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(msg+"\n"), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("stage file: %v", err)
		}

		sig := &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := wt.Commit(msg, &git.CommitOptions{
			Author:            sig,
			Committer:         sig,
			AllowEmptyCommits: true,
		}); err != nil {
			t.Fatalf("commit %q: %v", msg, err)
		}
	}

	return repo
}
