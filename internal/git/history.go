package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Backend names accepted by NewReader.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// Reader returns commit subject lines, most recent first.
// Lines are trimmed and blank lines are dropped.
type Reader interface {
	Summaries(ctx context.Context) ([]string, error)
}

// NewReader returns the reader for backend, reading the repository at repoPath
// (the current directory when empty).
func NewReader(backend, repoPath string) (Reader, error) {
	switch backend {
	case "", BackendCLI:
		return &CLIReader{RepoPath: repoPath}, nil
	case BackendGoGit:
		return &GoGitReader{RepoPath: repoPath}, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q (expected %s or %s)", backend, BackendCLI, BackendGoGit)
	}
}

// CommandFunc builds the command used to run git. It matches exec.CommandContext.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// CLIReader reads history with `git log --pretty=format:%s`.
type CLIReader struct {
	RepoPath string
	// Command overrides how the git process is built. Nil means exec.CommandContext.
	Command CommandFunc
}

// logArgs are the arguments passed to git to list one subject per commit.
var logArgs = []string{"log", "--pretty=format:%s"}

// Summaries runs git log and waits for it to finish. There is no timeout;
// ctx is the only way to abandon a hung git process.
func (r *CLIReader) Summaries(ctx context.Context) ([]string, error) {
	command := r.Command
	if command == nil {
		command = exec.CommandContext
	}

	cmd := command(ctx, "git", logArgs...)
	if r.RepoPath != "" {
		cmd.Dir = r.RepoPath
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logDebug("[git] running git %s in %q", strings.Join(logArgs, " "), r.RepoPath)
	out, err := cmd.Output()
	if err != nil {
		return nil, historyError("git log", err, stderr.String())
	}

	summaries := splitSummaries(out)
	logDebug("[git] git log returned %d summaries", len(summaries))
	return summaries, nil
}

// historyError wraps a failed git invocation, keeping git's own diagnostic.
func historyError(op string, err error, stderr string) error {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("%w: %s: %w: %s", ErrHistoryUnavailable, op, err, msg)
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return fmt.Errorf("%w: %s: git executable not found: %w", ErrHistoryUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrHistoryUnavailable, op, err)
}

// splitSummaries turns raw git log output into trimmed, non-empty lines.
// Lines of any length are kept.
func splitSummaries(out []byte) []string {
	summaries := []string{}
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			summaries = append(summaries, line)
		}
	}
	return summaries
}

// GoGitReader reads history through go-git without a git binary.
type GoGitReader struct {
	RepoPath string
}

// Summaries walks the log from HEAD in committer-time order, newest first,
// and returns the subject of every commit message.
func (r *GoGitReader) Summaries(ctx context.Context) ([]string, error) {
	repo, err := openRepo(r.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%w: getting HEAD reference: %w", ErrHistoryUnavailable, err)
	}

	iter, err := repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: reading log from %s: %w", ErrHistoryUnavailable, head.Hash(), err)
	}
	defer iter.Close()

	summaries := []string{}
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if subject := Subject(c.Message); subject != "" {
			summaries = append(summaries, subject)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: iterating log: %w", ErrHistoryUnavailable, err)
	}

	logDebug("[git] go-git log returned %d summaries", len(summaries))
	return summaries, nil
}

// Subject returns the subject of a commit message the way git's %s
// placeholder does: the first paragraph with its lines joined by spaces.
func Subject(message string) string {
	var parts []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
