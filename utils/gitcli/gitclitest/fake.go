// Package gitclitest provides an in-memory gitcli.Runner for tests.
package gitclitest

import (
	"context"
	"fmt"
	"sync"
)

// Runner records commits and answers with canned output.
type Runner struct {
	mu sync.Mutex

	Hash   string
	Branch string
	Author string
	Email  string
	Date   string
	Staged []string

	CommitErr error
	ShowErr   error
	ListErr   error

	// Gate, when set, is received from before Commit returns.
	Gate chan struct{}

	messages []string
	dirs     []string
}

// New returns a runner that succeeds with hash abc123.
func New() *Runner {
	return &Runner{
		Hash:   "abc123",
		Branch: "main",
		Author: "Test User",
		Email:  "test@example.com",
		Date:   "Mon Jan 1 10:00:00 2024 +0000",
	}
}

func (r *Runner) Commit(ctx context.Context, message, dir string) (string, error) {
	r.mu.Lock()
	r.messages = append(r.messages, message)
	r.dirs = append(r.dirs, dir)
	gate := r.Gate
	r.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CommitErr != nil {
		return "", r.CommitErr
	}
	return fmt.Sprintf("[%s %s] %s\n 1 file changed\n", r.Branch, r.Hash, firstLine(message)), nil
}

func (r *Runner) Show(_ context.Context, hash, _ string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShowErr != nil {
		return "", r.ShowErr
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s\n", hash, r.Author, r.Email, r.Date), nil
}

func (r *Runner) ListStaged(context.Context, string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return append([]string(nil), r.Staged...), nil
}

// Messages returns every commit message received so far.
func (r *Runner) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Dirs returns the working directory of every commit call.
func (r *Runner) Dirs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.dirs...)
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}
