// Package gitcli runs the handful of git commands coco needs and parses
// their output.
package gitcli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// ShowFormat selects hash, author name, author email and date, one per line.
const ShowFormat = "%H%n%an%n%ae%n%ad"

// Runner executes git operations in a working directory.
type Runner interface {
	Commit(ctx context.Context, message, dir string) (string, error)
	Show(ctx context.Context, hash, dir string) (string, error)
	ListStaged(ctx context.Context, dir string) ([]string, error)
}

// CommitInfo is the metadata printed by `git show`.
type CommitInfo struct {
	Hash        string
	Author      string
	AuthorEmail string
	Date        string
}

// CLI shells out to the git binary.
type CLI struct {
	// Binary defaults to "git".
	Binary string
}

// New returns a CLI runner using git from PATH.
func New() *CLI {
	return &CLI{Binary: "git"}
}

// Commit runs `git commit -m message` and returns stdout.
func (c *CLI) Commit(ctx context.Context, message, dir string) (string, error) {
	return c.run(ctx, "commit", dir, "commit", "-m", message)
}

// Show returns the ShowFormat lines for hash.
func (c *CLI) Show(ctx context.Context, hash, dir string) (string, error) {
	return c.run(ctx, "show", dir, "--no-pager", "show", hash, "--no-color", "-s", "--pretty="+ShowFormat)
}

// ListStaged returns the paths present in the index but not in HEAD.
func (c *CLI) ListStaged(ctx context.Context, dir string) ([]string, error) {
	out, err := c.run(ctx, "diff", dir, "--no-pager", "diff", "--name-only", "--cached")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

func (c *CLI) run(ctx context.Context, step, dir string, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	binary := c.Binary
	if binary == "" {
		binary = "git"
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.String(), CommandError{Step: step, Err: err, Stderr: stderr.String()}
	}
	return stdout.String(), nil
}

// ParseCommitOutput extracts the hash and branch from the `[branch hash] ...`
// summary line printed by git commit.
func ParseCommitOutput(out string) (hash, branch string, err error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}
		end := strings.Index(line, "]")
		if end < 0 {
			continue
		}
		fields := strings.Fields(line[1:end])
		if len(fields) < 2 {
			continue
		}
		return fields[len(fields)-1], fields[0], nil
	}
	return "", "", ParseError{Step: "commit", Reason: "no [branch hash] line", Output: out}
}

// ParseShowOutput reads the four ShowFormat lines.
func ParseShowOutput(out string) (CommitInfo, error) {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 4 {
		return CommitInfo{}, ParseError{Step: "show", Reason: "expected 4 lines", Output: out}
	}
	return CommitInfo{
		Hash:        strings.TrimSpace(lines[0]),
		Author:      strings.TrimSpace(lines[1]),
		AuthorEmail: strings.TrimSpace(lines[2]),
		Date:        strings.TrimSpace(lines[3]),
	}, nil
}
