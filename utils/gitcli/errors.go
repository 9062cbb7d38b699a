package gitcli

import (
	"fmt"
	"strings"
)

// CommandError wraps a failed git invocation.
type CommandError struct {
	Step   string
	Err    error
	Stderr string
}

func (e CommandError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("git %s failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("git %s failed: %v (%s)", e.Step, e.Err, stderr)
}

func (e CommandError) Unwrap() error {
	return e.Err
}

// ParseError reports git output that did not have the expected shape.
type ParseError struct {
	Step   string
	Reason string
	Output string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parsing git %s output: %s", e.Step, e.Reason)
}
