package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/BrianJOC/coco/committask"
	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/utils/gitcli"
	"github.com/BrianJOC/coco/views/theme"
)

// Committing starts the commit task once the builder is done and waits for
// its outcome. A failed commit leaves the route in place.
type Committing struct {
	component.Base

	ctx    context.Context
	state  *state.AppState
	runner gitcli.Runner
	dir    string
	styles theme.Styles

	frames  []string
	frame   int
	started bool
	failed  bool
	done    <-chan error
}

func NewCommitting(ctx context.Context, st *state.AppState, runner gitcli.Runner, dir string, styles theme.Styles) *Committing {
	return &Committing{
		ctx:    ctx,
		state:  st,
		runner: runner,
		dir:    dir,
		styles: styles,
		frames: spinner.Dot.Frames,
	}
}

// Failed reports whether the commit task published a failure.
func (c *Committing) Failed() bool {
	return c.failed
}

// Wait blocks until the spawned task returns. It returns nil when no task
// was started.
func (c *Committing) Wait() error {
	if c.done == nil {
		return nil
	}
	return <-c.done
}

func (c *Committing) OnMessage(msg component.Msg) {
	switch msg {
	case component.MsgBuilderDone:
		if c.started {
			return
		}
		c.started = true
		c.done = committask.Spawn(c.ctx, c.state, c.runner, c.dir, c.Publisher())
	case component.MsgCommittingCommitted:
		c.Publish(component.MsgCommittingDone)
	case component.MsgCommittingFailed:
		c.failed = true
	}
}

func (c *Committing) OnTick() {
	if len(c.frames) == 0 {
		return
	}
	c.frame = (c.frame + 1) % len(c.frames)
}

func (c *Committing) View(width, _ int) string {
	status := c.styles.Accent.Render(c.frames[c.frame]) + " executing " + c.styles.Muted.Render("git commit")
	if c.failed {
		status = c.styles.Error.Render("commit failed") + c.styles.Muted.Render(" see the log for details, ctrl+c to quit")
	}
	return strings.Join([]string{
		c.styles.Header(width),
		"",
		status,
	}, "\n")
}
