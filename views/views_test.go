package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/config"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/steps"
	"github.com/BrianJOC/coco/utils/gitcli/gitclitest"
)

type app struct {
	state  *state.AppState
	runner *gitclitest.Runner
	router *Router
	rt     *component.Runtime
	seen   []component.Msg
}

func newApp(t *testing.T, mutate func(*config.Config)) *app {
	t.Helper()
	cfg := config.Default()
	cfg.UseEmoji = false
	if mutate != nil {
		mutate(cfg)
	}
	st := state.New(cfg)
	runner := gitclitest.New()
	router := NewRouter(Options{State: st, Runner: runner, WorkDir: "/repo"})
	return &app{
		state:  st,
		runner: runner,
		router: router,
		rt:     component.NewRuntime(router, component.NewBus()),
	}
}

func (a *app) press(keys ...tea.KeyMsg) component.Action {
	var last component.Action
	for _, key := range keys {
		last = a.rt.HandleKey(key)
		a.seen = append(a.seen, a.rt.Drain()...)
	}
	return last
}

func (a *app) publish(msg component.Msg) {
	a.rt.Bus().Publish(msg)
	a.seen = append(a.seen, a.rt.Drain()...)
}

// settle waits for the commit task and drains what it published.
func (a *app) settle(t *testing.T) error {
	t.Helper()
	err := a.router.Committing().Wait()
	a.seen = append(a.seen, a.rt.Drain()...)
	return err
}

func (a *app) count(msg component.Msg) int {
	n := 0
	for _, seen := range a.seen {
		if seen == msg {
			n++
		}
	}
	return n
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func text(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// completeBuilder picks fix, scope core and the given summary, leaves body
// and footer alone and confirms the preview.
func (a *app) completeBuilder(summary string) {
	a.press(
		key(tea.KeyRight), key(tea.KeyEnter),
		text("core"), key(tea.KeyEnter),
		text(summary), key(tea.KeyPgDown),
		key(tea.KeyEnter),
		key(tea.KeyEnter),
	)
}

func TestEndToEndCommit(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	require.Equal(t, RouteBuilder, a.router.Route())
	gate := make(chan struct{})
	a.runner.Gate = gate

	a.completeBuilder("handle nil pointer")
	require.Equal(t, RouteCommitting, a.router.Route())
	require.Contains(t, a.router.View(100, 30), "executing")
	close(gate)
	require.NoError(t, a.settle(t))

	require.Equal(t, []string{"fix(core): handle nil pointer"}, a.runner.Messages())
	require.Equal(t, []string{"/repo"}, a.runner.Dirs())
	require.Equal(t, RouteSummary, a.router.Route())
	require.Equal(t, 1, a.count(component.MsgCommittingCommitted))
	require.Equal(t, 0, a.count(component.MsgCommittingFailed))

	record, ok := a.state.CommitResult()
	require.True(t, ok)
	require.Equal(t, "abc123", record.Hash)
	require.Equal(t, "Test User", record.Author)

	view := a.router.View(100, 30)
	require.Contains(t, view, "abc123")
	require.Contains(t, view, "fix(core): handle nil pointer")
	require.Contains(t, view, "Press any key to quit")
}

func TestEndToEndWithoutOptionalFields(t *testing.T) {
	t.Parallel()

	a := newApp(t, func(cfg *config.Config) {
		cfg.AskBody = false
		cfg.AskFooter = false
		cfg.AskScope = false
		cfg.AskBreakingChange = false
	})
	a.press(
		key(tea.KeyEnter),
		text("add flag"), key(tea.KeyEnter),
		key(tea.KeyEnter),
	)
	require.NotEqual(t, RouteBuilder, a.router.Route())
	require.NoError(t, a.settle(t))
	require.Equal(t, []string{"feat: add flag"}, a.runner.Messages())
	require.Equal(t, RouteSummary, a.router.Route())
}

func TestCommitFailureStaysInCommitting(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	a.runner.CommitErr = errors.New("exit status 1")

	a.completeBuilder("handle nil pointer")
	require.Error(t, a.settle(t))

	require.Equal(t, 1, a.count(component.MsgCommittingFailed))
	require.Equal(t, 0, a.count(component.MsgCommittingCommitted))
	require.Equal(t, RouteCommitting, a.router.Route())
	require.True(t, a.router.Committing().Failed())
	require.Contains(t, a.router.View(100, 30), "commit failed")

	_, ok := a.state.CommitResult()
	require.False(t, ok)
}

func TestUnparsableShowFails(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	a.runner.ShowErr = errors.New("bad object")

	a.completeBuilder("handle nil pointer")
	require.Error(t, a.settle(t))
	require.Equal(t, 1, a.count(component.MsgCommittingFailed))
	require.Equal(t, RouteCommitting, a.router.Route())
}

func TestCommitTaskStartsOnce(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	a.completeBuilder("handle nil pointer")
	require.NoError(t, a.settle(t))

	a.publish(component.MsgBuilderDone)
	require.Len(t, a.runner.Messages(), 1)
}

func TestHelpStashesRoute(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	require.Equal(t, component.ActionConsumed, a.press(key(tea.KeyF1)))
	require.Equal(t, RouteHelp, a.router.Route())
	stashed, ok := a.router.Stashed()
	require.True(t, ok)
	require.Equal(t, RouteBuilder, stashed)
	require.Contains(t, a.router.View(100, 40), "Switches")

	a.press(key(tea.KeyEnter))
	require.Equal(t, state.Invalid, a.state.StepStatus(steps.Type.Key()), "builder must not see keys while help is shown")

	a.press(key(tea.KeyEscape))
	require.Equal(t, RouteBuilder, a.router.Route())
	_, ok = a.router.Stashed()
	require.False(t, ok)

	a.press(key(tea.KeyEscape))
	require.Equal(t, RouteBuilder, a.router.Route())
}

func TestPhaseChangeDuringHelpUpdatesStash(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	a.press(key(tea.KeyF1))
	a.publish(component.MsgCommittingDone)
	require.Equal(t, RouteHelp, a.router.Route())

	stashed, ok := a.router.Stashed()
	require.True(t, ok)
	require.Equal(t, RouteSummary, stashed)

	a.press(key(tea.KeyF1))
	require.Equal(t, RouteSummary, a.router.Route())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	require.Equal(t, component.ActionQuit, a.press(key(tea.KeyCtrlC)))

	a.completeBuilder("handle nil pointer")
	require.NoError(t, a.settle(t))

	var copied []string
	a.router.Summary().SetClipboard(func(s string) error {
		copied = append(copied, s)
		return nil
	})
	require.Equal(t, component.ActionConsumed, a.press(text("c")))
	require.Equal(t, []string{"abc123"}, copied)
	require.Contains(t, a.router.View(100, 30), "Hash copied")
	require.Equal(t, component.ActionQuit, a.press(text("q")))
}

func TestCommittingSpinnerTicks(t *testing.T) {
	t.Parallel()

	a := newApp(t, nil)
	c := a.router.Committing()
	before := c.frame
	a.rt.Tick()
	require.NotEqual(t, before, c.frame)
	require.Contains(t, c.View(80, 20), "executing")
}

func TestRouteKeys(t *testing.T) {
	t.Parallel()

	require.Equal(t, "builder", RouteBuilder.String())
	require.Equal(t, "committing", RouteCommitting.String())
	require.Equal(t, "summary", RouteSummary.String())
	require.Equal(t, "help", RouteHelp.String())
}
