// Package views assembles the top-level routes of the application and the
// router that switches between them.
package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/logger"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/utils/gitcli"
	"github.com/BrianJOC/coco/views/builder"
	"github.com/BrianJOC/coco/views/theme"
)

// Route is a mutually exclusive top-level mode.
type Route int

const (
	RouteBuilder Route = iota
	RouteCommitting
	RouteSummary
	RouteHelp
)

// Key is the child name the route is stored under.
func (r Route) Key() string {
	switch r {
	case RouteBuilder:
		return "builder"
	case RouteCommitting:
		return "committing"
	case RouteSummary:
		return "summary"
	case RouteHelp:
		return "help"
	default:
		return "unknown"
	}
}

func (r Route) String() string {
	return r.Key()
}

// Options wires the router to its collaborators.
type Options struct {
	State   *state.AppState
	Runner  gitcli.Runner
	WorkDir string
	Context context.Context
	Styles  *theme.Styles
}

// Router is the root of the component tree. Exactly one route child is
// active; Help remembers the route it replaced.
type Router struct {
	component.Base

	route Route
	stash *Route

	builder    *builder.Section
	committing *Committing
	summary    *Summary
	help       *Help
}

func NewRouter(opts Options) *Router {
	st := opts.State
	if st == nil {
		st = state.New(nil)
	}
	styles := theme.New(st.Config())
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	r := &Router{
		route:      RouteBuilder,
		builder:    builder.NewSection(st, styles),
		committing: NewCommitting(ctx, st, opts.Runner, opts.WorkDir, styles),
		summary:    NewSummary(st, styles),
		help:       NewHelp(styles),
	}
	r.Children().
		Add(RouteBuilder.Key(), r.builder).
		Add(RouteCommitting.Key(), r.committing).
		Add(RouteSummary.Key(), r.summary).
		Add(RouteHelp.Key(), r.help)
	r.SetActive(true)
	r.Children().Activate(r.route.Key())
	return r
}

// Route returns the route currently drawn.
func (r *Router) Route() Route {
	return r.route
}

// Stashed returns the route Help will return to.
func (r *Router) Stashed() (Route, bool) {
	if r.stash == nil {
		return 0, false
	}
	return *r.stash, true
}

func (r *Router) Builder() *builder.Section {
	return r.builder
}

func (r *Router) Committing() *Committing {
	return r.committing
}

func (r *Router) Summary() *Summary {
	return r.summary
}

func (r *Router) OnKey(key tea.KeyMsg) component.Action {
	switch key.String() {
	case "ctrl+c":
		return component.ActionQuit
	case "f1":
		r.Publish(component.MsgHelpToggle)
		return component.ActionConsumed
	case "esc":
		if r.route == RouteHelp {
			r.Publish(component.MsgHelpToggle)
			return component.ActionConsumed
		}
	}
	return component.ActionNone
}

func (r *Router) OnMessage(msg component.Msg) {
	switch msg {
	case component.MsgBuilderDone:
		r.transition(RouteCommitting)
	case component.MsgCommittingDone:
		r.transition(RouteSummary)
	case component.MsgHelpToggle:
		r.toggleHelp()
	}
}

// transition moves to a phase route. While Help is shown the stash is
// updated instead so closing Help lands on the new phase.
func (r *Router) transition(to Route) {
	if r.route == RouteHelp {
		r.stash = &to
		return
	}
	r.show(to)
}

func (r *Router) toggleHelp() {
	if r.route != RouteHelp {
		prev := r.route
		r.stash = &prev
		r.show(RouteHelp)
		return
	}
	if r.stash == nil {
		return
	}
	prev := *r.stash
	r.stash = nil
	r.show(prev)
}

func (r *Router) show(route Route) {
	logger.Debug("route %s -> %s", r.route, route)
	r.route = route
	r.Children().Activate(route.Key())
}

func (r *Router) View(width, height int) string {
	child, ok := r.Children().Get(r.route.Key())
	if !ok {
		return ""
	}
	return child.View(width, height)
}
