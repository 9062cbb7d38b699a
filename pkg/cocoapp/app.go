// Package cocoapp hosts the commit wizard inside a Bubble Tea program. It
// owns the component runtime and feeds it terminal input, bus wake-ups and
// clock ticks behind a small lifecycle API.
package cocoapp

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/logger"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/utils/gitcli"
	"github.com/BrianJOC/coco/views"
)

const tickInterval = 100 * time.Millisecond

var (
	// ErrNoRunner indicates no git runner was supplied when constructing an App.
	ErrNoRunner = errors.New("cocoapp: a git runner is required")
	// ErrProgramRunning reports that Start was invoked while the program is already running.
	ErrProgramRunning = errors.New("cocoapp: program already running")
)

// Config controls how an App should be assembled.
type Config struct {
	State          *state.AppState
	Runner         gitcli.Runner
	WorkDir        string
	ProgramOptions []tea.ProgramOption
}

// Option mutates Config during construction.
type Option func(*Config)

// WithState sets the shared state the wizard fills in.
func WithState(st *state.AppState) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.State = st
	}
}

// WithRunner sets the git runner used by the commit task.
func WithRunner(runner gitcli.Runner) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.Runner = runner
	}
}

// WithWorkDir sets the repository directory git commands run in.
func WithWorkDir(dir string) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.WorkDir = dir
	}
}

// WithProgramOptions appends tea.Program options.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.ProgramOptions = append(cfg.ProgramOptions, opts...)
	}
}

// App runs the wizard.
type App struct {
	cfg      Config
	mu       sync.Mutex
	program  *tea.Program
	inFlight bool
}

// New constructs an App from the provided options.
func New(opts ...Option) (*App, error) {
	cfg := Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Runner == nil {
		return nil, ErrNoRunner
	}
	if cfg.State == nil {
		cfg.State = state.New(nil)
	}
	return &App{cfg: cfg}, nil
}

// State returns the state the wizard writes to.
func (a *App) State() *state.AppState {
	return a.cfg.State
}

// Start runs the program until the user quits or ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(ctx, a.cfg)
	program := tea.NewProgram(m, a.cfg.ProgramOptions...)

	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return ErrProgramRunning
	}
	a.program = program
	a.inFlight = true
	a.mu.Unlock()

	finished := make(chan struct{})
	defer func() {
		close(finished)
		a.mu.Lock()
		a.program = nil
		a.inFlight = false
		a.mu.Unlock()
	}()
	go func() {
		select {
		case <-ctx.Done():
			m.rt.Bus().Publish(component.MsgQuit)
		case <-finished:
		}
	}()

	_, runErr := program.Run()
	return runErr
}

// Stop signals the running program (if any) to exit.
func (a *App) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.program == nil {
		return nil
	}
	a.program.Quit()
	return nil
}

type busWakeMsg struct{}

type tickMsg time.Time

type model struct {
	rt     *component.Runtime
	router *views.Router

	width  int
	height int
}

func newModel(ctx context.Context, cfg Config) *model {
	router := views.NewRouter(views.Options{
		State:   cfg.State,
		Runner:  cfg.Runner,
		WorkDir: cfg.WorkDir,
		Context: ctx,
	})
	rt := component.NewRuntime(router, component.NewBus(), component.WithTap(func(msg component.Msg) {
		logger.Debug("bus: %s", msg)
	}))
	return &model{rt: rt, router: router}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(waitBusCmd(m.rt.Bus()), tickCmd())
}

func waitBusCmd(bus *component.Bus) tea.Cmd {
	return func() tea.Msg {
		<-bus.Wake()
		return busWakeMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		action := m.rt.HandleKey(msg)
		if m.drain() || action == component.ActionQuit {
			return m, tea.Quit
		}
		return m, nil
	case busWakeMsg:
		if m.drain() {
			return m, tea.Quit
		}
		return m, waitBusCmd(m.rt.Bus())
	case tickMsg:
		m.rt.Tick()
		return m, tickCmd()
	}
	return m, nil
}

// drain dispatches queued messages and reports whether one of them asked
// the program to quit.
func (m *model) drain() bool {
	for _, msg := range m.rt.Drain() {
		if msg == component.MsgQuit {
			return true
		}
	}
	return false
}

func (m *model) View() string {
	return m.rt.View(m.width, m.height)
}
