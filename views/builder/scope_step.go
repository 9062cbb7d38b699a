package builder

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/steps"
	"github.com/BrianJOC/coco/views/theme"
)

const scopeCharLimit = 20

// ScopeStep offers the configured scopes as a grid, or a free-text input when
// none are configured.
type ScopeStep struct {
	component.Base

	state  *state.AppState
	styles theme.Styles
	scopes []string
	grid   *grid
	input  textinput.Model
}

func NewScopeStep(st *state.AppState, styles theme.Styles) *ScopeStep {
	s := &ScopeStep{
		state:  st,
		styles: styles,
		scopes: append([]string(nil), st.Config().Scopes...),
	}
	if len(s.scopes) > 0 {
		s.grid = newGrid(s.scopes, typeColumns)
		return s
	}
	ti := textinput.New()
	ti.Placeholder = "optional"
	ti.CharLimit = scopeCharLimit
	ti.Prompt = ""
	ti.Width = scopeCharLimit + 1
	ti.Blur()
	s.input = ti
	return s
}

func (s *ScopeStep) SetActive(active bool) {
	s.Base.SetActive(active)
	if s.grid != nil {
		return
	}
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

func (s *ScopeStep) OnKey(key tea.KeyMsg) component.Action {
	switch key.String() {
	case "enter", "pgdown":
		s.confirm()
		return component.ActionConsumed
	case "pgup":
		s.Publish(component.MsgBuilderPrev)
		return component.ActionConsumed
	}
	if s.grid != nil {
		if s.grid.move(key.String()) {
			return component.ActionConsumed
		}
		return component.ActionNone
	}
	s.input, _ = s.input.Update(key)
	return component.ActionConsumed
}

func (s *ScopeStep) confirm() {
	scope := ""
	if s.grid != nil {
		if idx, ok := s.grid.selectCurrent(); ok {
			scope = s.scopes[idx]
		}
	} else {
		scope = strings.TrimSpace(s.input.Value())
	}
	s.state.SetScope(scope)
	s.state.SetStepStatus(steps.Scope.Key(), state.Valid)
	s.Publish(component.MsgBuilderNext)
}

func (s *ScopeStep) View(int, int) string {
	if s.grid != nil {
		return strings.Join([]string{
			s.styles.Title.Render("Select the scope of your commit") + s.styles.Muted.Render(" (use arrows to move around, enter to select)"),
			"",
			s.grid.view(s.styles),
		}, "\n")
	}
	style := s.styles.Input
	if s.Active() {
		style = s.styles.InputFocus
	}
	return strings.Join([]string{
		s.styles.Title.Render("Scope") + s.styles.Muted.Render(" optional"),
		style.Render(s.input.View()),
	}, "\n")
}
