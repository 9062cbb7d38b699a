package builder

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/config"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/steps"
	"github.com/BrianJOC/coco/views/theme"
)

const typeColumns = 5

// TypeStep picks the commit kind from a grid.
type TypeStep struct {
	component.Base

	state  *state.AppState
	styles theme.Styles
	kinds  []config.CommitKind
	grid   *grid
}

func NewTypeStep(st *state.AppState, styles theme.Styles) *TypeStep {
	kinds := append([]config.CommitKind(nil), st.Config().Types...)
	labels := make([]string, 0, len(kinds))
	useEmoji := st.Config().UseEmoji
	for _, kind := range kinds {
		label := kind.Name
		if useEmoji && strings.TrimSpace(kind.Emoji) != "" {
			label = kind.Emoji + " " + kind.Name
		}
		labels = append(labels, label)
	}
	return &TypeStep{
		state:  st,
		styles: styles,
		kinds:  kinds,
		grid:   newGrid(labels, typeColumns),
	}
}

func (s *TypeStep) OnKey(key tea.KeyMsg) component.Action {
	switch key.String() {
	case "enter":
		idx, ok := s.grid.selectCurrent()
		if !ok {
			return component.ActionConsumed
		}
		kind := s.kinds[idx]
		s.state.SetKind(&kind)
		s.state.SetStepStatus(steps.Type.Key(), state.Valid)
		s.Publish(component.MsgBuilderNext)
		return component.ActionConsumed
	case "pgdown":
		if _, ok := s.grid.selectedIndex(); ok {
			s.Publish(component.MsgBuilderNext)
		}
		return component.ActionConsumed
	}
	if s.grid.move(key.String()) {
		return component.ActionConsumed
	}
	return component.ActionNone
}

func (s *TypeStep) View(int, int) string {
	lines := []string{
		s.styles.Title.Render("Select the type of your commit") + s.styles.Muted.Render(" (use arrows to move around, enter to select)"),
		"",
		s.grid.view(s.styles),
	}
	if s.grid.cursor < len(s.kinds) {
		lines = append(lines, "", s.styles.Muted.Render(s.kinds[s.grid.cursor].Description))
	}
	return strings.Join(lines, "\n")
}
