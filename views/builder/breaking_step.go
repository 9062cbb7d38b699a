package builder

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/steps"
	"github.com/BrianJOC/coco/views/theme"
)

// BreakingStep is a no/yes switch for the breaking-change marker.
type BreakingStep struct {
	component.Base

	state    *state.AppState
	styles   theme.Styles
	breaking bool
}

func NewBreakingStep(st *state.AppState, styles theme.Styles) *BreakingStep {
	return &BreakingStep{
		state:    st,
		styles:   styles,
		breaking: st.Draft().Breaking,
	}
}

// Value reports the switch position.
func (s *BreakingStep) Value() bool {
	return s.breaking
}

func (s *BreakingStep) OnKey(key tea.KeyMsg) component.Action {
	switch key.String() {
	case "left", "n":
		s.breaking = false
	case "right", "y":
		s.breaking = true
	case " ":
		s.breaking = !s.breaking
	case "enter", "pgdown":
		s.state.SetBreaking(s.breaking)
		s.state.SetStepStatus(steps.BreakingChange.Key(), state.Valid)
		s.Publish(component.MsgBuilderNext)
	case "pgup":
		s.Publish(component.MsgBuilderPrev)
	default:
		return component.ActionNone
	}
	return component.ActionConsumed
}

func (s *BreakingStep) View(int, int) string {
	return strings.Join([]string{
		s.styles.Title.Render("Does this commit introduces a breaking change?"),
		"",
		switchView(s.styles, "No", "Yes", s.breaking),
	}, "\n")
}

// switchView draws two options with the chosen one highlighted.
func switchView(styles theme.Styles, left, right string, rightOn bool) string {
	leftStyle, rightStyle := styles.Selected, styles.Cell
	if rightOn {
		leftStyle, rightStyle = styles.Cell, styles.Selected
	}
	return leftStyle.Render(left) + " " + rightStyle.Render(right)
}
