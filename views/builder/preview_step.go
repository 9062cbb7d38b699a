package builder

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/coco/commitmsg"
	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/steps"
	"github.com/BrianJOC/coco/views/theme"
)

// PreviewStep shows the assembled message and asks for confirmation.
// Declining restarts the builder.
type PreviewStep struct {
	component.Base

	state   *state.AppState
	styles  theme.Styles
	proceed bool
}

func NewPreviewStep(st *state.AppState, styles theme.Styles) *PreviewStep {
	return &PreviewStep{state: st, styles: styles, proceed: true}
}

// SetActive resets the decision to Yes each time the step is shown.
func (s *PreviewStep) SetActive(active bool) {
	if active && !s.Active() {
		s.proceed = true
	}
	s.Base.SetActive(active)
}

// Proceed reports the current decision.
func (s *PreviewStep) Proceed() bool {
	return s.proceed
}

func (s *PreviewStep) OnKey(key tea.KeyMsg) component.Action {
	switch key.String() {
	case "left", "y":
		s.proceed = true
	case "right", "n":
		s.proceed = false
	case " ":
		s.proceed = !s.proceed
	case "enter", "pgdown":
		if !s.proceed {
			s.Publish(component.MsgBuilderRestart)
			break
		}
		s.state.SetStepStatus(steps.Preview.Key(), state.Valid)
		s.Publish(component.MsgBuilderNext)
	case "pgup":
		s.Publish(component.MsgBuilderPrev)
	default:
		return component.ActionNone
	}
	return component.ActionConsumed
}

func (s *PreviewStep) View(int, int) string {
	return strings.Join([]string{
		MessagePanel(s.styles, s.state.Message()),
		"",
		s.styles.Title.Render("Do you wish to continue and execute the commit?"),
		"",
		switchView(s.styles, "Yes", "No", !s.proceed),
	}, "\n")
}

// MessagePanel renders a commit message inside a bordered panel.
func MessagePanel(styles theme.Styles, msg commitmsg.Message) string {
	lines := []string{renderTitle(styles, msg)}
	if body := msg.BodyText(); body != "" {
		lines = append(lines, "", body)
	}
	if footer := msg.FooterText(); footer != "" {
		lines = append(lines, "", styles.Muted.Render(footer))
	}
	return styles.Panel.Copy().Width(msg.Width() + 2).Height(msg.Height()).Render(strings.Join(lines, "\n"))
}

func renderTitle(styles theme.Styles, msg commitmsg.Message) string {
	var b strings.Builder
	b.WriteString(styles.Kind.Render(msg.Kind))
	if msg.Scope != "" {
		b.WriteString("(" + styles.Scope.Render(msg.Scope) + ")")
	}
	if msg.Breaking {
		b.WriteString(styles.Error.Render("!"))
	}
	b.WriteString(": ")
	if msg.Emoji != "" {
		b.WriteString(msg.Emoji + " ")
	}
	b.WriteString(styles.Summary.Render(msg.Summary))
	return b.String()
}
