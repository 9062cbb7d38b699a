// Package builder holds the wizard pages that assemble a commit message and
// the section that navigates between them.
package builder

import (
	"strings"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/logger"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/steps"
	"github.com/BrianJOC/coco/views/theme"
)

// Section owns the step pages and keeps exactly one of them active.
type Section struct {
	component.Base

	state   *state.AppState
	styles  theme.Styles
	machine *steps.Machine
}

// NewSection builds every step page. Disabled steps are still constructed so
// the tree shape does not depend on configuration.
func NewSection(st *state.AppState, styles theme.Styles) *Section {
	cfg := st.Config()
	toggles := steps.Toggles{
		AskScope:          cfg.AskScope,
		AskBody:           cfg.AskBody,
		AskFooter:         cfg.AskFooter,
		AskBreakingChange: cfg.AskBreakingChange,
	}
	s := &Section{
		state:   st,
		styles:  styles,
		machine: steps.NewMachine(toggles),
	}
	s.Children().
		Add(steps.Type.Key(), NewTypeStep(st, styles)).
		Add(steps.Scope.Key(), NewScopeStep(st, styles)).
		Add(steps.Commit.Key(), NewCommitStep(st, styles, toggles)).
		Add(steps.BreakingChange.Key(), NewBreakingStep(st, styles)).
		Add(steps.Preview.Key(), NewPreviewStep(st, styles))
	s.Children().Activate(s.machine.Current().Key())
	return s
}

// Current returns the step the cursor is on.
func (s *Section) Current() steps.Step {
	return s.machine.Current()
}

func (s *Section) OnMessage(msg component.Msg) {
	var outcome steps.Outcome
	switch msg {
	case component.MsgBuilderNext:
		outcome = s.machine.Next(s.state)
	case component.MsgBuilderPrev:
		outcome = s.machine.Prev(s.state)
	case component.MsgBuilderRestart:
		outcome = s.machine.Restart()
	default:
		return
	}
	logger.Debug("builder %s: %s at %s", msg, outcome, s.machine.Current())

	switch outcome {
	case steps.Moved:
		s.Children().Activate(s.machine.Current().Key())
	case steps.Advance:
		s.Publish(component.MsgBuilderDone)
	}
}

func (s *Section) View(width, height int) string {
	lines := []string{
		s.styles.Header(width),
		"",
		s.stepBar(),
		s.statusHint(),
		"",
	}
	if name, ok := s.Children().ActiveName(); ok {
		if child, found := s.Children().Get(name); found {
			lines = append(lines, child.View(width, height))
		}
	}
	lines = append(lines, s.styles.Footer.Render("pgup previous step • pgdown next step • ctrl+c quit"))
	return strings.Join(lines, "\n")
}

func (s *Section) stepBar() string {
	toggles := s.machine.Toggles()
	parts := make([]string, 0, len(steps.All))
	for _, step := range steps.All {
		if !steps.Enabled(step, toggles) {
			continue
		}
		label := step.String()
		switch {
		case step == s.machine.Current():
			label = s.styles.Badge.Render(label)
		case s.state.StepStatus(step.Key()) == state.Valid:
			label = s.styles.Accent.Render("✓ " + label)
		default:
			label = s.styles.Muted.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, s.styles.Muted.Render(" › "))
}

func (s *Section) statusHint() string {
	draft := s.state.Draft()
	if draft.Kind == nil {
		return s.styles.Muted.Render("Pick a commit type to get started")
	}
	var b strings.Builder
	b.WriteString(s.styles.Muted.Render("Creating a "))
	b.WriteString(s.styles.Kind.Render(draft.Kind.Name))
	b.WriteString(s.styles.Muted.Render(" commit"))
	if draft.Scope != "" {
		b.WriteString(s.styles.Muted.Render(" on scope "))
		b.WriteString(s.styles.Scope.Render(draft.Scope))
	}
	b.WriteString(s.styles.Muted.Render(" | "))
	if s.state.Config().UseEmoji && draft.Kind.Emoji != "" {
		b.WriteString(draft.Kind.Emoji + " ")
	}
	b.WriteString(s.styles.Muted.Render("» " + draft.Kind.Description))
	return b.String()
}
