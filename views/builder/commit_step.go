package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrianJOC/coco/commitmsg"
	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/steps"
	"github.com/BrianJOC/coco/views/theme"
)

const textareaHeight = 3

// CommitStep collects the summary, body and footer. Focus moves between the
// enabled fields; leaving the summary requires it to be valid.
type CommitStep struct {
	component.Base

	state   *state.AppState
	styles  theme.Styles
	toggles steps.Toggles

	summary textinput.Model
	body    textarea.Model
	footer  textarea.Model
	focus   steps.Field
	maxLen  int
	problem string
}

func NewCommitStep(st *state.AppState, styles theme.Styles, toggles steps.Toggles) *CommitStep {
	summary := textinput.New()
	summary.Prompt = ""
	summary.Placeholder = "short description of the change"
	summary.Width = 60

	body := newTextarea("longer explanation, optional")
	footer := newTextarea("breaking change notes or issue refs, optional")

	c := &CommitStep{
		state:   st,
		styles:  styles,
		toggles: toggles,
		summary: summary,
		body:    body,
		footer:  footer,
		focus:   steps.FieldSummary,
	}
	c.maxLen = c.computeMaxLen()
	return c
}

func newTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(textareaHeight)
	ta.Blur()
	return ta
}

func (c *CommitStep) SetActive(active bool) {
	c.Base.SetActive(active)
	if active {
		c.maxLen = c.computeMaxLen()
		c.focusField(c.focus)
		return
	}
	c.summary.Blur()
	c.body.Blur()
	c.footer.Blur()
}

func (c *CommitStep) OnKey(key tea.KeyMsg) component.Action {
	switch key.String() {
	case "pgdown":
		c.finish()
		return component.ActionConsumed
	case "pgup":
		c.Publish(component.MsgBuilderPrev)
		return component.ActionConsumed
	case "tab":
		c.nextField()
		return component.ActionConsumed
	case "shift+tab":
		c.prevField()
		return component.ActionConsumed
	case "enter":
		if c.focus == steps.FieldSummary {
			c.nextField()
			return component.ActionConsumed
		}
	}

	switch c.focus {
	case steps.FieldSummary:
		c.summary, _ = c.summary.Update(key)
		c.problem = ""
	case steps.FieldBody:
		c.body, _ = c.body.Update(key)
	case steps.FieldFooter:
		c.footer, _ = c.footer.Update(key)
	}
	return component.ActionConsumed
}

// Focused returns the field receiving input.
func (c *CommitStep) Focused() steps.Field {
	return c.focus
}

// MaxSummaryLength is the current budget for the summary.
func (c *CommitStep) MaxSummaryLength() int {
	return c.maxLen
}

func (c *CommitStep) nextField() {
	if !c.fieldValid(c.focus) {
		return
	}
	target, ok := steps.NextField(c.focus, c.toggles)
	if !ok {
		c.finish()
		return
	}
	c.focusField(target)
	c.store()
}

func (c *CommitStep) prevField() {
	target, ok := steps.PrevField(c.focus, c.toggles)
	if !ok {
		c.Publish(component.MsgBuilderPrev)
		return
	}
	c.focusField(target)
}

// finish stores every field and requests the next step once the summary is
// valid. Disabled fields are stored as present and empty.
func (c *CommitStep) finish() {
	if !c.fieldValid(steps.FieldSummary) {
		c.focusField(steps.FieldSummary)
		return
	}
	c.store()
	if !c.state.CommitFieldsComplete() {
		return
	}
	c.state.SetStepStatus(steps.Commit.Key(), state.Valid)
	c.Publish(component.MsgBuilderNext)
}

func (c *CommitStep) store() {
	c.state.SetSummary(strings.TrimSpace(c.summary.Value()))
	c.state.SetBody(c.lines(steps.FieldBody))
	c.state.SetFooter(c.lines(steps.FieldFooter))
}

func (c *CommitStep) lines(field steps.Field) []string {
	if !steps.FieldEnabled(field, c.toggles) {
		return nil
	}
	var value string
	switch field {
	case steps.FieldBody:
		value = c.body.Value()
	case steps.FieldFooter:
		value = c.footer.Value()
	}
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(value, "\n")
}

func (c *CommitStep) fieldValid(field steps.Field) bool {
	if field != steps.FieldSummary {
		return true
	}
	summary := strings.TrimSpace(c.summary.Value())
	switch {
	case summary == "":
		c.problem = "summary is required"
		return false
	case commitmsg.Width(summary) > c.maxLen:
		c.problem = fmt.Sprintf("summary is too long (max %d)", c.maxLen)
		return false
	}
	c.problem = ""
	return true
}

func (c *CommitStep) focusField(field steps.Field) {
	c.focus = field
	c.summary.Blur()
	c.body.Blur()
	c.footer.Blur()
	if !c.Active() {
		return
	}
	switch field {
	case steps.FieldSummary:
		c.summary.Focus()
	case steps.FieldBody:
		c.body.Focus()
	case steps.FieldFooter:
		c.footer.Focus()
	}
}

func (c *CommitStep) computeMaxLen() int {
	cfg := c.state.Config()
	draft := c.state.Draft()
	kind, emoji := "", ""
	if draft.Kind != nil {
		kind, emoji = draft.Kind.Name, draft.Kind.Emoji
	}
	return commitmsg.MaxSummaryLength(cfg.MaxSummaryLength, cfg.UseEmoji, kind, emoji, draft.Scope, draft.Breaking)
}

func (c *CommitStep) View(int, int) string {
	used := commitmsg.Width(strings.TrimSpace(c.summary.Value()))
	counter := fmt.Sprintf("%d/%d", used, c.maxLen)
	counterStyle := c.styles.Muted
	if used > c.maxLen {
		counterStyle = c.styles.Error
	}

	sections := []string{
		c.label("summary", "* required", steps.FieldSummary) + "  " + counterStyle.Render(counter),
		c.inputStyle(steps.FieldSummary).Render(c.summary.View()),
	}
	if c.problem != "" {
		sections = append(sections, c.styles.Error.Render(c.problem))
	}
	if steps.FieldEnabled(steps.FieldBody, c.toggles) {
		sections = append(sections, "", c.label("body", "optional", steps.FieldBody), c.inputStyle(steps.FieldBody).Render(c.body.View()))
	}
	if steps.FieldEnabled(steps.FieldFooter, c.toggles) {
		sections = append(sections, "", c.label("footer", "optional", steps.FieldFooter), c.inputStyle(steps.FieldFooter).Render(c.footer.View()))
	}
	return strings.Join(sections, "\n")
}

func (c *CommitStep) label(title, subtitle string, field steps.Field) string {
	style := c.styles.Title
	if c.focus == field {
		style = c.styles.Accent
	}
	return style.Render(title) + " " + c.styles.Muted.Render(subtitle)
}

func (c *CommitStep) inputStyle(field steps.Field) lipgloss.Style {
	if c.Active() && c.focus == field {
		return c.styles.InputFocus
	}
	return c.styles.Input
}
