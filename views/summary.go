package views

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/coco/commitmsg"
	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/logger"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/views/theme"
)

// Summary shows the created commit. Any key quits except c, which copies
// the hash to the clipboard.
type Summary struct {
	component.Base

	state  *state.AppState
	styles theme.Styles
	copy   func(string) error

	record  state.CommitRecord
	message commitmsg.Message
	ready   bool
	copied  bool
}

func NewSummary(st *state.AppState, styles theme.Styles) *Summary {
	return &Summary{state: st, styles: styles, copy: clipboard.WriteAll}
}

// SetClipboard replaces the function used to copy the hash.
func (s *Summary) SetClipboard(fn func(string) error) {
	if fn != nil {
		s.copy = fn
	}
}

func (s *Summary) OnMessage(msg component.Msg) {
	if msg != component.MsgCommittingDone {
		return
	}
	draft := s.state.Draft()
	if draft.Result != nil {
		s.record, s.ready = *draft.Result, true
	}
	s.message = state.BuildMessage(s.state.Config(), draft)
}

func (s *Summary) OnKey(key tea.KeyMsg) component.Action {
	if key.String() == "c" && s.ready && !s.copied {
		if err := s.copy(s.record.Hash); err != nil {
			logger.Warn("copy hash to clipboard: %v", err)
		} else {
			s.copied = true
		}
		return component.ActionConsumed
	}
	return component.ActionQuit
}

func (s *Summary) View(width, _ int) string {
	lines := []string{s.styles.Header(width), ""}
	if !s.ready {
		return strings.Join(append(lines, s.styles.Muted.Render("waiting for the commit...")), "\n")
	}

	lines = append(lines,
		s.styles.Title.Render("Done! This is your commit 🍻"),
		"",
		s.field("Commit", s.record.Hash),
		s.field("Author", s.record.Author+" <"+s.record.AuthorEmail+">"),
		s.field("Date", s.record.Date),
		"",
		s.message.Title(),
	)
	if body := s.message.BodyText(); body != "" {
		lines = append(lines, "", body)
	}
	if footer := s.message.FooterText(); footer != "" {
		lines = append(lines, "", s.styles.Muted.Render(footer))
	}

	hint := "Press any key to quit... (c to copy the hash)"
	if s.copied {
		hint = "Hash copied. Press any key to quit..."
	}
	lines = append(lines, "", s.styles.Footer.Render(hint))
	return strings.Join(lines, "\n")
}

func (s *Summary) field(label, value string) string {
	return s.styles.Accent.Render(label+":") + " " + value
}
