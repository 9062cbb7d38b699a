// Package commitmsg renders conventional commit messages.
package commitmsg

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Message is the parsed form of a conventional commit.
type Message struct {
	Kind     string
	Emoji    string
	Scope    string
	Summary  string
	Body     []string
	Footer   []string
	Breaking bool
}

// Title renders `kind(scope)!: emoji summary`, omitting empty segments.
func (m Message) Title() string {
	var b strings.Builder
	b.WriteString(m.Kind)
	if scope := strings.TrimSpace(m.Scope); scope != "" {
		b.WriteString("(")
		b.WriteString(scope)
		b.WriteString(")")
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	if emoji := strings.TrimSpace(m.Emoji); emoji != "" {
		b.WriteString(emoji)
		b.WriteString(" ")
	}
	b.WriteString(m.Summary)
	return strings.TrimSpace(b.String())
}

func (m Message) BodyText() string {
	return strings.TrimSpace(strings.Join(m.Body, "\n"))
}

func (m Message) FooterText() string {
	return strings.TrimSpace(strings.Join(m.Footer, "\n"))
}

// String returns the full commit text passed to git.
func (m Message) String() string {
	commit := m.Title()
	if body := m.BodyText(); body != "" {
		commit += "\n\n" + body
	}
	if footer := m.FooterText(); footer != "" {
		commit += "\n\n" + footer
	}
	return commit
}

// Width is the display width of the widest rendered line.
func (m Message) Width() int {
	width := runewidth.StringWidth(m.Title())
	for _, line := range append(append([]string{}, m.Body...), m.Footer...) {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}

// Height counts rendered lines including the blank separators.
func (m Message) Height() int {
	height := 1
	if strings.Join(m.Body, "\n") != "" {
		height += len(m.Body) + 1
	}
	if strings.Join(m.Footer, "\n") != "" {
		height += len(m.Footer) + 1
	}
	return height
}

// MaxSummaryLength is the room left for the summary once the title prefix
// built from kind, scope, breaking marker and emoji is accounted for.
func MaxSummaryLength(limit int, useEmoji bool, kind, emoji, scope string, breaking bool) int {
	used := runewidth.StringWidth(kind) + 1
	if scope = strings.TrimSpace(scope); scope != "" {
		used += runewidth.StringWidth(scope) + 2
	}
	if breaking {
		used++
	}
	if emoji = strings.TrimSpace(emoji); useEmoji && emoji != "" {
		used += runewidth.StringWidth(emoji) + 1
	}
	if remaining := limit - used; remaining > 0 {
		return remaining
	}
	return 0
}

// Width reports the display width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
