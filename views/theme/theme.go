// Package theme turns the configured color map into lipgloss styles.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrianJOC/coco/config"
)

// Styles groups every style the views draw with.
type Styles struct {
	Primary     lipgloss.Color
	PrimaryFg   lipgloss.Color
	TextareaBg  lipgloss.Color
	TextareaFg  lipgloss.Color
	TextareaSel lipgloss.Color
	ScopeBg     lipgloss.Color
	ScopeFg     lipgloss.Color
	ScopeSec    lipgloss.Color

	Title      lipgloss.Style
	Accent     lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Badge      lipgloss.Style
	Hovered    lipgloss.Style
	Selected   lipgloss.Style
	Cell       lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	Kind       lipgloss.Style
	Scope      lipgloss.Style
	Summary    lipgloss.Style
	Panel      lipgloss.Style
	Footer     lipgloss.Style
}

// New builds styles from cfg, using the default palette for missing keys.
func New(cfg *config.Config) Styles {
	palette := config.DefaultTheme()
	if cfg != nil {
		for key, val := range cfg.Theme {
			palette[key] = val
		}
	}
	color := func(key string) lipgloss.Color {
		return lipgloss.Color(palette[key])
	}

	s := Styles{
		Primary:     color("primary"),
		PrimaryFg:   color("primary-fg"),
		TextareaBg:  color("textarea:bg"),
		TextareaFg:  color("textarea:fg"),
		TextareaSel: color("textarea:sel"),
		ScopeBg:     color("scope:bg"),
		ScopeFg:     color("scope:fg"),
		ScopeSec:    color("scope:sec"),
	}

	s.Title = lipgloss.NewStyle().Bold(true)
	s.Accent = lipgloss.NewStyle().Foreground(s.Primary).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")).Bold(true)
	s.Badge = lipgloss.NewStyle().Background(s.Primary).Foreground(s.PrimaryFg).Bold(true).Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	s.Hovered = s.Cell.Copy().Background(s.ScopeBg).Foreground(s.ScopeFg)
	s.Selected = s.Cell.Copy().Background(s.Primary).Foreground(s.PrimaryFg).Bold(true)
	s.Input = lipgloss.NewStyle().Background(s.TextareaBg).Foreground(s.TextareaFg).Padding(0, 1)
	s.InputFocus = s.Input.Copy().Background(s.TextareaSel)
	s.Kind = lipgloss.NewStyle().Foreground(lipgloss.Color("#8cc265")).Bold(true)
	s.Scope = lipgloss.NewStyle().Foreground(s.ScopeFg).Background(s.ScopeBg)
	s.Summary = lipgloss.NewStyle().Foreground(lipgloss.Color("#6a4ac3"))
	s.Panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4C566A")).Padding(0, 1)
	s.Footer = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).MarginTop(1)
	return s
}

// Header renders the "coco » conventional commits" banner.
func (s Styles) Header(width int) string {
	left := "coco » " + s.Accent.Render("conventional ") + s.Title.Render("commits")
	right := s.Muted.Render("Press ") + s.Title.Render("F1") + s.Muted.Render(" for help")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
