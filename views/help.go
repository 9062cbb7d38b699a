package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/views/theme"
)

var titleCase = cases.Title(language.English)

type binding struct {
	keys string
	desc string
}

type helpSection struct {
	name     string
	bindings []binding
}

var helpSections = []helpSection{
	{name: "general", bindings: []binding{
		{"f1", "toggle this help"},
		{"esc", "close help"},
		{"ctrl+c", "quit without committing"},
	}},
	{name: "builder", bindings: []binding{
		{"pgdown", "confirm the step and go to the next one"},
		{"pgup", "go back to the previous step"},
		{"arrows home end", "move around a grid"},
		{"enter", "select the hovered item"},
		{"tab shift+tab", "move between summary, body and footer"},
	}},
	{name: "switches", bindings: []binding{
		{"left right", "pick an option"},
		{"y n", "answer yes or no"},
		{"space", "toggle the option"},
	}},
	{name: "summary", bindings: []binding{
		{"c", "copy the commit hash"},
		{"any other key", "quit"},
	}},
}

// Help lists the key bindings.
type Help struct {
	component.Base

	styles theme.Styles
}

func NewHelp(styles theme.Styles) *Help {
	return &Help{styles: styles}
}

func (h *Help) View(width, _ int) string {
	keyWidth := 0
	for _, section := range helpSections {
		for _, b := range section.bindings {
			if w := lipgloss.Width(b.keys); w > keyWidth {
				keyWidth = w
			}
		}
	}

	lines := []string{h.styles.Header(width), ""}
	for _, section := range helpSections {
		lines = append(lines, h.styles.Accent.Render(titleCase.String(section.name)))
		for _, b := range section.bindings {
			lines = append(lines, "  "+h.styles.Title.Copy().Width(keyWidth+2).Render(b.keys)+h.styles.Muted.Render(b.desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, h.styles.Footer.Render("Press esc or F1 to go back"))
	return strings.Join(lines, "\n")
}
