package builder

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrianJOC/coco/views/theme"
)

// grid is a fixed-column selector with a hover cursor and an optional
// confirmed selection.
type grid struct {
	items    []string
	columns  int
	cursor   int
	selected int
}

func newGrid(items []string, columns int) *grid {
	if columns <= 0 {
		columns = 1
	}
	return &grid{items: items, columns: columns, selected: -1}
}

// move handles arrow, home and end keys, reporting whether the key was one of them.
func (g *grid) move(key string) bool {
	if len(g.items) == 0 {
		return false
	}
	rowStart := g.cursor - g.cursor%g.columns
	switch key {
	case "left":
		if g.cursor > 0 {
			g.cursor--
		}
	case "right":
		if g.cursor < len(g.items)-1 {
			g.cursor++
		}
	case "up":
		if g.cursor-g.columns >= 0 {
			g.cursor -= g.columns
		}
	case "down":
		if g.cursor+g.columns < len(g.items) {
			g.cursor += g.columns
		}
	case "home":
		g.cursor = rowStart
	case "end":
		end := rowStart + g.columns - 1
		if end > len(g.items)-1 {
			end = len(g.items) - 1
		}
		g.cursor = end
	default:
		return false
	}
	return true
}

func (g *grid) selectCurrent() (int, bool) {
	if len(g.items) == 0 {
		return -1, false
	}
	g.selected = g.cursor
	return g.selected, true
}

func (g *grid) selectedIndex() (int, bool) {
	if g.selected < 0 {
		return -1, false
	}
	return g.selected, true
}

func (g *grid) view(styles theme.Styles) string {
	if len(g.items) == 0 {
		return styles.Muted.Render("nothing to choose from")
	}
	width := 0
	for _, item := range g.items {
		if w := lipgloss.Width(item); w > width {
			width = w
		}
	}

	rows := make([]string, 0, len(g.items)/g.columns+1)
	for start := 0; start < len(g.items); start += g.columns {
		end := start + g.columns
		if end > len(g.items) {
			end = len(g.items)
		}
		cells := make([]string, 0, g.columns)
		for idx := start; idx < end; idx++ {
			style := styles.Cell
			switch {
			case idx == g.cursor:
				style = styles.Hovered
			case idx == g.selected:
				style = styles.Selected
			}
			cells = append(cells, style.Copy().Width(width+2).Render(g.items[idx]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
