package tui

import (
	"fmt"
	"strings"

	"github.com/davidhvernon/dirp/internal/humanize"
	"github.com/davidhvernon/dirp/internal/model"
)

// View implements tea.Model: a three-column table of name/percent/size.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tree == nil {
		return statusStyle.Render("scanning...") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %12s  %s", "PCT", "SIZE", "NAME")))
	b.WriteString("\n")

	for i, r := range m.rows {
		b.WriteString(m.formatRow(r, i == m.cursor))
		b.WriteString("\n")
	}

	if m.confirmRemove {
		b.WriteString("\n")
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete %d marked item(s)? [y/N] ", m.markedCount)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(helpLine()))
	return b.String()
}

func helpLine() string {
	return "↑/p up · ↓/n down · ← close · → open · f toggle · d mark · u unmark · del toggle-mark · x remove · q quit"
}

func (m *Model) formatRow(r row, selected bool) string {
	n := r.node

	indent := strings.Repeat("  ", r.depth)
	var indicator string
	if n.IsDir {
		if n.IsOpen {
			indicator = "⏷ "
		} else {
			indicator = "⏵ "
		}
	} else {
		indicator = "  "
	}

	name := n.Name
	switch {
	case n.IsDir:
		name = dirStyle.Render(name + "/")
	case n.Kind == model.EntrySymLink:
		name = symlinkStyle.Render(name + "@")
	default:
		name = fileStyle.Render(name)
	}

	line := fmt.Sprintf("%3d%%   %12s  %s%s%s", n.Percent, humanize.Bytes(n.SizeBytes), indent, indicator, name)

	if n.IsMarked {
		line = markedStyle.Render(line)
	}
	if selected {
		line = selectedStyle.Render(line)
	}
	return line
}
