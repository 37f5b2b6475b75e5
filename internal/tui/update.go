package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"
	"github.com/davidhvernon/dirp/internal/actor"
	"github.com/davidhvernon/dirp/internal/view"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case treeMsg:
		m.tree = msg.tree
		m.rows = flatten(m.tree)
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, waitForTree(m.publish)

	case treeClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmRemove {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.send(actor.CmdQuit, "")
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Close):
		if n := m.selected(); n != nil {
			m.send(actor.CmdClose, n.Path)
		}
		return m, nil

	case key.Matches(msg, keys.Open):
		if n := m.selected(); n != nil {
			m.send(actor.CmdOpen, n.Path)
		}
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if n := m.selected(); n != nil {
			m.send(actor.CmdToggleOpen, n.Path)
		}
		return m, nil

	case key.Matches(msg, keys.Mark):
		if n := m.selected(); n != nil {
			m.send(actor.CmdMark, n.Path)
		}
		return m, nil

	case key.Matches(msg, keys.Unmark):
		if n := m.selected(); n != nil {
			m.send(actor.CmdUnmark, n.Path)
		}
		return m, nil

	case key.Matches(msg, keys.ToggleMark):
		if n := m.selected(); n != nil {
			m.send(actor.CmdToggleMark, n.Path)
		}
		return m, nil

	case key.Matches(msg, keys.Remove):
		m.confirmRemove = true
		m.markedCount = countMarked(m.tree)
		return m, nil
	}

	return m, nil
}

// handleConfirmKey implements the Yes/No prompt (default No) gating
// RemoveMarked.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmRemove = false
		m.send(actor.CmdRemoveMarked, "")
		m.quitting = true
		return m, tea.Quit
	default:
		// Anything else, including Enter, is "No" — the default.
		m.confirmRemove = false
		return m, nil
	}
}

// countMarked is a display-only estimate: it only sees nodes under
// currently-open directories, since that's all the last published view
// contains. The actual RemoveMarked selection (actor.removeMarked) builds
// its own fully expanded view and is authoritative.
func countMarked(tree *view.Tree) int {
	if tree == nil || tree.Root == nil {
		return 0
	}
	var n int
	var walk func(*view.Node)
	walk = func(node *view.Node) {
		if node.IsMarked {
			n++
			return
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(tree.Root)
	return n
}
