// Package tui is the bubbletea-driven renderer: it turns published
// ViewTree snapshots into the three-column ranked table, and turns
// keystrokes into Commands on the Command Channel. None of this is part
// of the core — it's the external collaborator the core's publisher and
// command channels are designed to be consumed by.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidhvernon/dirp/internal/actor"
	"github.com/davidhvernon/dirp/internal/view"
)

// row is one flattened, renderable line of the currently visible tree.
type row struct {
	node  *view.Node
	depth int
}

// Model holds the TUI state. It never touches the DirIndex directly —
// everything it knows comes from the most recently published *view.Tree.
type Model struct {
	publish  <-chan *view.Tree
	commands chan<- actor.Command

	tree   *view.Tree
	rows   []row
	cursor int

	width  int
	height int

	confirmRemove bool
	markedCount   int

	quitting bool
	err      error
}

// New builds the TUI model around the actor's publisher and command
// channels.
func New(publish <-chan *view.Tree, commands chan<- actor.Command) *Model {
	return &Model{publish: publish, commands: commands}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForTree(m.publish)
}

type treeMsg struct{ tree *view.Tree }

type treeClosedMsg struct{}

func waitForTree(ch <-chan *view.Tree) tea.Cmd {
	return func() tea.Msg {
		tree, ok := <-ch
		if !ok {
			return treeClosedMsg{}
		}
		return treeMsg{tree: tree}
	}
}

func (m *Model) selected() *view.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}

func (m *Model) send(kind actor.CommandKind, path string) {
	select {
	case m.commands <- actor.Command{Kind: kind, Path: path}:
	default:
	}
}
