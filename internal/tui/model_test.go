package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidhvernon/dirp/internal/actor"
	"github.com/davidhvernon/dirp/internal/view"
)

func newTestModel() (*Model, chan *view.Tree, chan actor.Command) {
	publish := make(chan *view.Tree, 1)
	commands := make(chan actor.Command, 8)
	return New(publish, commands), publish, commands
}

func sampleTree() *view.Tree {
	return &view.Tree{
		Root: &view.Node{
			Path:  "/T",
			IsDir: true,
			Children: []*view.Node{
				{Path: "/T/a.txt", SizeBytes: 10},
				{Path: "/T/b.txt", SizeBytes: 20},
			},
		},
	}
}

func TestUpdateTreeMsgRebuildsRowsAndClampsCursor(t *testing.T) {
	m, _, _ := newTestModel()
	m.cursor = 5

	updated, _ := m.Update(treeMsg{tree: sampleTree()})
	mm := updated.(*Model)
	if len(mm.rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(mm.rows))
	}
	if mm.cursor != 2 {
		t.Errorf("expected cursor clamped to last row (2), got %d", mm.cursor)
	}
}

func TestUpdateTreeClosedQuits(t *testing.T) {
	m, _, _ := newTestModel()
	updated, cmd := m.Update(treeClosedMsg{})
	mm := updated.(*Model)
	if !mm.quitting {
		t.Errorf("expected quitting to be set")
	}
	if cmd == nil {
		t.Fatalf("expected a tea.Cmd")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit message")
	}
}

func TestHandleKeyMarkSendsCommandForSelectedNode(t *testing.T) {
	m, _, commands := newTestModel()
	m.Update(treeMsg{tree: sampleTree()})
	m.cursor = 1 // first child row after the root row

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	select {
	case cmd := <-commands:
		if cmd.Kind != actor.CmdMark {
			t.Errorf("expected CmdMark, got %v", cmd.Kind)
		}
		if cmd.Path != m.rows[1].node.Path {
			t.Errorf("expected command for %s, got %s", m.rows[1].node.Path, cmd.Path)
		}
	default:
		t.Fatalf("expected a command to be sent")
	}
}

func TestHandleKeyRemoveEntersConfirmState(t *testing.T) {
	m, _, _ := newTestModel()
	m.Update(treeMsg{tree: sampleTree()})

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !m.confirmRemove {
		t.Fatalf("expected confirmRemove to be set after pressing x")
	}
}

func TestHandleConfirmKeyDefaultsToNo(t *testing.T) {
	m, _, commands := newTestModel()
	m.confirmRemove = true

	m.handleConfirmKey(tea.KeyMsg{Type: tea.KeyEnter})
	if m.confirmRemove {
		t.Errorf("expected confirmRemove cleared on default No")
	}
	select {
	case cmd := <-commands:
		t.Fatalf("expected no command sent on default No, got %+v", cmd)
	default:
	}
}

func TestHandleConfirmKeyYesSendsRemoveMarked(t *testing.T) {
	m, _, commands := newTestModel()
	m.confirmRemove = true

	m.handleConfirmKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	select {
	case cmd := <-commands:
		if cmd.Kind != actor.CmdRemoveMarked {
			t.Errorf("expected CmdRemoveMarked, got %v", cmd.Kind)
		}
	default:
		t.Fatalf("expected CmdRemoveMarked to be sent")
	}
	if !m.quitting {
		t.Errorf("expected quitting to be set after confirming removal")
	}
}

func TestCountMarkedCountsTopLevelMarkedNodesOnly(t *testing.T) {
	tree := &view.Tree{
		Root: &view.Node{
			Path:     "/T",
			IsDir:    true,
			IsMarked: true,
			Children: []*view.Node{
				{Path: "/T/a", IsMarked: true, Children: []*view.Node{
					{Path: "/T/a/1.txt", IsMarked: true},
				}},
			},
		},
	}
	if got := countMarked(tree); got != 1 {
		t.Errorf("expected a marked ancestor to suppress its marked descendant, got count %d", got)
	}
}
