package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the exact keybinding table from the design. Up and Down move
// the cursor; x opens the removal prompt; every other key sends a Command.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Close      key.Binding
	Open       key.Binding
	Toggle     key.Binding
	Mark       key.Binding
	Unmark     key.Binding
	ToggleMark key.Binding
	Remove     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the keybinding table.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "p"),
			key.WithHelp("↑/p", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "n"),
			key.WithHelp("↓/n", "next row"),
		),
		Close: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "close directory"),
		),
		Open: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "open directory"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle open/closed"),
		),
		Mark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "mark (deep)"),
		),
		Unmark: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark (deep)"),
		),
		ToggleMark: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del/⌫", "toggle mark (deep)"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove marked, then exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit without deletion"),
		),
	}
}

var keys = DefaultKeyMap()
