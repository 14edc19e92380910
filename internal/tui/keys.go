package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the terminal board.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Click                 key.Binding
	Cancel                key.Binding
	Deal                  key.Binding
	NewGame               key.Binding
	Difficulty            key.Binding
	Quit                  key.Binding
}

// Keys are the default bindings.
var Keys = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "column left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "column right"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "longer run"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "shorter run"),
	),
	Click: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select/move"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Deal: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "deal"),
	),
	NewGame: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new game"),
	),
	Difficulty: key.NewBinding(
		key.WithKeys("1", "2", "4"),
		key.WithHelp("1/2/4", "suits"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp lists the bindings shown under the board.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Click, k.Cancel, k.Deal, k.NewGame, k.Difficulty, k.Quit}
}
