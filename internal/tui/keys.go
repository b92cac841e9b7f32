package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browser bindings. The list moves with Prev/Next and
// First/Last, the report pane scrolls with the Scroll and Page bindings.
type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	First      key.Binding
	Last       key.Binding
	Copy       key.Binding
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

func binding(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

var keys = keyMap{
	Prev:       binding("up/C-k", "prev sender", "up", "ctrl+k"),
	Next:       binding("dn/C-j", "next sender", "down", "ctrl+j"),
	First:      binding("home", "first", "home"),
	Last:       binding("end", "last", "end"),
	Copy:       binding("enter", "copy report", "enter"),
	Quit:       binding("esc", "quit", "esc", "ctrl+c"),
	ScrollUp:   binding("C-u", "report up", "ctrl+u"),
	ScrollDown: binding("C-d", "report down", "ctrl+d"),
	PageUp:     binding("pgup", "report pgup", "pgup"),
	PageDown:   binding("pgdn", "report pgdn", "pgdown"),
}
