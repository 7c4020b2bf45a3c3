package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the default bindings. Key handlers installed as plugins see a
// key before these bindings do and read the map through View.KeyMap, so a
// rebinding applies to plugin behavior too.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  bind("←", "left", "left"),
		Right: bind("→", "right", "right"),
		Up:    bind("↑", "up", "up"),
		Down:  bind("↓", "down", "down"),

		ShiftLeft:  bind("shift+←", "select left", "shift+left"),
		ShiftRight: bind("shift+→", "select right", "shift+right"),
		ShiftUp:    bind("shift+↑", "select up", "shift+up"),
		ShiftDown:  bind("shift+↓", "select down", "shift+down"),

		// Terminals disagree on alt+arrows versus ctrl+arrows.
		WordLeft:  bind("alt/ctrl+←", "word left", "alt+left", "ctrl+left"),
		WordRight: bind("alt/ctrl+→", "word right", "alt+right", "ctrl+right"),

		Home:     bind("home", "line start", "home", "ctrl+a"),
		End:      bind("end", "line end", "end", "ctrl+e"),
		DocStart: bind("ctrl+home", "doc start", "ctrl+home"),
		DocEnd:   bind("ctrl+end", "doc end", "ctrl+end"),

		Backspace: bind("backspace", "delete left", "backspace", "ctrl+h"),
		Delete:    bind("del", "delete right", "delete"),
		Enter:     bind("enter", "newline", "enter"),

		Undo: bind("ctrl+z", "undo", "ctrl+z"),
		Redo: bind("ctrl+y", "redo", "ctrl+y", "ctrl+shift+z"),

		Copy:  bind("ctrl+c", "copy", "ctrl+c"),
		Cut:   bind("ctrl+x", "cut", "ctrl+x"),
		Paste: bind("ctrl+v", "paste", "ctrl+v"),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Backspace, km.Undo}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.Home, km.End},
		{km.WordLeft, km.WordRight, km.DocStart, km.DocEnd},
		{km.Backspace, km.Delete, km.Enter},
		{km.Undo, km.Redo, km.Copy, km.Cut, km.Paste},
	}
}

func keyMapIsZero(km KeyMap) bool {
	for _, b := range km.ShortHelp() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return len(km.Up.Keys()) == 0 && len(km.Enter.Keys()) == 0
}

// KeyMap returns the bindings in effect.
func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }
