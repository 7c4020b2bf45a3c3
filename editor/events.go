package editor

import "github.com/iw2rmb/nodemark/buffer"

// ChangeEvent is passed to Config.OnChange after an Update that moved the
// buffer version: edits, atom changes, and caret or selection moves.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection buffer.SelectionState

	// Full document; hosts diff it themselves if they need to.
	Text  string
	Atoms []buffer.Atom

	// Change is set when text or atoms changed; AtomChanges repeats its atom
	// side for hosts that only track nodes.
	Change      buffer.Change
	HasChange   bool
	AtomChanges []buffer.AtomChange
}

func buildChangeEvent(b *buffer.Buffer, contentChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
		Atoms:   b.Atoms(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	if contentChanged {
		ev.Change, ev.HasChange = b.LastChange()
		ev.AtomChanges = ev.Change.AtomChanges()
	}
	return ev
}
