package buffer

// snapshot is one undo stop. Atoms are stored by value, so a restored atom
// keeps its ID.
type snapshot struct {
	text   string
	atoms  []Atom
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{
		text:   b.Text(),
		atoms:  b.Atoms(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = splitLines(s.text)
	b.atoms = append([]Atom(nil), s.atoms...)
	b.cursor = ClampPos(s.cursor, len(b.lines), b.lineLen)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor := ClampPos(s.sel.anchor, len(b.lines), b.lineLen)
	end := ClampPos(s.sel.end, len(b.lines), b.lineLen)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

// pushLimited appends s to stack, dropping the oldest entries past limit.
func pushLimited(stack []snapshot, s snapshot, limit int) []snapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) recordUndo(prev snapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushLimited(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the state before the last recorded change, atoms included.
func (b *Buffer) Undo() bool {
	return b.travel(&b.hist.undo, &b.hist.redo)
}

// Redo reapplies the last undone change.
func (b *Buffer) Redo() bool {
	return b.travel(&b.hist.redo, &b.hist.undo)
}

// travel pops the top of from, pushes the current state onto to and restores
// the popped state as one history change.
func (b *Buffer) travel(from, to *[]snapshot) bool {
	n := len(*from)
	if n == 0 {
		return false
	}
	target := (*from)[n-1]
	*from = (*from)[:n-1]

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceHistory)
	if limit := b.opt.HistoryLimit; limit > 0 {
		*to = pushLimited(*to, cur, limit)
	}

	b.restore(target)
	b.version++
	b.textVer++
	for _, e := range historyEdits(cur, target) {
		change.addAppliedEdit(e)
	}
	b.commitChange(change)
	return true
}

// historyEdits describes a jump between two snapshots: a whole-document
// replacement when the text differs, then one entry per atom that disappeared
// or reappeared.
func historyEdits(from, to snapshot) []AppliedEdit {
	var edits []AppliedEdit
	if e, ok := replacementAppliedEdit(from.text, to.text); ok {
		edits = append(edits, e)
	}

	before := make(map[uint64]bool, len(from.atoms))
	for _, a := range from.atoms {
		before[a.ID] = true
	}
	after := make(map[uint64]bool, len(to.atoms))
	for _, a := range to.atoms {
		after[a.ID] = true
		if !before[a.ID] {
			edits = append(edits, AppliedEdit{Atom: AtomChange{Kind: AtomInserted, Atom: a}})
		}
	}
	for _, a := range from.atoms {
		if !after[a.ID] {
			edits = append(edits, AppliedEdit{Atom: AtomChange{Kind: AtomRemoved, Atom: a}})
		}
	}
	return edits
}
