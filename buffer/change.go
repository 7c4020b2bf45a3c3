package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceHistory
)

func (s ChangeSource) String() string {
	if s == ChangeSourceHistory {
		return "history"
	}
	return "local"
}

// SelectionState is a normalized, non-empty selection, or the zero value.
type SelectionState struct {
	Active bool
	Range  Range
}

// AtomChangeKind tells whether an applied edit created or removed an atom.
type AtomChangeKind uint8

const (
	AtomUnchanged AtomChangeKind = iota
	AtomInserted
	AtomRemoved
)

// AtomChange is the atom-table side of an applied edit.
type AtomChange struct {
	Kind AtomChangeKind
	Atom Atom
}

// AppliedEdit is one effective edit. Text ranges are normalized; an edit that
// only touched the atom table (a zero-size atom) has empty ranges.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
	Atom        AtomChange
}

// Change is everything one mutating call did, with the versions it spans.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// AtomChanges lists the atoms the change inserted or removed, in edit order.
func (c Change) AtomChanges() []AtomChange {
	var out []AtomChange
	for _, e := range c.AppliedEdits {
		if e.Atom.Kind != AtomUnchanged {
			out = append(out, e.Atom)
		}
	}
	return out
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

func (s selectionState) public() SelectionState {
	if !s.active || s.anchor == s.end {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: NormalizeRange(Range{Start: s.anchor, End: s.end})}
}

// pendingChange accumulates edits until commitChange.
type pendingChange struct {
	Change
}

func (b *Buffer) beginChange(source ChangeSource) *pendingChange {
	return &pendingChange{Change{
		Source:          source,
		VersionBefore:   b.version,
		CursorBefore:    b.cursor,
		SelectionBefore: b.sel.public(),
	}}
}

func (p *pendingChange) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	p.AppliedEdits = append(p.AppliedEdits, edit)
}

// commitChange records p as the last change unless nothing moved the version.
func (b *Buffer) commitChange(p *pendingChange) {
	if b.version == p.VersionBefore {
		return
	}
	p.VersionAfter = b.version
	p.CursorAfter = b.cursor
	p.SelectionAfter = b.sel.public()
	b.lastChange = p.Change
	b.hasLastChange = true
}

// replacementAppliedEdit describes swapping the whole document text.
func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: documentRange(beforeText),
		RangeAfter:  documentRange(afterText),
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

func documentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, Col: len(lines[last])}}
}
