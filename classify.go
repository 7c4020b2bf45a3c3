package nodemark

import "github.com/iw2rmb/nodemark/buffer"

// Document is the read side of the host document the classifier needs.
// *buffer.Buffer satisfies it.
type Document interface {
	Len() int
	AtomAt(off int) (buffer.Atom, bool)
	EmptyAtomAt(off int) (buffer.Atom, bool)
}

// Code describes where a caret offset sits relative to the nearest atom
// boundary.
type Code uint8

const (
	// NotAdjacent: no atom at or next to the offset.
	NotAdjacent Code = iota
	// AtStart: an atom starts at the offset and nothing ends there. A
	// zero-size atom anchored at the offset also reports AtStart.
	AtStart
	// AtEnd: an atom ends at the offset and nothing starts there.
	AtEnd
	// Between: one atom ends and a different one starts at the offset.
	Between
	// OneInsideLeft: one unit past the start of an atom, inside it.
	OneInsideLeft
	// OneInsideRight: one unit before the end of an atom, inside it.
	OneInsideRight
	// Inside: deeper inside an atom than either OneInside code.
	Inside
	// TwoAwayLeft: one unit left of an atom start, two moves from its
	// interior.
	TwoAwayLeft
	// TwoAwayRight: one unit right of an atom end.
	TwoAwayRight
)

func (c Code) String() string {
	switch c {
	case NotAdjacent:
		return "not-adjacent"
	case AtStart:
		return "at-start"
	case AtEnd:
		return "at-end"
	case Between:
		return "between"
	case OneInsideLeft:
		return "one-inside-left"
	case OneInsideRight:
		return "one-inside-right"
	case Inside:
		return "inside"
	case TwoAwayLeft:
		return "two-away-left"
	case TwoAwayRight:
		return "two-away-right"
	default:
		return "unknown"
	}
}

// Boundary reports whether the caret rests on an atom boundary.
func (c Code) Boundary() bool {
	return c == AtStart || c == AtEnd || c == Between
}

// Interior reports whether the caret sits strictly inside an atom.
func (c Code) Interior() bool {
	return c == OneInsideLeft || c == OneInsideRight || c == Inside
}

// DefaultProbes are the relative offsets Probe inspects when none are given.
var DefaultProbes = []int{-2, -1, 0, +1, +2}

// Member is the membership of one probed offset.
type Member struct {
	Offset int
	// In is set when the rune at Offset belongs to an atom of the probed
	// type, or a zero-size atom of that type is anchored at Offset.
	In   bool
	Atom buffer.Atom
}

// Probe tests atom membership at off+d for every relative offset d.
// Out-of-range probes, and every probe on a nil document, are reported as
// non-members.
func Probe(doc Document, off int, typ buffer.NodeType, offsets ...int) []Member {
	if len(offsets) == 0 {
		offsets = DefaultProbes
	}
	out := make([]Member, 0, len(offsets))
	for _, d := range offsets {
		m := Member{Offset: off + d}
		if doc == nil {
			out = append(out, m)
			continue
		}
		if a, ok := sizedAt(doc, m.Offset, typ); ok {
			m.In, m.Atom = true, a
		} else if a, ok := emptyAt(doc, m.Offset, typ); ok {
			m.In, m.Atom = true, a
		}
		out = append(out, m)
	}
	return out
}

// Placement is the full classification of a caret offset.
type Placement struct {
	Code Code

	// Before is the atom on the left of the caret: the one ending at the
	// caret for AtEnd, Between and TwoAwayRight, or the one holding the
	// caret for interior codes.
	Before    buffer.Atom
	HasBefore bool

	// After is the atom on the right of the caret: the one starting at the
	// caret for AtStart and Between, or one unit further for TwoAwayLeft.
	// Interior codes set it to the holding atom as well.
	After    buffer.Atom
	HasAfter bool
}

// Node returns the atom the code refers to, preferring After.
func (p Placement) Node() (buffer.Atom, bool) {
	if p.HasAfter {
		return p.After, true
	}
	return p.Before, p.HasBefore
}

// Locate classifies off against atoms of typ. It is a pure query.
//
// Two adjacent atoms are never treated as one region: an offset where one
// ends and another starts is Between, not interior.
func Locate(doc Document, off int, typ buffer.NodeType) Placement {
	if doc == nil || off < 0 || off > doc.Len() {
		return Placement{}
	}

	left, lok := sizedAt(doc, off-1, typ)
	right, rok := sizedAt(doc, off, typ)
	empty, eok := emptyAt(doc, off, typ)

	switch {
	case lok && rok && left.ID == right.ID:
		p := Placement{Before: left, HasBefore: true, After: left, HasAfter: true}
		switch off {
		case left.Start + 1:
			p.Code = OneInsideLeft
		case left.End() - 1:
			p.Code = OneInsideRight
		default:
			p.Code = Inside
		}
		return p
	case lok && rok:
		return Placement{Code: Between, Before: left, HasBefore: true, After: right, HasAfter: true}
	case lok && eok:
		return Placement{Code: Between, Before: left, HasBefore: true, After: empty, HasAfter: true}
	case rok:
		return Placement{Code: AtStart, After: right, HasAfter: true}
	case eok:
		return Placement{Code: AtStart, After: empty, HasAfter: true}
	case lok:
		return Placement{Code: AtEnd, Before: left, HasBefore: true}
	}

	if a, ok := sizedAt(doc, off+1, typ); ok && a.Start == off+1 {
		return Placement{Code: TwoAwayLeft, After: a, HasAfter: true}
	}
	if a, ok := emptyAt(doc, off+1, typ); ok {
		return Placement{Code: TwoAwayLeft, After: a, HasAfter: true}
	}
	if a, ok := sizedAt(doc, off-2, typ); ok && a.End() == off-1 {
		return Placement{Code: TwoAwayRight, Before: a, HasBefore: true}
	}
	if a, ok := emptyAt(doc, off-1, typ); ok {
		return Placement{Code: TwoAwayRight, Before: a, HasBefore: true}
	}
	return Placement{}
}

// Classify returns only the code of Locate.
func Classify(doc Document, off int, typ buffer.NodeType) Code {
	return Locate(doc, off, typ).Code
}

func sizedAt(doc Document, off int, typ buffer.NodeType) (buffer.Atom, bool) {
	if off < 0 || off >= doc.Len() {
		return buffer.Atom{}, false
	}
	a, ok := doc.AtomAt(off)
	if !ok || a.Type != typ {
		return buffer.Atom{}, false
	}
	return a, true
}

func emptyAt(doc Document, off int, typ buffer.NodeType) (buffer.Atom, bool) {
	if off < 0 || off > doc.Len() {
		return buffer.Atom{}, false
	}
	a, ok := doc.EmptyAtomAt(off)
	if !ok || a.Type != typ {
		return buffer.Atom{}, false
	}
	return a, true
}
