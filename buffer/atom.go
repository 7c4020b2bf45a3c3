package buffer

import "unicode/utf8"

// remapAtoms moves the atom table through a replacement of [from, to) by
// inserted runes.
//
// Rules:
// - sized atoms fully covered by the deletion are dropped, partially covered
//   ones are clipped;
// - an insertion at an atom's start shifts the atom right, an insertion
//   strictly inside it grows it;
// - zero-size atoms strictly inside the deletion are dropped, ones at the
//   insertion offset shift right.
func (b *Buffer) remapAtoms(from, to, inserted int) {
	if len(b.atoms) == 0 {
		return
	}
	deleted := to - from
	out := make([]Atom, 0, len(b.atoms))
	for _, a := range b.atoms {
		if a.Size == 0 {
			switch {
			case a.Start < from:
			case a.Start > from && a.Start < to:
				continue
			case a.Start >= to:
				a.Start += inserted - deleted
			default: // a.Start == from
				a.Start = from + inserted
			}
			out = append(out, a)
			continue
		}

		if deleted > 0 && from <= a.Start && a.End() <= to {
			continue
		}
		start := mapDeleted(a.Start, from, to)
		end := mapDeleted(a.End(), from, to)
		switch {
		case start >= from:
			start += inserted
			end += inserted
		case end > from:
			end += inserted
		}
		a.Start, a.Size = start, end-start
		out = append(out, a)
	}
	sortAtoms(out)
	b.atoms = out
}

func mapDeleted(off, from, to int) int {
	switch {
	case off <= from:
		return off
	case off <= to:
		return from
	default:
		return off - (to - from)
	}
}

// mapOffset maps a caret offset through a replacement of [from, to) by
// inserted runes. Carets inside the replaced range land after the insertion.
func mapOffset(off, from, to, inserted int) int {
	switch {
	case off < from:
		return off
	case off <= to:
		return from + inserted
	default:
		return off + inserted - (to - from)
	}
}

// insertAtom inserts content at off and registers it as a new atom.
// Inserting strictly inside an existing sized atom is rejected.
func (b *Buffer) insertAtom(off int, typ NodeType, content, label string) (Atom, AppliedEdit, bool) {
	n := b.Len()
	if off < 0 || off > n {
		return Atom{}, AppliedEdit{}, false
	}
	if host, ok := b.AtomAt(off); ok && host.Start < off {
		return Atom{}, AppliedEdit{}, false
	}
	content = sanitizeLabel(content)

	applied := AppliedEdit{
		RangeBefore: Range{Start: b.offsetToPos(off), End: b.offsetToPos(off)},
		RangeAfter:  Range{Start: b.offsetToPos(off), End: b.offsetToPos(off)},
	}
	if content != "" {
		_, ed, _ := b.replaceOffsets(off, off, content)
		applied = ed
	}

	a := Atom{
		ID:    b.nextID,
		Type:  typ,
		Start: off,
		Size:  utf8.RuneCountInString(content),
		Label: sanitizeLabel(label),
	}
	b.nextID++
	b.atoms = append(b.atoms, a)
	sortAtoms(b.atoms)
	applied.Atom = AtomChange{Kind: AtomInserted, Atom: a}
	return a, applied, true
}

// removeAtom deletes the atom and its content.
func (b *Buffer) removeAtom(id uint64) (AppliedEdit, bool) {
	a, ok := b.AtomByID(id)
	if !ok {
		return AppliedEdit{}, false
	}
	if a.Size == 0 {
		out := b.atoms[:0:0]
		for _, other := range b.atoms {
			if other.ID != id {
				out = append(out, other)
			}
		}
		b.atoms = out
		p := b.offsetToPos(a.Start)
		return AppliedEdit{
			RangeBefore: Range{Start: p, End: p},
			RangeAfter:  Range{Start: p, End: p},
			Atom:        AtomChange{Kind: AtomRemoved, Atom: a},
		}, true
	}
	_, applied, changed := b.replaceOffsets(a.Start, a.End(), "")
	if !changed {
		return AppliedEdit{}, false
	}
	applied.Atom = AtomChange{Kind: AtomRemoved, Atom: a}
	return applied, true
}
