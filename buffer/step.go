package buffer

// StepKind identifies the primitive mutation a Step performs.
type StepKind uint8

const (
	StepReplace StepKind = iota
	StepInsertAtom
	StepRemoveAtom
)

// Step is one primitive mutation addressed in linear offsets.
//
// Offsets of each step are interpreted against the document produced by the
// previous steps of the same ApplySteps call.
type Step struct {
	Kind StepKind

	// StepReplace: [From, To) is replaced with Text.
	// StepInsertAtom: Text is inserted at From and becomes the atom content.
	From, To int
	Text     string

	// StepInsertAtom only.
	Type  NodeType
	Label string

	// StepRemoveAtom only.
	AtomID uint64
}

func ReplaceStep(from, to int, text string) Step {
	return Step{Kind: StepReplace, From: from, To: to, Text: text}
}

func InsertAtomStep(at int, typ NodeType, content, label string) Step {
	return Step{Kind: StepInsertAtom, From: at, To: at, Text: content, Type: typ, Label: label}
}

func RemoveAtomStep(id uint64) Step {
	return Step{Kind: StepRemoveAtom, AtomID: id}
}

// ApplySteps applies steps as a single change: one version bump, one undo
// entry and one Change record. The cursor is mapped through every step and the
// selection is cleared. It reports whether anything changed.
func (b *Buffer) ApplySteps(steps ...Step) bool {
	if len(steps) == 0 {
		return false
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	cursor := b.CursorOffset()
	anyChanged := false
	for _, s := range steps {
		applied, changed := b.applyStep(s, &cursor)
		if !changed {
			continue
		}
		anyChanged = true
		change.addAppliedEdit(applied)
	}
	if !anyChanged {
		return false
	}

	b.cursor = b.PosAt(cursor)
	b.sel = selectionState{}
	b.version++
	b.textVer++
	b.recordUndo(prev)
	b.commitChange(change)
	return true
}

func (b *Buffer) applyStep(s Step, cursor *int) (AppliedEdit, bool) {
	switch s.Kind {
	case StepReplace:
		n := b.Len()
		from, to := clampInt(s.From, 0, n), clampInt(s.To, 0, n)
		if to < from {
			from, to = to, from
		}
		next, applied, changed := b.replaceOffsets(from, to, s.Text)
		if changed {
			*cursor = mapOffset(*cursor, from, to, next-from)
		}
		return applied, changed
	case StepInsertAtom:
		a, applied, ok := b.insertAtom(s.From, s.Type, s.Text, s.Label)
		if ok && a.Size > 0 && *cursor > a.Start {
			*cursor += a.Size
		}
		return applied, ok
	case StepRemoveAtom:
		a, ok := b.AtomByID(s.AtomID)
		if !ok {
			return AppliedEdit{}, false
		}
		applied, changed := b.removeAtom(s.AtomID)
		if changed && a.Size > 0 {
			*cursor = mapOffset(*cursor, a.Start, a.End(), 0)
		}
		return applied, changed
	default:
		return AppliedEdit{}, false
	}
}
