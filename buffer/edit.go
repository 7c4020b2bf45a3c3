package buffer

import (
	"strings"
	"unicode/utf8"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replaceLocal(b.posToOffset(r.Start), b.posToOffset(r.End), s)
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: one rune (or line break) before
// the cursor. Atoms are not special-cased here; a rune removed from inside an
// atom shrinks it.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	off := b.CursorOffset()
	if off == 0 {
		return
	}
	b.replaceLocal(off-1, off, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	off := b.CursorOffset()
	if off >= b.Len() {
		return
	}
	b.replaceLocal(off, off+1, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replaceLocal(b.posToOffset(r.Start), b.posToOffset(r.End), "")
}

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// v0 semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last applied (effective) edit.
// - Selection is cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	anyChanged := false
	lastCursor := b.CursorOffset()
	for _, e := range edits {
		r := NormalizeRange(ClampRange(e.Range, len(b.lines), b.lineLen))
		next, applied, changed := b.replaceOffsets(b.posToOffset(r.Start), b.posToOffset(r.End), e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = next
		change.addAppliedEdit(applied)
	}
	if !anyChanged {
		return
	}

	b.cursor = b.PosAt(lastCursor)
	b.sel = selectionState{}
	b.version++
	b.textVer++
	b.recordUndo(prev)
	b.commitChange(change)
}

// replaceLocal is the single-edit path shared by typing and deletion keys.
func (b *Buffer) replaceLocal(from, to int, text string) {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	next, applied, changed := b.replaceOffsets(from, to, text)
	if !changed {
		return
	}

	b.cursor = b.PosAt(next)
	b.sel = selectionState{}
	b.version++
	b.textVer++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

// replaceOffsets replaces [from, to) with text and remaps the atom table.
// It returns the offset just past the inserted text.
func (b *Buffer) replaceOffsets(from, to int, text string) (next int, applied AppliedEdit, changed bool) {
	n := b.Len()
	from = clampInt(from, 0, n)
	to = clampInt(to, 0, n)
	if to < from {
		from, to = to, from
	}

	r := Range{Start: b.offsetToPos(from), End: b.offsetToPos(to)}
	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return from, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]rune(nil), b.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]rune, 0, len(parts))
	for i, p := range parts {
		var line []rune
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, []rune(p)...)
		if i == len(parts)-1 {
			line = append(line, suffix...)
		}
		repl = append(repl, line)
	}

	out := make([][]rune, 0, len(b.lines)-(endRow-startRow)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	inserted := utf8.RuneCountInString(text)
	b.remapAtoms(from, to, inserted)

	next = from + inserted
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: b.offsetToPos(next)},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return next, applied, true
}

func textForLinesRange(lines [][]rune, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow := r.Start.Row
	endRow := r.End.Row
	startCol := r.Start.Col
	endCol := r.End.Col

	if startRow == endRow {
		return string(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(string(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
