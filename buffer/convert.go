package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// Len returns the size of the linear offset space: runes plus line breaks.
func (b *Buffer) Len() int {
	total := 0
	for row, line := range b.lines {
		total += len(line)
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.Len(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off), true
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	switch p.ClampMode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = b.clampPos(pos)
	default:
		return 0, false
	}
	return b.posToOffset(pos), true
}

// OffsetOf converts pos to a linear offset, clamping it into the document.
func (b *Buffer) OffsetOf(pos Pos) int {
	return b.posToOffset(b.clampPos(pos))
}

// PosAt converts a linear offset to a position, clamping it into the document.
func (b *Buffer) PosAt(off int) Pos {
	off, _ = clampOffset(off, b.Len(), OffsetClamp)
	return b.offsetToPos(off)
}

// RuneAt returns the rune that starts at off. Line breaks are reported as '\n'.
func (b *Buffer) RuneAt(off int) (rune, bool) {
	if off < 0 {
		return 0, false
	}
	cur := 0
	for row, line := range b.lines {
		if off < cur+len(line) {
			return line[off-cur], true
		}
		cur += len(line)
		if row < len(b.lines)-1 {
			if off == cur {
				return '\n', true
			}
			cur++
		}
	}
	return 0, false
}

// IndexRune returns the offsets of every occurrence of r, in document order.
func (b *Buffer) IndexRune(r rune) []int {
	var out []int
	cur := 0
	for row, line := range b.lines {
		for i, c := range line {
			if c == r {
				out = append(out, cur+i)
			}
		}
		cur += len(line)
		if row < len(b.lines)-1 {
			if r == '\n' {
				out = append(out, cur)
			}
			cur++
		}
	}
	return out
}

// TextRange returns the document text in [from, to), clamped.
func (b *Buffer) TextRange(from, to int) string {
	if from > to {
		from, to = to, from
	}
	return textForLinesRange(b.lines, Range{Start: b.PosAt(from), End: b.PosAt(to)})
}

// LineBounds returns the offsets of the start and end of the line holding off.
func (b *Buffer) LineBounds(off int) (start, end int) {
	p := b.PosAt(off)
	start = b.posToOffset(Pos{Row: p.Row})
	return start, start + b.lineLen(p.Row)
}

// CursorOffset returns the cursor as a linear offset.
func (b *Buffer) CursorOffset() int { return b.posToOffset(b.cursor) }

// SelectionOffsets returns the raw selection as linear offsets. Without an
// active selection anchor and head are both the cursor offset.
func (b *Buffer) SelectionOffsets() (anchor, head int, ok bool) {
	raw, ok := b.SelectionRaw()
	if !ok {
		c := b.CursorOffset()
		return c, c, false
	}
	return b.posToOffset(raw.Start), b.posToOffset(raw.End), true
}

// SetCursorOffset moves the cursor to off and clears the selection.
func (b *Buffer) SetCursorOffset(off int) {
	b.ClearSelection()
	b.SetCursor(b.PosAt(off))
}

// SetSelectionOffsets selects [anchor, head) and places the cursor at head.
// An empty range collapses to a cursor.
func (b *Buffer) SetSelectionOffsets(anchor, head int) {
	if anchor == head {
		b.SetCursorOffset(head)
		return
	}
	b.SetCursor(b.PosAt(head))
	b.SetSelection(Range{Start: b.PosAt(anchor), End: b.PosAt(head)})
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func (b *Buffer) offsetToPos(off int) Pos {
	cur := 0
	for row, line := range b.lines {
		if off <= cur+len(line) {
			return Pos{Row: row, Col: off - cur}
		}
		cur += len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: b.lineLen(last)}
}

func (b *Buffer) posToOffset(pos Pos) int {
	off := 0
	for row := 0; row < pos.Row && row < len(b.lines); row++ {
		off += len(b.lines[row]) + 1
	}
	return off + pos.Col
}
