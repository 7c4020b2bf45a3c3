package editor

import "github.com/iw2rmb/nodemark/buffer"

// HitKind tells what was rendered in the cell a hit landed on.
type HitKind int

const (
	// HitText is ordinary document text.
	HitText HitKind = iota
	// HitAtom is the content of a sized atom.
	HitAtom
	// HitVirtual is view-only text: a zero-size atom label or a widget.
	HitVirtual
	// HitPadding is the empty area past the end of a line or the document.
	HitPadding
	// HitGutter is the line number gutter.
	HitGutter
)

func (k HitKind) String() string {
	switch k {
	case HitText:
		return "text"
	case HitAtom:
		return "atom"
	case HitVirtual:
		return "virtual"
	case HitPadding:
		return "padding"
	case HitGutter:
		return "gutter"
	default:
		return "unknown"
	}
}

// Hit is the result of mapping a screen cell to the document.
type Hit struct {
	Offset int
	Pos    buffer.Pos
	Kind   HitKind
	// AtomID is the atom under the cell for HitAtom and for zero-size atom
	// labels; zero otherwise.
	AtomID uint64
}

// hitTest maps viewport-local coordinates to a document hit.
//
// Coordinates are in terminal cells relative to the editor's viewport: (0,0)
// is the top-left of the visible content region. Rows are rendered rows, so
// with soft wrap one logical line may span several. Out-of-range coordinates
// are clamped into the document.
func (m *Model) hitTest(x, y int) Hit {
	if m.buf == nil {
		return Hit{Kind: HitPadding}
	}

	widgets := m.collectWidgets()
	rows := m.layout(widgets)
	vrow := m.viewport.YOffset + y
	past := vrow >= len(rows)
	lr := rows[clampInt(vrow, 0, len(rows)-1)]
	row := lr.row
	lineStart := m.buf.OffsetOf(buffer.Pos{Row: row})

	if x < 0 {
		x = 0
	}
	if gw := m.gutterWidth(); x < gw {
		return Hit{Offset: lineStart, Pos: buffer.Pos{Row: row}, Kind: HitGutter}
	}

	vl := m.visualLineForRow(row, m.rowDecorations(row, widgets))
	if past {
		return m.hitAt(row, lineStart, vl.RawLen, HitPadding)
	}

	vx := x - m.gutterWidth() + lr.seg.startCell + m.scrollX()
	if !lr.last && vx >= lr.seg.endCell {
		// Past the end of a wrapped row: the seam with the next one.
		return m.hitAt(row, lineStart, lr.seg.EndCol, HitPadding)
	}
	idx, ok := vl.TokenAtCell(vx)
	if !ok {
		return m.hitAt(row, lineStart, vl.RawLen, HitPadding)
	}

	tok := vl.Tokens[idx]
	col := clampInt(tok.DocStartCol, 0, vl.RawLen)
	hit := m.hitAt(row, lineStart, col, HitText)
	switch tok.Kind {
	case VisualTokenAtom:
		hit.Kind = HitAtom
		if a, ok := m.buf.AtomAt(hit.Offset); ok {
			hit.AtomID = a.ID
		}
	case VisualTokenVirtual:
		hit.Kind = HitVirtual
		if tok.Role == VirtualRoleAtomLabel {
			if a, ok := m.buf.EmptyAtomAt(hit.Offset); ok {
				hit.AtomID = a.ID
			}
		}
	}
	return hit
}

func (m *Model) hitAt(row, lineStart, col int, kind HitKind) Hit {
	return Hit{
		Offset: lineStart + col,
		Pos:    buffer.Pos{Row: row, Col: col},
		Kind:   kind,
	}
}

// docToScreenPos maps a document position to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) docToScreenPos(pos buffer.Pos) (x int, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}

	row := clampInt(pos.Row, 0, m.buf.LineCount()-1)
	widgets := m.collectWidgets()
	vl := m.visualLineForRow(row, m.rowDecorations(row, widgets))
	cell := vl.VisualCellForDocCol(pos.Col)
	vrow, seg := m.visualRowOf(row, vl, cell, widgets)

	screenY := vrow - m.viewport.YOffset
	screenX := cell - seg.startCell - m.scrollX() + m.gutterWidth()

	if screenY < 0 || screenY >= m.visibleRowCount() {
		return screenX, screenY, false
	}
	if screenX < 0 || screenX >= m.viewport.Width {
		return screenX, screenY, false
	}
	return screenX, screenY, true
}
