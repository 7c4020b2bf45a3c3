package editor

import "github.com/iw2rmb/nodemark/buffer"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the logical row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal scroll offset in cells, always zero
	// while lines wrap.
	LeftCellOffset int
	// WrapMode is the active wrapping mode used to interpret coordinates.
	WrapMode WrapMode
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := maxInt(m.viewport.YOffset, 0)
	if m.buf != nil && m.wraps() {
		rows := m.layout(m.collectWidgets())
		top = rows[clampInt(top, 0, len(rows)-1)].row
	}
	return ViewportState{
		TopRow:         top,
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: m.scrollX(),
		WrapMode:       m.cfg.WrapMode,
	}
}

// HitTest maps viewport-local screen coordinates to a document hit.
func (m Model) HitTest(x, y int) Hit {
	return (&m).hitTest(x, y)
}

// ScreenToDoc maps viewport-local screen coordinates to a document position.
//
// Coordinates use terminal cells relative to the editor viewport.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).hitTest(x, y).Pos
}

// DocToScreen maps a document position to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	return (&m).docToScreenPos(pos)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
