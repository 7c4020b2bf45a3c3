package editor

import (
	"strconv"

	"github.com/iw2rmb/nodemark/buffer"
)

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(maxInt(lineCount, 1)))
}

// gutterWidth is the number of cells the line number gutter takes, including
// its separator.
func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m *Model) contentWidth() int {
	return maxInt(m.viewport.Width-m.gutterWidth(), 0)
}

// collectDecorations asks every decoration source for its widgets. Surface
// hints are merged: a hint set by any plugin applies.
func (m *Model) collectDecorations() ([]Widget, SurfaceHints) {
	var (
		widgets []Widget
		hints   SurfaceHints
	)
	v := m.view()
	for _, p := range m.h.plugins {
		src, ok := p.(DecorationSource)
		if !ok {
			continue
		}
		d := src.Decorations(v)
		widgets = append(widgets, d.Widgets...)
		hints.HideCursor = hints.HideCursor || d.Surface.HideCursor
	}
	return widgets, hints
}

func (m *Model) collectWidgets() []Widget {
	w, _ := m.collectDecorations()
	return w
}

func (m *Model) rowDecorations(row int, widgets []Widget) LineDecorations {
	lineStart := m.buf.OffsetOf(buffer.Pos{Row: row})
	lineLen := len([]rune(m.buf.Line(row)))
	return decorationsForLine(lineStart, lineLen, m.buf.Atoms(), widgets)
}

func (m *Model) visualLineForRow(row int, deco LineDecorations) VisualLine {
	return BuildVisualLine([]rune(m.buf.Line(row)), deco, m.cfg.TabWidth)
}

// wraps reports whether long lines are soft wrapped at the content width.
func (m *Model) wraps() bool {
	return m.cfg.WrapMode != WrapNone && m.contentWidth() > 0
}

func (m *Model) segmentsFor(vl VisualLine) []wrappedSegment {
	if !m.wraps() {
		return wrapSegmentsForVisualLine(vl, WrapNone, 0)
	}
	return wrapSegmentsForVisualLine(vl, m.cfg.WrapMode, m.contentWidth())
}

// layoutRow is one rendered row: a segment of a logical line.
type layoutRow struct {
	row  int
	seg  wrappedSegment
	last bool
}

// layout lists the rendered rows top to bottom. Without wrapping there is
// one row per logical line.
func (m *Model) layout(widgets []Widget) []layoutRow {
	rows := make([]layoutRow, 0, m.buf.LineCount())
	for row := 0; row < m.buf.LineCount(); row++ {
		segs := m.segmentsFor(m.visualLineForRow(row, m.rowDecorations(row, widgets)))
		for i, seg := range segs {
			rows = append(rows, layoutRow{row: row, seg: seg, last: i == len(segs)-1})
		}
	}
	return rows
}

// visualRowOf returns the rendered row that draws cell of logical row, and
// the segment it belongs to.
func (m *Model) visualRowOf(row int, vl VisualLine, cell int, widgets []Widget) (int, wrappedSegment) {
	segs := m.segmentsFor(vl)
	idx := segmentIndexForCell(segs, cell)
	if !m.wraps() {
		return row, segs[idx]
	}
	vrow := idx
	for r := 0; r < row; r++ {
		vrow += len(m.segmentsFor(m.visualLineForRow(r, m.rowDecorations(r, widgets))))
	}
	return vrow, segs[idx]
}

// scrollX is the horizontal scroll offset; wrapped layouts never scroll
// sideways.
func (m *Model) scrollX() int {
	if m.wraps() {
		return 0
	}
	return maxInt(m.xOffset, 0)
}

// emptyAtomGlyph is drawn for zero-size atoms without a label.
const emptyAtomGlyph = "◆"

// decorationsForLine projects atoms (in document order) and widgets onto the
// line covering offsets [lineStart, lineStart+lineLen]. The end offset is the
// line's newline (or the document end) and belongs to this line.
func decorationsForLine(lineStart, lineLen int, atoms []buffer.Atom, widgets []Widget) LineDecorations {
	lineEnd := lineStart + lineLen
	var d LineDecorations

	for _, a := range atoms {
		if a.Start > lineEnd {
			break
		}
		if a.Empty() {
			if a.Start < lineStart {
				continue
			}
			label := a.Label
			if label == "" {
				label = emptyAtomGlyph
			}
			d.Insertions = append(d.Insertions, VirtualInsertion{
				Col:  a.Start - lineStart,
				Text: label,
				Role: VirtualRoleAtomLabel,
			})
			continue
		}
		if a.End() <= lineStart {
			continue
		}
		d.Atoms = append(d.Atoms, AtomSpan{
			StartCol: maxInt(a.Start, lineStart) - lineStart,
			EndCol:   minInt(a.End(), lineEnd) - lineStart,
		})
	}

	for _, w := range widgets {
		if w.Offset < lineStart || w.Offset > lineEnd {
			continue
		}
		col := w.Offset - lineStart
		if w.Text == "" {
			d.Markers = append(d.Markers, Marker{Col: col, Side: w.Side})
			continue
		}
		d.Insertions = append(d.Insertions, VirtualInsertion{
			Col:  col,
			Side: w.Side,
			Text: w.Text,
			Role: VirtualRoleWidget,
		})
	}
	return d
}
