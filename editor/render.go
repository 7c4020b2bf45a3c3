package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/nodemark/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	widgets, hints := m.collectDecorations()
	atoms := m.buf.Atoms()
	lineCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	selFrom, selTo, selOK := m.selectionSpan()

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(lineCount)
	}

	maxIntVal := int(^uint(0) >> 1)
	width := m.contentWidth()
	wraps := m.wraps()
	showCursor := m.focused && !hints.HideCursor
	blankGutter := ""
	if m.cfg.ShowLineNums {
		blankGutter = m.cfg.Style.Gutter.Render(strings.Repeat(" ", digitCount+1))
	}

	out := make([]string, 0, lineCount)
	lineStart := 0
	for row := 0; row < lineCount; row++ {
		line := []rune(m.buf.Line(row))
		deco := decorationsForLine(lineStart, len(line), atoms, widgets)
		vl := BuildVisualLine(line, deco, m.cfg.TabWidth)

		cursorCol := -1
		if showCursor && row == cursor.Row {
			cursorCol = clampInt(cursor.Col, 0, vl.RawLen)
		}
		selStart, selEnd, hasSel := 0, 0, false
		if selOK {
			selStart = clampInt(selFrom-lineStart, 0, len(line))
			selEnd = clampInt(selTo-lineStart, 0, len(line))
			hasSel = selStart < selEnd
		}

		segs := m.segmentsFor(vl)
		for i, seg := range segs {
			var sb strings.Builder
			if m.cfg.ShowLineNums {
				if i == 0 {
					numStyle := m.cfg.Style.LineNum
					if m.focused && row == cursor.Row {
						numStyle = m.cfg.Style.LineNumActive
					}
					sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
					sb.WriteString(m.cfg.Style.Gutter.Render(" "))
				} else {
					sb.WriteString(blankGutter)
				}
			}

			left := m.scrollX()
			right := maxIntVal
			segCursor := cursorCol
			switch {
			case wraps:
				left, right = seg.startCell, seg.endCell
				if i == len(segs)-1 {
					// The end of line cell fits only when the row is not full.
					if seg.Cells < width {
						right++
					} else if segCursor == vl.RawLen && vl.RawLen > 0 {
						segCursor = vl.RawLen - 1
					}
				}
			case width > 0:
				right = left + width
			}

			sb.WriteString(renderVisualLine(m.cfg.Style, vl, segCursor, selStart, selEnd, hasSel, left, right))
			out = append(out, sb.String())
		}
		lineStart += len(line) + 1
	}

	return strings.Join(out, "\n")
}

// selectionSpan returns the selection as ordered offsets.
func (m *Model) selectionSpan() (from, to int, ok bool) {
	anchor, head, ok := m.buf.SelectionOffsets()
	if !ok {
		return 0, 0, false
	}
	if anchor > head {
		anchor, head = head, anchor
	}
	return anchor, head, true
}

// renderVisualLine renders the cells [left, right) of vl. cursorCol is -1
// when the native cursor is not drawn on this line.
func renderVisualLine(st Style, vl VisualLine, cursorCol, selStart, selEnd int, hasSel bool, left, right int) string {
	left = maxInt(left, 0)
	if right < left {
		right = left
	}

	cursorTok := -1
	if cursorCol >= 0 && cursorCol < vl.RawLen {
		cursorTok = vl.cursorTokenIndex(cursorCol)
	}

	renderSpan := func(style lipgloss.Style, tok VisualToken, spanStart, spanWidth int) string {
		if spanWidth <= 0 {
			return ""
		}
		if spanStart == 0 && spanWidth == tok.CellWidth {
			return style.Render(tok.Text)
		}
		if isAllSpaces(tok.Text) {
			return style.Render(strings.Repeat(" ", spanWidth))
		}
		// Partial wide grapheme: preserve alignment with blanks.
		return st.Text.Render(strings.Repeat(" ", spanWidth))
	}

	var sb strings.Builder
	for i, tok := range vl.Tokens {
		segL := tok.StartCell
		segR := tok.StartCell + tok.CellWidth
		spanL := maxInt(segL, left)
		spanR := minInt(segR, right)
		if spanL >= spanR {
			continue
		}

		var style lipgloss.Style
		selected := hasSel && tok.Kind != VisualTokenVirtual &&
			tok.DocStartCol < selEnd && tok.DocEndCol > selStart
		switch {
		case i == cursorTok:
			style = st.Cursor
		case tok.Marked:
			style = st.FakeCursor.Inherit(st.Text)
		case selected:
			style = st.Selection
		case tok.Kind == VisualTokenAtom:
			style = st.Atom.Inherit(st.Text)
		case tok.Kind == VisualTokenVirtual && tok.Role == VirtualRoleAtomLabel:
			style = st.AtomLabel.Inherit(st.Text)
		case tok.Kind == VisualTokenVirtual:
			style = st.Widget.Inherit(st.Text)
		default:
			style = st.Text
		}
		sb.WriteString(renderSpan(style, tok, spanL-segL, spanR-spanL))
	}

	// Cursor and end-of-line markers render as a 1-cell placeholder space.
	eol := vl.VisualLen()
	if eol >= left && eol < right {
		switch {
		case cursorCol == vl.RawLen:
			sb.WriteString(st.Cursor.Render(" "))
		case vl.EOLMarked:
			sb.WriteString(st.FakeCursor.Render(" "))
		}
	}
	return sb.String()
}

func isAllSpaces(s string) bool {
	if s == "" {
		return false
	}
	for _, g := range graphemeutil.Split(s) {
		if !graphemeutil.IsSpace(g) {
			return false
		}
	}
	return true
}
