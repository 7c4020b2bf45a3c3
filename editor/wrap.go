package editor

import (
	graphemeutil "github.com/iw2rmb/nodemark/internal/grapheme"
)

type wrappedSegment struct {
	StartCol int
	EndCol   int
	Cells    int

	startCell int
	endCell   int
}

type wrapUnit struct {
	startCell int
	endCell   int
	width     int

	isWhitespace bool
	isPunct      bool
}

func wrapSegmentsForVisualLine(vl VisualLine, mode WrapMode, width int) []wrappedSegment {
	visualLen := vl.VisualLen()
	if width <= 0 || mode == WrapNone {
		return []wrappedSegment{{
			StartCol:  0,
			EndCol:    vl.RawLen,
			Cells:     visualLen,
			startCell: 0,
			endCell:   visualLen,
		}}
	}

	units := wrapUnitsFromVisualLine(vl, width)
	if len(units) == 0 {
		return []wrappedSegment{{}}
	}

	segments := make([]wrappedSegment, 0, 1+visualLen/width)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := maxInt(units[overflow].width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(units, start, overflow)
			}
		}
		if end <= start {
			end = minInt(start+1, len(units))
		}

		segments = append(segments, segmentFromUnitRange(vl, units, start, end))
		start = end
	}
	return segments
}

// wrapUnitsFromVisualLine splits vl into the pieces a row break may fall
// between. Tokens of one atom or one label form a single unit unless the
// unit would not fit a row of width cells.
func wrapUnitsFromVisualLine(vl VisualLine, width int) []wrapUnit {
	if len(vl.Tokens) == 0 {
		return nil
	}

	units := make([]wrapUnit, 0, len(vl.Tokens))
	for i := 0; i < len(vl.Tokens); {
		tok := vl.Tokens[i]
		j := i + 1
		if tok.group != 0 {
			for j < len(vl.Tokens) && vl.Tokens[j].group == tok.group {
				j++
			}
			last := vl.Tokens[j-1]
			end := last.StartCell + last.CellWidth
			if end-tok.StartCell <= width {
				units = append(units, wrapUnit{
					startCell: tok.StartCell,
					endCell:   end,
					width:     end - tok.StartCell,
				})
				i = j
				continue
			}
		}
		for _, t := range vl.Tokens[i:j] {
			units = appendTokenUnits(units, t)
		}
		i = j
	}
	return units
}

func appendTokenUnits(units []wrapUnit, tok VisualToken) []wrapUnit {
	if tokenIsSplittableSpaces(tok) {
		for c := 0; c < tok.CellWidth; c++ {
			startCell := tok.StartCell + c
			units = append(units, wrapUnit{
				startCell:    startCell,
				endCell:      startCell + 1,
				width:        1,
				isWhitespace: true,
			})
		}
		return units
	}

	isWhitespace, isPunct := tokenClass(tok.Text)
	return append(units, wrapUnit{
		startCell:    tok.StartCell,
		endCell:      tok.StartCell + tok.CellWidth,
		width:        tok.CellWidth,
		isWhitespace: isWhitespace,
		isPunct:      isPunct,
	})
}

func tokenIsSplittableSpaces(tok VisualToken) bool {
	if tok.Kind != VisualTokenDoc || tok.Text == "" {
		return false
	}
	if tok.CellWidth != graphemeutil.Count(tok.Text) {
		return false
	}
	return isAllSpaces(tok.Text)
}

func tokenClass(text string) (isWhitespace bool, isPunct bool) {
	if text == "" {
		return false, false
	}
	isWhitespace = true
	isPunct = true
	for _, gr := range graphemeutil.Split(text) {
		if !graphemeutil.IsSpace(gr) {
			isWhitespace = false
		}
		if !graphemeutil.IsPunct(gr) {
			isPunct = false
		}
	}
	if isWhitespace {
		isPunct = false
	}
	return isWhitespace, isPunct
}

func segmentFromUnitRange(vl VisualLine, units []wrapUnit, start, end int) wrappedSegment {
	startCell := units[start].startCell
	endCell := maxInt(units[end-1].endCell, startCell)

	startCol := clampInt(vl.DocColForVisualCell(startCell), 0, vl.RawLen)
	endCol := vl.RawLen
	if endCell < vl.VisualLen() {
		endCol = clampInt(vl.DocColForVisualCell(endCell), startCol, vl.RawLen)
	}

	return wrappedSegment{
		StartCol:  startCol,
		EndCol:    endCol,
		Cells:     endCell - startCell,
		startCell: startCell,
		endCell:   endCell,
	}
}

// segmentIndexForCell returns the segment a caret drawn at cell sits on. A
// cell on the seam between two segments belongs to the later one; the end
// of line belongs to the last.
func segmentIndexForCell(segs []wrappedSegment, cell int) int {
	for i, seg := range segs {
		if cell < seg.endCell {
			return i
		}
	}
	return len(segs) - 1
}
