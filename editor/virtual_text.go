package editor

import (
	"sort"
	"strings"
)

type VirtualRole int

const (
	VirtualRoleAtomLabel VirtualRole = iota // view text of a zero-size atom
	VirtualRoleWidget                       // text contributed by a plugin widget
)

// VirtualInsertion inserts view-only text at a rune column within a single
// logical line. At equal columns, lower Side renders first.
type VirtualInsertion struct {
	Col  int
	Side int
	Text string
	Role VirtualRole
}

// Marker is a zero-width widget. It styles the cell rendered right after it
// (or a placeholder cell at end of line) with Style.FakeCursor.
type Marker struct {
	Col  int
	Side int
}

// AtomSpan marks the rune columns [StartCol, EndCol) of a line as atom content.
type AtomSpan struct {
	StartCol int
	EndCol   int
}

// LineDecorations is everything view-only that applies to one logical line.
type LineDecorations struct {
	Atoms      []AtomSpan
	Insertions []VirtualInsertion
	Markers    []Marker
}

// Widget is a plugin decoration anchored at a document offset.
//
// A widget with empty Text is a zero-width marker. Side orders the widget
// relative to other view-only text anchored at the same offset: negative
// renders before it, zero or positive after.
type Widget struct {
	Offset int
	Side   int
	Text   string
}

// SurfaceHints are editor-wide display toggles requested by plugins.
type SurfaceHints struct {
	// HideCursor suppresses the native (reverse video) cursor.
	HideCursor bool
}

// Decorations is what a DecorationSource contributes for the current state.
type Decorations struct {
	Widgets []Widget
	Surface SurfaceHints
}

func normalizeLineDecorations(d LineDecorations, rawLineLen int) LineDecorations {
	rawLineLen = maxInt(rawLineLen, 0)

	if len(d.Atoms) > 0 {
		spans := make([]AtomSpan, 0, len(d.Atoms))
		for _, a := range d.Atoms {
			start := clampInt(a.StartCol, 0, rawLineLen)
			end := clampInt(a.EndCol, 0, rawLineLen)
			if end <= start {
				continue
			}
			spans = append(spans, AtomSpan{StartCol: start, EndCol: end})
		}
		sort.Slice(spans, func(i, j int) bool { return spans[i].StartCol < spans[j].StartCol })
		d.Atoms = spans
	}

	if len(d.Insertions) > 0 {
		ins := make([]VirtualInsertion, 0, len(d.Insertions))
		for _, in := range d.Insertions {
			text := sanitizeSingleLine(in.Text)
			if text == "" {
				continue
			}
			in.Col = clampInt(in.Col, 0, rawLineLen)
			in.Text = text
			ins = append(ins, in)
		}
		sort.SliceStable(ins, func(i, j int) bool {
			if ins[i].Col != ins[j].Col {
				return ins[i].Col < ins[j].Col
			}
			return ins[i].Side < ins[j].Side
		})
		d.Insertions = ins
	}

	if len(d.Markers) > 0 {
		marks := make([]Marker, 0, len(d.Markers))
		for _, mk := range d.Markers {
			mk.Col = clampInt(mk.Col, 0, rawLineLen)
			marks = append(marks, mk)
		}
		sort.SliceStable(marks, func(i, j int) bool {
			if marks[i].Col != marks[j].Col {
				return marks[i].Col < marks[j].Col
			}
			return marks[i].Side < marks[j].Side
		})
		d.Markers = marks
	}

	return d
}

func sanitizeSingleLine(s string) string {
	if s == "" {
		return ""
	}
	// Insertions must be single-line; drop newline characters.
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
