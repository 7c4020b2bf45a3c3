package editor

import (
	"sort"
	"strings"

	graphemeutil "github.com/iw2rmb/nodemark/internal/grapheme"
)

type VisualTokenKind int

const (
	VisualTokenDoc VisualTokenKind = iota
	VisualTokenAtom
	VisualTokenVirtual
)

type VisualToken struct {
	Kind VisualTokenKind

	// Text is the rendered token text. Tabs are expanded to spaces.
	Text string

	// StartCell is the visual cell offset where this token begins.
	StartCell int

	// CellWidth is the number of terminal cells this token occupies.
	CellWidth int

	// DocStartCol/DocEndCol define the rune span of the line this token
	// renders. For virtual tokens both equal the anchor column.
	DocStartCol int
	DocEndCol   int

	// Role is meaningful only for virtual tokens.
	Role VirtualRole

	// Marked is set when a zero-width marker sits right before the token.
	Marked bool

	// group is shared by the tokens of one atom or one view-only insertion;
	// zero for plain text. Soft wrap keeps a group on one row.
	group int
}

type VisualLine struct {
	RawLen int // rune length of the raw buffer line

	Tokens []VisualToken

	// EOLMarked is set when a marker sits after every token of the line.
	EOLMarked bool

	cellToToken []int
}

type anchored struct {
	col, side int
	marker    bool
	ins       VirtualInsertion
	group     int
}

func BuildVisualLine(line []rune, deco LineDecorations, tabWidth int) VisualLine {
	rawLen := len(line)
	if tabWidth <= 0 {
		tabWidth = 4
	}
	deco = normalizeLineDecorations(deco, rawLen)

	atomOf := make([]int, rawLen)
	for i, a := range deco.Atoms {
		for c := a.StartCol; c < a.EndCol; c++ {
			atomOf[c] = i + 1
		}
	}

	items := make([]anchored, 0, len(deco.Insertions)+len(deco.Markers))
	for _, mk := range deco.Markers {
		items = append(items, anchored{col: mk.Col, side: mk.Side, marker: true})
	}
	for i, in := range deco.Insertions {
		items = append(items, anchored{col: in.Col, side: in.Side, ins: in, group: len(deco.Atoms) + i + 1})
	}
	// Markers sort before insertions of the same side so they mark them.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.col != b.col {
			return a.col < b.col
		}
		if a.side != b.side {
			return a.side < b.side
		}
		return a.marker && !b.marker
	})

	vl := VisualLine{RawLen: rawLen}
	visualCol := 0
	pendingMark := false

	appendToken := func(tok VisualToken) {
		if tok.CellWidth < 1 {
			tok.CellWidth = 1
		}
		if tok.Text == "" {
			tok.Text = " "
		}
		tok.StartCell = visualCol
		tok.Marked = pendingMark
		pendingMark = false
		idx := len(vl.Tokens)
		for i := 0; i < tok.CellWidth; i++ {
			vl.cellToToken = append(vl.cellToToken, idx)
		}
		vl.Tokens = append(vl.Tokens, tok)
		visualCol += tok.CellWidth
	}

	emit := func(it anchored) {
		if it.marker {
			pendingMark = true
			return
		}
		for _, gr := range graphemeutil.Split(it.ins.Text) {
			w := graphemeutil.CellWidth(gr, visualCol, tabWidth)
			appendToken(VisualToken{
				Kind:        VisualTokenVirtual,
				Text:        gr,
				CellWidth:   w,
				DocStartCol: it.ins.Col,
				DocEndCol:   it.ins.Col,
				Role:        it.ins.Role,
				group:       it.group,
			})
		}
	}

	next := 0
	for _, cl := range graphemeutil.Clusters(line) {
		for next < len(items) && items[next].col < cl.End {
			emit(items[next])
			next++
		}

		kind := VisualTokenDoc
		group := atomOf[cl.Start]
		if group != 0 {
			kind = VisualTokenAtom
		}
		text := cl.Text
		w := graphemeutil.CellWidth(text, visualCol, tabWidth)
		switch {
		case text == "\t":
			text = strings.Repeat(" ", w)
		case w == 0:
			// Zero-width clusters still get a cell so they can hold the caret.
			text = " "
		}
		appendToken(VisualToken{
			Kind:        kind,
			Text:        text,
			CellWidth:   w,
			DocStartCol: cl.Start,
			DocEndCol:   cl.End,
			group:       group,
		})
	}
	for next < len(items) {
		emit(items[next])
		next++
	}
	vl.EOLMarked = pendingMark
	return vl
}

func (vl VisualLine) VisualLen() int { return len(vl.cellToToken) }

// TokenAtCell returns the index of the token covering cell x.
func (vl VisualLine) TokenAtCell(x int) (int, bool) {
	if x < 0 || x >= len(vl.cellToToken) {
		return 0, false
	}
	return vl.cellToToken[x], true
}

// DocColForVisualCell maps a cell to the rune column a click there targets.
func (vl VisualLine) DocColForVisualCell(x int) int {
	if x < 0 {
		x = 0
	}
	idx, ok := vl.TokenAtCell(x)
	if !ok {
		return vl.RawLen
	}
	return clampInt(vl.Tokens[idx].DocStartCol, 0, vl.RawLen)
}

// VisualCellForDocCol returns the cell where a caret at col is drawn.
// The caret sits on the cluster containing col, after any view-only text
// anchored there; at end of line it sits past every token.
func (vl VisualLine) VisualCellForDocCol(col int) int {
	col = clampInt(col, 0, vl.RawLen)
	if col == vl.RawLen {
		return vl.VisualLen()
	}
	for _, tok := range vl.Tokens {
		if tok.Kind == VisualTokenVirtual {
			continue
		}
		if col >= tok.DocStartCol && col < tok.DocEndCol {
			return tok.StartCell
		}
	}
	return vl.VisualLen()
}

// cursorTokenIndex returns the doc token holding col, or -1 at end of line.
func (vl VisualLine) cursorTokenIndex(col int) int {
	for i, tok := range vl.Tokens {
		if tok.Kind == VisualTokenVirtual {
			continue
		}
		if col >= tok.DocStartCol && col < tok.DocEndCol {
			return i
		}
	}
	return -1
}
