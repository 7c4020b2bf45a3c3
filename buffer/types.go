package buffer

// Pos points into the logical document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

// NodeType tags the kind of an inline atom ("mention", "emoji", ...).
type NodeType string

// Atom is an indivisible inline node.
//
// The atom covers the runes [Start, Start+Size) of the document. Size may be 0,
// in which case the atom is anchored at Start and has no document content;
// Label is then the only thing rendered for it.
type Atom struct {
	ID    uint64
	Type  NodeType
	Start int
	Size  int
	Label string
}

// End returns the offset just past the atom's content.
func (a Atom) End() int { return a.Start + a.Size }

// Empty reports whether the atom has no document content.
func (a Atom) Empty() bool { return a.Size == 0 }

// Contains reports whether the rune at off belongs to the atom.
func (a Atom) Contains(off int) bool { return off >= a.Start && off < a.End() }

// AtomSpec describes an atom over text that already exists in the document.
type AtomSpec struct {
	Type  NodeType
	Start int
	Size  int
	Label string
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
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

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
