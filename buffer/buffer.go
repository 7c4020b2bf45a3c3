package buffer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrAtomOutOfRange reports an atom whose span leaves the document.
	ErrAtomOutOfRange = errors.New("buffer: atom out of range")
	// ErrAtomOverlap reports atoms whose spans intersect.
	ErrAtomOverlap = errors.New("buffer: atoms overlap")
)

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, atoms, cursor, and selection.
type Buffer struct {
	lines   [][]rune
	atoms   []Atom // sorted by Start, then ID
	nextID  uint64
	version uint64
	textVer uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:  splitLines(text),
		nextID: 1,
		opt:    opt,
	}
}

// NewWithAtoms builds a buffer whose text already contains the content of the
// given atoms. Specs are validated against the text; overlapping sized atoms
// are rejected.
func NewWithAtoms(text string, specs []AtomSpec, opt Options) (*Buffer, error) {
	b := New(text, opt)
	n := b.Len()
	for i, s := range specs {
		if s.Size < 0 || s.Start < 0 || s.Start+s.Size > n {
			return nil, fmt.Errorf("atom %d [%d,%d): %w", i, s.Start, s.Start+s.Size, ErrAtomOutOfRange)
		}
		b.atoms = append(b.atoms, Atom{
			ID:    b.nextID,
			Type:  s.Type,
			Start: s.Start,
			Size:  s.Size,
			Label: sanitizeLabel(s.Label),
		})
		b.nextID++
	}
	sortAtoms(b.atoms)
	var last Atom
	for _, cur := range b.atoms {
		if last.Size > 0 && cur.Start < last.End() && (cur.Start > last.Start || cur.Size > 0) {
			return nil, fmt.Errorf("atoms %d and %d: %w", last.ID, cur.ID, ErrAtomOverlap)
		}
		if cur.Size > 0 {
			last = cur
		}
	}
	return b, nil
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// LineCount returns the number of logical lines (always >= 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when text or atoms change.
func (b *Buffer) TextVersion() uint64 { return b.textVer }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// (e.g. shift+click behavior) while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if NormalizeRange(clamped).IsEmpty() {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) {
		return
	}
	b.sel = next
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if r, ok := b.Selection(); !ok || r.IsEmpty() {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// Atoms returns a copy of the atom table in document order.
func (b *Buffer) Atoms() []Atom {
	return append([]Atom(nil), b.atoms...)
}

// AtomByID looks an atom up by its identifier.
func (b *Buffer) AtomByID(id uint64) (Atom, bool) {
	for _, a := range b.atoms {
		if a.ID == id {
			return a, true
		}
	}
	return Atom{}, false
}

// AtomAt returns the sized atom whose content contains the rune at off.
func (b *Buffer) AtomAt(off int) (Atom, bool) {
	if off < 0 || off >= b.Len() {
		return Atom{}, false
	}
	for _, a := range b.atoms {
		if a.Start > off {
			break
		}
		if a.Size > 0 && a.Contains(off) {
			return a, true
		}
	}
	return Atom{}, false
}

// EmptyAtomAt returns the first zero-size atom anchored at off.
func (b *Buffer) EmptyAtomAt(off int) (Atom, bool) {
	if off < 0 || off > b.Len() {
		return Atom{}, false
	}
	for _, a := range b.atoms {
		if a.Start > off {
			break
		}
		if a.Size == 0 && a.Start == off {
			return a, true
		}
	}
	return Atom{}, false
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func sortAtoms(atoms []Atom) {
	sort.SliceStable(atoms, func(i, j int) bool {
		if atoms[i].Start != atoms[j].Start {
			return atoms[i].Start < atoms[j].Start
		}
		return atoms[i].ID < atoms[j].ID
	})
}

func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
