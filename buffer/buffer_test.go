package buffer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, Col: 99},
		End:   Pos{Row: 0, Col: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	// Setting the same effective selection should not bump the version.
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 0}})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != 2 {
		t.Fatalf("expected version 2, got %d", b.Version())
	}

	b.ClearSelection()
	if b.Version() != 2 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SelectionRaw_PreservesDirection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Col: 4}, End: Pos{Col: 1}})

	raw, ok := b.SelectionRaw()
	if !ok {
		t.Fatalf("expected raw selection")
	}
	if raw.Start != (Pos{Col: 4}) || raw.End != (Pos{Col: 1}) {
		t.Fatalf("raw=%v, want 4->1", raw)
	}
}

func TestBuffer_EmptyDocumentHasOneLine(t *testing.T) {
	b := New("", Options{})
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := b.Line(0); got != "" {
		t.Fatalf("line 0=%q, want empty", got)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("out of range line=%q, want empty", got)
	}
}

func TestNewWithAtoms_SortsAndAssignsIDs(t *testing.T) {
	b, err := NewWithAtoms("hi @bob and @al", []AtomSpec{
		{Type: "mention", Start: 12, Size: 3},
		{Type: "mention", Start: 3, Size: 4},
		{Type: "emoji", Start: 0, Size: 0, Label: ":wave:\n"},
	}, Options{})
	if err != nil {
		t.Fatalf("NewWithAtoms: %v", err)
	}

	want := []Atom{
		{ID: 3, Type: "emoji", Start: 0, Size: 0, Label: ":wave:"},
		{ID: 2, Type: "mention", Start: 3, Size: 4},
		{ID: 1, Type: "mention", Start: 12, Size: 3},
	}
	if diff := cmp.Diff(want, b.Atoms()); diff != "" {
		t.Fatalf("atoms mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWithAtoms_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		specs []AtomSpec
		want  error
	}{
		{
			name:  "past end",
			text:  "abc",
			specs: []AtomSpec{{Start: 2, Size: 2}},
			want:  ErrAtomOutOfRange,
		},
		{
			name:  "negative size",
			text:  "abc",
			specs: []AtomSpec{{Start: 1, Size: -1}},
			want:  ErrAtomOutOfRange,
		},
		{
			name:  "overlap",
			text:  "abcdef",
			specs: []AtomSpec{{Start: 0, Size: 3}, {Start: 2, Size: 2}},
			want:  ErrAtomOverlap,
		},
		{
			name:  "empty atom inside sized atom",
			text:  "abcdef",
			specs: []AtomSpec{{Start: 0, Size: 3}, {Start: 1}},
			want:  ErrAtomOverlap,
		},
		{
			name:  "overlap across empty atom",
			text:  "abcdef",
			specs: []AtomSpec{{Start: 0, Size: 4}, {Start: 0}, {Start: 3, Size: 2}},
			want:  ErrAtomOverlap,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWithAtoms(tc.text, tc.specs, Options{})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewWithAtoms_AllowsAdjacentAndAnchored(t *testing.T) {
	_, err := NewWithAtoms("abcdef", []AtomSpec{
		{Start: 0, Size: 3},
		{Start: 3, Size: 3},
		{Start: 3},
		{Start: 0},
		{Start: 6},
	}, Options{})
	if err != nil {
		t.Fatalf("NewWithAtoms: %v", err)
	}
}

func TestBuffer_AtomLookup(t *testing.T) {
	b, err := NewWithAtoms("ab@cdx", []AtomSpec{
		{Type: "mention", Start: 2, Size: 3},
		{Type: "emoji", Start: 2},
		{Type: "emoji", Start: 6},
	}, Options{})
	if err != nil {
		t.Fatalf("NewWithAtoms: %v", err)
	}

	for off, wantOK := range map[int]bool{-1: false, 0: false, 1: false, 2: true, 3: true, 4: true, 5: false, 6: false} {
		a, ok := b.AtomAt(off)
		if ok != wantOK {
			t.Fatalf("AtomAt(%d) ok=%v, want %v", off, ok, wantOK)
		}
		if ok && a.Type != "mention" {
			t.Fatalf("AtomAt(%d)=%+v, want mention", off, a)
		}
	}

	if a, ok := b.EmptyAtomAt(2); !ok || a.Type != "emoji" {
		t.Fatalf("EmptyAtomAt(2)=%+v,%v", a, ok)
	}
	if a, ok := b.EmptyAtomAt(6); !ok || a.Start != 6 {
		t.Fatalf("EmptyAtomAt(6)=%+v,%v", a, ok)
	}
	if _, ok := b.EmptyAtomAt(3); ok {
		t.Fatalf("EmptyAtomAt(3) unexpectedly found an atom")
	}

	first := b.Atoms()[0]
	if got, ok := b.AtomByID(first.ID); !ok || got != first {
		t.Fatalf("AtomByID(%d)=%+v,%v", first.ID, got, ok)
	}
	if _, ok := b.AtomByID(999); ok {
		t.Fatalf("AtomByID(999) unexpectedly found an atom")
	}
}
