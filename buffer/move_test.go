package buffer

import "testing"

func TestBuffer_MoveRune_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\nçd", Options{})

	b.SetCursor(Pos{Row: 0, Col: 0})
	b.Move(Move{Unit: MoveRune, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}

	b.SetCursor(Pos{Row: 0, Col: 2})
	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	b.Move(Move{Unit: MoveRune, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	v := b.Version()
	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if b.Version() != v {
		t.Fatalf("move past doc end should not version")
	}
}

func TestBuffer_MoveLine_HomeEndAndVerticalClamp(t *testing.T) {
	b := New("hello\nw\nworld", Options{})

	b.SetCursor(Pos{Row: 0, Col: 3})
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 5}) {
		t.Fatalf("cursor=%v, want (0,5)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 1}) {
		t.Fatalf("cursor=%v, want (2,1)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 1}) {
		t.Fatalf("cursor=%v, want (2,1)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 0}) {
		t.Fatalf("cursor=%v, want (2,0)", got)
	}

	b.SetCursor(Pos{Row: 0, Col: 0})
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	cases := []struct {
		name string
		col  int
		dir  MoveDir
		want int
	}{
		{name: "right from start", col: 0, dir: DirRight, want: 3},
		{name: "right skips spaces", col: 3, dir: DirRight, want: 9},
		{name: "right at end", col: 13, dir: DirRight, want: 13},
		{name: "left from end", col: 13, dir: DirLeft, want: 10},
		{name: "left skips spaces", col: 10, dir: DirLeft, want: 6},
		{name: "left at start", col: 0, dir: DirLeft, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New("foo   bar baz", Options{})
			b.SetCursor(Pos{Col: tc.col})
			b.Move(Move{Unit: MoveWord, Dir: tc.dir})
			if got := b.Cursor().Col; got != tc.want {
				t.Fatalf("col=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestBuffer_MoveDoc(t *testing.T) {
	b := New("ab\ncde", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 3}) {
		t.Fatalf("cursor=%v, want (1,3)", got)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
}

func TestBuffer_MoveExtend_KeepsAnchor(t *testing.T) {
	b := New("hello", Options{})
	b.SetCursor(Pos{Col: 1})

	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if r != (Range{Start: Pos{Col: 1}, End: Pos{Col: 3}}) {
		t.Fatalf("selection=%v, want 1..3", r)
	}

	b.Move(Move{Unit: MoveRune, Dir: DirLeft})
	if _, ok := b.Selection(); ok {
		t.Fatalf("non-extending move should clear the selection")
	}
}
