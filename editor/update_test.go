package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/nodemark/buffer"
)

type memClipboard struct {
	t *testing.T
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := newModel(t, Config{
		Text:  "ab",
		Style: Style{}, // keep styles minimal for this test
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := newModel(t, Config{
		Text:     "ab",
		ReadOnly: true,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after insert in read-only: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after insert in read-only: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := newModel(t, Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{t: t}
	m := newModel(t, Config{
		Text:      "hello",
		Clipboard: cb,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := cb.s; got != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "he")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.buf.Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor after cut: got %v, want %v", got, buffer.Pos{Row: 0, Col: 0})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "hello" {
		t.Fatalf("text after paste: got %q, want %q", got, "hello")
	}
}

func TestUpdate_ViewportFollowsCursor_Minimal(t *testing.T) {
	m := newModel(t, Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(10, 3)

	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("initial yoffset: got %d, want %d", got, 0)
	}

	// Move to row 2: still visible, no scroll.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("yoffset at row 2: got %d, want %d", got, 0)
	}

	// Move to row 3: scroll down by one line.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.viewport.YOffset; got != 1 {
		t.Fatalf("yoffset at row 3: got %d, want %d", got, 1)
	}

	// Move to row 4: scroll down by one more line.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.viewport.YOffset; got != 2 {
		t.Fatalf("yoffset at row 4: got %d, want %d", got, 2)
	}

	// Move up within view: no scroll.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.viewport.YOffset; got != 2 {
		t.Fatalf("yoffset after up within view: got %d, want %d", got, 2)
	}

	// Move up above the viewport: yoffset follows cursor row.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // row 2
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // row 1
	if got := m.viewport.YOffset; got != 1 {
		t.Fatalf("yoffset after moving above view: got %d, want %d", got, 1)
	}
}

func TestUpdate_DocStartEndAndWordMoves(t *testing.T) {
	m := newModel(t, Config{Text: "one two\nthree"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 1, Col: 5}) {
		t.Fatalf("cursor after ctrl+end: got %v", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after ctrl+home: got %v", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 3}) {
		t.Fatalf("cursor after word right: got %v", got)
	}
}

func TestUpdate_PasteRunsTextInputHandlers(t *testing.T) {
	p := newTestPlugin("paste")
	var seen []string
	p.onText = func(v *View, text string) bool {
		seen = append(seen, text)
		return false
	}
	cb := &memClipboard{t: t, s: "x\r\ny"}
	m := newModel(t, Config{Text: "", Clipboard: cb, Plugins: []Plugin{p}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "x\ny" {
		t.Fatalf("text after paste: got %q, want %q", got, "x\ny")
	}
	if len(seen) != 1 || seen[0] != "x\ny" {
		t.Fatalf("text input calls: got %q", seen)
	}
}

func TestUpdate_TabInsertsTab(t *testing.T) {
	m := newModel(t, Config{Text: "a"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.buf.Text(); got != "\ta" {
		t.Fatalf("text after tab: got %q, want %q", got, "\ta")
	}
}

func TestUpdate_SpaceKeyCommitsText(t *testing.T) {
	p := newTestPlugin("space")
	var seen []string
	p.onText = func(v *View, text string) bool {
		seen = append(seen, text)
		return false
	}
	m := newModel(t, Config{Text: "ab", Plugins: []Plugin{p}})
	m.buf.SetCursorOffset(1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.buf.Text(); got != "a b" {
		t.Fatalf("text after space: got %q, want %q", got, "a b")
	}
	if len(seen) != 1 || seen[0] != " " {
		t.Fatalf("text input calls: got %q", seen)
	}
}

func TestUpdate_UndoRestoresPluginDeletedAtom(t *testing.T) {
	p := newTestPlugin("remove")
	p.onKey = func(v *View, msg tea.KeyMsg) bool {
		if msg.Type != tea.KeyBackspace {
			return false
		}
		a := v.Doc().Atoms()[0]
		return v.Dispatch(NewTransaction().DeleteAtom(a.ID).SetCursor(a.Start))
	}
	m := newModel(t, Config{
		Text:    "a@bob c",
		Atoms:   []buffer.AtomSpec{{Type: "mention", Start: 1, Size: 4}},
		Plugins: []Plugin{p},
	})
	before := m.buf.Atoms()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "a c" {
		t.Fatalf("text after atom delete: got %q, want %q", got, "a c")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.buf.Text(); got != "a@bob c" {
		t.Fatalf("text after undo: got %q, want %q", got, "a@bob c")
	}
	if got := m.buf.Atoms(); len(got) != 1 || got[0] != before[0] {
		t.Fatalf("atoms after undo: got %+v, want %+v", got, before)
	}
}

func TestKeyMap_Rebinding(t *testing.T) {
	km := DefaultKeyMap()
	km.Left = bind("ctrl+b", "left", "ctrl+b")
	m := newModel(t, Config{Text: "ab", KeyMap: km})
	m.buf.SetCursorOffset(2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.buf.CursorOffset(); got != 2 {
		t.Fatalf("unbound left moved the cursor to %d", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := m.buf.CursorOffset(); got != 1 {
		t.Fatalf("cursor after ctrl+b: got %d, want 1", got)
	}
	if got := m.PluginView().KeyMap().Left.Keys(); len(got) != 1 || got[0] != "ctrl+b" {
		t.Fatalf("plugins see keys %q", got)
	}
}

func TestKeyMap_ZeroFallsBackToDefaults(t *testing.T) {
	m := newModel(t, Config{Text: "ab"})
	if got := m.KeyMap().Undo.Keys(); len(got) == 0 || got[0] != "ctrl+z" {
		t.Fatalf("default undo keys: got %q", got)
	}
	if got := len(m.KeyMap().FullHelp()); got != 4 {
		t.Fatalf("help groups: got %d, want 4", got)
	}
}
