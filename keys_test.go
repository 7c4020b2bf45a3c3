package nodemark

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestArrowRight_StepsOntoThenOverAtom(t *testing.T) {
	// "ab[N]cd" with the atom at [2,3), caret at 1.
	m, p := newEditor(t, "abNcd", 1, at(2, 1))

	m = send(t, m, keyMsg(tea.KeyRight))
	require.Equal(t, 2, m.Buffer().CursorOffset())
	require.True(t, state(t, m, p).Active)

	m = send(t, m, keyMsg(tea.KeyRight))
	require.Equal(t, 3, m.Buffer().CursorOffset())
	require.True(t, state(t, m, p).Active)

	m = send(t, m, keyMsg(tea.KeyRight))
	require.Equal(t, 4, m.Buffer().CursorOffset())
	require.False(t, state(t, m, p).Active, "default move past the atom resets the state")
}

func TestArrowRight_NeverRestsInside(t *testing.T) {
	// "ab@joecd": atom of size 4 at [2,6).
	m, _ := newEditor(t, "ab@joecd", 1, at(2, 4))

	var seen []int
	for i := 0; i < 6; i++ {
		m = send(t, m, keyMsg(tea.KeyRight))
		seen = append(seen, m.Buffer().CursorOffset())
	}
	require.Equal(t, []int{2, 6, 7, 8, 8, 8}, seen)
}

func TestArrowLeft_MirrorsRight(t *testing.T) {
	m, p := newEditor(t, "ab@joecd", 7, at(2, 4))

	var seen []int
	for i := 0; i < 4; i++ {
		m = send(t, m, keyMsg(tea.KeyLeft))
		seen = append(seen, m.Buffer().CursorOffset())
	}
	require.Equal(t, []int{6, 2, 1, 0}, seen)
	require.False(t, state(t, m, p).Active)
}

func TestArrows_FromInteriorJumpToBoundary(t *testing.T) {
	m, _ := newEditor(t, "ab@joecd", 4, at(2, 4))
	m = send(t, m, keyMsg(tea.KeyRight))
	require.Equal(t, 6, m.Buffer().CursorOffset())

	m, _ = newEditor(t, "ab@joecd", 4, at(2, 4))
	m = send(t, m, keyMsg(tea.KeyLeft))
	require.Equal(t, 2, m.Buffer().CursorOffset())
}

func TestArrows_BetweenAdjacentAtoms(t *testing.T) {
	m, _ := newEditor(t, "aNMb", 2, at(1, 1), at(2, 1))

	m = send(t, m, keyMsg(tea.KeyRight))
	require.Equal(t, 3, m.Buffer().CursorOffset())
	m = send(t, m, keyMsg(tea.KeyLeft))
	require.Equal(t, 2, m.Buffer().CursorOffset())
	m = send(t, m, keyMsg(tea.KeyLeft))
	require.Equal(t, 1, m.Buffer().CursorOffset())
}

func TestArrows_ShiftSelectionUsesDefaults(t *testing.T) {
	m, _ := newEditor(t, "abNcd", 2, at(2, 1))

	m = send(t, m, keyMsg(tea.KeyShiftRight))
	anchor, head, ok := m.Buffer().SelectionOffsets()
	require.True(t, ok)
	require.Equal(t, 2, anchor)
	require.Equal(t, 3, head)

	m = send(t, m, keyMsg(tea.KeyRight))
	require.Equal(t, 4, m.Buffer().CursorOffset(), "a plain arrow with a range selected is left to the default")
}

func TestBackspace_DeletesWholeAtom(t *testing.T) {
	m, p := newEditor(t, "abNcd", 3, at(2, 1))

	m = send(t, m, keyMsg(tea.KeyBackspace))
	require.Equal(t, "abcd", m.Buffer().Text())
	require.Equal(t, 2, m.Buffer().CursorOffset())
	require.Empty(t, m.Buffer().Atoms())
	require.Equal(t, DefaultState(), state(t, m, p))
}

func TestBackspace_SizedAtomIsOneUndoStep(t *testing.T) {
	m, _ := newEditor(t, "ab@joecd", 6, at(2, 4))

	m = send(t, m, keyMsg(tea.KeyBackspace))
	require.Equal(t, "abcd", m.Buffer().Text())
	require.Equal(t, 2, m.Buffer().CursorOffset())

	m = send(t, m, keyMsg(tea.KeyCtrlZ))
	require.Equal(t, "ab@joecd", m.Buffer().Text())
	require.Len(t, m.Buffer().Atoms(), 1)
}

func TestBackspace_FromInteriorAndBetween(t *testing.T) {
	m, _ := newEditor(t, "ab@joecd", 4, at(2, 4))
	m = send(t, m, keyMsg(tea.KeyBackspace))
	require.Equal(t, "abcd", m.Buffer().Text())
	require.Equal(t, 2, m.Buffer().CursorOffset())

	m, _ = newEditor(t, "aNMb", 2, at(1, 1), at(2, 1))
	m = send(t, m, keyMsg(tea.KeyBackspace))
	require.Equal(t, "aMb", m.Buffer().Text())
	require.Equal(t, 1, m.Buffer().CursorOffset())
	require.Len(t, m.Buffer().Atoms(), 1)
	require.Equal(t, 1, m.Buffer().Atoms()[0].Start)
}

func TestBackspace_ZeroSizeAtomAtCaret(t *testing.T) {
	m, _ := newEditor(t, "abcd", 2, at(2, 0))

	m = send(t, m, keyMsg(tea.KeyBackspace))
	require.Equal(t, "abcd", m.Buffer().Text())
	require.Equal(t, 2, m.Buffer().CursorOffset())
	require.Empty(t, m.Buffer().Atoms())
}

func TestBackspace_DefaultAwayFromAtoms(t *testing.T) {
	m, _ := newEditor(t, "abNcd", 2, at(2, 1))

	m = send(t, m, keyMsg(tea.KeyBackspace))
	require.Equal(t, "aNcd", m.Buffer().Text())
	require.Equal(t, 1, m.Buffer().Atoms()[0].Start)
}

func TestHomeEnd_LandOnOuterBoundary(t *testing.T) {
	// Line 0 "Nab" starts with an atom, line 1 "cdM" ends with one.
	m, p := newEditor(t, "Nab\ncdM", 2, at(0, 1), at(6, 1))

	m = send(t, m, keyMsg(tea.KeyHome))
	require.Equal(t, 0, m.Buffer().CursorOffset())
	require.True(t, state(t, m, p).Active)

	m = send(t, m, keyMsg(tea.KeyEnd))
	require.Equal(t, 3, m.Buffer().CursorOffset())
	require.False(t, state(t, m, p).Active, "no atom at the end of line 0")

	m.Buffer().SetCursorOffset(4)
	m = send(t, m, keyMsg(tea.KeyEnd))
	require.Equal(t, 7, m.Buffer().CursorOffset())
	require.True(t, state(t, m, p).Active)

	m = send(t, m, keyMsg(tea.KeyHome))
	require.Equal(t, 4, m.Buffer().CursorOffset())
	require.False(t, state(t, m, p).Active)
}

func TestUpDownDelete_ResetState(t *testing.T) {
	m, p := newEditor(t, "abNcd\nxyz", 1, at(2, 1))

	m = send(t, m, keyMsg(tea.KeyRight))
	require.True(t, state(t, m, p).Active)
	m = send(t, m, keyMsg(tea.KeyDown))
	require.False(t, state(t, m, p).Active)
	require.Equal(t, 1, m.Buffer().Cursor().Row)

	m.Buffer().SetCursorOffset(1)
	m = send(t, m, keyMsg(tea.KeyRight))
	require.True(t, state(t, m, p).Active)
	m = send(t, m, keyMsg(tea.KeyDelete))
	require.False(t, state(t, m, p).Active)
	require.Equal(t, "abcd\nxyz", m.Buffer().Text(), "delete keeps its default behavior")
}
