package nodemark

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/iw2rmb/nodemark/buffer"
	"github.com/iw2rmb/nodemark/editor"
)

const mention buffer.NodeType = "mention"

func at(start, size int) buffer.AtomSpec {
	return buffer.AtomSpec{Type: mention, Start: start, Size: size}
}

func newPlugin(t *testing.T) *Plugin {
	t.Helper()
	p, err := New(Options{NodeType: mention, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	return p
}

// newEditor builds a 40x4 focused editor with the plugin installed and the
// caret at off.
func newEditor(t *testing.T, text string, off int, atoms ...buffer.AtomSpec) (editor.Model, *Plugin) {
	t.Helper()
	p := newPlugin(t)
	m, err := editor.New(editor.Config{
		Text:    text,
		Atoms:   atoms,
		Plugins: []editor.Plugin{p},
		Logger:  zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	m = m.SetSize(40, 4)
	m.Buffer().SetCursorOffset(off)
	return m, p
}

// send delivers msg and then every message its commands produce, the way the
// Bubble Tea runtime would.
func send(t *testing.T, m editor.Model, msg tea.Msg) editor.Model {
	t.Helper()
	m, cmd := m.Update(msg)
	return settle(t, m, cmd)
}

// sendNoSettle delivers msg and returns the pending command unrun.
func sendNoSettle(m editor.Model, msg tea.Msg) (editor.Model, tea.Cmd) {
	return m.Update(msg)
}

func settle(t *testing.T, m editor.Model, cmd tea.Cmd) editor.Model {
	t.Helper()
	for depth := 0; cmd != nil; depth++ {
		require.Less(t, depth, 64, "command chain did not settle")
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			var next []tea.Cmd
			for _, c := range batch {
				if c == nil {
					continue
				}
				var out tea.Cmd
				m, out = m.Update(c())
				next = append(next, out)
			}
			cmd = tea.Batch(next...)
			continue
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func state(t *testing.T, m editor.Model, p *Plugin) State {
	t.Helper()
	s, ok := m.PluginState(p.Key())
	require.True(t, ok, "plugin state missing")
	st, ok := s.(State)
	require.True(t, ok, "plugin state has type %T", s)
	return st
}

func requireNoPlaceholder(t *testing.T, m editor.Model) {
	t.Helper()
	require.False(t, strings.ContainsRune(m.Buffer().Text(), Placeholder),
		"placeholder left in %q", m.Buffer().Text())
}
