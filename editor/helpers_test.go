package editor

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T, cfg Config) Model {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// runCmd executes cmd and feeds every resulting message back into m, the way
// the Bubble Tea runtime would.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for depth := 0; cmd != nil; depth++ {
		if depth > 64 {
			t.Fatalf("command chain did not settle")
		}
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

// testPlugin implements every hook; nil callbacks decline.
type testPlugin struct {
	key PluginKey

	onKey   func(v *View, msg tea.KeyMsg) bool
	onClick func(v *View, off int, hit Hit) bool
	onText  func(v *View, text string) bool
	deco    func(v *View) Decorations

	txs []*Transaction
}

func newTestPlugin(name string) *testPlugin {
	return &testPlugin{key: NewPluginKey(name)}
}

func (p *testPlugin) Key() PluginKey { return p.key }

func (p *testPlugin) Init() any { return "init" }

func (p *testPlugin) Apply(tx *Transaction, prev any) any {
	p.txs = append(p.txs, tx)
	if v, ok := tx.Meta(p.key); ok {
		return v
	}
	return "default"
}

func (p *testPlugin) HandleKey(v *View, msg tea.KeyMsg) bool {
	return p.onKey != nil && p.onKey(v, msg)
}

func (p *testPlugin) HandleClick(v *View, off int, hit Hit) bool {
	return p.onClick != nil && p.onClick(v, off, hit)
}

func (p *testPlugin) HandleTextInput(v *View, text string) bool {
	return p.onText != nil && p.onText(v, text)
}

func (p *testPlugin) Decorations(v *View) Decorations {
	if p.deco == nil {
		return Decorations{}
	}
	return p.deco(v)
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }
