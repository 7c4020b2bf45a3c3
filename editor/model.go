package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// Model is a value, but the buffer and plugin host behind it are shared by
// all copies; use the Model returned from Update.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	h   *host

	focused bool

	viewport viewport.Model
	xOffset  int

	mouseAnchor   int
	mouseDragging bool

	lastVersion     uint64
	lastTextVersion uint64
}

// New builds an editor. It fails when cfg.Atoms do not fit cfg.Text.
func New(cfg Config) (Model, error) {
	cfg = normalizeConfig(cfg)
	buf, err := buffer.NewWithAtoms(cfg.Text, cfg.Atoms, buffer.Options{HistoryLimit: cfg.HistoryLimit})
	if err != nil {
		return Model{}, fmt.Errorf("editor: %w", err)
	}

	m := Model{
		cfg:      cfg,
		buf:      buf,
		h:        newHost(buf, cfg),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = buf.Version()
	m.lastTextVersion = buf.TextVersion()
	m.cfg.Logger.Debug("editor created",
		zap.String("editor", m.h.id.String()),
		zap.Int("plugins", len(m.h.plugins)),
		zap.Int("atoms", len(cfg.Atoms)),
	)
	m.rebuildContent()
	return m, nil
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// ID identifies this editor instance; deferred tasks are addressed by it.
func (m Model) ID() string { return m.h.id.String() }

// PluginView returns a View for host code that wants to dispatch
// transactions or read plugin state outside of a hook.
func (m Model) PluginView() *View { return &View{h: m.h} }

// PluginState returns the current state of the plugin identified by key.
func (m Model) PluginState(key PluginKey) (any, bool) {
	m.h.reconcile()
	return m.PluginView().PluginState(key)
}

// Close marks the editor as destroyed. Pending deferred tasks are dropped and
// further transactions are refused.
func (m Model) Close() Model {
	if m.h.closed {
		return m
	}
	m.h.closed = true
	m.h.tasks = make(map[uint64]func(*View))
	m.h.pending = nil
	m.cfg.Logger.Debug("editor closed", zap.String("editor", m.h.id.String()))
	return m
}

func (m Model) Closed() bool { return m.h.closed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.h.closed {
		return m, nil
	}
	// Host code may have mutated the buffer between updates.
	m.h.reconcile()

	var cmd tea.Cmd
	follow := false
	switch msg := msg.(type) {
	case deferredMsg:
		follow = m.h.runDeferred(msg)
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
		follow = true
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	m.h.reconcile()
	m.notifyChange()
	m.rebuildContent()
	if follow {
		m.followCursor()
	}
	return m, tea.Batch(cmd, m.h.drainPending())
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) view() *View { return &View{h: m.h} }

func (m *Model) notifyChange() {
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return
	}
	textChanged := m.buf.TextVersion() != m.lastTextVersion
	m.lastVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	widgets := m.collectWidgets()
	vl := m.visualLineForRow(cur.Row, m.rowDecorations(cur.Row, widgets))
	cell := vl.VisualCellForDocCol(cur.Col)
	vrow, _ := m.visualRowOf(cur.Row, vl, cell, widgets)

	if h := m.visibleRowCount(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case vrow < y:
			m.viewport.SetYOffset(vrow)
		case vrow >= y+h:
			m.viewport.SetYOffset(vrow - h + 1)
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	if m.wraps() {
		m.xOffset = 0
		m.rebuildContent()
		return
	}
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
	if m.xOffset < 0 {
		m.xOffset = 0
	}
	m.rebuildContent()
}
