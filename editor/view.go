package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark/buffer"
)

// host is the mutable editor state shared by every copy of a Model and by the
// Views handed to plugins.
type host struct {
	id  uuid.UUID
	buf *buffer.Buffer
	log *zap.Logger

	readOnly bool
	keyMap   KeyMap

	plugins []Plugin
	states  map[PluginKey]any
	// seen is the buffer version the plugin states were last brought up to.
	seen uint64
	// rev changes whenever any plugin state is applied.
	rev uint64

	tasks    map[uint64]func(*View)
	nextTask uint64
	pending  []tea.Cmd

	closed bool
}

// deferredMsg delivers a task scheduled with View.Defer.
type deferredMsg struct {
	editor uuid.UUID
	task   uint64
}

func newHost(buf *buffer.Buffer, cfg Config) *host {
	h := &host{
		id:       uuid.New(),
		buf:      buf,
		log:      cfg.Logger,
		readOnly: cfg.ReadOnly,
		keyMap:   cfg.KeyMap,
		plugins:  append([]Plugin(nil), cfg.Plugins...),
		states:   make(map[PluginKey]any),
		tasks:    make(map[uint64]func(*View)),
		seen:     buf.Version(),
	}
	for _, p := range h.plugins {
		if f, ok := p.(StateField); ok {
			h.states[p.Key()] = f.Init()
		}
	}
	return h
}

// apply runs every state field against tx.
func (h *host) apply(tx *Transaction) {
	for _, p := range h.plugins {
		f, ok := p.(StateField)
		if !ok {
			continue
		}
		key := p.Key()
		h.states[key] = f.Apply(tx, h.states[key])
	}
	h.seen = h.buf.Version()
	h.rev++
}

// reconcile feeds buffer mutations that bypassed Dispatch to the state fields
// as one untagged transaction.
func (h *host) reconcile() {
	if h.buf.Version() == h.seen {
		return
	}
	tx := &Transaction{external: true, docChanged: true}
	h.log.Debug("reconcile external change", zap.Uint64("version", h.buf.Version()))
	h.apply(tx)
}

func (h *host) drainPending() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

// View is the handle plugins use to read editor state and submit changes.
// It is only valid during the hook call or deferred task it was passed to.
type View struct {
	h *host
}

// Doc returns the document. Plugins must not mutate it directly; use Dispatch.
func (v *View) Doc() *buffer.Buffer { return v.h.buf }

// Caret returns the selection head as a linear offset.
func (v *View) Caret() int {
	_, head, _ := v.h.buf.SelectionOffsets()
	return head
}

// Selection returns the raw selection (anchor, head) and whether it is
// non-empty.
func (v *View) Selection() (anchor, head int, ok bool) {
	return v.h.buf.SelectionOffsets()
}

func (v *View) KeyMap() KeyMap { return v.h.keyMap }

func (v *View) ReadOnly() bool { return v.h.readOnly }

func (v *View) Logger() *zap.Logger { return v.h.log }

// Live reports whether the editor is still open.
func (v *View) Live() bool { return !v.h.closed }

// PluginState returns the current state of the plugin identified by key.
func (v *View) PluginState(key PluginKey) (any, bool) {
	s, ok := v.h.states[key]
	return s, ok
}

// Dispatch applies tx as a single document change and runs every state field
// with it. It reports whether the transaction was applied; transactions are
// refused once the editor is closed, and document steps are refused in
// read-only mode.
func (v *View) Dispatch(tx *Transaction) bool {
	h := v.h
	if h.closed || tx == nil {
		return false
	}
	if h.readOnly && len(tx.steps) > 0 {
		return false
	}
	h.reconcile()

	if len(tx.steps) > 0 {
		tx.docChanged = h.buf.ApplySteps(tx.steps...)
	}
	if tx.selSet {
		if tx.anchor == tx.head {
			h.buf.SetCursorOffset(tx.head)
		} else {
			h.buf.SetSelectionOffsets(tx.anchor, tx.head)
		}
	}

	h.apply(tx)
	h.log.Debug("dispatch",
		zap.Int("steps", len(tx.steps)),
		zap.Bool("doc_changed", tx.docChanged),
		zap.Int("meta", len(tx.meta)),
		zap.Uint64("version", h.buf.Version()),
	)
	return true
}

// Defer schedules task to run on a later Update turn, never during the turn
// that calls Defer. Tasks are dropped when the editor is closed before they
// fire. There is no cancellation; tasks must re-derive their targets from the
// document at fire time.
func (v *View) Defer(task func(*View)) {
	h := v.h
	if h.closed || task == nil {
		return
	}
	h.nextTask++
	id := h.nextTask
	h.tasks[id] = task

	editorID := h.id
	h.pending = append(h.pending, func() tea.Msg {
		return deferredMsg{editor: editorID, task: id}
	})
}

func (h *host) runDeferred(msg deferredMsg) bool {
	if msg.editor != h.id {
		return false
	}
	task, ok := h.tasks[msg.task]
	if !ok {
		return false
	}
	delete(h.tasks, msg.task)
	if h.closed {
		return false
	}
	h.reconcile()
	task(&View{h: h})
	return true
}
