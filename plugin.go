package nodemark

import (
	"errors"

	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark/buffer"
	"github.com/iw2rmb/nodemark/editor"
)

// Placeholder is the transient zero-width rune used to steer caret placement.
// It never survives the interaction that inserts it.
const Placeholder = '\u200b'

// ErrNoNodeType is returned by New when Options.NodeType is empty.
var ErrNoNodeType = errors.New("nodemark: node type is required")

// Options configures a Plugin.
type Options struct {
	// NodeType selects the atoms that get atomic caret handling.
	NodeType buffer.NodeType
	// Logger receives decision traces at debug level. nil disables logging.
	Logger *zap.Logger
}

// Plugin implements atomic caret handling for one node type. It satisfies
// editor.StateField, KeyHandler, ClickHandler, TextInputHandler and
// DecorationSource.
type Plugin struct {
	key editor.PluginKey
	typ buffer.NodeType
	log *zap.Logger
}

var (
	_ editor.StateField       = (*Plugin)(nil)
	_ editor.KeyHandler       = (*Plugin)(nil)
	_ editor.ClickHandler     = (*Plugin)(nil)
	_ editor.TextInputHandler = (*Plugin)(nil)
	_ editor.DecorationSource = (*Plugin)(nil)
)

func New(opts Options) (*Plugin, error) {
	if opts.NodeType == "" {
		return nil, ErrNoNodeType
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Plugin{
		key: editor.NewPluginKey("nodemark"),
		typ: opts.NodeType,
		log: log.Named("nodemark").With(zap.String("node_type", string(opts.NodeType))),
	}, nil
}

func (p *Plugin) Key() editor.PluginKey { return p.key }

func (p *Plugin) NodeType() buffer.NodeType { return p.typ }

func (p *Plugin) Init() any { return DefaultState() }

func (p *Plugin) Apply(tx *editor.Transaction, prev any) any {
	next := nextState(p.key, tx)
	if old, ok := prev.(State); ok && old != next {
		p.log.Debug("state",
			zap.Bool("active", next.Active),
			zap.Bool("same_pos", next.SamePos),
			zap.Bool("tagged", tx != nil && hasMeta(tx, p.key)),
		)
	}
	return next
}

// State returns the plugin state in v, or DefaultState when the plugin is not
// installed there.
func (p *Plugin) State(v *editor.View) State {
	s, ok := v.PluginState(p.key)
	if !ok {
		return DefaultState()
	}
	st, ok := s.(State)
	if !ok {
		return DefaultState()
	}
	return st
}

func (p *Plugin) Decorations(v *editor.View) editor.Decorations {
	return Display(p.State(v), v.Caret()).decorations()
}

// locate classifies the caret of v.
func (p *Plugin) locate(v *editor.View, off int) Placement {
	return Locate(v.Doc(), off, p.typ)
}

// reset dispatches a metadata-only transaction carrying the default state.
func (p *Plugin) reset(v *editor.View) {
	v.Dispatch(editor.NewTransaction().SetMeta(p.key, DefaultState()))
}

func hasMeta(tx *editor.Transaction, key editor.PluginKey) bool {
	_, ok := tx.Meta(key)
	return ok
}
