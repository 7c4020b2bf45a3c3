package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// PluginKey identifies one plugin instance. Keys are created by the plugin
// constructor and compared by identity: two keys with the same name are
// distinct.
type PluginKey struct {
	name string
	id   uuid.UUID
}

func NewPluginKey(name string) PluginKey {
	return PluginKey{name: name, id: uuid.New()}
}

func (k PluginKey) Name() string { return k.name }

func (k PluginKey) String() string {
	return k.name + "$" + k.id.String()[:8]
}

// IsZero reports whether k was not created by NewPluginKey.
func (k PluginKey) IsZero() bool { return k.id == uuid.Nil }

// Plugin is the minimal plugin shape. Behavior is added by implementing any of
// the hook interfaces below; the editor checks for each one per plugin, in
// installation order.
type Plugin interface {
	Key() PluginKey
}

// StateField keeps per-plugin state that follows the document.
//
// Apply runs for every transaction, including the untagged transactions the
// editor synthesizes for mutations made outside of Dispatch.
type StateField interface {
	Plugin
	Init() any
	Apply(tx *Transaction, prev any) any
}

// KeyHandler sees key presses before the default key bindings.
// Returning true suppresses the default behavior.
type KeyHandler interface {
	Plugin
	HandleKey(v *View, msg tea.KeyMsg) bool
}

// ClickHandler sees left-button presses inside the text area before the
// default caret placement. off is the hit offset; hit describes what was under
// the pointer.
type ClickHandler interface {
	Plugin
	HandleClick(v *View, off int, hit Hit) bool
}

// TextInputHandler runs before text is committed to the document: typed
// runes, pasted text and clipboard pastes. Returning true means the plugin
// inserted the text itself; false lets the default insertion run, which
// replaces the current selection.
type TextInputHandler interface {
	Plugin
	HandleTextInput(v *View, text string) bool
}

// DecorationSource contributes view-only decorations for the current state.
type DecorationSource interface {
	Plugin
	Decorations(v *View) Decorations
}
