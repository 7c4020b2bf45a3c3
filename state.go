package nodemark

import "github.com/iw2rmb/nodemark/editor"

// State is the interaction state attached to the current document version.
type State struct {
	// Active is set while the caret rests on an atom boundary that the plugin
	// placed it on. It drives the fake cursor and hides the native one.
	Active bool
	// SamePos records that the last click repeated a click on the same
	// ambiguous boundary (an empty atom, or between two atoms).
	SamePos bool
}

// DefaultState is the inactive state.
func DefaultState() State { return State{} }

// nextState is the transition function: a transaction carrying state for key
// replaces it, every other transaction resets to DefaultState.
func nextState(key editor.PluginKey, tx *editor.Transaction) State {
	if tx == nil {
		return DefaultState()
	}
	v, ok := tx.Meta(key)
	if !ok {
		return DefaultState()
	}
	st, ok := v.(State)
	if !ok {
		return DefaultState()
	}
	return st
}
