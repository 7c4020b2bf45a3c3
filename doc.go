// Package nodemark keeps the caret off the inside of atomic inline nodes
// (mentions, emoji, inline widgets) in an editor.Model.
//
// The caret may rest only on an atom's boundaries. Arrows hop over an atom in
// one step, backspace removes it whole, home and end land on its outer
// boundary, clicks snap to the nearest boundary, and text typed next to an
// atom is steered to the boundary instead of being merged into it.
//
// A Plugin carries a small State through every transaction. A transaction
// that does not tag the state resets it to inactive, so the fake cursor drawn
// for an active state never outlives the edit that asked for it.
package nodemark
