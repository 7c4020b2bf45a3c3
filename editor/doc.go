// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// Besides input handling, viewport behavior and grapheme-aware rendering, the
// editor hosts plugins: per-plugin state that follows every transaction, key,
// click and text-input hooks that run before the defaults, decorations and
// surface hints, and tasks deferred to a later Update turn.
package editor
