// Package buffer implements the pure, rune-accurate document model used by the
// editor host.
//
// Coordinates are 0-based (Row, Col) in runes. The same document is also
// addressed by a linear offset space: one offset per rune and one per line
// break, so offsets run from 0 to Len().
//
// Inline atoms are indivisible nodes layered over that offset space. An atom
// of Size S occupies the runes [Start, Start+S). A zero-size atom is anchored
// at Start and carries only view text.
package buffer
