package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// The zero Style renders plain text with no cursor or selection styling.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Atom styles the content of sized atoms, AtomLabel the view text of
	// zero-size atoms.
	Atom      lipgloss.Style
	AtomLabel lipgloss.Style

	// Widget styles text widgets; FakeCursor styles the cell after a
	// zero-width marker.
	Widget     lipgloss.Style
	FakeCursor lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Atom:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		AtomLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Widget:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		FakeCursor:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("205")),
	}
}
