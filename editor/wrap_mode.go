package editor

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and scrolls horizontally
// to keep the cursor visible. WrapWord and WrapGrapheme soft wrap. An atom
// and a view-only label always wrap as one piece unless it is wider than
// the row on its own.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)
