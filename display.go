package nodemark

import "github.com/iw2rmb/nodemark/editor"

// Marker is a zero-width fake cursor anchored at a document offset.
//
// Side orders it against view-only text at the same offset (zero-size atom
// labels): negative draws it before that text, positive after.
type Marker struct {
	Offset int
	Side   int
}

// DisplayIntent is what the host should render for a state.
type DisplayIntent struct {
	HideNativeCaret bool
	Marker          *Marker
}

// Display maps state and caret to a display intent. It holds no state.
func Display(st State, caret int) DisplayIntent {
	if !st.Active {
		return DisplayIntent{}
	}
	side := 1
	if st.SamePos {
		side = -1
	}
	return DisplayIntent{
		HideNativeCaret: true,
		Marker:          &Marker{Offset: caret, Side: side},
	}
}

func (d DisplayIntent) decorations() editor.Decorations {
	out := editor.Decorations{Surface: editor.SurfaceHints{HideCursor: d.HideNativeCaret}}
	if d.Marker != nil {
		out.Widgets = []editor.Widget{{Offset: d.Marker.Offset, Side: d.Marker.Side}}
	}
	return out
}
