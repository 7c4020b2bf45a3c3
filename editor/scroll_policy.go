package editor

// ScrollPolicy controls whether the viewport may move independently of the
// cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport even when the
	// cursor does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores wheel scrolling; the viewport only
	// follows the cursor.
	ScrollFollowCursorOnly
)
