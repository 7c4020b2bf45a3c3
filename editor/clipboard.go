package editor

// Clipboard carries plain text: copying a range that covers atoms copies
// their content runes only, and a paste goes through the text input
// handlers like typed text. Read and write errors are logged and dropped.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
