package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster of a line, addressed in rune columns.
type Cluster struct {
	Start int // first rune column
	End   int // one past the last rune column
	Text  string
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Clusters splits a line of runes into grapheme clusters and reports the rune
// span of each one.
func Clusters(line []rune) []Cluster {
	if len(line) == 0 {
		return nil
	}
	g := uniseg.NewGraphemes(string(line))
	out := make([]Cluster, 0, len(line))
	col := 0
	for g.Next() {
		n := len(g.Runes())
		out = append(out, Cluster{Start: col, End: col + n, Text: g.Str()})
		col += n
	}
	return out
}

// CellWidth returns the terminal width of cluster when it starts at visualCol.
// Tabs advance to the next tab stop.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the cell width of single-line text starting at visualCol.
func StringWidth(text string, visualCol, tabWidth int) int {
	total := 0
	for _, c := range Split(text) {
		total += CellWidth(c, visualCol+total, tabWidth)
	}
	return total
}

// TabAdvance returns the number of cells a tab occupies at visualCol.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
