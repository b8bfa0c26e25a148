package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces up to the next tab stop.
// Columns are counted in cells per grapheme cluster, the same way the screen
// advances. A tabWidth of 0 leaves tabs untouched.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		if cluster == "\t" {
			spaces := tabWidth - column%tabWidth
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteString(cluster)
		column += ClusterWidth(cluster)
	}
	return builder.String()
}

// UseLocaleAmbiguousWidth draws East Asian ambiguous-width runes two cells wide
// when the locale is CJK, as terminals in those locales do.
func UseLocaleAmbiguousWidth() {
	uniseg.EastAsianAmbiguousWidth = 1
	if runewidth.IsEastAsian() {
		uniseg.EastAsianAmbiguousWidth = 2
	}
}

// DisplayWidth reports the printable width of text, measuring whole grapheme
// clusters so emoji sequences count once.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}

// CellWidth is the number of cells text occupies when each grapheme cluster
// is drawn with ClusterWidth.
func CellWidth(text string) int {
	total := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		total += ClusterWidth(cluster)
	}
	return total
}

// ClusterWidth is the cell width of one grapheme cluster. Zero-width clusters
// still occupy one cell so the cursor always advances.
func ClusterWidth(cluster string) int {
	w := uniseg.StringWidth(cluster)
	if w <= 0 {
		return 1
	}
	return w
}

// TruncateToWidth clips text to width cells, ending in an ellipsis when
// something was cut.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	ellipsisWidth := uniseg.StringWidth(ellipsis)
	if width <= ellipsisWidth {
		return ellipsis
	}

	target := width - ellipsisWidth
	var builder strings.Builder
	current := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		w := ClusterWidth(cluster)
		if current+w > target {
			break
		}
		builder.WriteString(cluster)
		current += w
	}
	builder.WriteString(ellipsis)
	return builder.String()
}
