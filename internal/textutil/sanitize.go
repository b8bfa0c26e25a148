package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	zeroWidthSpace = '\u200B'
	byteOrderMark  = '\uFEFF'
)

// invisibleNames labels the invisible formatting runes shown in place of the
// rune itself. Code points without a name are shown as U+XXXX.
var invisibleNames = map[rune]string{
	'\u061C':       "ALM",
	'\u200E':       "LRM",
	'\u200F':       "RLM",
	'\u202A':       "LRE",
	'\u202B':       "RLE",
	'\u202C':       "PDF",
	'\u202D':       "LRO",
	'\u202E':       "RLO",
	'\u2066':       "LRI",
	'\u2067':       "RLI",
	'\u2068':       "FSI",
	'\u2069':       "PDI",
	zeroWidthSpace: "ZWSP",
	byteOrderMark:  "BOM",
}

// SanitizeTerminalText replaces control characters so document text cannot
// inject terminal escape sequences when drawn. Bidi controls and other
// invisible formatting runes are shown as labels. ZWJ and ZWNJ are kept
// because emoji and script shaping need them.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, needsEscape) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case isInvisible(r):
			b.WriteString("⟪" + invisibleLabel(r) + "⟫")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(r rune) bool {
	return unicode.IsControl(r) || isInvisible(r)
}

func isInvisible(r rune) bool {
	return r == zeroWidthSpace || r == byteOrderMark || unicode.Is(unicode.Bidi_Control, r)
}

func invisibleLabel(r rune) string {
	if name, ok := invisibleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("U+%04X", r)
}
