package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type tokenShape struct {
	Kind  TokenKind
	Value string
}

func shapes(tokens []Token) []tokenShape {
	out := make([]tokenShape, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenShape{Kind: tok.Kind, Value: tok.Value}
	}
	return out
}

func TestTokenizeWhitespaceGraphemes(t *testing.T) {
	got := Tokenize(" \n \r\n")
	require.Equal(t, []tokenShape{
		{TokenWhitespace, " "},
		{TokenWhitespace, "\n"},
		{TokenWhitespace, " "},
		{TokenWhitespace, "\r\n"},
	}, shapes(got))
}

func TestTokenizeStyledScope(t *testing.T) {
	got := Tokenize("!normal This is a test$")
	require.Equal(t, []tokenShape{
		{TokenStyleStart, "normal"},
		{TokenWhitespace, " "},
		{TokenText, "This is a test"},
		{TokenEnd, ""},
	}, shapes(got))
}

func TestTokenizeCases(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []tokenShape
	}{
		{
			name: "empty input",
			src:  "",
			want: []tokenShape{},
		},
		{
			name: "bare marker at end of input",
			src:  "!",
			want: []tokenShape{{TokenStyleStart, ""}},
		},
		{
			name: "style tag ended by newline",
			src:  "!title\nHi$",
			want: []tokenShape{
				{TokenStyleStart, "title"},
				{TokenWhitespace, "\n"},
				{TokenText, "Hi"},
				{TokenEnd, ""},
			},
		},
		{
			name: "text keeps embedded whitespace and bangs",
			src:  "a b\nc! d$",
			want: []tokenShape{{TokenText, "a b\nc! d"}, {TokenEnd, ""}},
		},
		{
			name: "unterminated text",
			src:  "!normal dangling",
			want: []tokenShape{
				{TokenStyleStart, "normal"},
				{TokenWhitespace, " "},
				{TokenText, "dangling"},
			},
		},
		{
			name: "crlf between scopes",
			src:  "!normal a$\r\n!hidden b$",
			want: []tokenShape{
				{TokenStyleStart, "normal"},
				{TokenWhitespace, " "},
				{TokenText, "a"},
				{TokenEnd, ""},
				{TokenWhitespace, "\r\n"},
				{TokenStyleStart, "hidden"},
				{TokenWhitespace, " "},
				{TokenText, "b"},
				{TokenEnd, ""},
			},
		},
		{
			name: "combining mark stays with its base",
			src:  "!normal é$",
			want: []tokenShape{
				{TokenStyleStart, "normal"},
				{TokenWhitespace, " "},
				{TokenText, "é"},
				{TokenEnd, ""},
			},
		},
		{
			name: "consecutive terminators",
			src:  "$$",
			want: []tokenShape{{TokenEnd, ""}, {TokenEnd, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, shapes(Tokenize(tt.src)))
		})
	}
}

func TestTokenOffsetsPointIntoSource(t *testing.T) {
	src := "!warning héllo$ \n"
	for _, tok := range Tokenize(src) {
		lit := tok.Literal()
		if !strings.HasPrefix(src[tok.Offset:], lit) {
			t.Fatalf("token %v at offset %d does not match source %q", tok, tok.Offset, src[tok.Offset:])
		}
	}
}

func TestTokensIsRestartable(t *testing.T) {
	seq := Tokens("!normal a$\n")
	var first, second []Token
	for tok := range seq {
		first = append(first, tok)
	}
	for tok := range seq {
		second = append(second, tok)
	}
	require.Equal(t, first, second)
}

func TestTokensStopsEarly(t *testing.T) {
	count := 0
	for range Tokens("a$b$c$") {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func markupString() *rapid.Generator[string] {
	return rapid.StringOf(rapid.SampledFrom([]rune{
		'!', '$', ' ', '\n', '\r', '-', ':', 'a', 'Z', 'é', '\u0301', '\u200d', '👍', '🏻', '中',
	}))
}

func TestTokenizeRoundTripsSource(t *testing.T) {
	check := func(t *rapid.T, src string) {
		var b strings.Builder
		for _, tok := range Tokenize(src) {
			b.WriteString(tok.Literal())
		}
		if b.String() != src {
			t.Fatalf("round trip mismatch: got %q want %q", b.String(), src)
		}
	}

	t.Run("markup alphabet", rapid.MakeCheck(func(t *rapid.T) {
		check(t, markupString().Draw(t, "src"))
	}))
	t.Run("arbitrary strings", rapid.MakeCheck(func(t *rapid.T) {
		check(t, rapid.String().Draw(t, "src"))
	}))
}

func TestTokenizeOffsetsAreContiguous(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := markupString().Draw(t, "src")
		next := 0
		for _, tok := range Tokenize(src) {
			if tok.Offset != next {
				t.Fatalf("token %v starts at %d, expected %d", tok, tok.Offset, next)
			}
			next += len(tok.Literal())
		}
		if next != len(src) {
			t.Fatalf("tokens cover %d bytes of %d", next, len(src))
		}
	})
}
