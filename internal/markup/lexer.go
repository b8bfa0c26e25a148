package markup

import (
	"fmt"
	"iter"
	"slices"
)

// TokenKind identifies the variant of a Token.
type TokenKind int

const (
	TokenStyleStart TokenKind = iota
	TokenEnd
	TokenText
	TokenWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case TokenStyleStart:
		return "StyleStart"
	case TokenEnd:
		return "End"
	case TokenText:
		return "Text"
	case TokenWhitespace:
		return "Whitespace"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

const (
	styleMarker = "!"
	endMarker   = "$"
)

// Token is one lexical unit of a document body.
//
// Value holds the style name for StyleStart tokens and the content for Text
// and Whitespace tokens; it is empty for End. Value is a substring of the
// source, so tokens share the document's storage.
type Token struct {
	Kind   TokenKind
	Value  string
	Offset int
}

// Literal returns the exact source span the token was read from.
func (t Token) Literal() string {
	switch t.Kind {
	case TokenStyleStart:
		return styleMarker + t.Value
	case TokenEnd:
		return endMarker
	default:
		return t.Value
	}
}

func (t Token) String() string {
	if t.Kind == TokenEnd {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}

// Tokens lexes src lazily. Each call to the returned sequence starts over from
// the beginning of src.
func Tokens(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		lx := newScanner(src)
		for !lx.done() {
			tok := lexToken(lx)
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize lexes src into a slice. It never fails: truncated markup degrades
// to empty style names or text.
func Tokenize(src string) []Token {
	return slices.Collect(Tokens(src))
}

func lexToken(s *scanner) Token {
	start := s.offset()
	g := s.advance()

	switch {
	case g == styleMarker:
		nameStart := s.offset()
		for !s.done() && !isWhitespace(s.peek()) {
			s.advance()
		}
		return Token{Kind: TokenStyleStart, Value: s.src[nameStart:s.offset()], Offset: start}
	case g == endMarker:
		return Token{Kind: TokenEnd, Offset: start}
	case isWhitespace(g):
		return Token{Kind: TokenWhitespace, Value: g, Offset: start}
	default:
		for !s.done() && s.peek() != endMarker {
			s.advance()
		}
		return Token{Kind: TokenText, Value: s.src[start:s.offset()], Offset: start}
	}
}
