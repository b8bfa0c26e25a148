package markup

import "github.com/rivo/uniseg"

// scanner walks a source string one grapheme cluster at a time.
// Both the lexer and the prelude extractor read the document through it, so
// multi-byte and combining sequences are never split.
type scanner struct {
	src   string
	pos   int
	state int

	// lookahead cache for peek
	next      string
	nextRest  string
	nextState int
	peeked    bool
}

func newScanner(src string) *scanner {
	return &scanner{src: src, state: -1}
}

// peek returns the next grapheme cluster without consuming it, or "" at end of
// input.
func (s *scanner) peek() string {
	if s.peeked {
		return s.next
	}
	if s.pos >= len(s.src) {
		return ""
	}
	cluster, rest, _, state := uniseg.StepString(s.src[s.pos:], s.state)
	s.next, s.nextRest, s.nextState = cluster, rest, state
	s.peeked = true
	return cluster
}

// advance consumes and returns the next grapheme cluster.
func (s *scanner) advance() string {
	cluster := s.peek()
	if cluster == "" {
		return ""
	}
	s.pos = len(s.src) - len(s.nextRest)
	s.state = s.nextState
	s.peeked = false
	return cluster
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

// offset reports the byte offset of the next unread grapheme.
func (s *scanner) offset() int {
	return s.pos
}

// readLine consumes graphemes up to and including the next line break and
// returns the line without its terminator. ok is false at end of input.
func (s *scanner) readLine() (line string, ok bool) {
	if s.done() {
		return "", false
	}
	start := s.pos
	for !s.done() {
		end := s.pos
		g := s.advance()
		if isLineBreak(g) {
			return s.src[start:end], true
		}
	}
	return s.src[start:], true
}

func isWhitespace(g string) bool {
	return g == " " || isLineBreak(g)
}

func isLineBreak(g string) bool {
	return g == "\n" || g == "\r\n"
}
