package markup

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// BlankLinePolicy decides what bare whitespace between scopes turns into.
type BlankLinePolicy int

const (
	// PreserveBlankLines emits one empty line per newline token found outside
	// a style scope. Other bare whitespace is dropped.
	PreserveBlankLines BlankLinePolicy = iota
	// DropBlankLines discards all whitespace outside style scopes.
	DropBlankLines
)

// ParseBlankLinePolicy accepts "preserve" and "drop".
func ParseBlankLinePolicy(value string) (BlankLinePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "preserve":
		return PreserveBlankLines, nil
	case "drop":
		return DropBlankLines, nil
	default:
		return PreserveBlankLines, fmt.Errorf("unknown blank line policy %q", value)
	}
}

func (p BlankLinePolicy) String() string {
	if p == DropBlankLines {
		return "drop"
	}
	return "preserve"
}

// StyledLine is one rendered line: its text, split into grapheme clusters,
// and the attributes of the scope it came from.
type StyledLine struct {
	Text     string
	Clusters []string
	Style    string
	Attrs    Attributes
}

func newStyledLine(text, style string, attrs Attributes) StyledLine {
	return StyledLine{
		Text:     text,
		Clusters: splitClusters(text),
		Style:    style,
		Attrs:    attrs,
	}
}

func splitClusters(text string) []string {
	if text == "" {
		return nil
	}
	clusters := make([]string, 0, len(text))
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Builder folds a token stream into styled lines.
type Builder struct {
	policy BlankLinePolicy

	style   string
	attrs   Attributes
	open    bool
	text    string
	hasText bool

	lines []StyledLine
}

// NewBuilder returns a Builder using the given blank line policy.
func NewBuilder(policy BlankLinePolicy) *Builder {
	return &Builder{policy: policy}
}

// Add feeds one token. It fails only when a StyleStart names an unknown style.
func (b *Builder) Add(tok Token) error {
	switch tok.Kind {
	case TokenStyleStart:
		b.flush()
		attrs, err := b.resolve(tok.Value)
		if err != nil {
			return fmt.Errorf("style tag at offset %d: %w", tok.Offset, err)
		}
		b.style, b.attrs = tok.Value, attrs
		b.open = true
	case TokenText:
		b.open = true
		b.text, b.hasText = tok.Value, true
	case TokenEnd:
		b.flush()
	case TokenWhitespace:
		if b.open {
			return nil
		}
		if b.policy == PreserveBlankLines && isLineBreak(tok.Value) {
			b.lines = append(b.lines, newStyledLine("", "", Attributes{}))
		}
	}
	return nil
}

// Lines flushes any scope left open at end of input and returns the result.
func (b *Builder) Lines() []StyledLine {
	b.flush()
	return b.lines
}

// An empty style name comes from a bare "!" or text before any tag; it draws
// without attributes rather than failing.
func (b *Builder) resolve(name string) (Attributes, error) {
	if name == "" {
		return Attributes{}, nil
	}
	return Resolve(name)
}

func (b *Builder) flush() {
	if b.hasText {
		for _, piece := range strings.Split(b.text, "\n") {
			piece = strings.TrimSuffix(piece, "\r")
			b.lines = append(b.lines, newStyledLine(piece, b.style, b.attrs))
		}
	}
	b.open = false
	b.text, b.hasText = "", false
}

// BuildLines lexes body and folds it into styled lines.
func BuildLines(body string, policy BlankLinePolicy) ([]StyledLine, error) {
	b := NewBuilder(policy)
	for tok := range Tokens(body) {
		if err := b.Add(tok); err != nil {
			return nil, err
		}
	}
	return b.Lines(), nil
}
