// Package markup parses rmark documents: an optional prelude of display
// attributes followed by a body of "!style text$" scopes.
//
// Parsing is a one-shot pure transformation. The resulting Document holds
// substrings of the source text, so it can be cached and reused for every
// frame.
package markup

// Options control how a document body is folded into lines.
type Options struct {
	BlankLines BlankLinePolicy
}

// Document is a parsed source file.
type Document struct {
	Attributes []DisplayAttribute
	Lines      []StyledLine
	BodyOffset int
}

// Parse extracts the prelude and builds the body lines of src.
func Parse(src string, opts Options) (*Document, error) {
	attrs, offset := ExtractPrelude(src)
	lines, err := BuildLines(src[offset:], opts.BlankLines)
	if err != nil {
		return nil, err
	}
	return &Document{
		Attributes: attrs,
		Lines:      lines,
		BodyOffset: offset,
	}, nil
}

// Title returns the last title attribute, if any.
func (d *Document) Title() (string, bool) {
	var (
		title string
		found bool
	)
	for _, attr := range d.Attributes {
		if attr.Kind == AttrTitle {
			title, found = attr.Title, true
		}
	}
	return title, found
}

// TextSize returns the last text_size attribute, if any.
func (d *Document) TextSize() (uint, bool) {
	var (
		size  uint
		found bool
	)
	for _, attr := range d.Attributes {
		if attr.Kind == AttrTextSize {
			size, found = attr.TextSize, true
		}
	}
	return size, found
}

// Alignment returns the last text_alignment attribute, defaulting to left.
func (d *Document) Alignment() Alignment {
	align := AlignLeft
	for _, attr := range d.Attributes {
		if attr.Kind == AttrAlignment {
			align = attr.Alignment
		}
	}
	return align
}

// LineCount is the number of body lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}
