package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/kk-code-lab/rmark/internal/markup"
	"github.com/kk-code-lab/rmark/internal/textutil"
)

var (
	_ LineDrawer = (*Renderer)(nil)
	_ LineDrawer = (*PlainWriter)(nil)
)

// PlainWriter renders documents as plain text with no control sequences, for
// pipes and non-interactive output. Attributes other than hidden are dropped.
type PlainWriter struct {
	w        *bufio.Writer
	tabWidth int
	err      error
}

// NewPlainWriter wraps w.
func NewPlainWriter(w io.Writer, tabWidth int) *PlainWriter {
	return &PlainWriter{w: bufio.NewWriter(w), tabWidth: tabWidth}
}

// WriteDocument writes the title (if any) followed by every body line, aligned
// within width columns. A width of 0 disables alignment.
func (p *PlainWriter) WriteDocument(doc *markup.Document, width int) error {
	if title, ok := doc.Title(); ok {
		p.writeLine(p.align(textutil.SanitizeTerminalText(title), width, doc.Alignment()))
		p.writeLine("")
	}
	p.DrawLines(doc.Lines, Rect{Width: width, Height: len(doc.Lines)}, 0, doc.Alignment())
	return p.Flush()
}

// DrawLines writes lines[offset:offset+rect.Height], one per output line.
func (p *PlainWriter) DrawLines(lines []markup.StyledLine, rect Rect, offset int, align markup.Alignment) {
	if offset < 0 {
		offset = 0
	}
	end := min(offset+rect.Height, len(lines))
	for i := offset; i < end; i++ {
		p.writeLine(p.align(p.plainText(lines[i]), rect.Width, align))
	}
}

// Flush writes buffered output and returns the first error seen.
func (p *PlainWriter) Flush() error {
	if err := p.w.Flush(); err != nil && p.err == nil {
		p.err = err
	}
	return p.err
}

func (p *PlainWriter) plainText(line markup.StyledLine) string {
	text := lineText(line, p.tabWidth)
	if line.Attrs.Hidden {
		return strings.Repeat(" ", textutil.CellWidth(text))
	}
	return text
}

func (p *PlainWriter) align(text string, width int, align markup.Alignment) string {
	if width <= 0 || align == markup.AlignLeft {
		return text
	}
	textWidth := textutil.CellWidth(text)
	start := alignedStart(Rect{Width: width}, textWidth, align)
	if start <= 0 {
		return text
	}
	return strings.Repeat(" ", start) + text
}

func (p *PlainWriter) writeLine(s string) {
	if p.err != nil {
		return
	}
	if _, err := p.w.WriteString(strings.TrimRight(s, " ")); err != nil {
		p.err = err
		return
	}
	if err := p.w.WriteByte('\n'); err != nil {
		p.err = err
	}
}
