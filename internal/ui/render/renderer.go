package render

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rmark/internal/markup"
	"github.com/kk-code-lab/rmark/internal/pager"
	"github.com/kk-code-lab/rmark/internal/textutil"
)

const (
	gaugeWidth    = 20
	gaugeFilled   = '█'
	gaugeEmpty    = '░'
	statusKeyHint = "j/k scroll  q quit"
)

// Frame is everything needed to draw one screen: the cached document, the
// pager state and an optional error banner.
type Frame struct {
	Doc    *markup.Document
	State  pager.Snapshot
	Notice string
	// KeyHint replaces the default key help in the status row.
	KeyHint string
}

// LineDrawer draws styled lines clipped to a rectangle, starting at a line
// offset. It is the only drawing surface the application depends on.
type LineDrawer interface {
	DrawLines(lines []markup.StyledLine, rect Rect, offset int, align markup.Alignment)
}

// Renderer handles all UI rendering
type Renderer struct {
	screen   tcell.Screen
	theme    ColorTheme
	tabWidth int

	lastLayout Layout
	hasLayout  bool
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, tabWidth int) *Renderer {
	return &Renderer{
		screen:   screen,
		theme:    GetColorTheme(),
		tabWidth: tabWidth,
	}
}

// Layout computes the regions for doc on the current screen size.
func (r *Renderer) Layout(doc *markup.Document) Layout {
	w, h := r.screen.Size()
	_, hasTitle := docTitle(doc)
	return ComputeLayout(w, h, hasTitle)
}

// LastLayout returns the layout used by the most recent Render call.
func (r *Renderer) LastLayout() (Layout, bool) {
	return r.lastLayout, r.hasLayout
}

// Render draws the entire UI for frame and returns the layout it used.
func (r *Renderer) Render(frame Frame) Layout {
	r.screen.Clear()

	layout := r.Layout(frame.Doc)
	r.lastLayout, r.hasLayout = layout, true

	if !layout.Header.Empty() {
		r.drawHeader(frame.Doc, layout.Header)
	}
	if frame.Doc != nil {
		r.DrawLines(frame.Doc.Lines, layout.Body, frame.State.ScrollOffset, frame.Doc.Alignment())
	}
	if !layout.Status.Empty() {
		r.drawStatus(frame, layout)
	}

	r.screen.Show()
	return layout
}

// DrawLines draws lines[offset:] into rect, one line per row.
func (r *Renderer) DrawLines(lines []markup.StyledLine, rect Rect, offset int, align markup.Alignment) {
	if rect.Empty() || offset < 0 {
		return
	}
	base := r.theme.baseStyle()
	for row := 0; row < rect.Height; row++ {
		idx := offset + row
		if idx >= len(lines) {
			break
		}
		line := lines[idx]
		cells := r.lineCells(line)
		x := alignedStart(rect, cellsWidth(cells), align)
		r.drawCells(x, rect.Y+row, rect, cells, attrStyle(base, line.Attrs))
	}
}

func (r *Renderer) drawHeader(doc *markup.Document, rect Rect) {
	title, _ := docTitle(doc)
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	r.fillRow(rect.X, rect.Y, rect.X+rect.Width, style)

	title = textutil.TruncateToWidth(textutil.SanitizeTerminalText(title), rect.Width)
	cells := r.appendCluster(nil, title, false)
	x := alignedStart(rect, cellsWidth(cells), doc.Alignment())
	r.drawCells(x, rect.Y, rect, cells, style)
}

func (r *Renderer) drawStatus(frame Frame, layout Layout) {
	rect := layout.Status
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)
	r.fillRow(rect.X, rect.Y, rect.X+rect.Width, style)
	maxX := rect.X + rect.Width

	if frame.Notice != "" {
		r.drawText(rect.X, rect.Y, maxX, frame.Notice, style.Foreground(r.theme.ErrorFg))
		return
	}

	viewport := layout.Body.Height
	ratio := frame.State.Progress(viewport)
	x := r.drawGauge(rect.X, rect.Y, maxX, ratio, frame.State.FullyRead(viewport))
	if x < maxX {
		x++
	}
	r.drawText(x, rect.Y, maxX, statusText(frame, viewport, ratio), style)
}

// drawGauge renders the progress bar and switches colour once the document
// has been scrolled to the end.
func (r *Renderer) drawGauge(x, y, maxX int, ratio float64, done bool) int {
	width := min(gaugeWidth, maxX-x)
	if width <= 0 {
		return x
	}
	filled := int(ratio * float64(width))
	fg := r.theme.GaugeFg
	if done {
		fg = r.theme.GaugeDoneFg
		filled = width
	}
	on := tcell.StyleDefault.Foreground(fg)
	off := tcell.StyleDefault.Foreground(r.theme.GaugeTrack)
	for i := 0; i < width; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, gaugeFilled, nil, on)
		} else {
			r.screen.SetContent(x+i, y, gaugeEmpty, nil, off)
		}
	}
	return x + width
}

func statusText(frame Frame, viewport int, ratio float64) string {
	parts := []string{
		fmt.Sprintf("%3.0f%%", ratio*100),
		frame.State.RangeLabel(viewport),
	}
	if frame.Doc != nil {
		if size, ok := frame.Doc.TextSize(); ok {
			parts = append(parts, fmt.Sprintf("size %d", size))
		}
	}
	parts = append(parts, cmp.Or(frame.KeyHint, statusKeyHint))
	return strings.Join(parts, "  ")
}

func docTitle(doc *markup.Document) (string, bool) {
	if doc == nil {
		return "", false
	}
	return doc.Title()
}
