package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/kk-code-lab/rmark/internal/markup"
	"github.com/kk-code-lab/rmark/internal/textutil"
)

// attrStyle applies a markup attribute set on top of base. Terminals have a
// single blink attribute, so slow and rapid blink both map to it.
func attrStyle(base tcell.Style, a markup.Attributes) tcell.Style {
	st := base
	if a.Bold {
		st = st.Bold(true)
	}
	if a.Italic {
		st = st.Italic(true)
	}
	if a.BlinkSlow || a.BlinkRapid {
		st = st.Blink(true)
	}
	if a.Strike {
		st = st.StrikeThrough(true)
	}
	if a.Foreground != tcell.ColorDefault {
		st = st.Foreground(a.Foreground)
	}
	if a.Background != tcell.ColorDefault {
		st = st.Background(a.Background)
	}
	return st
}

// cell is one drawable grapheme cluster after sanitizing and tab expansion.
type cell struct {
	main  rune
	comb  []rune
	width int
}

// lineText expands tabs and sanitizes a styled line. The screen and plain
// text outputs both go through it so their columns agree.
func lineText(line markup.StyledLine, tabWidth int) string {
	return textutil.SanitizeTerminalText(textutil.ExpandTabs(line.Text, tabWidth))
}

// lineCells turns a styled line into screen cells. Hidden lines keep their
// width but draw blanks.
func (r *Renderer) lineCells(line markup.StyledLine) []cell {
	return r.appendCluster(make([]cell, 0, len(line.Clusters)), lineText(line, r.tabWidth), line.Attrs.Hidden)
}

// appendCluster adds text, which may hold more than one cluster after
// sanitizing, to cells.
func (r *Renderer) appendCluster(cells []cell, text string, hidden bool) []cell {
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		w := textutil.ClusterWidth(cluster)
		if hidden {
			for i := 0; i < w; i++ {
				cells = append(cells, cell{main: ' ', width: 1})
			}
			continue
		}
		runes := []rune(cluster)
		cells = append(cells, cell{main: runes[0], comb: runes[1:], width: w})
	}
	return cells
}

func cellsWidth(cells []cell) int {
	total := 0
	for _, c := range cells {
		total += c.width
	}
	return total
}

// alignedStart returns the x where content of the given width begins inside
// rect.
func alignedStart(rect Rect, width int, align markup.Alignment) int {
	switch align {
	case markup.AlignCenter:
		if width < rect.Width {
			return rect.X + (rect.Width-width)/2
		}
	case markup.AlignRight:
		if width < rect.Width {
			return rect.X + rect.Width - width
		}
	}
	return rect.X
}

// drawCells draws cells on row y starting at x, clipped to rect. Wide clusters
// that would cross the right edge are dropped.
func (r *Renderer) drawCells(x, y int, rect Rect, cells []cell, style tcell.Style) int {
	maxX := rect.X + rect.Width
	for _, c := range cells {
		if x+c.width > maxX {
			break
		}
		r.screen.SetContent(x, y, c.main, c.comb, style)
		for i := 1; i < c.width; i++ {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
		x += c.width
	}
	return x
}

// drawText draws plain text on row y from x, clipped to maxX.
func (r *Renderer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	cells := r.appendCluster(nil, textutil.SanitizeTerminalText(text), false)
	return r.drawCells(x, y, Rect{X: x, Width: maxX - x}, cells, style)
}

func (r *Renderer) fillRow(x, y, maxX int, style tcell.Style) {
	for ; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
