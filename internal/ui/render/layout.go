package render

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle has no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout splits the screen into header, body and status regions.
type Layout struct {
	Header Rect
	Body   Rect
	Status Rect
}

// ComputeLayout places an optional title header (with a blank separator row
// when there is room) at the top and the progress row at the bottom. The body
// always gets at least one row when the screen has any.
func ComputeLayout(width, height int, hasTitle bool) Layout {
	if width < 0 {
		width = 0
	}
	if height <= 0 {
		return Layout{}
	}

	var l Layout
	statusRows := 0
	if height >= 2 {
		statusRows = 1
		l.Status = Rect{X: 0, Y: height - 1, Width: width, Height: 1}
	}

	headerRows := 0
	if hasTitle {
		switch available := height - statusRows; {
		case available >= 3:
			headerRows = 2 // title + separator
		case available >= 2:
			headerRows = 1
		}
		if headerRows > 0 {
			l.Header = Rect{X: 0, Y: 0, Width: width, Height: 1}
		}
	}

	l.Body = Rect{
		X:      0,
		Y:      headerRows,
		Width:  width,
		Height: height - headerRows - statusRows,
	}
	return l
}
