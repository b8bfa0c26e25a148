package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	StatusBg    tcell.Color
	StatusFg    tcell.Color
	GaugeFg     tcell.Color
	GaugeDoneFg tcell.Color
	GaugeTrack  tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		StatusBg:    tcell.ColorDefault,
		StatusFg:    tcell.ColorDefault,
		GaugeFg:     tcell.Color33, // blue while reading
		GaugeDoneFg: tcell.Color34, // green once fully scrolled
		GaugeTrack:  tcell.Color240,
		ErrorFg:     tcell.ColorRed,
	}
}

func (t ColorTheme) baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}
