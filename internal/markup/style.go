package markup

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Attributes is the concrete text attribute set a style name resolves to.
// Zero colours mean "terminal default".
type Attributes struct {
	Bold       bool
	Italic     bool
	BlinkSlow  bool
	BlinkRapid bool
	Strike     bool
	Hidden     bool
	Foreground tcell.Color
	Background tcell.Color
}

// IsZero reports whether no attribute is set.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

var warningBackground = tcell.NewRGBColor(255, 100, 0)

var styleTable = map[string]Attributes{
	"normal":      {},
	"title":       {Bold: true, Italic: true, BlinkSlow: true},
	"warning":     {Foreground: tcell.ColorWhite, Background: warningBackground},
	"blinking":    {BlinkRapid: true},
	"crossed-out": {Strike: true},
	"hidden":      {Hidden: true},
}

// UnsupportedStyleError reports a style tag outside the known vocabulary.
type UnsupportedStyleError struct {
	Name string
}

func (e *UnsupportedStyleError) Error() string {
	return fmt.Sprintf("unsupported style %q", e.Name)
}

// Resolve maps a style name to its attributes. Names are matched exactly and
// case-sensitively.
func Resolve(name string) (Attributes, error) {
	attrs, ok := styleTable[name]
	if !ok {
		return Attributes{}, &UnsupportedStyleError{Name: name}
	}
	return attrs, nil
}

// StyleNames lists the supported style names in table order.
func StyleNames() []string {
	return []string{"normal", "title", "warning", "blinking", "crossed-out", "hidden"}
}
