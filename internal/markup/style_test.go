package markup

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestResolveVocabulary(t *testing.T) {
	tests := []struct {
		name string
		want Attributes
	}{
		{"normal", Attributes{}},
		{"title", Attributes{Bold: true, Italic: true, BlinkSlow: true}},
		{"warning", Attributes{Foreground: tcell.ColorWhite, Background: tcell.NewRGBColor(255, 100, 0)}},
		{"blinking", Attributes{BlinkRapid: true}},
		{"crossed-out", Attributes{Strike: true}},
		{"hidden", Attributes{Hidden: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Fatalf("Resolve(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveNormalIsEmpty(t *testing.T) {
	got, err := Resolve("normal")
	if err != nil || !got.IsZero() {
		t.Fatalf("expected empty attributes, got %+v (err %v)", got, err)
	}
}

func TestResolveRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"bogus", "Title", "NORMAL", "title ", ""} {
		_, err := Resolve(name)
		var styleErr *UnsupportedStyleError
		if !errors.As(err, &styleErr) {
			t.Fatalf("Resolve(%q): expected UnsupportedStyleError, got %v", name, err)
		}
		if styleErr.Name != name {
			t.Fatalf("error names %q, want %q", styleErr.Name, name)
		}
	}
}

func TestStyleNamesAllResolve(t *testing.T) {
	for _, name := range StyleNames() {
		if _, err := Resolve(name); err != nil {
			t.Fatalf("listed style %q does not resolve: %v", name, err)
		}
	}
}
