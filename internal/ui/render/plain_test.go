package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kk-code-lab/rmark/internal/markup"
)

func TestPlainWriterWriteDocument(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		width int
		want  string
	}{
		{
			name:  "plain body",
			src:   "!normal one\ntwo$",
			width: 0,
			want:  "one\ntwo\n",
		},
		{
			name:  "title and centered body",
			src:   "-\ntitle: Hi\ntext_alignment: center\n-\n!normal ab$",
			width: 6,
			want:  "  Hi\n\n  ab\n",
		},
		{
			name:  "hidden text blanked",
			src:   "!hidden secret$!normal shown$",
			width: 0,
			want:  "\nshown\n",
		},
		{
			name:  "tabs expanded",
			src:   "!normal a\tb$",
			width: 0,
			want:  "a   b\n",
		},
		{
			name:  "control characters replaced",
			src:   "!normal a\x1bb$",
			width: 0,
			want:  "a?b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.src)
			var buf bytes.Buffer
			if err := NewPlainWriter(&buf, 4).WriteDocument(doc, tt.width); err != nil {
				t.Fatalf("WriteDocument: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainWriterDrawLinesWindow(t *testing.T) {
	doc := mustParse(t, "!normal a\nb\nc\nd$")
	var buf bytes.Buffer
	p := NewPlainWriter(&buf, 4)

	p.DrawLines(doc.Lines, Rect{Height: 2}, 1, markup.AlignLeft)
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := buf.String(); got != "b\nc\n" {
		t.Fatalf("output = %q", got)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPlainWriterReportsWriteError(t *testing.T) {
	doc := mustParse(t, "!normal a$")
	err := NewPlainWriter(failingWriter{}, 4).WriteDocument(doc, 0)
	if !errors.Is(err, errWrite) {
		t.Fatalf("err = %v, want %v", err, errWrite)
	}
}
