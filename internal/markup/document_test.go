package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDemoDocument(t *testing.T) {
	doc, err := Parse("-\ntitle: Demo\n-\n!title Hello$", Options{})
	require.NoError(t, err)

	require.Equal(t, []DisplayAttribute{{Kind: AttrTitle, Title: "Demo"}}, doc.Attributes)
	require.Len(t, doc.Lines, 1)

	line := doc.Lines[0]
	require.Equal(t, "Hello", line.Text)
	require.Equal(t, Attributes{Bold: true, Italic: true, BlinkSlow: true}, line.Attrs)

	title, ok := doc.Title()
	require.True(t, ok)
	require.Equal(t, "Demo", title)
}

func TestParseAccessorsUseLastValue(t *testing.T) {
	src := "-\ntext_size: 10\ntext_alignment: right\ntext_size: 14\n-\n!normal x$"
	doc, err := Parse(src, Options{})
	require.NoError(t, err)

	size, ok := doc.TextSize()
	require.True(t, ok)
	require.EqualValues(t, 14, size)
	require.Equal(t, AlignRight, doc.Alignment())
	_, ok = doc.Title()
	require.False(t, ok)
	require.Equal(t, 1, doc.LineCount())
}

func TestParseWithoutPreludeDefaults(t *testing.T) {
	doc, err := Parse("!normal a\nb$", Options{BlankLines: DropBlankLines})
	require.NoError(t, err)
	require.Equal(t, 0, doc.BodyOffset)
	require.Equal(t, AlignLeft, doc.Alignment())
	_, ok := doc.TextSize()
	require.False(t, ok)
	require.Equal(t, 2, doc.LineCount())
}

func TestParsePropagatesStyleErrors(t *testing.T) {
	doc, err := Parse("-\ntitle: x\n-\n!shouting HEY$", Options{})
	require.Nil(t, doc)
	require.ErrorContains(t, err, `unsupported style "shouting"`)
}
