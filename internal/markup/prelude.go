package markup

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// AttributeKind identifies the variant of a DisplayAttribute.
type AttributeKind int

const (
	AttrTitle AttributeKind = iota
	AttrTextSize
	AttrAlignment
)

// Alignment is the horizontal placement of body lines.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment maps a prelude alignment value to an Alignment. ok is false
// for unknown values, in which case AlignLeft is returned.
func ParseAlignment(value string) (Alignment, bool) {
	switch value {
	case "left":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	default:
		return AlignLeft, false
	}
}

// DisplayAttribute is one recognized key of the document prelude. Only the
// field matching Kind is meaningful.
type DisplayAttribute struct {
	Kind      AttributeKind
	Title     string
	TextSize  uint
	Alignment Alignment
}

func (a DisplayAttribute) String() string {
	switch a.Kind {
	case AttrTitle:
		return fmt.Sprintf("Title(%q)", a.Title)
	case AttrTextSize:
		return fmt.Sprintf("TextSize(%d)", a.TextSize)
	case AttrAlignment:
		return fmt.Sprintf("Alignment(%s)", a.Alignment)
	default:
		return fmt.Sprintf("DisplayAttribute(%d)", int(a.Kind))
	}
}

const (
	keyTitle         = "title"
	keyTextSize      = "text_size"
	keyTextAlignment = "text_alignment"
)

// ExtractPrelude reads the optional header block at the start of src.
//
// The header opens with a line made only of '-' (blank lines before it are
// allowed) and closes with the next such line. It returns the recognized
// attributes in source order and the byte offset where the body begins. A
// header without a closing line is not a header: no attributes are returned
// and the body starts at 0.
func ExtractPrelude(src string) ([]DisplayAttribute, int) {
	s := newScanner(src)

	var opening string
	for {
		line, ok := s.readLine()
		if !ok {
			return nil, 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		opening = line
		break
	}
	if !isPreludeMarker(opening) {
		return nil, 0
	}

	var lines []string
	closed := false
	for {
		line, ok := s.readLine()
		if !ok {
			break
		}
		if isPreludeMarker(line) {
			closed = true
			break
		}
		lines = append(lines, line)
	}
	if !closed {
		slog.Warn("prelude has no closing marker; treating it as body text")
		return nil, 0
	}

	var attrs []DisplayAttribute
	for _, line := range lines {
		if attr, ok := parsePreludeLine(line); ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs, s.offset()
}

func isPreludeMarker(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && strings.Trim(trimmed, "-") == ""
}

func parsePreludeLine(line string) (DisplayAttribute, bool) {
	if strings.TrimSpace(line) == "" {
		return DisplayAttribute{}, false
	}
	key, value, found := strings.Cut(line, ":")
	if !found {
		slog.Debug("ignoring prelude line without key", "line", line)
		return DisplayAttribute{}, false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case keyTitle:
		return DisplayAttribute{Kind: AttrTitle, Title: value}, true
	case keyTextSize:
		size, err := strconv.ParseUint(value, 10, 0)
		if err != nil {
			slog.Warn("dropping invalid text_size", "value", value, "error", err)
			return DisplayAttribute{}, false
		}
		return DisplayAttribute{Kind: AttrTextSize, TextSize: uint(size)}, true
	case keyTextAlignment:
		align, ok := ParseAlignment(value)
		if !ok {
			slog.Warn("unknown text_alignment, using left", "value", value)
		}
		return DisplayAttribute{Kind: AttrAlignment, Alignment: align}, true
	default:
		slog.Debug("ignoring unknown prelude key", "key", key)
		return DisplayAttribute{}, false
	}
}
