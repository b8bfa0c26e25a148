// Package fs loads document files from disk.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

const (
	sniffSize = 4096
	// Invalid UTF-8 is still accepted as text below this share of
	// control bytes in the sniffed prefix.
	maxControlPercent = 30
)

type byteOrderMark int

const (
	bomNone byteOrderMark = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

var binaryExtensions = []string{
	".bin", ".exe", ".gif", ".gz", ".jpeg", ".jpg", ".pdf", ".png", ".so", ".tar", ".zip",
}

// SourceUnavailableError reports a document that cannot be read or is not
// text. It is fatal at startup.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("cannot read document %s: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ErrNotText marks content that looks binary.
var ErrNotText = errors.New("content is not text")

// ReadOptions control how document bytes become a string.
type ReadOptions struct {
	// Normalize applies Unicode NFC so visually equal text lexes the same.
	Normalize bool
}

// ReadDocument loads the whole document at path as UTF-8 text.
func ReadDocument(path string, opts ReadOptions) (string, error) {
	if hasBinaryExtension(path) {
		return "", &SourceUnavailableError{Path: path, Err: ErrNotText}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceUnavailableError{Path: path, Err: err}
	}
	text, err := Decode(content)
	if err != nil {
		return "", &SourceUnavailableError{Path: path, Err: err}
	}
	if opts.Normalize && !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	return text, nil
}

// Decode turns raw file content into UTF-8. A UTF-8 BOM is stripped and
// UTF-16 with a BOM is transcoded. NUL bytes, or mostly control bytes in
// content that is not valid UTF-8, yield ErrNotText. Remaining invalid
// sequences become U+FFFD.
func Decode(content []byte) (string, error) {
	switch detectBOM(content) {
	case bomUTF8:
		content = content[3:]
	case bomUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}

	sample := content[:min(len(content), sniffSize)]
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return "", ErrNotText
	}
	if utf8.Valid(content) {
		return string(content), nil
	}
	if controlPercent(sample) >= maxControlPercent {
		return "", ErrNotText
	}
	return strings.ToValidUTF8(string(content), "\uFFFD"), nil
}

func hasBinaryExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, bin := range binaryExtensions {
		if ext == bin {
			return true
		}
	}
	return false
}

func controlPercent(sample []byte) int {
	if len(sample) == 0 {
		return 0
	}
	control := 0
	for _, b := range sample {
		if (b < 0x20 && b != '\t' && b != '\n' && b != '\r') || b == 0x7f {
			control++
		}
	}
	return control * 100 / len(sample)
}

func detectBOM(content []byte) byteOrderMark {
	switch {
	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		return bomUTF8
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		return bomUTF16LE
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		return bomUTF16BE
	default:
		return bomNone
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16: %w", err)
	}
	return string(out), nil
}
