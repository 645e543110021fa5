// Package srcbuf owns the immutable byte sequence a compilation runs
// over and maps byte offsets to line/column positions for diagnostics.
//
// Its shape is grounded on db47h/lex's token.File, which keeps a
// growing slice of line-start offsets and answers Position queries by
// binary search; here the buffer is always fully read up front (no
// streaming file), so the line table is built once, eagerly.
package srcbuf

import (
	"sort"

	"github.com/vitte-lang/vitlc/internal/utf8util"
)

// Buffer is an immutable, heap-owned byte sequence plus a line-start
// index used for diagnostics.
type Buffer struct {
	name      string
	data      []byte
	lineStart []int // byte offset of the start of each line; lineStart[0] == 0
	hasBOM    bool
}

// New builds a Buffer over data. data is not copied; callers must not
// mutate it afterwards.
func New(name string, data []byte) *Buffer {
	b := &Buffer{name: name, data: data, hasBOM: utf8util.HasBOM(data)}
	b.lineStart = []int{0}
	for i, c := range data {
		if c == '\n' {
			b.lineStart = append(b.lineStart, i+1)
		}
	}
	return b
}

// Name returns the buffer's logical name (a file path, or "-"/"<stdin>").
func (b *Buffer) Name() string { return b.name }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the full underlying byte slice. Callers must treat it
// as read-only.
func (b *Buffer) Bytes() []byte { return b.data }

// HasBOM reports whether the buffer starts with a UTF-8 byte-order
// mark. The lexer treats a source-file BOM as an error; srcbuf only
// detects it.
func (b *Buffer) HasBOM() bool { return b.hasBOM }

// At returns the byte at offset, or 0 if offset is out of range.
func (b *Buffer) At(offset int) byte {
	if offset < 0 || offset >= len(b.data) {
		return 0
	}
	return b.data[offset]
}

// lineIndexFor returns the 0-based line index containing offset.
func (b *Buffer) lineIndexFor(offset int) int {
	// lineStart is sorted ascending; find the last entry <= offset.
	i := sort.Search(len(b.lineStart), func(i int) bool { return b.lineStart[i] > offset })
	if i == 0 {
		return 0
	}
	return i - 1
}

// Position converts a byte offset into a 1-based (line, column) pair,
// column counted in bytes from the start of the line.
func (b *Buffer) Position(offset int) (line, column int) {
	idx := b.lineIndexFor(offset)
	line = idx + 1
	column = offset - b.lineStart[idx] + 1
	return
}

// ExtractLine returns the enclosing line for offset: its start offset,
// its byte length (not including the trailing newline), and the 1-based
// column of offset within it. Used by the diagnostics formatter to
// print a caret line.
func (b *Buffer) ExtractLine(offset int) (lineStart, lineLen, column int) {
	idx := b.lineIndexFor(offset)
	lineStart = b.lineStart[idx]
	end := len(b.data)
	if idx+1 < len(b.lineStart) {
		end = b.lineStart[idx+1] - 1 // exclude the newline
		if end < lineStart {
			end = lineStart
		}
	}
	lineLen = end - lineStart
	column = offset - lineStart + 1
	return
}

// Line returns the raw bytes of the line enclosing offset, without the
// trailing newline.
func (b *Buffer) Line(offset int) []byte {
	start, n, _ := b.ExtractLine(offset)
	return b.data[start : start+n]
}
