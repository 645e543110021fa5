package srcbuf

import "testing"

func TestPosition(t *testing.T) {
	b := New("test.vitl", []byte("ab\ncd\nef"))

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{2, 1, 3}, // '\n'
		{3, 2, 1}, // 'c'
		{5, 2, 3}, // '\n'
		{6, 3, 1}, // 'e'
		{7, 3, 2}, // 'f'
	}
	for _, tt := range tests {
		line, col := b.Position(tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("Position(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestLine(t *testing.T) {
	b := New("test.vitl", []byte("first\nsecond\nthird"))
	if got := string(b.Line(7)); got != "second" {
		t.Errorf("Line(7) = %q, want %q", got, "second")
	}
	if got := string(b.Line(15)); got != "third" {
		t.Errorf("Line(15) = %q, want %q", got, "third")
	}
}

func TestHasBOM(t *testing.T) {
	withBOM := New("a", []byte{0xEF, 0xBB, 0xBF, 'x'})
	if !withBOM.HasBOM() {
		t.Error("expected HasBOM() true for BOM-prefixed buffer")
	}
	without := New("b", []byte("x"))
	if without.HasBOM() {
		t.Error("expected HasBOM() false for plain buffer")
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := New("a", []byte("xyz"))
	if b.At(-1) != 0 || b.At(100) != 0 {
		t.Error("At() out of range should return 0")
	}
}

func TestExtractLine(t *testing.T) {
	b := New("a", []byte("one\ntwo\nthree"))
	start, n, col := b.ExtractLine(5) // 't' of "two"
	if string(b.Bytes()[start:start+n]) != "two" || col != 2 {
		t.Errorf("ExtractLine(5) = (%d,%d,%d) text=%q", start, n, col, b.Bytes()[start:start+n])
	}
}
