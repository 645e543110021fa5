package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"module", MODULE}, {"import", IMPORT}, {"use", USE}, {"as", AS},
		{"pub", PUB}, {"const", CONST}, {"let", LET}, {"mut", MUT},
		{"fn", FN}, {"return", RETURN}, {"if", IF}, {"else", ELSE},
		{"match", MATCH}, {"while", WHILE}, {"for", FOR}, {"in", IN},
		{"break", BREAK}, {"continue", CONTINUE}, {"type", TYPE},
		{"impl", IMPL}, {"where", WHERE}, {"test", TEST},
		{"true", BOOL}, {"false", BOOL},
		{"variable", IDENT}, {"Task", IDENT}, {"foo_bar", IDENT}, {"", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.input); got != tt.expected {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestKeywordTableUnique(t *testing.T) {
	seen := make(map[Kind]string)
	for spelling, k := range keywords {
		if spelling == "false" {
			continue // true/false intentionally share BOOL
		}
		if other, ok := seen[k]; ok {
			t.Errorf("keyword kind %v claimed by both %q and %q", k, other, spelling)
		}
		seen[k] = spelling
	}
}

func TestRaw(t *testing.T) {
	buf := []byte("let x = 1;")
	tok := Token{Start: 4, End: 5}
	if got := tok.Raw(buf); got != "x" {
		t.Errorf("Raw() = %q, want %q", got, "x")
	}
}

func TestRawOutOfRange(t *testing.T) {
	buf := []byte("abc")
	tok := Token{Start: 2, End: 10}
	if got := tok.Raw(buf); got != "" {
		t.Errorf("Raw() out of range = %q, want empty", got)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Errorf("Position.String() = %q, want %q", got, "3:7")
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if got := k.String(); got == "" {
		t.Errorf("Kind.String() for unknown kind returned empty")
	}
}
