package lexer

import (
	"strings"
	"testing"

	"github.com/vitte-lang/vitlc/internal/srcbuf"
	"github.com/vitte-lang/vitlc/internal/token"
)

func lexAll(src string) []token.Token {
	buf := srcbuf.New("test.vitl", []byte(src))
	l := New(buf)
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func TestBasicOperators(t *testing.T) {
	src := "= + - ! * / % < > ( ) { } [ ] , : ;"
	expected := []token.Kind{
		token.ASSIGN, token.PLUS, token.MINUS, token.BANG, token.STAR,
		token.SLASH, token.PERCENT, token.LT, token.GT, token.LPAREN, token.RPAREN,
		token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET,
		token.COMMA, token.COLON, token.SEMI, token.EOF,
	}
	toks := lexAll(src)
	if len(toks) != len(expected) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(expected))
	}
	for i, exp := range expected {
		if toks[i].Kind != exp {
			t.Errorf("token[%d] = %v, want %v", i, toks[i].Kind, exp)
		}
	}
}

func TestLongestMatchOperators(t *testing.T) {
	src := "<<= >>= ..= == != <= >= << >> && || += -= *= /= %= &= ^= |= -> => :: .. ."
	expected := []token.Kind{
		token.SHL_EQ, token.SHR_EQ, token.DOTDOTEQ,
		token.EQ, token.NEQ, token.LE, token.GE, token.SHL, token.SHR,
		token.ANDAND, token.OROR,
		token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ, token.PERCENT_EQ,
		token.AMP_EQ, token.CARET_EQ, token.PIPE_EQ,
		token.ARROW, token.FATARROW, token.COLONCOLON, token.DOTDOT, token.DOT,
		token.EOF,
	}
	toks := lexAll(src)
	if len(toks) != len(expected) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(expected), toks)
	}
	for i, exp := range expected {
		if toks[i].Kind != exp {
			t.Errorf("token[%d] = %v, want %v", i, toks[i].Kind, exp)
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	src := "module import use as pub const let mut fn return if else match while for in break continue type impl where test myVar true false"
	toks := lexAll(src)
	expected := []token.Kind{
		token.MODULE, token.IMPORT, token.USE, token.AS, token.PUB, token.CONST,
		token.LET, token.MUT, token.FN, token.RETURN, token.IF, token.ELSE,
		token.MATCH, token.WHILE, token.FOR, token.IN, token.BREAK, token.CONTINUE,
		token.TYPE, token.IMPL, token.WHERE, token.TEST, token.IDENT, token.BOOL, token.BOOL,
	}
	for i, exp := range expected {
		if toks[i].Kind != exp {
			t.Errorf("token[%d] = %v, want %v", i, toks[i].Kind, exp)
		}
	}
	if !toks[len(expected)-2].BoolVal {
		t.Error("expected true literal to decode BoolVal=true")
	}
	if toks[len(expected)-1].BoolVal {
		t.Error("expected false literal to decode BoolVal=false")
	}
}

func TestIntegerLiterals(t *testing.T) {
	buf := srcbuf.New("t", []byte("0xFF 0b101 42 1_000"))
	l := New(buf)
	want := []uint64{0xFF, 0b101, 42, 1000}
	for _, w := range want {
		tok := l.Next()
		if tok.Kind != token.INT {
			t.Fatalf("expected INT, got %v", tok.Kind)
		}
		if tok.IntVal != w {
			t.Errorf("IntVal = %d, want %d", tok.IntVal, w)
		}
	}
}

func TestIntegerOverflowBoundary(t *testing.T) {
	// u64::MAX itself must lex cleanly.
	buf := srcbuf.New("t", []byte("18446744073709551615"))
	l := New(buf)
	tok := l.Next()
	if tok.Kind != token.INT || tok.IntVal != 18446744073709551615 {
		t.Fatalf("expected max u64 INT, got %v %d", tok.Kind, tok.IntVal)
	}

	// One past it must error.
	buf2 := srcbuf.New("t", []byte("18446744073709551616"))
	l2 := New(buf2)
	tok2 := l2.Next()
	if tok2.Kind != token.ERROR {
		t.Fatalf("expected ERROR for overflowing literal, got %v", tok2.Kind)
	}
}

func TestFloatLiterals(t *testing.T) {
	buf := srcbuf.New("t", []byte("3.14 1e10 2.5e-3"))
	l := New(buf)
	want := []float64{3.14, 1e10, 2.5e-3}
	for _, w := range want {
		tok := l.Next()
		if tok.Kind != token.FLOAT || tok.FloatVal != w {
			t.Errorf("got %v %v, want FLOAT %v", tok.Kind, tok.FloatVal, w)
		}
	}
}

func TestRangeOperatorNotConfusedWithFloat(t *testing.T) {
	toks := lexAll("0..10")
	if toks[0].Kind != token.INT || toks[1].Kind != token.DOTDOT || toks[2].Kind != token.INT {
		t.Fatalf("got %v %v %v, want INT DOTDOT INT", toks[0].Kind, toks[1].Kind, toks[2].Kind)
	}
}

func TestExponentBacktrack(t *testing.T) {
	// "1e" with no following digit is not a valid exponent: it must
	// backtrack to the integer "1" and leave "e" as a separate ident.
	toks := lexAll("1e x")
	if toks[0].Kind != token.INT || toks[0].IntVal != 1 {
		t.Fatalf("got %v %d, want INT 1", toks[0].Kind, toks[0].IntVal)
	}
	if toks[1].Kind != token.IDENT {
		t.Fatalf("got %v, want IDENT for backtracked 'e'", toks[1].Kind)
	}
}

func TestStringLiteral(t *testing.T) {
	src := `"hello\nworld"`
	buf := srcbuf.New("t", []byte(src))
	l := New(buf)
	tok := l.Next()
	if tok.Kind != token.STRING {
		t.Fatalf("expected STRING, got %v", tok.Kind)
	}
	decoded, err := DecodeString(tok, buf.Bytes(), nil)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if string(decoded) != "hello\nworld" {
		t.Errorf("decoded = %q, want %q", decoded, "hello\nworld")
	}
}

func TestUnterminatedString(t *testing.T) {
	buf := srcbuf.New("t", []byte(`"abc`))
	l := New(buf)
	tok := l.Next()
	if tok.Kind != token.ERROR {
		t.Fatalf("expected ERROR, got %v", tok.Kind)
	}
	if !strings.Contains(tok.Message, "unterminated or invalid string literal") {
		t.Errorf("message = %q, want substring %q", tok.Message, "unterminated or invalid string literal")
	}
}

func TestCharLiteral(t *testing.T) {
	buf := srcbuf.New("t", []byte(`'a' '\n' '\x41'`))
	l := New(buf)
	want := []byte{'a', '\n', 'A'}
	for _, w := range want {
		tok := l.Next()
		if tok.Kind != token.CHAR {
			t.Fatalf("expected CHAR, got %v", tok.Kind)
		}
		b, err := DecodeChar(tok, buf.Bytes())
		if err != nil {
			t.Fatalf("DecodeChar: %v", err)
		}
		if b != w {
			t.Errorf("DecodeChar() = %q, want %q", b, w)
		}
	}
}

func TestDecodeCharNeverCached(t *testing.T) {
	// Token itself carries no decoded payload for CHAR beyond IntVal,
	// which is derived, never authoritative: decoding again from the
	// raw slice must agree.
	buf := srcbuf.New("t", []byte(`'z'`))
	l := New(buf)
	tok := l.Next()
	b, err := DecodeChar(tok, buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeChar: %v", err)
	}
	if uint64(b) != tok.IntVal {
		t.Errorf("IntVal = %d, DecodeChar = %d, want equal", tok.IntVal, b)
	}
}

func TestLineComment(t *testing.T) {
	toks := lexAll("let x // comment\nlet y")
	if toks[0].Kind != token.LET || toks[1].Kind != token.IDENT {
		t.Fatalf("unexpected tokens before comment: %v %v", toks[0].Kind, toks[1].Kind)
	}
	if toks[2].Kind != token.LET {
		t.Fatalf("expected LET after line comment, got %v", toks[2].Kind)
	}
}

func TestNestedBlockComments(t *testing.T) {
	// Comments of arbitrary nesting depth lex to the same stream as
	// replacing the whole comment with nothing (spec.md invariant 4).
	depth := 8
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("/*")
	}
	b.WriteString("inner")
	for i := 0; i < depth; i++ {
		b.WriteString("*/")
	}
	withComment := lexAll("let x = 1; " + b.String() + " let y = 2;")
	without := lexAll("let x = 1;  let y = 2;")
	if len(withComment) != len(without) {
		t.Fatalf("nested comment changed token count: %d vs %d", len(withComment), len(without))
	}
	for i := range without {
		if withComment[i].Kind != without[i].Kind {
			t.Errorf("token[%d] kind mismatch: %v vs %v", i, withComment[i].Kind, without[i].Kind)
		}
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks := lexAll("/* never closed")
	if toks[0].Kind != token.ERROR {
		t.Fatalf("expected ERROR, got %v", toks[0].Kind)
	}
}

func TestPeekNextAgreement(t *testing.T) {
	buf := srcbuf.New("t", []byte("let x = 1;"))
	l := New(buf)
	p1 := l.Peek()
	p2 := l.Peek()
	if p1 != p2 {
		t.Fatalf("two consecutive Peek() calls differ: %v vs %v", p1, p2)
	}
	n := l.Next()
	if n != p1 {
		t.Fatalf("Next() after Peek() = %v, want %v", n, p1)
	}
}

func TestRawSliceReconstruction(t *testing.T) {
	src := "let x: int = 42; // trailing\n"
	buf := srcbuf.New("t", []byte(src))
	l := New(buf)
	var rebuilt strings.Builder
	last := 0
	for {
		tok := l.Next()
		if tok.Start < last {
			t.Fatalf("token %v starts before previous token ended", tok.Kind)
		}
		rebuilt.WriteString(src[last:tok.Start]) // skipped whitespace and comments
		if tok.Kind == token.EOF {
			break
		}
		rebuilt.WriteString(tok.Raw(buf.Bytes()))
		last = tok.End
	}
	if rebuilt.String() != src {
		t.Errorf("reconstructed source = %q, want %q", rebuilt.String(), src)
	}
}

func TestPositionsNotAdvancedByPeek(t *testing.T) {
	buf := srcbuf.New("t", []byte("a b"))
	l := New(buf)
	before := l.Peek().Pos
	after := l.Peek().Pos
	if before != after {
		t.Fatalf("position changed between Peek() calls: %v vs %v", before, after)
	}
}
