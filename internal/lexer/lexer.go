// Package lexer turns a Source Buffer into a stream of Vitte/Vitl
// tokens.
//
// Its scanning style — a cursor over raw bytes, one rune/byte of
// lookahead, `makeToken`-style helpers — is grounded on
// btouchard/gmx's internal/compiler/lexer, generalized from gmx's
// rune-oriented scan (identifiers there may contain any Unicode
// letter) to the byte-oriented, ASCII-identifier grammar spec.md
// fixes, and extended with the numeric/string/char decoding, nested
// comments, and longest-match operator disambiguation gmx's lexer
// does not need for its own grammar.
package lexer

import (
	"strconv"
	"strings"

	"github.com/vitte-lang/vitlc/internal/srcbuf"
	"github.com/vitte-lang/vitlc/internal/token"
)

// Lexer converts a Source Buffer into Tokens. One instance serves one
// compilation; it is restartable only by constructing a new instance.
type Lexer struct {
	buf  *srcbuf.Buffer
	pos  int
	line int
	col  int

	lookahead *token.Token
}

// New creates a Lexer positioned at the start of buf.
func New(buf *srcbuf.Buffer) *Lexer {
	return &Lexer{buf: buf, pos: 0, line: 1, col: 1}
}

func (l *Lexer) curPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) at(offset int) byte { return l.buf.At(l.pos + offset) }
func (l *Lexer) cur() byte          { return l.buf.At(l.pos) }
func (l *Lexer) eof() bool          { return l.pos >= l.buf.Len() }

// advance consumes the current byte and returns it. Position tracking
// only happens here: lookahead (Peek) never calls advance beyond what
// a single Next would.
func (l *Lexer) advance() byte {
	c := l.cur()
	if l.pos >= l.buf.Len() {
		return 0
	}
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

// Next consumes and returns the next token, caching nothing. If a
// token was cached by Peek, it is returned instead of scanning again.
func (l *Lexer) Next() token.Token {
	if l.lookahead != nil {
		t := *l.lookahead
		l.lookahead = nil
		return t
	}
	return l.scan()
}

// Peek returns the next token without consuming it. A subsequent Next
// returns the same token.
func (l *Lexer) Peek() token.Token {
	if l.lookahead == nil {
		t := l.scan()
		l.lookahead = &t
	}
	return *l.lookahead
}

// Expect consumes the next token and reports an error if its kind does
// not match want.
func (l *Lexer) Expect(want token.Kind) (token.Token, error) {
	t := l.Next()
	if t.Kind != want {
		return t, &UnexpectedTokenError{Want: want, Got: t}
	}
	return t, nil
}

// UnexpectedTokenError is returned by Expect on a kind mismatch.
type UnexpectedTokenError struct {
	Want token.Kind
	Got  token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return "expected " + e.Want.String() + ", got " + e.Got.Kind.String()
}

func errToken(pos token.Position, start int, end int, msg string) token.Token {
	return token.Token{Kind: token.ERROR, Pos: pos, Start: start, End: end, Message: msg}
}

// scan skips whitespace/comments, then lexes exactly one token.
func (l *Lexer) scan() token.Token {
	if tok, stop := l.skipWhitespaceAndComments(); stop {
		return tok
	}

	pos := l.curPos()
	start := l.pos

	if l.eof() {
		return token.Token{Kind: token.EOF, Pos: pos, Start: start, End: start}
	}

	c := l.cur()
	switch {
	case isIdentStart(c):
		return l.lexIdent(pos, start)
	case isDigit(c):
		return l.lexNumber(pos, start)
	case c == '"':
		return l.lexString(pos, start)
	case c == '\'':
		return l.lexChar(pos, start)
	default:
		return l.lexOperator(pos, start)
	}
}

// skipWhitespaceAndComments advances past spaces, tabs, CR/LF and
// comments. It returns (errorToken, true) if a block comment is left
// unterminated at EOF.
func (l *Lexer) skipWhitespaceAndComments() (token.Token, bool) {
	for {
		for !l.eof() {
			c := l.cur()
			if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
				l.advance()
				continue
			}
			break
		}

		if l.cur() == '/' && l.at(1) == '/' {
			for !l.eof() && l.cur() != '\n' {
				l.advance()
			}
			continue
		}

		if l.cur() == '/' && l.at(1) == '*' {
			pos := l.curPos()
			start := l.pos
			l.advance()
			l.advance()
			depth := 1
			for depth > 0 {
				if l.eof() {
					return errToken(pos, start, l.pos, "unterminated block comment"), true
				}
				if l.cur() == '/' && l.at(1) == '*' {
					l.advance()
					l.advance()
					depth++
					continue
				}
				if l.cur() == '*' && l.at(1) == '/' {
					l.advance()
					l.advance()
					depth--
					continue
				}
				l.advance()
			}
			continue
		}

		return token.Token{}, false
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (l *Lexer) lexIdent(pos token.Position, start int) token.Token {
	for !l.eof() && isIdentCont(l.cur()) {
		l.advance()
	}
	spelling := string(l.buf.Bytes()[start:l.pos])
	kind := token.LookupIdent(spelling)
	t := token.Token{Kind: kind, Pos: pos, Start: start, End: l.pos}
	if kind == token.BOOL {
		t.BoolVal = spelling == "true"
	}
	return t
}

func stripUnderscores(s string) string { return strings.ReplaceAll(s, "_", "") }

func (l *Lexer) lexNumber(pos token.Position, start int) token.Token {
	// Hex literal.
	if l.cur() == '0' && (l.at(1) == 'x' || l.at(1) == 'X') {
		l.advance()
		l.advance()
		digitsStart := l.pos
		for !l.eof() && (isHexDigit(l.cur()) || l.cur() == '_') {
			l.advance()
		}
		if l.pos == digitsStart {
			return errToken(pos, start, l.pos, "invalid hex literal")
		}
		raw := stripUnderscores(string(l.buf.Bytes()[digitsStart:l.pos]))
		v, err := strconv.ParseUint(raw, 16, 64)
		if err != nil {
			return errToken(pos, start, l.pos, "integer overflow")
		}
		return token.Token{Kind: token.INT, Pos: pos, Start: start, End: l.pos, IntVal: v}
	}

	// Binary literal.
	if l.cur() == '0' && (l.at(1) == 'b' || l.at(1) == 'B') {
		l.advance()
		l.advance()
		digitsStart := l.pos
		for !l.eof() && (l.cur() == '0' || l.cur() == '1' || l.cur() == '_') {
			l.advance()
		}
		if l.pos == digitsStart {
			return errToken(pos, start, l.pos, "invalid binary literal")
		}
		raw := stripUnderscores(string(l.buf.Bytes()[digitsStart:l.pos]))
		v, err := strconv.ParseUint(raw, 2, 64)
		if err != nil {
			return errToken(pos, start, l.pos, "integer overflow")
		}
		return token.Token{Kind: token.INT, Pos: pos, Start: start, End: l.pos, IntVal: v}
	}

	// Decimal integer part.
	for !l.eof() && (isDigit(l.cur()) || l.cur() == '_') {
		l.advance()
	}

	isFloat := false

	// Fractional part: a '.' is part of a float only when it is not
	// immediately followed by another '.' (that's the range operator)
	// and is followed by at least one digit.
	if l.cur() == '.' && l.at(1) != '.' && isDigit(l.at(1)) {
		isFloat = true
		l.advance() // consume '.'
		for !l.eof() && (isDigit(l.cur()) || l.cur() == '_') {
			l.advance()
		}
	}

	// Exponent: backtrack with no error if there are no digits.
	if l.cur() == 'e' || l.cur() == 'E' {
		savePos, saveLine, saveCol := l.pos, l.line, l.col
		l.advance()
		if l.cur() == '+' || l.cur() == '-' {
			l.advance()
		}
		if isDigit(l.cur()) {
			isFloat = true
			for !l.eof() && isDigit(l.cur()) {
				l.advance()
			}
		} else {
			l.pos, l.line, l.col = savePos, saveLine, saveCol
		}
	}

	raw := stripUnderscores(string(l.buf.Bytes()[start:l.pos]))
	if isFloat {
		v, _ := strconv.ParseFloat(raw, 64)
		return token.Token{Kind: token.FLOAT, Pos: pos, Start: start, End: l.pos, FloatVal: v}
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return errToken(pos, start, l.pos, "integer overflow")
	}
	return token.Token{Kind: token.INT, Pos: pos, Start: start, End: l.pos, IntVal: v}
}

// lexString scans a double-quoted string literal. The token's raw
// slice includes the surrounding quotes; contents are unescaped lazily
// by DecodeString.
func (l *Lexer) lexString(pos token.Position, start int) token.Token {
	l.advance() // opening quote
	for {
		if l.eof() {
			return errToken(pos, start, l.pos, "unterminated or invalid string literal")
		}
		c := l.cur()
		if c == '"' {
			l.advance()
			return token.Token{Kind: token.STRING, Pos: pos, Start: start, End: l.pos}
		}
		if c == '\\' {
			l.advance()
			if l.eof() {
				return errToken(pos, start, l.pos, "unterminated or invalid string literal")
			}
			l.advance()
			continue
		}
		if c < 0x20 {
			return errToken(pos, start, l.pos, "unterminated or invalid string literal")
		}
		l.advance()
	}
}

// lexChar scans a single-quoted character literal.
func (l *Lexer) lexChar(pos token.Position, start int) token.Token {
	l.advance() // opening quote
	if l.eof() {
		return errToken(pos, start, l.pos, "unterminated character literal")
	}
	if l.cur() == '\\' {
		l.advance()
		if l.eof() {
			return errToken(pos, start, l.pos, "unterminated character literal")
		}
		if l.cur() == 'x' {
			// \xHH: skip the raw hex digits here; DecodeChar validates
			// them when it decodes the escape body.
			l.advance()
			for i := 0; i < 2 && isHexDigit(l.cur()); i++ {
				l.advance()
			}
		} else {
			l.advance()
		}
	} else if l.cur() < 0x20 {
		return errToken(pos, start, l.pos, "invalid control character in character literal")
	} else {
		l.advance()
	}
	if l.cur() != '\'' {
		return errToken(pos, start, l.pos, "unterminated character literal")
	}
	l.advance()
	t := token.Token{Kind: token.CHAR, Pos: pos, Start: start, End: l.pos}
	if b, err := DecodeChar(t, l.buf.Bytes()); err == nil {
		t.IntVal = uint64(b)
	}
	return t
}

// threeCharOps and twoCharOps are tried in this order, longest match
// first, per spec.md's explicit disambiguation rule.
var threeCharOps = map[string]token.Kind{
	"<<=": token.SHL_EQ, ">>=": token.SHR_EQ, "..=": token.DOTDOTEQ,
}

var twoCharOps = map[string]token.Kind{
	"==": token.EQ, "!=": token.NEQ, "<=": token.LE, ">=": token.GE,
	"<<": token.SHL, ">>": token.SHR, "&&": token.ANDAND, "||": token.OROR,
	"+=": token.PLUS_EQ, "-=": token.MINUS_EQ, "*=": token.STAR_EQ, "/=": token.SLASH_EQ,
	"%=": token.PERCENT_EQ, "&=": token.AMP_EQ, "^=": token.CARET_EQ, "|=": token.PIPE_EQ,
	"->": token.ARROW, "=>": token.FATARROW, "::": token.COLONCOLON, "..": token.DOTDOT,
}

var oneCharOps = map[byte]token.Kind{
	'=': token.ASSIGN, '|': token.PIPE, '^': token.CARET, '&': token.AMP,
	'<': token.LT, '>': token.GT, '+': token.PLUS, '-': token.MINUS,
	'*': token.STAR, '/': token.SLASH, '%': token.PERCENT, '!': token.BANG,
	'.': token.DOT, '(': token.LPAREN, ')': token.RPAREN, '[': token.LBRACKET,
	']': token.RBRACKET, '{': token.LBRACE, '}': token.RBRACE, ',': token.COMMA,
	':': token.COLON, ';': token.SEMI,
}

func (l *Lexer) lexOperator(pos token.Position, start int) token.Token {
	b3 := l.peekString(3)
	if k, ok := threeCharOps[b3]; ok {
		l.advance()
		l.advance()
		l.advance()
		return token.Token{Kind: k, Pos: pos, Start: start, End: l.pos}
	}
	b2 := l.peekString(2)
	if k, ok := twoCharOps[b2]; ok {
		l.advance()
		l.advance()
		return token.Token{Kind: k, Pos: pos, Start: start, End: l.pos}
	}
	c := l.cur()
	if k, ok := oneCharOps[c]; ok {
		l.advance()
		return token.Token{Kind: k, Pos: pos, Start: start, End: l.pos}
	}
	l.advance()
	return errToken(pos, start, l.pos, "unexpected character")
}

// peekString returns up to n bytes starting at the current position,
// without consuming them.
func (l *Lexer) peekString(n int) string {
	end := l.pos + n
	if end > l.buf.Len() {
		end = l.buf.Len()
	}
	return string(l.buf.Bytes()[l.pos:end])
}
