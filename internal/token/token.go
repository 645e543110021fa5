// Package token defines the lexical token kinds, positions, and the
// fixed keyword table for the Vitte/Vitl language.
package token

import "fmt"

// Kind discriminates a Token's variant.
type Kind int

const (
	EOF Kind = iota
	ERROR

	IDENT
	INT
	FLOAT
	BOOL
	CHAR
	STRING

	// Keywords
	MODULE
	IMPORT
	USE
	AS
	PUB
	CONST
	LET
	MUT
	FN
	RETURN
	IF
	ELSE
	MATCH
	WHILE
	FOR
	IN
	BREAK
	CONTINUE
	TYPE
	IMPL
	WHERE
	TEST

	// Operators and delimiters
	ASSIGN     // =
	PLUS_EQ    // +=
	MINUS_EQ   // -=
	STAR_EQ    // *=
	SLASH_EQ   // /=
	PERCENT_EQ // %=
	SHL_EQ     // <<=
	SHR_EQ     // >>=
	AMP_EQ     // &=
	CARET_EQ   // ^=
	PIPE_EQ    // |=
	OROR       // ||
	ANDAND     // &&
	PIPE       // |
	CARET      // ^
	AMP        // &
	EQ         // ==
	NEQ        // !=
	LT         // <
	LE         // <=
	GT         // >
	GE         // >=
	SHL        // <<
	SHR        // >>
	PLUS       // +
	MINUS      // -
	STAR       // *
	SLASH      // /
	PERCENT    // %
	BANG       // !
	DOT        // .
	DOTDOT     // ..
	DOTDOTEQ   // ..=
	LPAREN     // (
	RPAREN     // )
	LBRACKET   // [
	RBRACKET   // ]
	LBRACE     // {
	RBRACE     // }
	COMMA      // ,
	COLON      // :
	SEMI       // ;
	COLONCOLON // ::
	ARROW      // ->
	FATARROW   // =>
)

var kindNames = map[Kind]string{
	EOF: "EOF", ERROR: "ERROR",
	IDENT: "IDENT", INT: "INT", FLOAT: "FLOAT", BOOL: "BOOL", CHAR: "CHAR", STRING: "STRING",
	MODULE: "module", IMPORT: "import", USE: "use", AS: "as", PUB: "pub",
	CONST: "const", LET: "let", MUT: "mut", FN: "fn", RETURN: "return",
	IF: "if", ELSE: "else", MATCH: "match", WHILE: "while", FOR: "for",
	IN: "in", BREAK: "break", CONTINUE: "continue", TYPE: "type", IMPL: "impl",
	WHERE: "where", TEST: "test",
	ASSIGN: "=", PLUS_EQ: "+=", MINUS_EQ: "-=", STAR_EQ: "*=", SLASH_EQ: "/=",
	PERCENT_EQ: "%=", SHL_EQ: "<<=", SHR_EQ: ">>=", AMP_EQ: "&=", CARET_EQ: "^=",
	PIPE_EQ: "|=", OROR: "||", ANDAND: "&&", PIPE: "|", CARET: "^", AMP: "&",
	EQ: "==", NEQ: "!=", LT: "<", LE: "<=", GT: ">", GE: ">=", SHL: "<<", SHR: ">>",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%", BANG: "!",
	DOT: ".", DOTDOT: "..", DOTDOTEQ: "..=",
	LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]", LBRACE: "{", RBRACE: "}",
	COMMA: ",", COLON: ":", SEMI: ";", COLONCOLON: "::", ARROW: "->", FATARROW: "=>",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords is the fixed, ASCII-case-sensitive spelling -> Kind table.
// Every Kind belongs to exactly one spelling, except BOOL, which true
// and false share; token_test.go asserts this.
var keywords = map[string]Kind{
	"module": MODULE, "import": IMPORT, "use": USE, "as": AS, "pub": PUB,
	"const": CONST, "let": LET, "mut": MUT, "fn": FN, "return": RETURN,
	"if": IF, "else": ELSE, "match": MATCH, "while": WHILE, "for": FOR,
	"in": IN, "break": BREAK, "continue": CONTINUE, "type": TYPE, "impl": IMPL,
	"where": WHERE, "test": TEST,
	// true/false map straight to BOOL; the lexer sets BoolVal from the spelling.
	"true": BOOL, "false": BOOL,
}

// LookupIdent returns the keyword Kind for spelling, or IDENT if spelling
// is not a keyword.
func LookupIdent(spelling string) Kind {
	if k, ok := keywords[spelling]; ok {
		return k
	}
	return IDENT
}

// Position locates a byte within a Source Buffer.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in bytes
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme: a kind, its source position, the raw byte
// range (as a half-open [Start,End) offset pair into the owning Source
// Buffer) that produced it, and any decoded literal payload.
//
// Token does not own string storage: Raw is recovered by slicing the
// Source Buffer, and is only valid for the buffer's lifetime.
type Token struct {
	Kind    Kind
	Pos     Position
	Start   int
	End     int
	Message string // set when Kind == ERROR

	// Decoded payloads. Only the field matching Kind is meaningful.
	IntVal   uint64
	FloatVal float64
	BoolVal  bool
}

// Raw returns the token's exact source bytes (quotes included for string
// and char literals) by slicing buf.
func (t Token) Raw(buf []byte) string {
	if t.Start < 0 || t.End > len(buf) || t.Start > t.End {
		return ""
	}
	return string(buf[t.Start:t.End])
}
