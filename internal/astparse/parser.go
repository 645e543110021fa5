// Package astparse implements spec.md's `parse(source_bytes) -> Ast |
// ParseError` external-collaborator contract: a real recursive-descent
// parser over declaration headers (module/import/use, const/let, fn,
// type), stopping short of parsing statement and expression bodies —
// spec.md's Non-goals exclude a type checker and code generator, so
// nothing downstream needs them, only that braces/parens balance.
//
// The Parser's shape — cur/peek tokens, an accumulated error slice,
// an expect helper, and a synchronize-on-error recovery step — is grounded
// on btouchard/gmx's internal/compiler/parser, generalized from gmx's
// GMX-section dispatch (RAW_GO/RAW_TEMPLATE/RAW_STYLE) to the
// declaration-keyword dispatch spec.md's keyword table implies.
package astparse

import (
	"fmt"

	"github.com/vitte-lang/vitlc/internal/ast"
	"github.com/vitte-lang/vitlc/internal/lexer"
	"github.com/vitte-lang/vitlc/internal/srcbuf"
	"github.com/vitte-lang/vitlc/internal/token"
)

// ParseError is one parse diagnostic with its source position.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Parser builds an *ast.File from a token stream.
type Parser struct {
	buf  *srcbuf.Buffer
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token

	errors    []*ParseError
	lexErrors []token.Token
}

// New creates a Parser reading tokens from lex over buf.
func New(lex *lexer.Lexer, buf *srcbuf.Buffer) *Parser {
	p := &Parser{lex: lex, buf: buf}
	p.advance()
	p.advance()
	return p
}

// Errors returns every diagnostic accumulated while parsing.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: p.cur.Pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Next()
	if p.cur.Kind == token.ERROR {
		p.lexErrors = append(p.lexErrors, p.cur)
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) expect(k token.Kind) bool {
	if p.curIs(k) {
		p.advance()
		return true
	}
	p.addError("expected %s, got %s", k, p.cur.Kind)
	return false
}

func (p *Parser) text(t token.Token) string { return t.Raw(p.buf.Bytes()) }

// synchronize recovers from a parse error by skipping to the next
// token that can start a top-level declaration, or to EOF.
func (p *Parser) synchronize() {
	for !p.curIs(token.EOF) {
		switch p.cur.Kind {
		case token.MODULE, token.IMPORT, token.USE, token.PUB, token.CONST, token.LET, token.FN, token.TYPE:
			return
		}
		p.advance()
	}
}

// ParseFile parses one source file into an *ast.File. Parsing never
// stops at the first error: malformed declarations are skipped via
// synchronize so later, well-formed declarations are still recovered,
// matching spec.md's "Parse" error-propagation contract (the driver
// decides whether any accumulated error is fatal).
func (p *Parser) ParseFile() *ast.File {
	file := &ast.File{}

	if p.curIs(token.MODULE) {
		file.Module = p.parseModulePath()
	}

	for !p.curIs(token.EOF) {
		switch p.cur.Kind {
		case token.IMPORT, token.USE:
			file.Imports = append(file.Imports, p.parseImport())
		case token.PUB:
			pos := p.cur.Pos
			p.advance()
			file.Items = append(file.Items, p.parseDecl(true, pos))
		case token.CONST, token.LET:
			file.Items = append(file.Items, p.parseVar(false, p.cur.Pos))
		case token.FN:
			file.Items = append(file.Items, p.parseFn(false, p.cur.Pos))
		case token.TYPE:
			file.Items = append(file.Items, p.parseType(false, p.cur.Pos))
		default:
			p.addError("unexpected token %s at top level", p.cur.Kind)
			p.advance()
			p.synchronize()
		}
	}
	return file
}

func (p *Parser) parseDecl(pub bool, pos token.Position) ast.Node {
	switch p.cur.Kind {
	case token.CONST, token.LET:
		return p.parseVar(pub, pos)
	case token.FN:
		return p.parseFn(pub, pos)
	case token.TYPE:
		return p.parseType(pub, pos)
	default:
		p.addError("expected a declaration after pub, got %s", p.cur.Kind)
		p.synchronize()
		return &ast.VarDecl{At: pos}
	}
}

func (p *Parser) parseModulePath() string {
	p.advance() // 'module'
	path := ""
	for p.curIs(token.IDENT) {
		path += p.text(p.cur)
		p.advance()
		if p.curIs(token.DOT) {
			path += "."
			p.advance()
			continue
		}
		break
	}
	if p.curIs(token.SEMI) {
		p.advance()
	}
	return path
}

func (p *Parser) parseImport() *ast.ImportDecl {
	keyword := p.cur.Kind.String()
	pos := p.cur.Pos
	p.advance()

	path := ""
	for p.curIs(token.IDENT) || p.curIs(token.STRING) {
		path += p.text(p.cur)
		p.advance()
		if p.curIs(token.DOT) || p.curIs(token.COLONCOLON) {
			path += p.text(p.cur)
			p.advance()
			continue
		}
		break
	}

	alias := ""
	if p.curIs(token.AS) {
		p.advance()
		if p.curIs(token.IDENT) {
			alias = p.text(p.cur)
			p.advance()
		} else {
			p.addError("expected identifier after as, got %s", p.cur.Kind)
		}
	}
	if p.curIs(token.SEMI) {
		p.advance()
	} else {
		p.addError("expected ; after import, got %s", p.cur.Kind)
		p.synchronize()
	}
	return &ast.ImportDecl{Keyword: keyword, Path: path, Alias: alias, At: pos}
}

func (p *Parser) parseVar(pub bool, pos token.Position) *ast.VarDecl {
	kind := p.cur.Kind.String()
	p.advance() // 'const' | 'let'

	mut := false
	if p.curIs(token.MUT) {
		mut = true
		p.advance()
	}

	name := ""
	if p.curIs(token.IDENT) {
		name = p.text(p.cur)
		p.advance()
	} else {
		p.addError("expected identifier, got %s", p.cur.Kind)
	}

	typ := ""
	if p.curIs(token.COLON) {
		p.advance()
		if p.curIs(token.IDENT) {
			typ = p.text(p.cur)
			p.advance()
		}
	}

	if p.curIs(token.ASSIGN) {
		p.advance()
		p.skipToStatementEnd()
	}
	if p.curIs(token.SEMI) {
		p.advance()
	}

	return &ast.VarDecl{Pub: pub, Kind: kind, Mut: mut, Name: name, Type: typ, At: pos}
}

func (p *Parser) parseFn(pub bool, pos token.Position) *ast.FnDecl {
	p.advance() // 'fn'

	name := ""
	if p.curIs(token.IDENT) {
		name = p.text(p.cur)
		p.advance()
	} else {
		p.addError("expected function name, got %s", p.cur.Kind)
	}

	var params []ast.Param
	if p.expect(token.LPAREN) {
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			pname := ""
			if p.curIs(token.IDENT) {
				pname = p.text(p.cur)
				p.advance()
			}
			ptype := ""
			if p.curIs(token.COLON) {
				p.advance()
				if p.curIs(token.IDENT) {
					ptype = p.text(p.cur)
					p.advance()
				}
			}
			params = append(params, ast.Param{Name: pname, Type: ptype})
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RPAREN)
	}

	ret := ""
	if p.curIs(token.ARROW) {
		p.advance()
		if p.curIs(token.IDENT) {
			ret = p.text(p.cur)
			p.advance()
		}
	}

	bodyLen := 0
	if p.curIs(token.LBRACE) {
		start := p.cur.End
		end := p.skipBalancedBraces()
		if end > start {
			bodyLen = end - start - 1 // exclude the closing brace
		}
	} else if p.curIs(token.SEMI) {
		p.advance()
	} else {
		p.addError("expected function body or ;, got %s", p.cur.Kind)
		p.synchronize()
	}

	return &ast.FnDecl{Pub: pub, Name: name, Params: params, ReturnType: ret, BodyLen: bodyLen, At: pos}
}

func (p *Parser) parseType(pub bool, pos token.Position) *ast.TypeDecl {
	p.advance() // 'type'
	name := ""
	if p.curIs(token.IDENT) {
		name = p.text(p.cur)
		p.advance()
	} else {
		p.addError("expected type name, got %s", p.cur.Kind)
	}

	if p.curIs(token.LBRACE) {
		p.skipBalancedBraces()
	} else {
		if p.curIs(token.ASSIGN) {
			p.advance()
			p.skipToStatementEnd()
		}
		if p.curIs(token.SEMI) {
			p.advance()
		}
	}
	return &ast.TypeDecl{Pub: pub, Name: name, At: pos}
}

// skipBalancedBraces consumes a '{' already at p.cur and everything up
// to and including its matching '}', tracking nested braces. It
// returns the byte offset just past the closing brace.
func (p *Parser) skipBalancedBraces() int {
	depth := 0
	for {
		switch p.cur.Kind {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth == 0 {
				end := p.cur.End
				p.advance()
				return end
			}
		case token.EOF:
			p.addError("unexpected end of file inside block")
			return p.cur.End
		}
		p.advance()
	}
}

// skipToStatementEnd skips tokens until an unbalanced ';' or '}' (not
// nested inside parens/brackets/braces) is found, without consuming
// it. Used for initializer expressions this parser deliberately does
// not structure.
func (p *Parser) skipToStatementEnd() {
	depth := 0
	for {
		switch p.cur.Kind {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET:
			depth--
		case token.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		case token.SEMI:
			if depth <= 0 {
				return
			}
		case token.EOF:
			return
		}
		p.advance()
	}
}
