package astparse

import "github.com/vitte-lang/vitlc/internal/token"

// LexErrors returns every ERROR-kind token the lexer produced while
// this parser was pulling tokens. spec.md treats a lexer ERROR token
// as fatal for the compilation, distinct from a parse error: the
// driver maps the two to different exit codes (RC_ELEX vs RC_EPARSE).
func (p *Parser) LexErrors() []token.Token { return p.lexErrors }
