// Package ir implements spec.md's `ast_to_ir`, `ir_emit_text`, and
// `ir_emit_object` external-collaborator contracts: a flat,
// deterministic lowering of an *ast.File into a list of declaration
// summaries, and the two serializations spec.md §6 fixes the framing
// of (a line-oriented text form starting with "; IR", and a binary
// object form starting with the magic bytes VLBIN\x00\x01).
//
// No suitable third-party library covers this: the formats are
// bespoke placeholders spec.md invents for a future code generator to
// replace, not an existing wire format, so encoding/binary (stdlib) is
// used for the handful of fixed-width fields the object form needs.
package ir

import (
	"fmt"

	"github.com/vitte-lang/vitlc/internal/ast"
)

// Decl is one flattened declaration summary.
type Decl struct {
	Kind   string // "import", "use", "const", "let", "fn", "type"
	Name   string
	Detail string
}

// IR is the whole lowered unit: the module path (if any) plus a flat
// list of declarations in source order.
type IR struct {
	Module string
	Decls  []Decl
}

// SemanticError is returned by Lower when the AST cannot be lowered.
// The current lowering never fails (it has no type checker to reject
// anything against), but the type exists so a later phase can report
// one without changing the driver's error-kind mapping.
type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string { return e.Message }

// Lower implements ast_to_ir.
func Lower(file *ast.File) (*IR, error) {
	out := &IR{Module: file.Module}
	for _, imp := range file.Imports {
		out.Decls = append(out.Decls, Decl{Kind: imp.Keyword, Name: imp.Path, Detail: imp.Alias})
	}
	for _, item := range file.Items {
		switch n := item.(type) {
		case *ast.VarDecl:
			detail := n.Type
			if n.Mut {
				detail = "mut " + detail
			}
			out.Decls = append(out.Decls, Decl{Kind: n.Kind, Name: n.Name, Detail: detail})
		case *ast.FnDecl:
			out.Decls = append(out.Decls, Decl{
				Kind: "fn", Name: n.Name,
				Detail: fmt.Sprintf("%d params, -> %s, %d body bytes", len(n.Params), n.ReturnType, n.BodyLen),
			})
		case *ast.TypeDecl:
			out.Decls = append(out.Decls, Decl{Kind: "type", Name: n.Name})
		}
	}
	return out, nil
}
