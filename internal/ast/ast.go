// Package ast defines the small, real AST the driver's Parse phase
// produces: enough structure for a textual dump (spec.md's ast_dump
// contract) without a type checker or module resolver, both of which
// spec.md names as explicit Non-goals.
//
// The Node interface with a TokenLiteral-style accessor is grounded on
// btouchard/gmx's internal/compiler/ast, generalized from gmx's
// GMX-section-specific nodes (ModelDecl, ServiceDecl, TemplateBlock)
// to the declaration shapes spec.md's keyword table implies (module,
// import/use, const/let, fn, type).
package ast

import "github.com/vitte-lang/vitlc/internal/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	Pos() token.Position
}

// File is the root node: one parsed source file.
type File struct {
	Module  string // from "module <path>", empty if absent
	Imports []*ImportDecl
	Items   []Node
}

func (f *File) TokenLiteral() string { return "file" }
func (f *File) Pos() token.Position  { return token.Position{Line: 1, Column: 1} }

// ImportDecl is `import path [as alias]` or `use path [as alias]`.
type ImportDecl struct {
	Keyword string // "import" or "use"
	Path    string
	Alias   string
	At      token.Position
}

func (d *ImportDecl) TokenLiteral() string { return d.Keyword }
func (d *ImportDecl) Pos() token.Position  { return d.At }

// VarDecl is `[pub] const|let [mut] NAME [: TYPE] = ...;`.
type VarDecl struct {
	Pub  bool
	Kind string // "const" or "let"
	Mut  bool
	Name string
	Type string // empty if not annotated
	At   token.Position
}

func (d *VarDecl) TokenLiteral() string { return d.Kind }
func (d *VarDecl) Pos() token.Position  { return d.At }

// Param is one function parameter: `name: Type`.
type Param struct {
	Name string
	Type string
}

// FnDecl is `[pub] fn NAME(params) [-> RET] { ... }`. Body is not
// parsed into statements/expressions: spec.md's Non-goals exclude a
// type checker and code generator, so nothing downstream needs the
// body structure, only that it balances braces (ast_dump prints its
// raw byte length instead of a statement tree).
type FnDecl struct {
	Pub        bool
	Name       string
	Params     []Param
	ReturnType string
	BodyLen    int // raw byte length of the (balanced) body
	At         token.Position
}

func (d *FnDecl) TokenLiteral() string { return "fn" }
func (d *FnDecl) Pos() token.Position  { return d.At }

// TypeDecl is `[pub] type NAME = ...;` or `[pub] type NAME { ... }`.
type TypeDecl struct {
	Pub  bool
	Name string
	At   token.Position
}

func (d *TypeDecl) TokenLiteral() string { return "type" }
func (d *TypeDecl) Pos() token.Position  { return d.At }
