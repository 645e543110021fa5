package ast

import (
	"fmt"
	"strings"

	"github.com/vitte-lang/vitlc/internal/fsutil"
)

// DumpToFile implements spec.md's `ast_dump(ast, path) -> () | IoError`
// contract: write Dump(f)'s text to path.
func DumpToFile(f *File, path string) error {
	return fsutil.WriteAll(path, []byte(Dump(f)))
}

// Dump renders f as human-readable text. The format is
// implementation-defined per spec.md §6: callers must tolerate
// whitespace differences, it is not a stable interface.
func Dump(f *File) string {
	var b strings.Builder
	fmt.Fprintf(&b, "file\n")
	if f.Module != "" {
		fmt.Fprintf(&b, "  module %s\n", f.Module)
	}
	for _, imp := range f.Imports {
		if imp.Alias != "" {
			fmt.Fprintf(&b, "  %s %s as %s\n", imp.Keyword, imp.Path, imp.Alias)
		} else {
			fmt.Fprintf(&b, "  %s %s\n", imp.Keyword, imp.Path)
		}
	}
	for _, item := range f.Items {
		switch n := item.(type) {
		case *VarDecl:
			mut := ""
			if n.Mut {
				mut = "mut "
			}
			pub := ""
			if n.Pub {
				pub = "pub "
			}
			typ := ""
			if n.Type != "" {
				typ = ": " + n.Type
			}
			fmt.Fprintf(&b, "  %s%s %s%s%s\n", pub, n.Kind, mut, n.Name, typ)
		case *FnDecl:
			pub := ""
			if n.Pub {
				pub = "pub "
			}
			params := make([]string, len(n.Params))
			for i, p := range n.Params {
				params[i] = p.Name + ": " + p.Type
			}
			ret := ""
			if n.ReturnType != "" {
				ret = " -> " + n.ReturnType
			}
			fmt.Fprintf(&b, "  %sfn %s(%s)%s { %d bytes }\n", pub, n.Name, strings.Join(params, ", "), ret, n.BodyLen)
		case *TypeDecl:
			pub := ""
			if n.Pub {
				pub = "pub "
			}
			fmt.Fprintf(&b, "  %stype %s\n", pub, n.Name)
		}
	}
	return b.String()
}
