package ir

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/vitte-lang/vitlc/internal/fsutil"
)

// ObjectMagic is the seven-byte prefix every binary object form
// begins with, fixed by spec.md §6. Layout beyond the prefix is a
// future concern; this package only guarantees the prefix and a
// minimal, internally-consistent body.
var ObjectMagic = []byte("VLBIN\x00\x01")

// EmitText implements ir_emit_text: a deterministic, line-oriented
// rendering intended for diff-based testing.
func EmitText(ir *IR, path string) error {
	var b bytes.Buffer
	b.WriteString("; IR\n")
	if ir.Module != "" {
		fmt.Fprintf(&b, "; module %s\n", ir.Module)
	}
	for _, d := range ir.Decls {
		if d.Detail != "" {
			fmt.Fprintf(&b, "%s %s %s\n", d.Kind, d.Name, d.Detail)
		} else {
			fmt.Fprintf(&b, "%s %s\n", d.Kind, d.Name)
		}
	}
	return fsutil.WriteAll(path, b.Bytes())
}

// EmitObject implements ir_emit_object: the seven-byte magic prefix
// followed by a declaration count and each declaration's kind, name and detail,
// length-prefixed so the body round-trips without ambiguity even
// though the spec leaves everything past the magic unspecified.
func EmitObject(ir *IR, path string) error {
	var b bytes.Buffer
	b.Write(ObjectMagic)
	binary.Write(&b, binary.LittleEndian, uint32(len(ir.Decls)))
	for _, d := range ir.Decls {
		writeLPString(&b, d.Kind)
		writeLPString(&b, d.Name)
		writeLPString(&b, d.Detail)
	}
	return fsutil.WriteAll(path, b.Bytes())
}

func writeLPString(b *bytes.Buffer, s string) {
	binary.Write(b, binary.LittleEndian, uint32(len(s)))
	b.WriteString(s)
}
