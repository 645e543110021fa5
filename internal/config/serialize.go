package config

import (
	"strings"
)

// needsQuoting reports whether value must be quoted to round-trip
// through Serialize/LoadFile: it contains whitespace or a character
// that would otherwise start a comment.
func needsQuoting(value string) bool {
	return strings.ContainsAny(value, " \t#;") || strings.Contains(value, "//")
}

func quote(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(value[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Serialize renders m as an INI document: top-level keys first, then
// keys sorted lexicographically and grouped into `[section]` blocks, with values
// quoted only when needsQuoting requires it. Round-tripping the result
// back through LoadFile reproduces the same canonical keys and the
// same values for anything that didn't need quoting (spec.md invariant
// 6).
func (m *Map) Serialize() string {
	entries := m.sortedEntries()

	var b strings.Builder
	currentSection := ""
	wroteSectionHeader := false
	for _, e := range entries {
		section, leaf := "", e.Key
		if idx := strings.LastIndex(e.Key, "."); idx >= 0 {
			section, leaf = e.Key[:idx], e.Key[idx+1:]
		}
		if section != currentSection || !wroteSectionHeader {
			if section != "" {
				b.WriteString("[" + section + "]\n")
			}
			currentSection = section
			wroteSectionHeader = true
		}
		value := e.Value
		if needsQuoting(value) {
			value = quote(value)
		}
		b.WriteString(leaf + " = " + value + "\n")
	}
	return b.String()
}
