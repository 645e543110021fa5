package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vitte-lang/vitlc/internal/utf8util"
)

// LoadFile parses the INI-like file at path and merges its entries
// into m, following `@include "path"` directives relative to the
// including file's directory. Unlike source files (spec.md §6), a
// configuration file's BOM is silently stripped rather than treated as
// an error.
func (m *Map) LoadFile(path string) error {
	return m.loadFile(path, map[string]bool{})
}

func (m *Map) loadFile(path string, loading map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if loading[abs] {
		return &Error{Path: path, Message: "circular @include"}
	}
	loading[abs] = true
	defer delete(loading, abs)

	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Path: path, Message: fmt.Sprintf("reading config file: %v", err)}
	}
	data, err = utf8util.StripBOM(data)
	if err != nil {
		return &Error{Path: path, Message: fmt.Sprintf("stripping BOM: %v", err)}
	}

	dir := filepath.Dir(path)
	section := ""

	lines := strings.Split(string(data), "\n")
	for i, rawLine := range lines {
		lineNo := i + 1
		line := strings.TrimRight(rawLine, "\r")
		line = stripComment(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if directive, rest, ok := strings.Cut(line, " "); ok && directive == "@include" {
			incPath := strings.TrimSpace(rest)
			incPath = unquoteIfQuoted(incPath)
			if len(incPath) > maxIncludePathLen {
				return &Error{Path: path, Line: lineNo, Message: "include path exceeds maximum length"}
			}
			if !filepath.IsAbs(incPath) {
				incPath = filepath.Join(dir, incPath)
			}
			if err := m.loadFile(incPath, loading); err != nil {
				return err
			}
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return &Error{Path: path, Line: lineNo, Message: "unmatched ["}
			}
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		eq := indexUnquoted(line, '=')
		if eq < 0 {
			return &Error{Path: path, Line: lineNo, Message: "missing ="}
		}
		key := strings.ToLower(strings.TrimSpace(line[:eq]))
		if key == "" {
			return &Error{Path: path, Line: lineNo, Message: "empty key"}
		}
		value := unquoteIfQuoted(strings.TrimSpace(line[eq+1:]))

		canonical := key
		if section != "" {
			canonical = section + "." + key
		}
		m.set(canonical, value)
	}
	return nil
}

// stripComment truncates line at the first unquoted '#', ';', or '//'.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '#', ';':
			return line[:i]
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return line[:i]
			}
		}
	}
	return line
}

// indexUnquoted returns the index of the first unquoted occurrence of
// target in s, or -1.
func indexUnquoted(s string, target byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		if c == '"' || c == '\'' {
			quote = c
			continue
		}
		if c == target {
			return i
		}
	}
	return -1
}

// unquoteIfQuoted strips a matching pair of surrounding quotes and
// unescapes \n \r \t \\ \" \' inside them. Unquoted values pass through
// unchanged.
func unquoteIfQuoted(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return s
	}
	body := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			default:
				b.WriteByte('\\')
				b.WriteByte(body[i])
			}
			continue
		}
		b.WriteByte(body[i])
	}
	return b.String()
}
