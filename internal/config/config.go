// Package config implements the INI/env/argv configuration layer
// spec.md §4.4 describes: canonical dotted keys, ${KEY} expansion, and
// typed accessors, merged in the order file(s) < environment < argv.
//
// The file-include resolution (cycle detection keyed by absolute
// path) is grounded on btouchard/gmx's internal/compiler/resolver,
// whose Resolver solves the same shape of problem — a root document
// pulling in other documents by relative path, needing to detect
// cycles — just for .gmx component imports rather than @include
// config files. Included files are not cached: a file included twice
// is read and parsed twice.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a configuration diagnostic carrying a path and 1-based line
// number, per spec.md's "path:line" requirement.
type Error struct {
	Path    string
	Line    int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// maxIncludePathLen bounds @include targets. spec.md's Open Question
// about the source's fixed stack buffer for include paths resolves to
// an explicit error on overflow rather than a silent truncation (see
// SPEC_FULL.md, Open Question decision #2); Go strings have no such
// buffer, so this is a generous sanity bound, not a mechanical limit.
const maxIncludePathLen = 4096

// maxExpandDepth bounds ${KEY} recursion (spec.md requires >= 128).
const maxExpandDepth = 128

// Map is the canonical key -> value store built by the three loaders.
// Canonicalization (lowercase, dotted "section.leaf") happens at write
// time in each loader; Map itself is just storage plus typed access
// and expansion.
type Map struct {
	values map[string]string
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: make(map[string]string)}
}

// set overwrites key unconditionally: later writers always win, which
// is how file < env < argv precedence (and later-@include-wins within
// a file) is implemented — callers simply load in the right order.
func (m *Map) set(key, value string) {
	m.values[canonicalize(key)] = value
}

func canonicalize(key string) string { return strings.ToLower(key) }

// Raw returns the value stored for key (after canonicalization) and
// whether it was present, with no expansion applied.
func (m *Map) Raw(key string) (string, bool) {
	v, ok := m.values[canonicalize(key)]
	return v, ok
}

// Keys returns all canonical keys currently set, sorted
// lexicographically so that enumeration is stable across calls.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports how many keys are set.
func (m *Map) Len() int { return len(m.values) }

// Expand substitutes ${KEY} references in s: first from the map
// itself, then from the process environment, then an empty string.
// Recursion is bounded at maxExpandDepth; going past that returns
// whatever has been expanded so far rather than looping forever or
// erroring (spec.md: "cycles cut off silently").
func (m *Map) Expand(s string) string {
	return m.expandDepth(s, 0)
}

func (m *Map) expandDepth(s string, depth int) string {
	if depth >= maxExpandDepth {
		return s
	}
	if !strings.Contains(s, "${") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				b.WriteString(s[i:])
				break
			}
			key := s[i+2 : i+2+end]
			b.WriteString(m.expandDepth(m.lookupForExpand(key), depth+1))
			i += 2 + end + 1
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func (m *Map) lookupForExpand(key string) string {
	if v, ok := m.Raw(key); ok {
		return v
	}
	if v, ok := lookupEnv(key); ok {
		return v
	}
	return ""
}

// sortedEntries returns (key, value) pairs for Serialize: top-level
// keys (no section) first, then sectioned keys, each group sorted
// lexicographically. Top-level keys must precede every [section]
// header, or LoadFile would read them back under the last section.
func (m *Map) sortedEntries() []struct{ Key, Value string } {
	keys := m.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return !strings.Contains(keys[i], ".") && strings.Contains(keys[j], ".")
	})
	entries := make([]struct{ Key, Value string }, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, struct{ Key, Value string }{k, m.values[k]})
	}
	return entries
}
