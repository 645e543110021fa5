package config

import "strings"

// LoadArgv merges a list of `--k=v`, `--section.k=v`, `--flag`, and
// `--no-flag` style arguments into m. `--flag` sets "1"; `--no-flag`
// sets "0"; any argument not starting with "--" is ignored (the CLI
// layer is responsible for classifying positional arguments).
func (m *Map) LoadArgv(args []string) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		body := arg[2:]
		if key, value, ok := strings.Cut(body, "="); ok {
			m.set(key, value)
			continue
		}
		if strings.HasPrefix(body, "no-") {
			m.set(body[len("no-"):], "0")
			continue
		}
		m.set(body, "1")
	}
}
