package config

import (
	"os"
	"strings"
)

// lookupEnv is the raw (non-prefixed) process-environment lookup used
// by ${KEY} expansion's second fallback tier.
func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// LoadEnv merges process environment variables whose name matches
// prefix (case-insensitive) into m. "APP_DB__HOST" under prefix "APP_"
// becomes the canonical key "db.host": the prefix is stripped, "__"
// maps to ".", single "_" is preserved, and the remainder is
// lowercased.
func (m *Map) LoadEnv(prefix string) {
	upperPrefix := strings.ToUpper(prefix)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if !strings.HasPrefix(strings.ToUpper(name), upperPrefix) {
			continue
		}
		rest := name[len(prefix):]
		key := envKeyToCanonical(rest)
		if key == "" {
			continue
		}
		m.set(key, value)
	}
}

func envKeyToCanonical(rest string) string {
	rest = strings.ReplaceAll(rest, "__", ".")
	return strings.ToLower(rest)
}
