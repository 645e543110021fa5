package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Bool parses key as a boolean: 1/0, true/false, yes/no, on/off
// (case-insensitive), with a numeric fallback where any non-zero
// value is true.
func (m *Map) Bool(key string) (bool, bool, error) {
	raw, ok := m.Raw(key)
	if !ok {
		return false, false, nil
	}
	v, err := ParseBool(raw)
	if err != nil {
		return false, true, err
	}
	return v, true, nil
}

// ParseBool implements spec.md §4.4's boolean grammar directly, so it
// can also validate CLI flag values (-O, --trace, ...) without a Map.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64); err == nil {
		return n != 0, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

// Int64 parses key as a signed 64-bit integer: optional sign, optional
// 0x/0b base prefix, '_' separators ignored, trailing whitespace
// tolerated.
func (m *Map) Int64(key string) (int64, bool, error) {
	raw, ok := m.Raw(key)
	if !ok {
		return 0, false, nil
	}
	v, err := ParseInt64(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// ParseInt64 implements spec.md §4.4's integer grammar.
func ParseInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "_", "")
	neg := false
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base = 16
		s = s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		base = 2
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %w", err)
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}

// unitMultipliers maps the decimal and binary unit suffixes spec.md's
// float grammar recognizes to their multiplier.
var unitMultipliers = map[string]float64{
	"k": 1e3, "m": 1e6, "g": 1e9, "t": 1e12,
	"ki": 1024, "mi": 1024 * 1024, "gi": 1024 * 1024 * 1024, "ti": 1024 * 1024 * 1024 * 1024,
}

// Float64 parses key as a float, with an optional unit suffix (k m g t
// decimal, Ki Mi Gi Ti binary).
func (m *Map) Float64(key string) (float64, bool, error) {
	raw, ok := m.Raw(key)
	if !ok {
		return 0, false, nil
	}
	v, err := ParseFloat64(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// ParseFloat64 implements spec.md §4.4's float grammar.
func ParseFloat64(s string) (float64, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, suffix := range []string{"ki", "mi", "gi", "ti", "k", "m", "g", "t"} {
		if strings.HasSuffix(lower, suffix) {
			numPart := strings.TrimSpace(s[:len(s)-len(suffix)])
			v, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return 0, fmt.Errorf("not a float: %w", err)
			}
			return v * unitMultipliers[suffix], nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a float: %w", err)
	}
	return v, nil
}

// String returns key's raw value with ${...} expansion applied, or
// def if key is not set.
func (m *Map) String(key, def string) string {
	raw, ok := m.Raw(key)
	if !ok {
		return def
	}
	return m.Expand(raw)
}

// StringLen returns the byte length of key's expanded value.
func (m *Map) StringLen(key string) int {
	return len(m.String(key, ""))
}
