package lexer

import (
	"errors"

	"github.com/vitte-lang/vitlc/internal/token"
)

// DecodeError reports a malformed escape sequence found while decoding
// a string or character literal's raw slice.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string { return e.Message }

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func decodeEscape(body []byte, i int) (b byte, consumed int, err error) {
	if i >= len(body) {
		return 0, 0, &DecodeError{"dangling escape"}
	}
	switch body[i] {
	case '\\':
		return '\\', 1, nil
	case '"':
		return '"', 1, nil
	case '\'':
		return '\'', 1, nil
	case 'n':
		return '\n', 1, nil
	case 'r':
		return '\r', 1, nil
	case 't':
		return '\t', 1, nil
	case '0':
		return 0, 1, nil
	case 'x':
		if i+2 >= len(body) {
			return 0, 0, &DecodeError{"\\x escape requires exactly two hex digits"}
		}
		hi, ok1 := hexVal(body[i+1])
		lo, ok2 := hexVal(body[i+2])
		if !ok1 || !ok2 {
			return 0, 0, &DecodeError{"\\x escape requires exactly two hex digits"}
		}
		return hi<<4 | lo, 3, nil
	default:
		return 0, 0, &DecodeError{"invalid escape sequence"}
	}
}

// DecodeString runs the unescape state machine over tok's raw slice
// (quotes included) and appends the decoded bytes to out, returning
// the extended slice.
func DecodeString(tok token.Token, buf []byte, out []byte) ([]byte, error) {
	if tok.Kind != token.STRING {
		return out, errors.New("not a string token")
	}
	raw := buf[tok.Start:tok.End]
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return out, &DecodeError{"malformed string literal"}
	}
	body := raw[1 : len(raw)-1]
	for i := 0; i < len(body); {
		c := body[i]
		if c == '\\' {
			b, n, err := decodeEscape(body, i+1)
			if err != nil {
				return out, err
			}
			out = append(out, b)
			i += 1 + n
			continue
		}
		if c < 0x20 {
			return out, &DecodeError{"invalid control character in string literal"}
		}
		out = append(out, c)
		i++
	}
	return out, nil
}

// DecodeChar decodes tok's raw slice (quotes included) to its single
// byte value. The decoded value is always computed on demand from the
// raw slice; the token itself never caches it, per spec.md's fix for
// the source codebase's marker-only character literal.
func DecodeChar(tok token.Token, buf []byte) (byte, error) {
	if tok.Kind != token.CHAR {
		return 0, errors.New("not a char token")
	}
	raw := buf[tok.Start:tok.End]
	if len(raw) < 3 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		return 0, &DecodeError{"malformed character literal"}
	}
	body := raw[1 : len(raw)-1]
	if len(body) == 0 {
		return 0, &DecodeError{"empty character literal"}
	}
	if body[0] == '\\' {
		b, n, err := decodeEscape(body, 1)
		if err != nil {
			return 0, err
		}
		if 1+n != len(body) {
			return 0, &DecodeError{"character literal must decode to exactly one byte"}
		}
		return b, nil
	}
	if len(body) != 1 {
		return 0, &DecodeError{"character literal must decode to exactly one byte"}
	}
	if body[0] < 0x20 {
		return 0, &DecodeError{"invalid control character in character literal"}
	}
	return body[0], nil
}
