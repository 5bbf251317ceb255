// Package escape converts between raw text and its backslash-escaped
// literal form.
//
// The escaped form writes NUL, backspace, tab, newline, vertical tab, form
// feed, carriage return, backslash and both quote characters as two-rune
// mnemonics, other control characters as \uXXXX and code points above
// U+FFFF as \u{X...}. Unescape additionally accepts \xXX, the uppercase
// introducers \X and \U, and UTF-16 surrogate pairs written as two \uXXXX
// escapes.
package escape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrFormat is matched by every error returned from Unescape.
var ErrFormat = errors.New("malformed escape sequence")

// FormatError reports a malformed escape. Index is the byte offset of the
// backslash that introduced it.
type FormatError struct {
	Index  int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("escape at offset %d: %s", e.Index, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// raw rune -> mnemonic letter
var mnemonic = map[rune]byte{
	0x00: '0',
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\v': 'v',
	'\f': 'f',
	'\r': 'r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// mnemonic letter -> raw rune
var literal = map[rune]rune{
	'0':  0x00,
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'v':  '\v',
	'f':  '\f',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// Escape returns the escaped literal form of s.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		writeRune(&b, r)
	}
	return b.String()
}

// Rune returns the escaped literal form of a single code point.
func Rune(r rune) string {
	var b strings.Builder
	writeRune(&b, r)
	return b.String()
}

func writeRune(b *strings.Builder, r rune) {
	if c, ok := mnemonic[r]; ok {
		b.WriteByte('\\')
		b.WriteByte(c)
		return
	}
	switch {
	case r > 0xFFFF:
		fmt.Fprintf(b, `\u{%X}`, r)
	case unicode.IsControl(r):
		fmt.Fprintf(b, `\u%04X`, r)
	default:
		b.WriteRune(r)
	}
}

// Unescape decodes every escape sequence in s. It fails on the first
// sequence that is unknown, truncated or names something that is not a
// Unicode scalar value.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '\\' {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		v, n, err := decodeEscape(s, i)
		if err != nil {
			return "", err
		}
		b.WriteRune(v)
		i += n
	}
	return b.String(), nil
}

// decodeEscape decodes the sequence whose backslash sits at s[at] and
// returns the rune and the number of bytes the sequence spans.
func decodeEscape(s string, at int) (rune, int, error) {
	i := at + 1
	if i >= len(s) {
		return 0, 0, &FormatError{Index: at, Reason: "trailing backslash"}
	}
	c, size := utf8.DecodeRuneInString(s[i:])
	i += size
	if r, ok := literal[c]; ok {
		return r, i - at, nil
	}

	switch c {
	case 'x', 'X':
		v, err := hexDigits(s, at, i, 2)
		if err != nil {
			return 0, 0, err
		}
		return rune(v), i + 2 - at, nil
	case 'u', 'U':
		if i < len(s) && s[i] == '{' {
			return decodeBraced(s, at, i+1)
		}
		v, err := hexDigits(s, at, i, 4)
		if err != nil {
			return 0, 0, err
		}
		if r, ok := lowSurrogate(s, i+4, v); ok {
			return r, i + 10 - at, nil
		}
		r, err := scalar(at, v)
		if err != nil {
			return 0, 0, err
		}
		return r, i + 4 - at, nil
	}
	return 0, 0, &FormatError{Index: at, Reason: fmt.Sprintf("unknown escape %q", `\`+string(c))}
}

// lowSurrogate combines the high surrogate hi with a \uXXXX low surrogate
// starting at s[next].
func lowSurrogate(s string, next int, hi uint64) (rune, bool) {
	if hi < 0xD800 || hi > 0xDBFF || next+6 > len(s) || s[next] != '\\' || s[next+1] != 'u' && s[next+1] != 'U' {
		return 0, false
	}
	lo, err := hexDigits(s, next, next+2, 4)
	if err != nil || lo < 0xDC00 || lo > 0xDFFF {
		return 0, false
	}
	return utf16.DecodeRune(rune(hi), rune(lo)), true
}

// decodeBraced reads the digits of \u{...} starting at s[start].
func decodeBraced(s string, at, start int) (rune, int, error) {
	end := start
	for ; end < len(s) && s[end] != '}'; end++ {
		if !isHex(s[end]) {
			return 0, 0, &FormatError{Index: at, Reason: fmt.Sprintf(`non-hex digit %q in \u{...}`, s[end])}
		}
	}
	if end >= len(s) {
		return 0, 0, &FormatError{Index: at, Reason: `unterminated \u{...}`}
	}
	digits := s[start:end]
	if len(digits) < 2 || len(digits) > 6 {
		return 0, 0, &FormatError{Index: at, Reason: fmt.Sprintf(`\u{...} needs 2 to 6 hex digits, got %d`, len(digits))}
	}
	v, _ := strconv.ParseUint(digits, 16, 32)
	r, err := scalar(at, v)
	if err != nil {
		return 0, 0, err
	}
	return r, end + 1 - at, nil
}

func hexDigits(s string, at, start, n int) (uint64, error) {
	if start+n > len(s) {
		return 0, &FormatError{Index: at, Reason: fmt.Sprintf("expected %d hex digits", n)}
	}
	digits := s[start : start+n]
	for i := 0; i < n; i++ {
		if !isHex(digits[i]) {
			return 0, &FormatError{Index: at, Reason: fmt.Sprintf("expected %d hex digits, got %q", n, digits)}
		}
	}
	v, _ := strconv.ParseUint(digits, 16, 32)
	return v, nil
}

func scalar(at int, v uint64) (rune, error) {
	if v > unicode.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, &FormatError{Index: at, Reason: fmt.Sprintf("U+%04X is not a Unicode scalar value", v)}
	}
	return rune(v), nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
