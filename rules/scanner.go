package rules

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrOutOfRange is wrapped by constructor errors for code points outside
	// [0, 0x10FFFF] and for invalid repetition bounds.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrIndexOutOfRange is wrapped by DecodeAt errors.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// DecodeAt returns the code point starting at byte offset index of text and
// the number of bytes it occupies. index must be the first byte of an
// encoded code point. Invalid UTF-8 decodes as utf8.RuneError with width 1.
func DecodeAt(text string, index int) (rune, int, error) {
	if index < 0 || index >= len(text) {
		return 0, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(text))
	}
	if !utf8.RuneStart(text[index]) {
		return 0, 0, fmt.Errorf("%w: %d is inside an encoded code point", ErrIndexOutOfRange, index)
	}
	r, size := utf8.DecodeRuneInString(text[index:])
	return r, size, nil
}

func checkCodePoint(r rune) error {
	if r < 0 || r > unicode.MaxRune {
		return fmt.Errorf("%w: code point %#x not in [0, 0x10FFFF]", ErrOutOfRange, r)
	}
	return nil
}
