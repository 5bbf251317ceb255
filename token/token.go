// Package token defines the record a tokenizer produces from rule matches
// and the contract such a tokenizer uses to hold rules of any shape.
package token

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"runematch/escape"
)

// Triable is anything that can be tried at a byte offset of a text and
// report how many bytes it matched.
type Triable interface {
	TryMatch(text string, index int) (int, bool)
}

// Token is a labelled span of input. Line and Column are 1-based; Column
// counts code points.
type Token struct {
	Line   int
	Column int
	Type   string
	Value  string
	Skip   bool // whitespace, comments and the like
}

// FromMatch returns the token for text[start:end]. Like slicing, it panics
// unless 0 <= start <= end <= len(text); use Try to tokenize a rule match
// without that precondition.
func FromMatch(text string, start, end int, typ string, skip bool) Token {
	before := text[:start]
	line := strings.Count(before, "\n") + 1
	if nl := strings.LastIndexByte(before, '\n'); nl >= 0 {
		before = before[nl+1:]
	}
	return Token{
		Line:   line,
		Column: utf8.RuneCountInString(before) + 1,
		Type:   typ,
		Value:  text[start:end],
		Skip:   skip,
	}
}

// Try tries t at index and, on success, returns the token for the match.
func Try(t Triable, text string, index int, typ string, skip bool) (Token, bool) {
	n, ok := t.TryMatch(text, index)
	if !ok {
		return Token{}, false
	}
	return FromMatch(text, index, index+n, typ, skip), true
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s '%s'", t.Line, t.Column, t.Type, escape.Escape(t.Value))
}
