package rules

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"runematch/category"
	"runematch/escape"
)

type groupKind uint8

const (
	groupNone     groupKind = iota
	groupSingle             // one code point
	groupRange              // lo..hi inclusive
	groupCategory           // general category set
)

// Group is a predicate over a single code point: one code point, an
// inclusive range, or a set of Unicode general categories. The zero Group
// contains nothing.
type Group struct {
	kind     groupKind
	lo, hi   rune
	nfc      string // groupSingle: NFC form of lo
	selector string
	negated  bool
	set      category.Set
}

// Single returns the group holding r and everything canonically
// equivalent to it.
func Single(r rune) (Group, error) {
	if err := checkCodePoint(r); err != nil {
		return Group{}, err
	}
	return Group{kind: groupSingle, lo: r, hi: r, nfc: norm.NFC.String(string(r))}, nil
}

// Range returns the group holding lo through hi.
func Range(lo, hi rune) (Group, error) {
	if err := checkCodePoint(lo); err != nil {
		return Group{}, err
	}
	if err := checkCodePoint(hi); err != nil {
		return Group{}, err
	}
	if lo > hi {
		return Group{}, fmt.Errorf("%w: range start %U after end %U", ErrOutOfRange, lo, hi)
	}
	return Group{kind: groupRange, lo: lo, hi: hi}, nil
}

// Category returns the group of code points whose general category is
// selected by selector, or, when negated, of all others.
func Category(selector string, negated bool) (Group, error) {
	set, err := category.Parse(selector)
	if err != nil {
		return Group{}, err
	}
	return Group{kind: groupCategory, selector: selector, negated: negated, set: set}, nil
}

// Contains reports whether r belongs to g.
func (g Group) Contains(r rune) bool {
	switch g.kind {
	case groupNone:
		return false
	case groupSingle:
		return r == g.lo || norm.NFC.String(string(r)) == g.nfc
	case groupRange:
		return g.lo <= r && r <= g.hi
	case groupCategory:
		return g.set.Contains(category.Of(r)) != g.negated
	}
	panic(fmt.Sprintf("rules: unknown group kind %d", g.kind))
}

func (g Group) String() string {
	switch g.kind {
	case groupSingle:
		return escapeClassRune(g.lo)
	case groupRange:
		return escapeClassRune(g.lo) + "-" + escapeClassRune(g.hi)
	case groupCategory:
		if g.negated {
			return `\P{` + g.selector + `}`
		}
		return `\p{` + g.selector + `}`
	}
	return ""
}

// escapeClassRune escapes the runes that are special between brackets.
func escapeClassRune(r rune) string {
	switch r {
	case '-', ']':
		return `\` + string(r)
	default:
		return escape.Rune(r)
	}
}
