// Package category classifies code points by Unicode general category and
// expands category selectors such as "L", "N*" or "Lu".
package category

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidSelector is wrapped by every selector error.
var ErrInvalidSelector = errors.New("invalid category selector")

// Category is a Unicode general category.
type Category uint8

// The constants are named after the two-letter abbreviations used by the
// Unicode character database, like the tables of package unicode.
const (
	Cc Category = iota // control
	Cf                 // format
	Cn                 // unassigned
	Co                 // private use
	Cs                 // surrogate
	Ll                 // lowercase letter
	Lm                 // modifier letter
	Lo                 // other letter
	Lt                 // titlecase letter
	Lu                 // uppercase letter
	Mc                 // spacing mark
	Me                 // enclosing mark
	Mn                 // nonspacing mark
	Nd                 // decimal number
	Nl                 // letter number
	No                 // other number
	Pc                 // connector punctuation
	Pd                 // dash punctuation
	Pe                 // close punctuation
	Pf                 // final punctuation
	Pi                 // initial punctuation
	Po                 // other punctuation
	Ps                 // open punctuation
	Sc                 // currency symbol
	Sk                 // modifier symbol
	Sm                 // math symbol
	So                 // other symbol
	Zl                 // line separator
	Zp                 // paragraph separator
	Zs                 // space separator

	numCategories
)

type info struct {
	abbr  string
	name  string
	table *unicode.RangeTable
}

// Cn has no table: it is whatever no other table claims.
var infos = [numCategories]info{
	Cc: {"Cc", "Control", unicode.Cc},
	Cf: {"Cf", "Format", unicode.Cf},
	Cn: {"Cn", "Unassigned", nil},
	Co: {"Co", "PrivateUse", unicode.Co},
	Cs: {"Cs", "Surrogate", unicode.Cs},
	Ll: {"Ll", "LowercaseLetter", unicode.Ll},
	Lm: {"Lm", "ModifierLetter", unicode.Lm},
	Lo: {"Lo", "OtherLetter", unicode.Lo},
	Lt: {"Lt", "TitlecaseLetter", unicode.Lt},
	Lu: {"Lu", "UppercaseLetter", unicode.Lu},
	Mc: {"Mc", "SpacingMark", unicode.Mc},
	Me: {"Me", "EnclosingMark", unicode.Me},
	Mn: {"Mn", "NonspacingMark", unicode.Mn},
	Nd: {"Nd", "DecimalNumber", unicode.Nd},
	Nl: {"Nl", "LetterNumber", unicode.Nl},
	No: {"No", "OtherNumber", unicode.No},
	Pc: {"Pc", "ConnectorPunctuation", unicode.Pc},
	Pd: {"Pd", "DashPunctuation", unicode.Pd},
	Pe: {"Pe", "ClosePunctuation", unicode.Pe},
	Pf: {"Pf", "FinalPunctuation", unicode.Pf},
	Pi: {"Pi", "InitialPunctuation", unicode.Pi},
	Po: {"Po", "OtherPunctuation", unicode.Po},
	Ps: {"Ps", "OpenPunctuation", unicode.Ps},
	Sc: {"Sc", "CurrencySymbol", unicode.Sc},
	Sk: {"Sk", "ModifierSymbol", unicode.Sk},
	Sm: {"Sm", "MathSymbol", unicode.Sm},
	So: {"So", "OtherSymbol", unicode.So},
	Zl: {"Zl", "LineSeparator", unicode.Zl},
	Zp: {"Zp", "ParagraphSeparator", unicode.Zp},
	Zs: {"Zs", "SpaceSeparator", unicode.Zs},
}

var ascii [unicode.MaxASCII + 1]Category

func init() {
	for i := range ascii {
		ascii[i] = lookup(rune(i))
	}
}

// All returns every general category in declaration order.
func All() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Of returns the general category of r.
func Of(r rune) Category {
	if r >= 0 && r <= unicode.MaxASCII {
		return ascii[r]
	}
	return lookup(r)
}

func lookup(r rune) Category {
	if r < 0 || r > unicode.MaxRune {
		return Cn
	}
	for c := range infos {
		if t := infos[c].table; t != nil && unicode.Is(t, r) {
			return Category(c)
		}
	}
	return Cn
}

// String returns the two-letter abbreviation of c.
func (c Category) String() string {
	if c < numCategories {
		return infos[c].abbr
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Name returns the long name of c, e.g. "UppercaseLetter".
func (c Category) Name() string {
	if c < numCategories {
		return infos[c].name
	}
	return c.String()
}

// Parse expands a selector into the set of categories it denotes.
// Selectors are case-insensitive: one letter (optionally followed by '*')
// selects a whole major class, two letters select one category.
func Parse(selector string) (Set, error) {
	if n := len([]rune(selector)); n != 1 && n != 2 {
		return 0, fmt.Errorf("%w: %q must be one or two characters", ErrInvalidSelector, selector)
	}
	var set Set
	for c := Category(0); c < numCategories; c++ {
		ok, err := Matches(c, selector)
		if err != nil {
			return 0, err
		}
		if ok {
			set = set.With(c)
		}
	}
	if set.Len() == 0 {
		return 0, fmt.Errorf("%w: %q names no general category", ErrInvalidSelector, selector)
	}
	return set, nil
}

// Matches reports whether c is selected by selector.
func Matches(c Category, selector string) (bool, error) {
	abbr := []rune(c.String())
	if len(abbr) != 2 {
		return false, fmt.Errorf("%w: abbreviation %q of category %d is not two characters", ErrInvalidSelector, string(abbr), uint8(c))
	}
	sel := []rune(selector)
	switch {
	case len(sel) == 1, len(sel) == 2 && sel[1] == '*':
		return sameLetter(sel[0], abbr[0]), nil
	case len(sel) == 2:
		return sameLetter(sel[0], abbr[0]) && sameLetter(sel[1], abbr[1]), nil
	}
	return false, fmt.Errorf("%w: %q must be one or two characters", ErrInvalidSelector, selector)
}

func sameLetter(a, b rune) bool {
	return unicode.ToUpper(a) == unicode.ToUpper(b)
}

// Set is an immutable set of general categories.
type Set uint32

// NewSet returns the set holding cs.
func NewSet(cs ...Category) Set {
	var s Set
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// With returns s with c added.
func (s Set) With(c Category) Set {
	if c >= numCategories {
		return s
	}
	return s | 1<<c
}

func (s Set) Contains(c Category) bool {
	return c < numCategories && s&(1<<c) != 0
}

func (s Set) Len() int {
	n := 0
	for c := Category(0); c < numCategories; c++ {
		if s.Contains(c) {
			n++
		}
	}
	return n
}

// Categories lists the members of s in declaration order.
func (s Set) Categories() []Category {
	var out []Category
	for c := Category(0); c < numCategories; c++ {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, c := range s.Categories() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
