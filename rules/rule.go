// Package rules implements composable match rules over Unicode text:
// literals, character-group alternations, sequences and quantified
// repetitions.
//
// A Rule is tried at a byte offset and reports how many bytes it matched.
// Matching is deterministic and never backtracks: sequences thread a
// cursor through their children, quantifiers are greedy, and the only
// choice is the first-match-wins alternation of character groups.
//
// Rules and groups are immutable values and safe for concurrent use.
package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"runematch/escape"
)

type ruleKind uint8

const (
	ruleNone ruleKind = iota
	ruleLiteral
	ruleOneOf
	ruleSequence
	ruleQuantified
)

// Unbounded is the maximum of a quantifier without an upper bound.
const Unbounded = -1

// Rule is a node of a match rule tree. The zero Rule matches nothing.
type Rule struct {
	kind ruleKind

	text   string   // ruleLiteral
	fold   bool     // ruleLiteral: case-insensitive
	folded []string // ruleLiteral: case-folded runes of text

	groups []Group // ruleOneOf

	children []Rule // ruleSequence; ruleQuantified holds exactly one
	min, max int    // ruleQuantified
}

// Literal returns the rule matching exactly s.
func Literal(s string) Rule {
	return Rule{kind: ruleLiteral, text: s}
}

// LiteralFold returns the rule matching s under Unicode case folding.
func LiteralFold(s string) Rule {
	caser := cases.Fold()
	folded := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		folded = append(folded, caser.String(string(r)))
	}
	return Rule{kind: ruleLiteral, text: s, fold: true, folded: folded}
}

// OneOf returns the rule matching one code point contained by any of
// groups. Groups are tried in order.
func OneOf(groups ...Group) Rule {
	return Rule{kind: ruleOneOf, groups: slices.Clone(groups)}
}

// Sequence returns the rule matching children one after another.
func Sequence(children ...Rule) Rule {
	return Rule{kind: ruleSequence, children: slices.Clone(children)}
}

// Quantify returns the rule matching r at least lo and at most hi times.
// hi may be Unbounded.
func Quantify(r Rule, lo, hi int) (Rule, error) {
	if lo < 0 {
		return Rule{}, fmt.Errorf("%w: minimum %d is negative", ErrOutOfRange, lo)
	}
	if hi != Unbounded && hi < lo {
		return Rule{}, fmt.Errorf("%w: maximum %d is less than minimum %d", ErrOutOfRange, hi, lo)
	}
	return Rule{kind: ruleQuantified, children: []Rule{r}, min: lo, max: hi}, nil
}

// Optional matches r zero or one time.
func Optional(r Rule) Rule { return Rule{kind: ruleQuantified, children: []Rule{r}, min: 0, max: 1} }

// ZeroOrMany matches r any number of times.
func ZeroOrMany(r Rule) Rule { return Rule{kind: ruleQuantified, children: []Rule{r}, min: 0, max: Unbounded} }

// OneOrMany matches r at least once.
func OneOrMany(r Rule) Rule { return Rule{kind: ruleQuantified, children: []Rule{r}, min: 1, max: Unbounded} }

// Exactly matches r n times.
func Exactly(r Rule, n int) (Rule, error) { return Quantify(r, n, n) }

// AtLeast matches r n or more times.
func AtLeast(r Rule, n int) (Rule, error) { return Quantify(r, n, Unbounded) }

// AtMost matches r up to n times.
func AtMost(r Rule, n int) (Rule, error) { return Quantify(r, 0, n) }

// TryMatch tries r at byte offset index of text and returns the length of
// the match in bytes. An index outside the text or inside an encoded code
// point never matches.
func (r Rule) TryMatch(text string, index int) (int, bool) {
	if index < 0 || index > len(text) {
		return 0, false
	}
	if index < len(text) && !utf8.RuneStart(text[index]) {
		return 0, false
	}
	return r.match(text, index)
}

func (r Rule) match(text string, at int) (int, bool) {
	switch r.kind {
	case ruleNone:
		return 0, false
	case ruleLiteral:
		return r.matchLiteral(text, at)
	case ruleOneOf:
		c, size, err := DecodeAt(text, at)
		if err != nil {
			return 0, false
		}
		for _, g := range r.groups {
			if g.Contains(c) {
				return size, true
			}
		}
		return 0, false
	case ruleSequence:
		pos := at
		for _, child := range r.children {
			n, ok := child.match(text, pos)
			if !ok {
				return 0, false
			}
			pos += n
		}
		return pos - at, true
	case ruleQuantified:
		return r.matchRepeat(text, at)
	}
	panic(fmt.Sprintf("rules: unknown rule kind %d", r.kind))
}

func (r Rule) matchLiteral(text string, at int) (int, bool) {
	if !r.fold {
		if strings.HasPrefix(text[at:], r.text) {
			return len(r.text), true
		}
		return 0, false
	}

	// One caser per call: transformers carry state.
	caser := cases.Fold()
	pos := at
	i := 0
	for _, lr := range r.text {
		if pos >= len(text) {
			return 0, false
		}
		tr, size := utf8.DecodeRuneInString(text[pos:])
		if tr != lr && caser.String(string(tr)) != r.folded[i] {
			return 0, false
		}
		pos += size
		i++
	}
	return pos - at, true
}

// matchRepeat takes the mandatory repetitions, then as many more as the
// child allows. A zero-length optional repetition ends the loop.
func (r Rule) matchRepeat(text string, at int) (int, bool) {
	child := r.children[0]
	pos, count := at, 0
	for ; count < r.min; count++ {
		n, ok := child.match(text, pos)
		if !ok {
			return 0, false
		}
		pos += n
	}
	for r.max == Unbounded || count < r.max {
		n, ok := child.match(text, pos)
		if !ok {
			break
		}
		pos += n
		count++
		if n == 0 {
			break
		}
	}
	return pos - at, true
}

// String renders r in pattern notation: 'literal' (with an i suffix when
// case-insensitive), [groups], space-separated sequences and quantifier
// suffixes.
func (r Rule) String() string {
	switch r.kind {
	case ruleLiteral:
		s := "'" + escape.Escape(r.text) + "'"
		if r.fold {
			s += "i"
		}
		return s
	case ruleOneOf:
		var b strings.Builder
		b.WriteByte('[')
		for _, g := range r.groups {
			b.WriteString(g.String())
		}
		b.WriteByte(']')
		return b.String()
	case ruleSequence:
		if len(r.children) == 0 {
			return "()"
		}
		parts := make([]string, len(r.children))
		for i, child := range r.children {
			if child.kind == ruleSequence {
				parts[i] = child.parenthesized()
			} else {
				parts[i] = child.String()
			}
		}
		return strings.Join(parts, " ")
	case ruleQuantified:
		child := r.children[0]
		inner := child.String()
		if child.kind == ruleSequence || child.kind == ruleQuantified {
			inner = child.parenthesized()
		}
		return inner + quantifierSuffix(r.min, r.max)
	}
	return ""
}

func (r Rule) parenthesized() string {
	if r.kind == ruleSequence && len(r.children) == 0 {
		return "()"
	}
	return "(" + r.String() + ")"
}

func quantifierSuffix(lo, hi int) string {
	switch {
	case lo == 0 && hi == 1:
		return "?"
	case lo == 1 && hi == 1:
		return ""
	case lo == 0 && hi == Unbounded:
		return "*"
	case lo == 1 && hi == Unbounded:
		return "+"
	case lo == 0 && hi > 1:
		return fmt.Sprintf("{,%d}", hi)
	case lo > 1 && hi == Unbounded:
		return fmt.Sprintf("{%d,}", lo)
	case lo == hi:
		return fmt.Sprintf("{%d}", lo)
	}
	return fmt.Sprintf("{%d,%d}", lo, hi)
}
