package rules

import "unicode/utf8"

// Match is the byte span text[Start:End] matched by a rule.
type Match struct {
	Start, End int
}

// FindAll returns the leftmost non-overlapping non-empty matches of r in
// text, trying r at every code point boundary.
func (r Rule) FindAll(text string) []Match {
	var out []Match
	for i := 0; i < len(text); {
		n, ok := r.TryMatch(text, i)
		if !ok || n == 0 {
			_, sz := utf8.DecodeRuneInString(text[i:])
			i += sz
			continue
		}
		out = append(out, Match{Start: i, End: i + n})
		i += n
	}
	return out
}
