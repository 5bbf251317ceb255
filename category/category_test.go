package category

import (
	"errors"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestOf(t *testing.T) {
	cases := []struct {
		r    rune
		want Category
	}{
		{'A', Lu},
		{'z', Ll},
		{'5', Nd},
		{' ', Zs},
		{'\t', Cc},
		{'_', Pc},
		{'-', Pd},
		{'(', Ps},
		{')', Pe},
		{'$', Sc},
		{'+', Sm},
		{'^', Sk},
		{'!', Po},
		{'\u01C5', Lt},
		{'\u02B0', Lm},
		{'\u65E5', Lo},
		{'\u0301', Mn},
		{'\u20DD', Me},
		{'\u0903', Mc},
		{'\u216B', Nl},
		{'\u00BD', No},
		{'\u00AB', Pi},
		{'\u00BB', Pf},
		{'\u00A9', So},
		{'\u00AD', Cf},
		{'\u2028', Zl},
		{'\u2029', Zp},
		{'\uE000', Co},
		{0xD800, Cs},
		{0x0378, Cn},
		{0x10FFFF, Cn},
		{-1, Cn},
	}
	for _, c := range cases {
		if got := Of(c.r); got != c.want {
			t.Errorf("Of(%U) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestAbbreviations(t *testing.T) {
	all := All()
	if len(all) != 30 {
		t.Fatalf("got %d categories, want 30", len(all))
	}
	seen := map[string]bool{}
	for _, c := range all {
		s := c.String()
		if len(s) != 2 {
			t.Errorf("abbreviation %q is not two characters", s)
		}
		if seen[s] {
			t.Errorf("duplicate abbreviation %q", s)
		}
		seen[s] = true
		if c.Name() == "" {
			t.Errorf("%v has no name", c)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		selector string
		want     []Category
	}{
		{"C", []Category{Cc, Cf, Cn, Co, Cs}},
		{"C*", []Category{Cc, Cf, Cn, Co, Cs}},
		{"c", []Category{Cc, Cf, Cn, Co, Cs}},
		{"L", []Category{Ll, Lm, Lo, Lt, Lu}},
		{"M*", []Category{Mc, Me, Mn}},
		{"N", []Category{Nd, Nl, No}},
		{"P", []Category{Pc, Pd, Pe, Pf, Pi, Po, Ps}},
		{"S", []Category{Sc, Sk, Sm, So}},
		{"Z", []Category{Zl, Zp, Zs}},
		{"Lu", []Category{Lu}},
		{"lu", []Category{Lu}},
		{"ND", []Category{Nd}},
	}
	for _, c := range cases {
		set, err := Parse(c.selector)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.selector, err)
		}
		if diff, equal := messagediff.PrettyDiff(c.want, set.Categories()); !equal {
			t.Errorf("Parse(%q) differs:\n%s", c.selector, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, sel := range []string{"", "Lul", "Q", "Lx", "*", "**", "L+"} {
		_, err := Parse(sel)
		if !errors.Is(err, ErrInvalidSelector) {
			t.Errorf("Parse(%q) = %v, want ErrInvalidSelector", sel, err)
		}
	}
}

func TestMatches(t *testing.T) {
	ok, err := Matches(Lu, "L")
	if err != nil || !ok {
		t.Fatalf("Matches(Lu, L) = %v, %v", ok, err)
	}
	ok, err = Matches(Lu, "Ll")
	if err != nil || ok {
		t.Fatalf("Matches(Lu, Ll) = %v, %v", ok, err)
	}
	if _, err := Matches(Category(99), "L"); !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("Matches with a bad abbreviation: %v", err)
	}
	if _, err := Matches(Lu, "Lul"); !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("Matches with a long selector: %v", err)
	}
}

func TestSet(t *testing.T) {
	s := NewSet(Lu, Nd, Lu)
	if s.Len() != 2 || !s.Contains(Lu) || !s.Contains(Nd) || s.Contains(Ll) {
		t.Fatalf("unexpected set %v", s)
	}
	if got := s.String(); got != "{Lu Nd}" {
		t.Fatalf("String() = %q", got)
	}
	if s.With(Category(200)) != s {
		t.Fatal("out of range category changed the set")
	}
}
