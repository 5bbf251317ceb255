package rules

import (
	"errors"
	"testing"

	"runematch/category"
)

func TestDecodeAt(t *testing.T) {
	text := "aé😀"
	cases := []struct {
		index int
		r     rune
		width int
	}{
		{0, 'a', 1},
		{1, 'é', 2},
		{3, '😀', 4},
	}
	for _, c := range cases {
		r, w, err := DecodeAt(text, c.index)
		if err != nil || r != c.r || w != c.width {
			t.Errorf("DecodeAt(%d) = %U, %d, %v; want %U, %d", c.index, r, w, err, c.r, c.width)
		}
	}
	// 2 is the second byte of é, 4 is inside the emoji.
	for _, bad := range []int{-1, 2, 4, len(text)} {
		if _, _, err := DecodeAt(text, bad); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("DecodeAt(%d): %v, want ErrIndexOutOfRange", bad, err)
		}
	}
}

func TestSingle(t *testing.T) {
	g := Must(Single('a'))
	if !g.Contains('a') || g.Contains('b') {
		t.Fatal("Single('a') membership wrong")
	}
	// ANGSTROM SIGN is canonically equivalent to LATIN CAPITAL A WITH RING.
	aring := Must(Single('\u00C5'))
	if !aring.Contains('\u212B') {
		t.Fatal("Single(U+00C5) does not contain U+212B")
	}
	angstrom := Must(Single('\u212B'))
	if !angstrom.Contains('\u00C5') {
		t.Fatal("Single(U+212B) does not contain U+00C5")
	}
	if aring.Contains('A') {
		t.Fatal("Single(U+00C5) contains A")
	}
}

func TestRangeMembership(t *testing.T) {
	for _, rg := range [][2]rune{{'a', 'f'}, {'0', '0'}, {0x1F600, 0x1F64F}, {0, 0x10FFFF}} {
		a, b := rg[0], rg[1]
		g := Must(Range(a, b))
		for _, c := range []rune{a, b, a + 1, b - 1} {
			if c >= a && c <= b && !g.Contains(c) {
				t.Errorf("[%U-%U] does not contain %U", a, b, c)
			}
		}
		if a > 0 && g.Contains(a-1) {
			t.Errorf("[%U-%U] contains %U", a, b, a-1)
		}
		if g.Contains(b + 1) && b < 0x10FFFF {
			t.Errorf("[%U-%U] contains %U", a, b, b+1)
		}
	}
}

func TestCategoryGroup(t *testing.T) {
	notLetter := Must(Category("L", true))
	if !notLetter.Contains('7') {
		t.Error(`\P{L} does not contain '7'`)
	}
	if notLetter.Contains('q') {
		t.Error(`\P{L} contains 'q'`)
	}
	upper := Must(Category("lu", false))
	if !upper.Contains('Q') || upper.Contains('q') {
		t.Error(`\p{lu} membership wrong`)
	}
	if !Must(Category("Z*", false)).Contains(' ') {
		t.Error(`\p{Z*} does not contain ' '`)
	}
}

func TestGroupErrors(t *testing.T) {
	if _, err := Single(0x110000); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Single(0x110000): %v", err)
	}
	if _, err := Single(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Single(-1): %v", err)
	}
	if _, err := Range('z', 'a'); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Range(z, a): %v", err)
	}
	if _, err := Range('a', 0x110000); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Range(a, 0x110000): %v", err)
	}
	if _, err := Category("Lxx", false); !errors.Is(err, category.ErrInvalidSelector) {
		t.Errorf("Category(Lxx): %v", err)
	}
}

func TestZeroGroup(t *testing.T) {
	var g Group
	if g.Contains('a') || g.String() != "" {
		t.Fatal("zero Group is not empty")
	}
}
