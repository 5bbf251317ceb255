package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runematch/rules"
)

func newRule(t *testing.T, expr string) rules.Rule {
	t.Helper()
	r, err := Compile(expr)
	if err != nil {
		t.Fatalf("compile %q: %v", expr, err)
	}
	return r
}

func acc(t *testing.T, r rules.Rule, in string, want int) {
	t.Helper()
	n, ok := r.TryMatch(in, 0)
	switch {
	case want < 0 && ok:
		t.Fatalf("%s on %q: matched %d, want failure", r, in, n)
	case want >= 0 && (!ok || n != want):
		t.Fatalf("%s on %q: got (%d, %v), want %d", r, in, n, ok, want)
	}
}

func TestCompile(t *testing.T) {
	acc(t, newRule(t, `'0x'i [0-9a-fA-F]+`), "0X1Fz", 4)
	acc(t, newRule(t, `'ab' [c]`), "abc", 3)
	acc(t, newRule(t, `'ab' [c]`), "abd", -1)
	acc(t, newRule(t, `[\p{L}_] [\p{L}\p{Nd}_]*`), "élan_2 x", 7)
	acc(t, newRule(t, `[\P{L}]+`), "42a", 2)
	acc(t, newRule(t, `'a'{2,3}`), "aaaa", 3)
	acc(t, newRule(t, `'a'{2}`), "a", -1)
	acc(t, newRule(t, `'a'{,2}`), "aaa", 2)
	acc(t, newRule(t, `'a'{2,}`), "aaaaa", 5)
	acc(t, newRule(t, `('a' 'b')+ 'c'?`), "ababc", 5)
	acc(t, newRule(t, `()`), "xyz", 0)
	acc(t, newRule(t, `'\t\u{1F600}'`), "\t\U0001F600", 5)
	acc(t, newRule(t, `[\-\]A\x42]+`), "-]AB", 4)
	acc(t, newRule(t, `[ ]`), " ", 1)
	acc(t, newRule(t, `[\uD83D\uDE00]`), "\U0001F600", 4)
	acc(t, newRule(t, `'\uD83D\uDE00'`), "\U0001F600", 4)
}

func TestRoundTrip(t *testing.T) {
	for _, expr := range []string{
		`'0x'i [0-9a-fA-F]+`,
		`'it\'s' [\-\]!-/]`,
		`[\p{Lu}\P{N}\n\u{1F600}]`,
		`'a' ('b' 'c')`,
		`('a' 'b')* 'c'?`,
		`('a'+)?`,
		`'a'{,5} 'b'{2,} 'c'{3} 'd'{2,4} 'e'{0}`,
		`()`,
	} {
		r := newRule(t, expr)
		assert.Equal(t, expr, r.String())
		again := newRule(t, r.String())
		assert.Equal(t, r.String(), again.String())
	}
}

func TestRoundTripBuilt(t *testing.T) {
	hex := rules.OneOf(
		rules.Must(rules.Range('0', '9')),
		rules.Must(rules.Range('a', 'f')),
	)
	built := rules.Sequence(
		rules.LiteralFold("\"quoted\"\x01"),
		rules.Must(rules.Quantify(hex, 2, 6)),
		rules.Optional(rules.Sequence(rules.Literal("."), rules.OneOrMany(hex))),
	)
	again := newRule(t, built.String())
	assert.Equal(t, built.String(), again.String())
}

func TestLoad(t *testing.T) {
	src := `
# hexadecimal numbers
digit  = [0-9a-fA-F];
number = '0x'i digit+;
list   = number (',' number)*;

list ';'
`
	env, err := Load(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"digit", "number", "list"}, env.Names())

	list, err := env.Lookup("list")
	require.NoError(t, err)
	acc(t, list, "0x1,0XfF,0x", 8)

	main, ok := env.Main()
	require.True(t, ok)
	acc(t, main, "0x1,0x2;", 8)

	_, err = env.Lookup("nope")
	assert.Error(t, err)
}

func TestLoadWithoutMain(t *testing.T) {
	env, err := Load(`a = 'a';`)
	require.NoError(t, err)
	_, ok := env.Main()
	assert.False(t, ok)
	_, err = env.Lookup("")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`'unterminated`,
		`[a-`,
		`'a'{}`,
		`'a'{,}`,
		`'a'{3,2}`,
		`[z-a]`,
		`[\p{Q}]`,
		`[\p{Lux}]`,
		`'\q'`,
		`[\u{1}]`,
		`[\uD83D]`,
		`undefined`,
		`a = 'a'; a = 'b';`,
		`b = a; a = 'a';`,
	} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded", src)
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile(`[`) })
	assert.NotPanics(t, func() { MustCompile(`'ok'`) })
}
