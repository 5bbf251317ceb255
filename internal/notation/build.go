package notation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"runematch/escape"
	"runematch/rules"
)

// Load parses src and builds every rule it defines.
func Load(src string) (*Environment, error) {
	f, err := Parse(src)
	if err != nil {
		return nil, err
	}
	env := NewEnvironment()
	if err := f.Exec(env); err != nil {
		return nil, err
	}
	return env, nil
}

// Compile builds the single rule expression expr.
func Compile(expr string) (rules.Rule, error) {
	env, err := Load(expr)
	if err != nil {
		return rules.Rule{}, err
	}
	return env.Lookup("")
}

func MustCompile(expr string) rules.Rule {
	r, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return r
}

func (f *File) Exec(env *Environment) error {
	for _, d := range f.Definitions {
		if err := d.Exec(env); err != nil {
			return err
		}
	}
	if f.Main != nil {
		r, err := f.Main.Eval(env)
		if err != nil {
			return err
		}
		env.main = &r
	}
	return nil
}

func (d *Definition) Exec(env *Environment) error {
	r, err := d.Expr.Eval(env)
	if err != nil {
		return err
	}
	if err := env.Set(d.Name, r); err != nil {
		return fmt.Errorf("%s: %w", d.Pos, err)
	}
	return nil
}

func (e *Expr) Eval(env *Environment) (rules.Rule, error) {
	out := make([]rules.Rule, 0, len(e.Terms))
	for _, t := range e.Terms {
		r, err := t.Eval(env)
		if err != nil {
			return rules.Rule{}, err
		}
		out = append(out, r)
	}
	if len(out) == 1 {
		return out[0], nil
	}
	return rules.Sequence(out...), nil
}

func (t *Term) Eval(env *Environment) (rules.Rule, error) {
	r, err := t.Atom.Eval(env)
	if err != nil {
		return rules.Rule{}, err
	}
	if t.Quantifier == nil {
		return r, nil
	}
	return t.Quantifier.Apply(r)
}

func (a *Atom) Eval(env *Environment) (rules.Rule, error) {
	switch {
	case a.Literal != nil:
		tok := *a.Literal
		fold := strings.HasSuffix(tok, "i")
		body := strings.TrimSuffix(tok, "i")
		text, err := escape.Unescape(body[1 : len(body)-1])
		if err != nil {
			return rules.Rule{}, fmt.Errorf("%s: %w", a.Pos, err)
		}
		if fold {
			return rules.LiteralFold(text), nil
		}
		return rules.Literal(text), nil
	case a.Class != nil:
		return a.Class.Eval()
	case a.Paren != nil:
		if a.Paren.Expr == nil {
			return rules.Sequence(), nil
		}
		return a.Paren.Expr.Eval(env)
	case a.Ref != nil:
		r, ok := env.Get(*a.Ref)
		if !ok {
			return rules.Rule{}, fmt.Errorf("%s: undefined rule %s", a.Pos, *a.Ref)
		}
		return r, nil
	}
	return rules.Rule{}, fmt.Errorf("%s: invalid atom", a.Pos)
}

func (c *Class) Eval() (rules.Rule, error) {
	groups := make([]rules.Group, 0, len(c.Items))
	for _, it := range c.Items {
		g, err := it.Eval()
		if err != nil {
			return rules.Rule{}, err
		}
		groups = append(groups, g)
	}
	return rules.OneOf(groups...), nil
}

func (it *Item) Eval() (rules.Group, error) {
	if it.Category != nil {
		tok := *it.Category
		g, err := rules.Category(tok[3:len(tok)-1], tok[1] == 'P')
		if err != nil {
			return rules.Group{}, fmt.Errorf("%s: %w", it.Pos, err)
		}
		return g, nil
	}

	lo, err := classRune(*it.Low)
	if err != nil {
		return rules.Group{}, fmt.Errorf("%s: %w", it.Pos, err)
	}
	if it.High == nil {
		g, err := rules.Single(lo)
		if err != nil {
			return rules.Group{}, fmt.Errorf("%s: %w", it.Pos, err)
		}
		return g, nil
	}
	hi, err := classRune(*it.High)
	if err != nil {
		return rules.Group{}, fmt.Errorf("%s: %w", it.Pos, err)
	}
	g, err := rules.Range(lo, hi)
	if err != nil {
		return rules.Group{}, fmt.Errorf("%s: %w", it.Pos, err)
	}
	return g, nil
}

// classRune decodes one class character: a plain rune, \- or \], or any
// sequence the escape codec understands.
func classRune(tok string) (rune, error) {
	switch tok {
	case `\-`:
		return '-', nil
	case `\]`:
		return ']', nil
	}
	s, err := escape.Unescape(tok)
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || size == 0 {
		return 0, fmt.Errorf("%q is not a single character", tok)
	}
	return r, nil
}

func (q *Quantifier) Apply(r rules.Rule) (rules.Rule, error) {
	switch q.Op {
	case "?":
		return rules.Optional(r), nil
	case "*":
		return rules.ZeroOrMany(r), nil
	case "+":
		return rules.OneOrMany(r), nil
	}

	rp := q.Repeat
	if rp.Min == nil && rp.Max == nil {
		return rules.Rule{}, fmt.Errorf("%s: repetition needs a bound", q.Pos)
	}
	lo, hi := 0, rules.Unbounded
	if rp.Min != nil {
		lo = *rp.Min
	}
	switch {
	case rp.Max != nil:
		hi = *rp.Max
	case !rp.Comma:
		hi = lo
	}
	out, err := rules.Quantify(r, lo, hi)
	if err != nil {
		return rules.Rule{}, fmt.Errorf("%s: %w", q.Pos, err)
	}
	return out, nil
}
