// Package notation reads rules written in the notation that rules.Rule
// renders to:
//
//	hex    = [0-9a-fA-F];
//	number = '0x'i hex+;   # case-insensitive prefix
//	number (',' number)*
//
// A source is a list of definitions followed by an optional expression.
// A name may only refer to rules defined above it.
package notation

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lex = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `'(\\.|[^'\\])*'i?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "ClassOpen", Pattern: `\[`, Action: lexer.Push("Class")},
		{Name: "Punct", Pattern: `[=;(){},?*+]`},
	},
	"Class": {
		{Name: "ClassClose", Pattern: `\]`, Action: lexer.Pop()},
		{Name: "Category", Pattern: `\\[pP]\{[^}]*\}`},
		{Name: "Escaped", Pattern: `\\[uU]\{[^}]*\}|\\[uU][dD][89abAB][0-9a-fA-F]{2}\\[uU][dD][c-fC-F][0-9a-fA-F]{2}|\\[uU][0-9a-fA-F]{4}|\\[xX][0-9a-fA-F]{2}|\\.`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Char", Pattern: `[^\\\]-]`},
	},
})

type File struct {
	Definitions []*Definition `parser:"@@*"`
	Main        *Expr         `parser:"@@?"`
}

type Definition struct {
	Pos lexer.Position

	Name string `parser:"@Ident '='"`
	Expr *Expr  `parser:"@@ ';'"`
}

type Expr struct {
	Terms []*Term `parser:"@@+"`
}

type Term struct {
	Atom       *Atom       `parser:"@@"`
	Quantifier *Quantifier `parser:"@@?"`
}

type Atom struct {
	Pos lexer.Position

	Literal *string `parser:"  @String"`
	Class   *Class  `parser:"| @@"`
	Paren   *Paren  `parser:"| @@"`
	Ref     *string `parser:"| @Ident"`
}

type Paren struct {
	Open string `parser:"@'('"`
	Expr *Expr  `parser:"@@? ')'"`
}

type Class struct {
	Items []*Item `parser:"ClassOpen @@* ClassClose"`
}

type Item struct {
	Pos lexer.Position

	Category *string `parser:"  @Category"`
	Low      *string `parser:"| @(Char | Escaped)"`
	High     *string `parser:"  (Dash @(Char | Escaped))?"`
}

type Quantifier struct {
	Pos lexer.Position

	Op     string  `parser:"  @('?' | '*' | '+')"`
	Repeat *Repeat `parser:"| @@"`
}

type Repeat struct {
	Min   *int `parser:"'{' @Int?"`
	Comma bool `parser:"@','?"`
	Max   *int `parser:"@Int? '}'"`
}

var parser = participle.MustBuild[File](
	participle.Lexer(lex),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses src without building any rule.
func Parse(src string) (*File, error) {
	return parser.ParseString("input", src)
}
