package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"runematch/category"
	"runematch/escape"
	"runematch/internal/notation"
	"runematch/rules"
	"runematch/token"
)

var stdout io.Writer = os.Stdout

// RuleSource selects the rule a command works with.
type RuleSource struct {
	Rules string `help:"File of 'name = rule;' definitions." type:"existingfile" env:"RUNEMATCH_RULES"`
	Name  string `help:"Rule to use from --rules; the file's trailing expression if empty." short:"n"`
	Expr  string `help:"Inline rule expression, used instead of --rules." short:"e"`
}

func (s RuleSource) load() (rules.Rule, error) {
	if s.Expr != "" {
		slog.Debug("Compiling inline rule", "expr", s.Expr)
		return notation.Compile(s.Expr)
	}
	if s.Rules == "" {
		return rules.Rule{}, errors.New("one of --expr or --rules is required")
	}
	src, err := os.ReadFile(s.Rules)
	if err != nil {
		return rules.Rule{}, err
	}
	env, err := notation.Load(string(src))
	if err != nil {
		return rules.Rule{}, err
	}
	slog.Debug("Loaded rules", "file", s.Rules, "names", env.Names())
	return env.Lookup(s.Name)
}

// TextSource is the text a command works on.
type TextSource struct {
	Text  string `arg:"" optional:"" help:"Input text; escapes are decoded unless --raw is given."`
	Input string `help:"Read the text from this file instead." type:"existingfile" short:"i"`
	Raw   bool   `help:"Do not decode escapes in the text argument."`
}

func (s TextSource) load() (string, error) {
	if s.Input != "" {
		data, err := os.ReadFile(s.Input)
		return string(data), err
	}
	if s.Raw {
		return s.Text, nil
	}
	return escape.Unescape(s.Text)
}

type matchCmd struct {
	RuleSource `embed:""`
	TextSource `embed:""`

	At int `help:"Byte offset to try the rule at." default:"0"`
}

func (c *matchCmd) Run() error {
	r, err := c.RuleSource.load()
	if err != nil {
		return err
	}
	text, err := c.TextSource.load()
	if err != nil {
		return err
	}
	n, ok := r.TryMatch(text, c.At)
	slog.Debug("Tried rule", "rule", r.String(), "at", c.At, "matched", ok, "length", n)
	if !ok {
		return fmt.Errorf("%s does not match at offset %d", r, c.At)
	}
	fmt.Fprintf(stdout, "%d '%s'\n", n, escape.Escape(text[c.At:c.At+n]))
	return nil
}

type findCmd struct {
	RuleSource `embed:""`
	TextSource `embed:""`

	Type string `help:"Type label of the printed tokens." default:"match"`
}

func (c *findCmd) Run() error {
	r, err := c.RuleSource.load()
	if err != nil {
		return err
	}
	text, err := c.TextSource.load()
	if err != nil {
		return err
	}
	matches := r.FindAll(text)
	slog.Debug("Scanned text", "rule", r.String(), "bytes", len(text), "matches", len(matches))
	for _, m := range matches {
		fmt.Fprintln(stdout, token.FromMatch(text, m.Start, m.End, c.Type, false))
	}
	return nil
}

type escapeCmd struct {
	Text string `arg:"" help:"Raw text."`
}

func (c *escapeCmd) Run() error {
	fmt.Fprintln(stdout, escape.Escape(c.Text))
	return nil
}

type unescapeCmd struct {
	Text string `arg:"" help:"Escaped text."`
}

func (c *unescapeCmd) Run() error {
	raw, err := escape.Unescape(c.Text)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, raw)
	return nil
}

type dotCmd struct {
	RuleSource `embed:""`

	Output string `help:"Output file, - for stdout." short:"o" default:"rule.dot"`
}

func (c *dotCmd) Run() error {
	r, err := c.RuleSource.load()
	if err != nil {
		return err
	}
	if c.Output == "-" {
		rules.ExportDOT(stdout, r)
		return nil
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	rules.ExportDOT(f, r)
	slog.Info("DOT written", "file", c.Output)
	return f.Close()
}

type categoriesCmd struct {
	Selector string `arg:"" help:"Category selector such as L, N* or Lu."`
}

func (c *categoriesCmd) Run() error {
	set, err := category.Parse(c.Selector)
	if err != nil {
		return err
	}
	for _, cat := range set.Categories() {
		fmt.Fprintf(stdout, "%s\t%s\n", cat, cat.Name())
	}
	return nil
}
