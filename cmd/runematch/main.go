// Command runematch tries match rules against text from the command line.
//
//	runematch match -e "'0x'i [0-9a-fA-F]+" 0X1F
//	runematch find --rules lexer.rules -n ident --input main.go
//	runematch escape "$(printf 'tab\there')"
//	runematch dot -e "('a' 'b')+" -o - | dot -Tpng -o rule.png
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Debug bool `help:"Enable debug logging." env:"RUNEMATCH_DEBUG"`

	Match      matchCmd      `cmd:"" help:"Try a rule at a byte offset of the text."`
	Find       findCmd       `cmd:"" help:"List the non-overlapping matches of a rule as tokens."`
	Escape     escapeCmd     `cmd:"" help:"Print the escaped literal form of the text."`
	Unescape   unescapeCmd   `cmd:"" help:"Decode the escapes in the text."`
	Dot        dotCmd        `cmd:"" help:"Export a rule tree as Graphviz DOT."`
	Categories categoriesCmd `cmd:"" help:"List the general categories a selector expands to."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("runematch"),
		kong.Description("Try Unicode match rules against text."),
		kong.UsageOnError(),
	)
	setupLogging(cli.Debug)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
