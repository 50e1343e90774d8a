package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic/minic/compiler"
	"github.com/minic/minic/compiler/format"
	"github.com/minic/minic/compiler/lex"
)

func main() {
	tokensCmd := &cli.Command{
		Name:        "tokens,tok",
		Description: "print tokens of C source files",
		Action:      tokensAct,
		Args:        cli.Args{},
	}

	symbolsCmd := &cli.Command{
		Name:        "symbols,sym",
		Description: "print the symbol table of C declarations",
		Action:      symbolsAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("dump", false, "dump declaration tree"),
		},
	}

	optimizeCmd := &cli.Command{
		Name:        "optimize,opt",
		Description: "optimize statement lines",
		Action:      optimizeAct,
		Args:        cli.Args{},
	}

	codegenCmd := &cli.Command{
		Name:        "codegen,gen",
		Description: "generate accumulator instructions from statement lines",
		Action:      codegenAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("optimize,O", false, "optimize lines first"),
		},
	}

	checkCmd := &cli.Command{
		Name:        "check",
		Description: "run semantic and syntax checks",
		Action:      checkAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "minic",
		Description: "minic is a toolkit for exploring C compilation stages",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("verbosity,v", "", "tlog verbosity topics"),
			cli.NewFlag("color", false, "colorize output"),
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			tokensCmd,
			symbolsCmd,
			optimizeCmd,
			codegenCmd,
			checkCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

var au aurora.Aurora = aurora.NewAurora(false)

func before(c *cli.Command) error {
	tlog.SetVerbosity(c.String("verbosity"))

	au = aurora.NewAurora(c.Bool("color"))

	return nil
}

func context0() context.Context {
	ctx := context.Background()
	return tlog.ContextWithSpan(ctx, tlog.Root())
}

func tokensAct(c *cli.Command) (err error) {
	ctx := context0()

	for _, a := range c.Args {
		ts, err := compiler.TokensFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "tokens %v", a)
		}

		if !c.Bool("color") {
			_, err = os.Stdout.Write(format.AppendTokens(nil, ts))
			if err != nil {
				return errors.Wrap(err, "write")
			}

			continue
		}

		for _, t := range ts {
			fmt.Printf("%v %s\n", kindColor(t.Kind), t.Lexeme)
		}
	}

	return nil
}

func symbolsAct(c *cli.Command) (err error) {
	ctx := context0()

	for _, a := range c.Args {
		tab, f, err := compiler.SymbolsFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "symbols %v", a)
		}

		var b []byte

		if c.Bool("dump") {
			spew.Fdump(os.Stdout, f)

			b, err = format.Format(ctx, b, f)
			if err != nil {
				return errors.Wrap(err, "format declarations")
			}

			b = append(b, '\n')
		}

		b = format.AppendSymbols(b, tab)

		_, err = os.Stdout.Write(b)
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func optimizeAct(c *cli.Command) (err error) {
	ctx := context0()

	for _, a := range c.Args {
		out, err := compiler.OptimizeFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "optimize %v", a)
		}

		fmt.Println(out)
	}

	return nil
}

func codegenAct(c *cli.Command) (err error) {
	ctx := context0()

	for _, a := range c.Args {
		is, err := compiler.LowerFile(ctx, a, c.Bool("optimize"))
		if err != nil {
			return errors.Wrap(err, "codegen %v", a)
		}

		if !c.Bool("color") {
			_, err = os.Stdout.Write(format.AppendInstrs(nil, is))
			if err != nil {
				return errors.Wrap(err, "write")
			}

			continue
		}

		for _, x := range is {
			fmt.Printf("%v %s\n", au.Bold(x.Op), x.Operand)
		}
	}

	return nil
}

func checkAct(c *cli.Command) (err error) {
	ctx := context0()

	var n int

	for _, a := range c.Args {
		ds, err := compiler.CheckFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "check %v", a)
		}

		for _, d := range ds {
			fmt.Printf("%v: %v\n", a, au.Red(d.Error()))
		}

		n += len(ds)
	}

	if n != 0 {
		return errors.New("%d problem(s) found", n)
	}

	fmt.Println(au.Green("no problems found"))

	return nil
}

func kindColor(k lex.Kind) aurora.Value {
	s := fmt.Sprintf("%-12v", k)

	switch k {
	case lex.Keyword:
		return au.Blue(s)
	case lex.Number, lex.String, lex.Char:
		return au.Magenta(s)
	case lex.Comment:
		return au.Gray(12, s)
	case lex.Unknown:
		return au.Red(s)
	}

	return au.Reset(s)
}
