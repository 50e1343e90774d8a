package compiler

import (
	"context"
	"os"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic/minic/compiler/ast"
	"github.com/minic/minic/compiler/front"
	"github.com/minic/minic/compiler/gen"
	"github.com/minic/minic/compiler/lex"
	"github.com/minic/minic/compiler/opt"
	"github.com/minic/minic/compiler/sema"
	"github.com/minic/minic/compiler/symtab"
)

func ReadFile(ctx context.Context, name string) ([]byte, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file %v", name)
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return text, nil
}

func TokensFile(ctx context.Context, name string) ([]lex.Token, error) {
	text, err := ReadFile(ctx, name)
	if err != nil {
		return nil, err
	}

	return lex.Tokenize(ctx, text), nil
}

func SymbolsFile(ctx context.Context, name string) (*symtab.Table, *ast.File, error) {
	text, err := ReadFile(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	return Symbols(ctx, name, text)
}

// Symbols parses declarations from text and builds a fresh symbol table.
// No table is returned if text does not parse.
func Symbols(ctx context.Context, name string, text []byte) (tab *symtab.Table, f *ast.File, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "symbols", "name", name)
	defer tr.Finish("err", &err)

	f, err = front.Parse(ctx, name, text)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parse declarations")
	}

	tab = symtab.Build(ctx, f)

	return tab, f, nil
}

// Lower generates instructions for statement lines,
// optionally running the optimizer first.
func Lower(ctx context.Context, lines []string, optimize bool) []gen.Instr {
	if optimize {
		lines = opt.Optimize(ctx, lines)
	}

	return gen.Generate(ctx, lines)
}

func LowerFile(ctx context.Context, name string, optimize bool) ([]gen.Instr, error) {
	text, err := ReadFile(ctx, name)
	if err != nil {
		return nil, err
	}

	return Lower(ctx, Lines(string(text)), optimize), nil
}

func OptimizeFile(ctx context.Context, name string) (string, error) {
	text, err := ReadFile(ctx, name)
	if err != nil {
		return "", err
	}

	return opt.OptimizeText(ctx, strings.TrimSuffix(string(text), "\n")), nil
}

// Check runs both the semantic and the syntax checks.
func Check(ctx context.Context, text string) []sema.Diagnostic {
	ds := sema.Check(ctx, text)
	ds = append(ds, sema.CheckSyntax(text)...)

	return ds
}

func CheckFile(ctx context.Context, name string) ([]sema.Diagnostic, error) {
	text, err := ReadFile(ctx, name)
	if err != nil {
		return nil, err
	}

	return Check(ctx, string(text)), nil
}

// Lines splits text into lines dropping the final empty one.
func Lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
