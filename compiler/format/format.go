package format

import (
	"context"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/minic/minic/compiler/ast"
	"github.com/minic/minic/compiler/gen"
	"github.com/minic/minic/compiler/lex"
	"github.com/minic/minic/compiler/sema"
	"github.com/minic/minic/compiler/symtab"
)

func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	return format(ctx, b, x, 0)
}

func format(ctx context.Context, b []byte, x any, d int) ([]byte, error) {
	switch x := x.(type) {
	case []lex.Token:
		return AppendTokens(b, x), nil
	case *symtab.Table:
		return AppendSymbols(b, x), nil
	case []gen.Instr:
		return AppendInstrs(b, x), nil
	case []sema.Diagnostic:
		return AppendDiagnostics(b, x), nil
	case *ast.File:
		return formatFile(ctx, b, x, d)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}

// AppendTokens appends one "KIND<TAB>lexeme" line per token.
func AppendTokens(b []byte, ts []lex.Token) []byte {
	for _, t := range ts {
		b = hfmt.Appendf(b, "%v\t%s\n", t.Kind, t.Lexeme)
	}

	return b
}

// AppendSymbols appends the table ordered by address.
func AppendSymbols(b []byte, t *symtab.Table) []byte {
	b = hfmt.Appendf(b, "%-16s %-28s %-10s %-9s %-12s %s\n", "Name", "Type", "Size", "Dimension", "Address", "Line")

	if t == nil {
		return b
	}

	for _, r := range t.Sorted() {
		b = hfmt.Appendf(b, "%-16s %-28s %-10s %-9s %-12s %d\n", r.Name, r.Type, r.SizeText(), r.Dimension, r.AddressText(), r.Line)
	}

	return b
}

func AppendInstrs(b []byte, l []gen.Instr) []byte {
	for _, x := range l {
		b = hfmt.Appendf(b, "%v %s\n", x.Op, x.Operand)
	}

	return b
}

func AppendDiagnostics(b []byte, l []sema.Diagnostic) []byte {
	for _, d := range l {
		b = append(b, d.Error()...)
		b = append(b, '\n')
	}

	return b
}

func formatFile(ctx context.Context, b []byte, x *ast.File, d int) (_ []byte, err error) {
	for i, decl := range x.Decls {
		b = app(b, d, "%v: ", decl.Name)

		b, err = formatType(ctx, b, decl.Type)
		if err != nil {
			return nil, errors.Wrap(err, "decl %d %v", i, decl.Name)
		}

		b = app(b, 0, "  (line %d)\n", decl.Line)
	}

	return b, nil
}

func formatType(ctx context.Context, b []byte, x ast.Type) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Named:
		for i, n := range x.Names {
			if i != 0 {
				b = append(b, ' ')
			}

			b = append(b, n...)
		}
	case ast.Pointer:
		b = append(b, '*')

		return formatType(ctx, b, x.Elem)
	case ast.Array:
		b = app(b, 0, "[%s]", x.Dim)

		return formatType(ctx, b, x.Elem)
	case ast.Unknown:
		b = app(b, 0, "<%s>", x.Shape)
	case nil:
		b = append(b, "<nil>"...)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}

	return b, nil
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"
	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)
	return b
}
