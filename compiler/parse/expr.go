package parse

import (
	"context"

	"github.com/minic/minic/compiler/ast"
)

type (
	// Expr is integer literal arithmetic: * and / bind tighter than + and -.
	Expr struct{}

	// Operand is a bare identifier or integer literal.
	Operand struct{}
)

func (p Expr) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := LeftToRight{
		Op: AddSub,
		Arg: LeftToRight{
			Op:  MulDiv,
			Arg: Unary{Of: Int{}},
		},
	}

	return r.Parse(ctx, b, st)
}

func (p Operand) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	return Spaced(AnyOf{Ident{}, Int{}}).Parse(ctx, b, st)
}
