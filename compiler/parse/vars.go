package parse

import (
	"context"

	"github.com/minic/minic/compiler/ast"
)

type (
	// Assignment is a statement line: [Types] dest = Value ;
	Assignment struct {
		Types Parser
		Value Parser
	}
)

func (p Assignment) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	types := p.Types
	if types == nil {
		types = None{}
	}

	r := AllOf{
		types,
		Spaced(Ident{}),
		Spaced(Const("=")),
		p.Value,
		Spaced(Const(";")),
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return
	}

	xt := x.([]ast.Node)

	res := ast.Assign{
		Base: ast.Base{
			Pos: st,
			End: i,
		},
		Types: idents(xt[0]),
		Dest:  xt[1].(ast.Ident),
		Expr:  xt[3],
	}

	return res, i, nil
}

func idents(x ast.Node) (r []ast.Ident) {
	switch x := x.(type) {
	case ast.Ident:
		return []ast.Ident{x}
	case []ast.Node:
		for _, y := range x {
			r = append(r, idents(y)...)
		}
	}

	return r
}
