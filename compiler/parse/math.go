package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/minic/minic/compiler/ast"
)

type (
	LeftToRight struct {
		Op  Parser
		Arg Parser
	}

	BinOper interface {
		BinOp(l, r ast.Node) (ast.Node, error)
	}

	// Oper is a single char binary operator.
	Oper byte
)

var (
	AddSub = AnyOf{Oper('+'), Oper('-')}
	MulDiv = AnyOf{Oper('*'), Oper('/')}
)

func (p LeftToRight) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = p.Arg.Parse(ctx, b, st)
	if err != nil {
		return nil, i, errors.Wrap(err, "first arg")
	}

	for i < len(b) {
		var op ast.Node
		opst := i
		op, i, err = p.Op.Parse(ctx, b, i)
		if i == opst {
			err = nil
			break
		}
		if err != nil {
			return nil, i, errors.Wrap(err, "op")
		}

		c, ok := op.(BinOper)
		if !ok {
			return nil, i, errors.New("BinOper expected, got %T", op)
		}

		var r ast.Node
		r, i, err = p.Arg.Parse(ctx, b, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "arg")
		}

		x, err = c.BinOp(x, r)
		if err != nil {
			return nil, i, errors.Wrap(err, "%T", c)
		}
	}

	return
}

func (p Oper) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = SpaceAll.Skip(b, st)

	if i == len(b) || b[i] != byte(p) {
		return nil, st, errors.New("%q expected", byte(p))
	}

	return p, i + 1, nil
}

func (p Oper) BinOp(l, r ast.Node) (ast.Node, error) {
	return ast.BinOp{
		Base:  ast.Base{Pos: pos(l), End: end(r)},
		Op:    byte(p),
		Left:  l,
		Right: r,
	}, nil
}

func pos(x ast.Node) int {
	switch x := x.(type) {
	case ast.Int:
		return x.Pos
	case ast.Ident:
		return x.Pos
	case ast.Neg:
		return x.Pos
	case ast.BinOp:
		return x.Pos
	}

	return 0
}

func end(x ast.Node) int {
	switch x := x.(type) {
	case ast.Int:
		return x.End
	case ast.Ident:
		return x.End
	case ast.Neg:
		return x.End
	case ast.BinOp:
		return x.End
	}

	return 0
}
