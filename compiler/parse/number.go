package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/minic/minic/compiler/ast"
)

type (
	// Int is a run of decimal digits.
	Int struct{}

	// Unary is an optionally signed Of.
	Unary struct {
		Of Parser
	}
)

func (p Int) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = st

	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}

	if i == st {
		return nil, st, errors.New("Int expected")
	}

	return ast.Int{
		Base: ast.Base{Pos: st, End: i},
		Text: string(b[st:i]),
	}, i, nil
}

func (p Unary) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = SpaceAll.Skip(b, st)

	if i == len(b) || b[i] != '-' && b[i] != '+' {
		return Spaced(p.Of).Parse(ctx, b, st)
	}

	sign := b[i]

	x, i, err = p.Parse(ctx, b, i+1)
	if err != nil {
		return nil, i, errors.Wrap(err, "%c", sign)
	}

	if sign == '+' {
		return x, i, nil
	}

	return ast.Neg{
		Base: ast.Base{Pos: st, End: i},
		X:    x,
	}, i, nil
}
