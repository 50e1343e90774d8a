package parse

import (
	"bytes"
	"context"

	"tlog.app/go/errors"

	"github.com/minic/minic/compiler/ast"
)

type (
	Const []byte

	// Keyword is a Const which is not followed by an identifier char.
	Keyword []byte

	Ident struct{}

	// Until takes text up to the last occurrence of Term and consumes Term.
	Until struct {
		Term byte
	}
)

func (p Const) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if bytes.HasPrefix(b[st:], p) {
		return ast.Text{
			Base: ast.Base{Pos: st, End: st + len(p)},
			Text: string(p),
		}, st + len(p), nil
	}

	return nil, st, errors.New("%q expected", []byte(p))
}

func (p Keyword) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = Const(p).Parse(ctx, b, st)
	if err != nil {
		return nil, st, err
	}

	if i < len(b) && isIdentChar(b[i]) {
		return nil, st, errors.New("keyword %q expected", []byte(p))
	}

	return ast.Ident{
		Base: ast.Base{Pos: st, End: i},
		Name: string(p),
	}, i, nil
}

func (p Ident) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if st == len(b) || !isIdentStart(b[st]) {
		return nil, st, errors.New("Ident expected")
	}

	i = st + 1

	for i < len(b) && isIdentChar(b[i]) {
		i++
	}

	return ast.Ident{
		Base: ast.Base{Pos: st, End: i},
		Name: string(b[st:i]),
	}, i, nil
}

func (p Until) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	e := bytes.LastIndexByte(b[st:], p.Term)
	if e < 0 {
		return nil, st, errors.New("%q expected", p.Term)
	}

	e += st

	return ast.Text{
		Base: ast.Base{Pos: st, End: e},
		Text: string(b[st:e]),
	}, e + 1, nil
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
