package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/minic/minic/compiler/ast"
)

type (
	// Spaces is a set of ASCII control and space characters.
	Spaces uint64

	Spacer struct {
		Spaces Spaces
		Of     Parser
	}
)

var (
	SpaceAll = NewSpaces(' ', '\t', '\r', '\n', '\v', '\f')
)

func NewSpaces(skip ...byte) (ss Spaces) {
	for _, q := range skip {
		if q >= 64 {
			panic("too high char code")
		}

		ss |= 1 << q
	}

	return
}

func (s Spaces) Has(c byte) bool {
	return c < 64 && s&(1<<c) != 0
}

func (s Spaces) Skip(b []byte, st int) (i int) {
	i = st

	for i < len(b) && s.Has(b[i]) {
		i++
	}

	return
}

// Spaced skips all kinds of spaces before p.
func Spaced(p Parser) Spacer {
	return Spacer{
		Spaces: SpaceAll,
		Of:     p,
	}
}

func (p Spacer) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	vst := p.Spaces.Skip(b, st)

	x, i, err = p.Of.Parse(ctx, b, vst)
	if err != nil {
		if i == vst {
			i = st
		}

		err = errors.Wrap(err, "%T", p.Of)
	}

	return
}
