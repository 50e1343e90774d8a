package parse

import (
	"context"
	"fmt"

	"tlog.app/go/errors"

	"github.com/minic/minic/compiler/ast"
)

type (
	Parser interface {
		Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error)
	}

	PartialReadError struct {
		End int
	}
)

// Match parses the whole text with p. Only spaces may follow.
func Match(ctx context.Context, p Parser, text []byte) (x ast.Node, err error) {
	x, i, err := p.Parse(ctx, text, 0)
	if err != nil {
		return nil, errors.Wrap(err, "at pos %d", i)
	}

	i = SpaceAll.Skip(text, i)

	if i != len(text) {
		return nil, PartialReadError{End: i}
	}

	return x, nil
}

func (e PartialReadError) Error() string {
	return fmt.Sprintf("partial read: unexpected text at pos %d", e.End)
}
