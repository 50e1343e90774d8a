package front

import (
	"fmt"

	"github.com/alecthomas/participle"
	"tlog.app/go/errors"
)

// Error is a syntax error at a source position.
type Error struct {
	Name   string
	Line   int
	Column int
	Msg    string

	err error
}

func wrapError(name string, err error) error {
	perr, ok := err.(participle.Error)
	if !ok {
		return errors.Wrap(err, "parse %v", name)
	}

	pos := perr.Token().Pos

	return &Error{
		Name:   name,
		Line:   pos.Line,
		Column: pos.Column,
		Msg:    perr.Message(),
		err:    err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v:%d:%d: %v", e.Name, e.Line, e.Column, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }
