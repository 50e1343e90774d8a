package opt

import (
	"math"
	"strconv"

	"tlog.app/go/errors"

	"github.com/minic/minic/compiler/ast"
)

var (
	ErrDivByZero = errors.New("division by zero")
	ErrOverflow  = errors.New("integer overflow")
)

// Eval computes a constant integer expression.
// Division truncates toward zero.
func Eval(x ast.Node) (int64, error) {
	switch x := x.(type) {
	case ast.Int:
		v, err := strconv.ParseInt(x.Text, 10, 64)
		if err != nil {
			return 0, ErrOverflow
		}

		return v, nil
	case ast.Neg:
		v, err := Eval(x.X)
		if err != nil {
			return 0, err
		}

		if v == math.MinInt64 {
			return 0, ErrOverflow
		}

		return -v, nil
	case ast.BinOp:
		l, err := Eval(x.Left)
		if err != nil {
			return 0, err
		}

		r, err := Eval(x.Right)
		if err != nil {
			return 0, err
		}

		return binop(x.Op, l, r)
	}

	return 0, errors.New("unsupported node: %T", x)
}

func binop(op byte, l, r int64) (int64, error) {
	switch op {
	case '+':
		s := l + r
		if (s > l) != (r > 0) {
			return 0, ErrOverflow
		}

		return s, nil
	case '-':
		s := l - r
		if (s < l) != (r > 0) {
			return 0, ErrOverflow
		}

		return s, nil
	case '*':
		if l == 0 || r == 0 {
			return 0, nil
		}

		s := l * r
		if s/r != l || l == -1 && r == math.MinInt64 || r == -1 && l == math.MinInt64 {
			return 0, ErrOverflow
		}

		return s, nil
	case '/':
		if r == 0 {
			return 0, ErrDivByZero
		}

		if l == math.MinInt64 && r == -1 {
			return 0, ErrOverflow
		}

		return l / r, nil
	}

	return 0, errors.New("unsupported operator: %c", op)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
