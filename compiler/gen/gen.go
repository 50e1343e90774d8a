package gen

import (
	"context"
	"strings"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"
)

type (
	Opcode int

	// Instr is a single accumulator machine instruction.
	Instr struct {
		Op      Opcode
		Operand string
	}
)

const (
	LOAD Opcode = iota
	ADD
	SUB
	MUL
	DIV
	MOVE
	STORE
)

// Operators in the order they are searched for.
var operators = []struct {
	c  byte
	op Opcode
}{
	{'+', ADD},
	{'-', SUB},
	{'*', MUL},
	{'/', DIV},
}

// Generate lowers "dest = expr" lines to instructions.
// Lines without '=' are skipped.
func Generate(ctx context.Context, lines []string) []Instr {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "gen: generate", "lines", len(lines))
	defer tr.Finish()

	res := make([]Instr, 0, 3*len(lines))

	for i, l := range lines {
		res = Line(ctx, res, l)

		if tr.If("gen_line") {
			tr.Printw("line", "i", i+1, "text", l, "total", len(res))
		}
	}

	return res
}

// Line appends instructions for a single line to b.
func Line(ctx context.Context, b []Instr, line string) []Instr {
	p := strings.IndexByte(line, '=')
	if p < 0 {
		return b
	}

	dest := strings.TrimSpace(line[:p])
	expr := strings.TrimSpace(line[p+1:])
	expr = strings.TrimSpace(strings.TrimSuffix(expr, ";"))

	for _, o := range operators {
		q := strings.IndexByte(expr, o.c)
		if q < 0 {
			continue
		}

		l := strings.TrimSpace(expr[:q])
		r := strings.TrimSpace(expr[q+1:])

		if tlog.If("gen_split") && strings.ContainsAny(r, "+-*/") {
			tlog.SpanFromContext(ctx).Printw("mixed operators split at first match", "expr", expr, "op", string(o.c), "from", loc.Caller(1))
		}

		return append(b,
			Instr{Op: LOAD, Operand: l},
			Instr{Op: o.op, Operand: r},
			Instr{Op: STORE, Operand: dest},
		)
	}

	return append(b,
		Instr{Op: MOVE, Operand: expr},
		Instr{Op: STORE, Operand: dest},
	)
}

func (x Instr) String() string {
	return x.Op.String() + " " + x.Operand
}

func (x Instr) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 2)
	b = e.AppendKey(b, "op")
	b = e.AppendString(b, x.Op.String())
	b = e.AppendKey(b, "operand")
	b = e.AppendString(b, x.Operand)

	return b
}

func (op Opcode) String() string {
	switch op {
	case LOAD:
		return "LOAD"
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	case MOVE:
		return "MOVE"
	case STORE:
		return "STORE"
	}

	return "UNKNOWN"
}
