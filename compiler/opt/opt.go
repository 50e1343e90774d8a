package opt

import (
	"context"
	"strings"

	"tlog.app/go/tlog"

	"github.com/minic/minic/compiler/ast"
	"github.com/minic/minic/compiler/parse"
)

type (
	// Rule is an optimizer rewrite in the order it is tried.
	Rule int

	// y op lit or lit op y.
	identityRule struct {
		op      byte
		lit     string
		litLeft bool
		zero    bool
	}

	rule struct {
		Rule
		p     parse.Parser
		apply func(a ast.Assign) (ast.Node, bool)
	}
)

const (
	None Rule = iota
	SelfAssign
	FoldDecl
	FoldAssign
	Identity
)

var rules = []rule{
	{
		Rule:  SelfAssign,
		p:     parse.Assignment{Value: parse.Spaced(parse.Ident{})},
		apply: selfAssign,
	},
	{
		Rule:  FoldDecl,
		p:     parse.Assignment{Types: parse.Spaced(parse.Keyword("int")), Value: parse.Expr{}},
		apply: fold,
	},
	{
		Rule:  FoldAssign,
		p:     parse.Assignment{Value: parse.Expr{}},
		apply: fold,
	},
	{
		Rule: Identity,
		p: parse.Assignment{
			Types: parse.Many{Of: parse.Spaced(parse.TypeName)},
			Value: parse.LeftToRight{
				Op:  parse.AnyOf{parse.Oper('+'), parse.Oper('-'), parse.Oper('*')},
				Arg: parse.Operand{},
			},
		},
		apply: identity,
	},
}

var identities = []identityRule{
	{op: '+', lit: "0"},
	{op: '+', lit: "0", litLeft: true},
	{op: '-', lit: "0"},
	{op: '*', lit: "1"},
	{op: '*', lit: "1", litLeft: true},
	{op: '*', lit: "0", zero: true},
	{op: '*', lit: "0", litLeft: true, zero: true},
}

// Optimize rewrites each line with the first rule that applies.
// Lines no rule applies to are kept as is.
func Optimize(ctx context.Context, lines []string) []string {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "opt: optimize", "lines", len(lines))
	defer tr.Finish()

	res := make([]string, 0, len(lines))

	for i, l := range lines {
		out, keep, r := Line(ctx, l)

		if r != None && tr.If("opt_rule") {
			tr.Printw("rewrite", "line", i+1, "rule", r, "from", l, "to", out, "keep", keep)
		}

		if !keep {
			continue
		}

		res = append(res, out)
	}

	return res
}

// OptimizeText is Optimize over newline separated text.
func OptimizeText(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")

	return strings.Join(Optimize(ctx, lines), "\n")
}

// Line applies the first matching rule to a single line.
// keep is false if the line is to be dropped.
func Line(ctx context.Context, line string) (out string, keep bool, r Rule) {
	b := []byte(line)

	for _, q := range rules {
		x, err := parse.Match(ctx, q.p, b)
		if err != nil {
			continue
		}

		a, ok := x.(ast.Assign)
		if !ok {
			continue
		}

		val, ok := q.apply(a)
		if !ok {
			continue
		}

		if selfAssigned(a, val) {
			return "", false, q.Rule
		}

		return indent(line) + assign(a, val), true, q.Rule
	}

	return line, true, None
}

func selfAssign(a ast.Assign) (ast.Node, bool) {
	v, ok := a.Expr.(ast.Ident)

	return v, ok && v.Name == a.Dest.Name
}

func fold(a ast.Assign) (ast.Node, bool) {
	v, err := Eval(a.Expr)
	if err != nil {
		return nil, false
	}

	return ast.Int{Text: itoa(v)}, true
}

func identity(a ast.Assign) (ast.Node, bool) {
	b, ok := a.Expr.(ast.BinOp)
	if !ok {
		return nil, false
	}

	for _, id := range identities {
		if b.Op != id.op {
			continue
		}

		v, lit := b.Left, b.Right
		if id.litLeft {
			v, lit = lit, v
		}

		if !isIdent(v) || !isLit(lit, id.lit) {
			continue
		}

		if id.zero {
			return ast.Int{Text: "0"}, true
		}

		return v, true
	}

	return nil, false
}

// selfAssigned reports whether the rewrite is a plain x = x,
// which is dropped instead of kept.
func selfAssigned(a ast.Assign, val ast.Node) bool {
	v, ok := val.(ast.Ident)

	return ok && len(a.Types) == 0 && v.Name == a.Dest.Name
}

func assign(a ast.Assign, val ast.Node) string {
	var b strings.Builder

	for _, t := range a.Types {
		b.WriteString(t.Name)
		b.WriteByte(' ')
	}

	b.WriteString(a.Dest.Name)
	b.WriteString(" = ")

	switch v := val.(type) {
	case ast.Ident:
		b.WriteString(v.Name)
	case ast.Int:
		b.WriteString(v.Text)
	}

	b.WriteByte(';')

	return b.String()
}

func isIdent(x ast.Node) bool {
	_, ok := x.(ast.Ident)
	return ok
}

func isLit(x ast.Node, text string) bool {
	v, ok := x.(ast.Int)
	return ok && v.Text == text
}

func indent(l string) string {
	return l[:len(l)-len(strings.TrimLeft(l, " \t"))]
}

func (r Rule) String() string {
	switch r {
	case None:
		return "none"
	case SelfAssign:
		return "self_assign"
	case FoldDecl:
		return "fold_decl"
	case FoldAssign:
		return "fold_assign"
	case Identity:
		return "identity"
	}

	return "unknown"
}
