package sema

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"tlog.app/go/tlog"

	"github.com/minic/minic/compiler/ast"
	"github.com/minic/minic/compiler/parse"
)

type (
	Kind int

	Diagnostic struct {
		Line int // 1-based, 0 for whole text
		Kind Kind
		Name string
		Msg  string
	}
)

const (
	Redeclared Kind = iota
	InitMismatch
	Undeclared
	AssignMismatch

	UnbalancedBraces
	UnbalancedParens
	UnbalancedDoubleQuotes
	UnbalancedSingleQuotes
	MissingSemicolon
)

var (
	declaration = parse.AllOf{
		parse.AnyOf{parse.Keyword("int"), parse.Keyword("float"), parse.Keyword("char")},
		parse.Spaced(parse.Ident{}),
		parse.Optional{Parser: parse.Spaced(parse.Const("="))},
		parse.Until{Term: ';'},
	}

	assignment = parse.AllOf{
		parse.Ident{},
		parse.Spaced(parse.Const("=")),
		parse.Until{Term: ';'},
	}
)

// Check runs line based declaration and assignment checks.
// Only int, float and char variables are tracked.
func Check(ctx context.Context, text string) (ds []Diagnostic) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "sema: check", "size", len(text))
	defer tr.Finish()

	vars := map[string]string{}

	for i, l := range strings.Split(text, "\n") {
		line := i + 1

		if p := strings.Index(l, "//"); p >= 0 {
			l = l[:p]
		}

		b := bytes.TrimSpace([]byte(l))
		if len(b) == 0 {
			continue
		}

		if x, _, err := declaration.Parse(ctx, b, 0); err == nil {
			xs := x.([]ast.Node)

			typ := xs[0].(ast.Ident).Name
			name := xs[1].(ast.Ident).Name
			val := xs[3].(ast.Text).Text

			if _, ok := vars[name]; ok {
				ds = append(ds, Diagnostic{Line: line, Kind: Redeclared, Name: name,
					Msg: fmt.Sprintf("Variable '%s' already declared.", name)})

				continue
			}

			vars[name] = typ

			if typ == "int" && quoted(val) {
				ds = append(ds, Diagnostic{Line: line, Kind: InitMismatch, Name: name,
					Msg: fmt.Sprintf("Type mismatch: cannot assign string to int '%s'.", name)})
			}

			continue
		}

		x, _, err := assignment.Parse(ctx, b, 0)
		if err != nil {
			continue
		}

		xs := x.([]ast.Node)

		name := xs[0].(ast.Ident).Name
		val := xs[2].(ast.Text).Text

		typ, ok := vars[name]
		switch {
		case !ok:
			ds = append(ds, Diagnostic{Line: line, Kind: Undeclared, Name: name,
				Msg: fmt.Sprintf("Variable '%s' used without declaration.", name)})
		case typ == "int" && quoted(val):
			ds = append(ds, Diagnostic{Line: line, Kind: AssignMismatch, Name: name,
				Msg: fmt.Sprintf("Type mismatch: assigning string to int '%s'.", name)})
		}
	}

	if tr.If("sema_vars") {
		tr.Printw("variables", "vars", vars)
	}

	tr.Printw("checked", "diagnostics", len(ds))

	return ds
}

// CheckSyntax reports unbalanced brackets and quotes
// and statement lines lacking a semicolon.
func CheckSyntax(text string) (ds []Diagnostic) {
	for _, c := range []struct {
		open, close string
		kind        Kind
		msg         string
	}{
		{"{", "}", UnbalancedBraces, "Unbalanced curly braces."},
		{"(", ")", UnbalancedParens, "Unbalanced parentheses."},
	} {
		if strings.Count(text, c.open) != strings.Count(text, c.close) {
			ds = append(ds, Diagnostic{Kind: c.kind, Msg: c.msg})
		}
	}

	if strings.Count(text, `"`)%2 != 0 {
		ds = append(ds, Diagnostic{Kind: UnbalancedDoubleQuotes, Msg: "Unbalanced double quotes."})
	}

	if strings.Count(text, `'`)%2 != 0 {
		ds = append(ds, Diagnostic{Kind: UnbalancedSingleQuotes, Msg: "Unbalanced single quotes."})
	}

	ctx := context.Background()

	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)

		if l == "" || strings.HasSuffix(l, ";") || strings.HasSuffix(l, "{") || strings.HasSuffix(l, "}") || strings.Contains(l, "(") {
			continue
		}

		if _, _, err := (parse.Ident{}).Parse(ctx, []byte(l), 0); err != nil {
			continue
		}

		ds = append(ds, Diagnostic{Line: i + 1, Kind: MissingSemicolon, Msg: "Missing semicolon"})
	}

	return ds
}

func quoted(s string) bool {
	return strings.ContainsAny(s, `"'`)
}

func (d Diagnostic) Error() string {
	if d.Line == 0 {
		return d.Msg
	}

	return fmt.Sprintf("[Line %d] %s", d.Line, d.Msg)
}

func (k Kind) String() string {
	switch k {
	case Redeclared:
		return "redeclared"
	case InitMismatch:
		return "init_mismatch"
	case Undeclared:
		return "undeclared"
	case AssignMismatch:
		return "assign_mismatch"
	case UnbalancedBraces:
		return "unbalanced_braces"
	case UnbalancedParens:
		return "unbalanced_parens"
	case UnbalancedDoubleQuotes:
		return "unbalanced_double_quotes"
	case UnbalancedSingleQuotes:
		return "unbalanced_single_quotes"
	case MissingSemicolon:
		return "missing_semicolon"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}
