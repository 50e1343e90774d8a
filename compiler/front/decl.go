package front

import (
	"bytes"
	"context"
	"os"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic/minic/compiler/ast"
)

func ParseFile(ctx context.Context, name string) (*ast.File, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	return Parse(ctx, name, text)
}

// Parse reads C declarations from text.
// Declarations are returned in the order a full tree walk meets them.
func Parse(ctx context.Context, name string, text []byte) (f *ast.File, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "front: parse", "name", name, "size", len(text))
	defer tr.Finish("err", &err)

	u := &unit{}

	err = parser.ParseString(string(blankDirectives(text)), u)
	if err != nil {
		return nil, wrapError(name, err)
	}

	f = &ast.File{}

	for _, d := range u.Decls {
		f.Decls = d.collect(f.Decls)
	}

	tr.Printw("declarations", "n", len(f.Decls))

	return f, nil
}

// blankDirectives empties preprocessor lines keeping line numbers.
func blankDirectives(text []byte) []byte {
	var res []byte

	for len(text) != 0 {
		line := text
		rest := []byte(nil)

		if i := bytes.IndexByte(text, '\n'); i >= 0 {
			line, rest = text[:i+1], text[i+1:]
		}

		if t := bytes.TrimLeft(line, " \t"); len(t) != 0 && t[0] == '#' {
			if line[len(line)-1] == '\n' {
				res = append(res, '\n')
			}
		} else {
			res = append(res, line...)
		}

		text = rest
	}

	return res
}

func (d *declaration) collect(ds []*ast.Decl) []*ast.Decl {
	if !d.typedef() {
		base := baseType(d.Specs)

		for _, in := range d.Inits {
			name := in.Declarator.name()
			if name == "" {
				continue
			}

			ds = append(ds, &ast.Decl{
				Name: name,
				Type: in.Declarator.resolve(base),
				Line: d.Pos.Line,
			})
		}
	}

	if d.Body != nil {
		ds = d.Body.collect(ds)
	}

	return ds
}

func (d *declaration) typedef() bool {
	for _, s := range d.Specs {
		if s.Storage == "typedef" {
			return true
		}
	}

	return false
}

func (b *block) collect(ds []*ast.Decl) []*ast.Decl {
	for _, it := range b.Items {
		switch {
		case it.Decl != nil:
			ds = it.Decl.collect(ds)
		case it.For != nil && it.For.Init != nil:
			ds = it.For.Init.collect(ds)
		case it.Block != nil:
			ds = it.Block.collect(ds)
		}
	}

	return ds
}

func baseType(specs []*specifier) ast.Type {
	var names []string

	for _, s := range specs {
		switch {
		case s.Tagged != nil:
			return ast.Unknown{Shape: s.Tagged.Kind}
		case s.Type != "":
			names = append(names, s.Type)
		}
	}

	if len(names) == 0 {
		return ast.Unknown{Shape: "implicit"}
	}

	return ast.Named{Names: names}
}

func (d *declarator) name() string {
	switch {
	case d == nil:
		return ""
	case d.Name != "":
		return d.Name
	default:
		return d.Nested.name()
	}
}

// resolve wraps t in the declarator layers.
// Pointers bind looser than suffixes, suffixes apply right to left
// and a parenthesized declarator wraps the result.
func (d *declarator) resolve(t ast.Type) ast.Type {
	for range d.Pointers {
		t = ast.Pointer{Elem: t}
	}

	for i := len(d.Suffixes) - 1; i >= 0; i-- {
		s := d.Suffixes[i]

		if !s.Array {
			t = ast.Unknown{Shape: "function"}
			continue
		}

		t = ast.Array{Elem: t, Dim: s.dim()}
	}

	if d.Nested != nil {
		return d.Nested.resolve(t)
	}

	return t
}

func (s *suffix) dim() string {
	if len(s.Dim) != 1 {
		return ""
	}

	if _, err := strconv.ParseInt(s.Dim[0], 10, 64); err == nil {
		return s.Dim[0]
	}

	if _, err := strconv.ParseInt(s.Dim[0], 0, 64); err == nil {
		return s.Dim[0]
	}

	return ""
}
