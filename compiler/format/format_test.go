package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minic/minic/compiler/ast"
	"github.com/minic/minic/compiler/gen"
	"github.com/minic/minic/compiler/lex"
	"github.com/minic/minic/compiler/sema"
	"github.com/minic/minic/compiler/symtab"
)

func TestTokens(t *testing.T) {
	ts := lex.Tokenize(context.Background(), []byte("int x;"))

	b := AppendTokens(nil, ts)
	assert.Equal(t, "KEYWORD\tint\nIDENTIFIER\tx\nDELIMITER\t;\n", string(b))
}

func TestSymbols(t *testing.T) {
	tab := symtab.Build(context.Background(), &ast.File{Decls: []*ast.Decl{
		{Name: "x", Type: ast.Named{Names: []string{"int"}}, Line: 1},
		{Name: "arr", Type: ast.Array{Elem: ast.Named{Names: []string{"int"}}, Dim: "10"}, Line: 2},
	}})

	b := AppendSymbols(nil, tab)

	exp := "" +
		"Name             Type                         Size       Dimension Address      Line\n" +
		"x                int                          4 bytes    1         memory[1]    1\n" +
		"arr              array of int                 40 bytes   10        memory[2]    2\n"

	assert.Equal(t, exp, string(b))
}

func TestInstrs(t *testing.T) {
	b, err := Format(context.Background(), nil, []gen.Instr{{Op: gen.LOAD, Operand: "a"}, {Op: gen.STORE, Operand: "t"}})
	require.NoError(t, err)
	assert.Equal(t, "LOAD a\nSTORE t\n", string(b))
}

func TestDiagnostics(t *testing.T) {
	b := AppendDiagnostics(nil, []sema.Diagnostic{
		{Msg: "Unbalanced parentheses."},
		{Line: 4, Msg: "Missing semicolon"},
	})

	assert.Equal(t, "Unbalanced parentheses.\n[Line 4] Missing semicolon\n", string(b))
}

func TestFile(t *testing.T) {
	f := &ast.File{Decls: []*ast.Decl{
		{Name: "p", Type: ast.Pointer{Elem: ast.Named{Names: []string{"unsigned", "char"}}}, Line: 1},
		{Name: "m", Type: ast.Array{Elem: ast.Array{Elem: ast.Named{Names: []string{"int"}}, Dim: "3"}, Dim: "2"}, Line: 2},
		{Name: "f", Type: ast.Unknown{Shape: "function"}, Line: 3},
	}}

	b, err := Format(context.Background(), nil, f)
	require.NoError(t, err)

	assert.Equal(t, "p: *unsigned char  (line 1)\nm: [2][3]int  (line 2)\nf: <function>  (line 3)\n", string(b))
}

func TestUnsupported(t *testing.T) {
	_, err := Format(context.Background(), nil, 5)
	assert.Error(t, err)
}
