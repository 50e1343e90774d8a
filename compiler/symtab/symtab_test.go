package symtab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minic/minic/compiler/ast"
)

func named(n ...string) ast.Named { return ast.Named{Names: n} }

func TestArray(t *testing.T) {
	tab := Build(context.Background(), &ast.File{Decls: []*ast.Decl{
		{Name: "arr", Type: ast.Array{Elem: named("int"), Dim: "10"}},
	}})

	r, ok := tab.Get("arr")
	require.True(t, ok)

	assert.Equal(t, "array of int", r.Type)
	assert.Equal(t, "10", r.Dimension)
	assert.Equal(t, "40 bytes", r.SizeText())
	assert.Equal(t, "memory[1]", r.AddressText())
}

func TestTypeName(t *testing.T) {
	for _, tc := range []struct {
		typ ast.Type
		exp string
	}{
		{named("int"), "int"},
		{named("unsigned", "long"), "unsigned long"},
		{ast.Pointer{Elem: named("char")}, "pointer to char"},
		{ast.Array{Elem: ast.Pointer{Elem: named("int")}, Dim: "3"}, "array of pointer to int"},
		{ast.Pointer{Elem: ast.Array{Elem: named("int")}}, "pointer to array of int"},
		{ast.Pointer{Elem: ast.Unknown{Shape: "function"}}, "pointer to unknown"},
		{ast.Unknown{}, "unknown"},
		{named(), "unknown"},
		{nil, "unknown"},
	} {
		assert.Equal(t, tc.exp, TypeName(tc.typ))
	}
}

func TestSizes(t *testing.T) {
	tab := Build(context.Background(), &ast.File{Decls: []*ast.Decl{
		{Name: "a", Type: named("double")},
		{Name: "b", Type: ast.Array{Elem: named("char"), Dim: "3"}},
		{Name: "c", Type: ast.Array{Elem: named("int")}},
		{Name: "d", Type: ast.Pointer{Elem: ast.Array{Elem: named("int"), Dim: "8"}}},
		{Name: "e", Type: ast.Array{Elem: ast.Array{Elem: named("int"), Dim: "3"}, Dim: "2"}},
		{Name: "f", Type: ast.Array{Elem: named("int"), Dim: "0x10"}},
		{Name: "g", Type: ast.Array{Elem: named("int"), Dim: "010"}},
		{Name: "h", Type: ast.Array{Elem: named("int"), Dim: "10u"}},
		{Name: "i", Type: ast.Array{Elem: named("int"), Dim: "4611686018427387904"}},
		{Name: "j", Type: ast.Array{Elem: named("int"), Dim: "-2"}},
	}})

	exp := []struct {
		name string
		dim  string
		size int
	}{
		{"a", "1", 4},
		{"b", "3", 12},
		{"c", "1", 4},
		{"d", "1", 4},
		{"e", "2", 8},
		{"f", "16", 64},
		{"g", "10", 40},
		{"h", "1", 4},
		{"i", "1", 4},
		{"j", "1", 4},
	}

	for _, e := range exp {
		r, ok := tab.Get(e.name)
		require.True(t, ok, e.name)

		assert.Equal(t, e.dim, r.Dimension, e.name)
		assert.Equal(t, e.size, r.Size, e.name)
	}
}

func TestAddresses(t *testing.T) {
	tab := Build(context.Background(), &ast.File{Decls: []*ast.Decl{
		{Name: "x", Type: named("int")},
		{Name: "y", Type: named("int")},
		{Name: "x", Type: named("char")},
		{Name: "z", Type: named("int")},
	}})

	require.Equal(t, 3, tab.Len())

	var names []string
	var addrs []int

	for _, r := range tab.Sorted() {
		names = append(names, r.Name)
		addrs = append(addrs, r.Address)
	}

	assert.Equal(t, []string{"y", "x", "z"}, names)
	assert.Equal(t, []int{2, 3, 4}, addrs)

	x, _ := tab.Get("x")
	assert.Equal(t, "char", x.Type)
}

func TestFreshBuilder(t *testing.T) {
	f := &ast.File{Decls: []*ast.Decl{{Name: "v", Type: named("int")}}}

	a := Build(context.Background(), f)
	b := Build(context.Background(), f)

	ra, _ := a.Get("v")
	rb, _ := b.Get("v")

	assert.Equal(t, 1, ra.Address)
	assert.Equal(t, ra, rb)
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, 0, Build(context.Background(), nil).Len())
	assert.Empty(t, Build(context.Background(), &ast.File{}).Sorted())
}
