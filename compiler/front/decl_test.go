package front

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minic/minic/compiler/ast"
)

func parse(t *testing.T, src string) []*ast.Decl {
	t.Helper()

	f, err := Parse(context.Background(), "test.c", []byte(src))
	require.NoError(t, err)

	return f.Decls
}

func TestArrayDecl(t *testing.T) {
	ds := parse(t, "int arr[10];")

	require.Len(t, ds, 1)
	assert.Equal(t, &ast.Decl{
		Name: "arr",
		Type: ast.Array{Elem: ast.Named{Names: []string{"int"}}, Dim: "10"},
		Line: 1,
	}, ds[0])
}

func TestDeclarators(t *testing.T) {
	ds := parse(t, `int x, *p;
char *argv[3];
int (*q)[4];
unsigned long n;
const int c = 1, m[N];
int (*fp)(int);
int add(int a, int b);
`)

	var names []string
	types := map[string]ast.Type{}

	for _, d := range ds {
		names = append(names, d.Name)
		types[d.Name] = d.Type
	}

	integer := ast.Named{Names: []string{"int"}}

	assert.Equal(t, []string{"x", "p", "argv", "q", "n", "c", "m", "fp", "add"}, names)

	assert.Equal(t, integer, types["x"])
	assert.Equal(t, ast.Pointer{Elem: integer}, types["p"])
	assert.Equal(t, ast.Array{Elem: ast.Pointer{Elem: ast.Named{Names: []string{"char"}}}, Dim: "3"}, types["argv"])
	assert.Equal(t, ast.Pointer{Elem: ast.Array{Elem: integer, Dim: "4"}}, types["q"])
	assert.Equal(t, ast.Named{Names: []string{"unsigned", "long"}}, types["n"])
	assert.Equal(t, integer, types["c"])
	assert.Equal(t, ast.Array{Elem: integer}, types["m"])
	assert.Equal(t, ast.Pointer{Elem: ast.Unknown{Shape: "function"}}, types["fp"])
	assert.Equal(t, ast.Unknown{Shape: "function"}, types["add"])
}

func TestFunctionBody(t *testing.T) {
	ds := parse(t, `#include <stdio.h>

int main(int argc, char *argv[]) {
	int a = 1;
	for (int i = 0; i < 10; i++) {
		float t;
	}
	if (a > 0) {
		char s[] = "hi";
	} else
		a = a + 1;
	while (a) a--;
	printf("%d\n", a);
	return a;
}
`)

	var names []string
	var lines []int

	for _, d := range ds {
		names = append(names, d.Name)
		lines = append(lines, d.Line)
	}

	assert.Equal(t, []string{"main", "a", "i", "t", "s"}, names)
	assert.Equal(t, []int{3, 4, 5, 6, 9}, lines)
}

func TestSkipped(t *testing.T) {
	ds := parse(t, `typedef int myint;
struct point { int x; int y; } pt;
struct point;
enum color { RED, GREEN = 2 } c;
int table[] = {1, 2, 3};
`)

	var names []string

	for _, d := range ds {
		names = append(names, d.Name)
	}

	assert.Equal(t, []string{"pt", "c", "table"}, names)
	assert.Equal(t, ast.Unknown{Shape: "struct"}, ds[0].Type)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, parse(t, ""))
	assert.Empty(t, parse(t, "// nothing here\n#define X 1\n"))
}

func TestParseError(t *testing.T) {
	for _, src := range []string{
		"int x y;",
		"int a = 1",
		"int @;",
	} {
		f, err := Parse(context.Background(), "bad.c", []byte(src))
		assert.Error(t, err, src)
		assert.Nil(t, f, src)
	}
}

func TestBlankDirectives(t *testing.T) {
	assert.Equal(t, "\nint x;\n  \n", string(blankDirectives([]byte("#include <a.h>\nint x;\n  \n"))))
	assert.Equal(t, "int y;\n", string(blankDirectives([]byte("int y;\n  #endif"))))
}

func TestErrorPosition(t *testing.T) {
	_, err := Parse(context.Background(), "bad.c", []byte("int a;\n\nint x y;\n"))
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.c", perr.Name)
	assert.Equal(t, 3, perr.Line)
	assert.Contains(t, err.Error(), "bad.c:3:")
}
