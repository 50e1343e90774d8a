package sema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	src := `int x = 5;
int x = 6;
int s = "str"; // bad
float f;
y = 3;
x = 'c';
f = "ok";

char c = 'a'; // fine
// z = 1;
for (int i = 0; i < 3; i++) {`

	ds := Check(context.Background(), src)
	require.Len(t, ds, 4)

	assert.Equal(t, Diagnostic{Line: 2, Kind: Redeclared, Name: "x", Msg: "Variable 'x' already declared."}, ds[0])
	assert.Equal(t, Diagnostic{Line: 3, Kind: InitMismatch, Name: "s", Msg: "Type mismatch: cannot assign string to int 's'."}, ds[1])
	assert.Equal(t, Diagnostic{Line: 5, Kind: Undeclared, Name: "y", Msg: "Variable 'y' used without declaration."}, ds[2])
	assert.Equal(t, Diagnostic{Line: 6, Kind: AssignMismatch, Name: "x", Msg: "Type mismatch: assigning string to int 'x'."}, ds[3])

	assert.Equal(t, "[Line 2] Variable 'x' already declared.", ds[0].Error())
}

func TestCheckClean(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, Check(ctx, ""))
	assert.Empty(t, Check(ctx, "int a;\na = 1;\nint b = a;\n"))
	assert.Empty(t, Check(ctx, "printf(\"x = %d;\", a);"))
}

func TestCheckSyntax(t *testing.T) {
	src := `#include <stdio.h>
int main() {
	int a = 1
	return a;
	printf("%d", a)
	// comment
	b = "x
}
}`

	ds := CheckSyntax(src)

	var kinds []Kind
	for _, d := range ds {
		kinds = append(kinds, d.Kind)
	}

	assert.Equal(t, []Kind{UnbalancedBraces, UnbalancedDoubleQuotes, MissingSemicolon, MissingSemicolon}, kinds)
	assert.Equal(t, 3, ds[2].Line)
	assert.Equal(t, 7, ds[3].Line)
	assert.Equal(t, "Unbalanced curly braces.", ds[0].Error())
	assert.Equal(t, "[Line 3] Missing semicolon", ds[2].Error())
}

func TestCheckSyntaxClean(t *testing.T) {
	assert.Empty(t, CheckSyntax("int main() {\n\tint a = 'b';\n\treturn 0;\n}\n"))
	assert.Empty(t, CheckSyntax(""))
}
