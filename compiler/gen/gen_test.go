package gen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	res := Generate(context.Background(), []string{"t1 = a + b", "t2 = t1 * c"})

	assert.Equal(t, []Instr{
		{LOAD, "a"},
		{ADD, "b"},
		{STORE, "t1"},
		{LOAD, "t1"},
		{MUL, "c"},
		{STORE, "t2"},
	}, res)
}

func TestLines(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		in  string
		out []string
	}{
		{"x = y;", []string{"MOVE y", "STORE x"}},
		{"t = x ;", []string{"MOVE x", "STORE t"}},
		{"t = a + b ;", []string{"LOAD a", "ADD b", "STORE t"}},
		{"  x=5  ", []string{"MOVE 5", "STORE x"}},
		{"d = a - b;", []string{"LOAD a", "SUB b", "STORE d"}},
		{"d = a / b", []string{"LOAD a", "DIV b", "STORE d"}},
		{"d = a * b - c", []string{"LOAD a * b", "SUB c", "STORE d"}},
		{"d = a - b + c", []string{"LOAD a - b", "ADD c", "STORE d"}},
		{"d = -a", []string{"LOAD ", "SUB a", "STORE d"}},
		{"d = a == b", []string{"MOVE a == b", "STORE d"}},
		{"no assignment here", nil},
		{"", nil},
	} {
		var got []string

		for _, x := range Line(ctx, nil, tc.in) {
			got = append(got, x.String())
		}

		assert.Equal(t, tc.out, got, "%q", tc.in)
	}
}

func TestEmpty(t *testing.T) {
	assert.Empty(t, Generate(context.Background(), nil))
	assert.Empty(t, Generate(context.Background(), []string{"{", "}"}))
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "STORE", STORE.String())
	assert.Equal(t, "UNKNOWN", Opcode(100).String())
	assert.Equal(t, "ADD b", Instr{ADD, "b"}.String())
}

func TestSkipContinues(t *testing.T) {
	res := Generate(context.Background(), []string{"a = b", "label:", "c = d / e"})

	assert.Equal(t, []Instr{
		{MOVE, "b"},
		{STORE, "a"},
		{LOAD, "d"},
		{DIV, "e"},
		{STORE, "c"},
	}, res)
}
