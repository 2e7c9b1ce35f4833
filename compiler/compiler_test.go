package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-lang/imp/op"
	"github.com/imp-lang/imp/parser"
)

func opsOf(t *testing.T, source string) []op.Code {
	t.Helper()
	mod, err := parser.ParseModule(source, "test.imp")
	require.NoError(t, err)
	prog, err := Translate(mod)
	require.NoError(t, err)

	var ops []op.Code
	c := prog.NewCursor()
	for !c.AtEnd() {
		o := c.ReadOp()
		ops = append(ops, o)
		switch o {
		case op.PUSH_FUNC, op.JUMP, op.JUMP_FALSE:
			c.ReadAddr()
		case op.PUSH_PROTO:
			c.ReadInt64()
		case op.PUSH_INT:
			c.ReadInt64()
		case op.PEEK:
			c.ReadUint32()
		case op.RET:
			c.ReadUint32()
			c.ReadUint32()
		}
	}
	return ops
}

func TestTranslateEmitsStopAfterTopLevel(t *testing.T) {
	ops := opsOf(t, "1 + 2;")
	require.GreaterOrEqual(t, len(ops), 5)
	assert.Equal(t, op.PUSH_INT, ops[0])
	assert.Equal(t, op.PUSH_INT, ops[1])
	assert.Equal(t, op.ADD, ops[2])
	assert.Equal(t, op.POP, ops[3])
	assert.Equal(t, op.STOP, ops[4])
}

func TestTranslateRejectsUnterminatedFunction(t *testing.T) {
	mod, err := parser.ParseModule(`func f(): int { 1 + 2; }`, "test.imp")
	require.NoError(t, err)
	_, err = Translate(mod)
	assert.Error(t, err)
}

func TestTranslateRejectsUnknownPrimitive(t *testing.T) {
	mod, err := parser.ParseModule(`func f(): int = "not_a_real_primitive";`, "test.imp")
	require.NoError(t, err)
	_, err = Translate(mod)
	assert.Error(t, err)
}

func TestTranslateResolvesForwardReference(t *testing.T) {
	// `even` calls `odd` before `odd` is declared; the pre-pass must make
	// this resolvable regardless of declaration order.
	mod, err := parser.ParseModule(`
		func even(n: int): int {
			if (n == 0) { return 1; }
			return odd(n - 1);
		}
		func odd(n: int): int {
			if (n == 0) { return 0; }
			return even(n - 1);
		}
	`, "test.imp")
	require.NoError(t, err)
	_, err = Translate(mod)
	assert.NoError(t, err)
}
