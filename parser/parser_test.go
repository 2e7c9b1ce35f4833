package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-lang/imp/ast"
)

func TestParseFuncDecl(t *testing.T) {
	mod, err := ParseModule(`
		func fact(n: int): int {
			if (n < 2) { return 1; }
			return n * fact(n - 1);
		}
	`, "test.imp")
	require.NoError(t, err)
	require.Len(t, mod.Items, 1)
	fn := mod.Items[0].Func
	require.NotNil(t, fn)
	assert.Equal(t, "fact", fn.Name)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "n", fn.Params[0].Name)
	assert.Equal(t, "int", fn.Params[0].Type)
	require.Len(t, fn.Body.Statements, 2)
}

func TestParseProtoDecl(t *testing.T) {
	mod, err := ParseModule(`func print_int(n: int): int = "print_int";`, "test.imp")
	require.NoError(t, err)
	require.Len(t, mod.Items, 1)
	proto := mod.Items[0].Proto
	require.NotNil(t, proto)
	assert.Equal(t, "print_int", proto.Name)
	assert.Equal(t, "print_int", proto.PrimitiveName)
}

func TestParseExpressionPrecedence(t *testing.T) {
	mod, err := ParseModule("10 - 3 * 2;", "test.imp")
	require.NoError(t, err)
	stmt := mod.Items[0].Stmt.(*ast.ExprStmt)
	bin := stmt.X.(*ast.Binary)
	assert.Equal(t, ast.SUB, bin.Kind)
	assert.Equal(t, int64(10), bin.LHS.(*ast.Int).Value)
	mulBin := bin.RHS.(*ast.Binary)
	assert.Equal(t, ast.MUL, mulBin.Kind)
}

func TestParseLetRequiresInitializer(t *testing.T) {
	_, err := ParseModule(`func f(): int { let x: int; return x; }`, "test.imp")
	require.Error(t, err)
}

func TestParseCallChaining(t *testing.T) {
	mod, err := ParseModule("f(1)(2);", "test.imp")
	require.NoError(t, err)
	outer := mod.Items[0].Stmt.(*ast.ExprStmt).X.(*ast.Call)
	require.Len(t, outer.Args, 1)
	assert.Equal(t, int64(2), outer.Args[0].(*ast.Int).Value)
	inner := outer.Callee.(*ast.Call)
	assert.Equal(t, "f", inner.Callee.(*ast.Ref).Name)
}

func TestParseWhileAndLet(t *testing.T) {
	mod, err := ParseModule(`
		func f(): int {
			let i: int = 0;
			while (i < 10) {
				i;
			}
			return i;
		}
	`, "test.imp")
	require.NoError(t, err)
	fn := mod.Items[0].Func
	require.Len(t, fn.Body.Statements, 3)
	_, isLet := fn.Body.Statements[0].(*ast.Let)
	assert.True(t, isLet)
	_, isWhile := fn.Body.Statements[1].(*ast.While)
	assert.True(t, isWhile)
}
