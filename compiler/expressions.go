package compiler

import (
	"github.com/imp-lang/imp/ast"
	"github.com/imp-lang/imp/errors"
	"github.com/imp-lang/imp/op"
)

var binaryOps = map[ast.BinaryKind]op.Code{
	ast.ADD:        op.ADD,
	ast.SUB:        op.SUB,
	ast.MUL:        op.MUL,
	ast.DIV:        op.DIV,
	ast.MOD:        op.MOD,
	ast.GREATER:    op.GREATER,
	ast.LOWER:      op.LOWER,
	ast.GREATER_EQ: op.GREATER_EQ,
	ast.LOWER_EQ:   op.LOWER_EQ,
	ast.IS_EQ:      op.IS_EQ,
}

// compileExpr emits code that leaves exactly one additional value on the
// stack (net) relative to before the call, and advances c.depth to
// match.
func (c *Compiler) compileExpr(e ast.Expr, s scope) error {
	switch e := e.(type) {
	case *ast.Int:
		c.w.WriteOp(op.PUSH_INT)
		c.w.WriteInt64(e.Value)
		c.depth++
		return nil

	case *ast.Ref:
		return c.compileRef(e, s)

	case *ast.Binary:
		if err := c.compileExpr(e.LHS, s); err != nil {
			return err
		}
		if err := c.compileExpr(e.RHS, s); err != nil {
			return err
		}
		code, ok := binaryOps[e.Kind]
		if !ok {
			return errors.NewCompileError("unhandled binary operator %v", e.Kind)
		}
		c.w.WriteOp(code)
		c.depth--
		return nil

	case *ast.Call:
		return c.compileCall(e, s)

	default:
		return errors.NewCompileError("unhandled expression type %T", e)
	}
}

// compileRef resolves a name against the scope chain and emits the
// opcode that materializes its binding. ARG and LOCAL bindings are
// realized as PEEK of the current top-of-stack, using c.depth, the
// running count of values pushed since the start of the enclosing
// function (or the top-level program): an argument at parameter index i
// is always depth+i+1 slots below whatever is currently on top, and a
// local declared when the counter read d is always depth-d slots below
// it — both independent of the call site, which is what lets a function
// body compile once and run correctly however deep the call stack is
// when it executes (spec §4.1's stack-depth invariant).
func (c *Compiler) compileRef(e *ast.Ref, s scope) error {
	b, ok := s.lookup(e.Name)
	if !ok {
		return errors.NewCompileError("undefined name %q", e.Name)
	}
	switch b.kind {
	case bindFunc:
		c.w.WriteOp(op.PUSH_FUNC)
		c.emitFixup(b.label)
	case bindProto:
		c.w.WriteOp(op.PUSH_PROTO)
		c.w.WriteInt64(int64(b.protoIndex))
	case bindArg:
		idx := c.depth + b.argIndex + 1
		c.w.WriteOp(op.PEEK)
		c.w.WriteUint32(uint32(idx))
	case bindLocal:
		idx := c.depth - b.localDepth
		c.w.WriteOp(op.PEEK)
		c.w.WriteUint32(uint32(idx))
	default:
		return errors.NewCompileError("unresolved binding kind for %q", e.Name)
	}
	c.depth++
	return nil
}

// compileCall lowers a Call. Arguments are pushed in reverse order so
// that, once all of them and the callee are on the stack, the first
// logical argument sits nearest the top — which is exactly the order
// compileRef's ARG formula expects to find them in (spec §4.1: "Call's
// reverse-order arg lowering"). CALL (or the runtime's own accounting
// for a primitive callee) then leaves exactly one value, the result, in
// the callee's place: net effect on c.depth is always +1, regardless of
// how many args and intermediate pushes happened getting there.
func (c *Compiler) compileCall(e *ast.Call, s scope) error {
	depthBefore := c.depth
	for i := len(e.Args) - 1; i >= 0; i-- {
		if err := c.compileExpr(e.Args[i], s); err != nil {
			return err
		}
	}
	if err := c.compileExpr(e.Callee, s); err != nil {
		return err
	}
	c.w.WriteOp(op.CALL)
	c.depth = depthBefore + 1
	return nil
}
