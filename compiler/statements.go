package compiler

import (
	"github.com/imp-lang/imp/ast"
	"github.com/imp-lang/imp/errors"
	"github.com/imp-lang/imp/op"
)

// compileStmt emits code for one statement. bs is the innermost scope in
// effect; Let mutates it to bind a new local.
func (c *Compiler) compileStmt(s ast.Stmt, bs *BlockScope) error {
	switch s := s.(type) {
	case *ast.Block:
		return c.compileBlock(s, bs)
	case *ast.ExprStmt:
		if err := c.compileExpr(s.X, bs); err != nil {
			return err
		}
		c.w.WriteOp(op.POP)
		c.depth--
		return nil
	case *ast.Return:
		if err := c.compileExpr(s.X, bs); err != nil {
			return err
		}
		localsToDrop := c.depth - 1
		c.w.WriteOp(op.RET)
		c.w.WriteUint32(uint32(localsToDrop))
		c.w.WriteUint32(uint32(c.curNargs))
		c.depth--
		return nil
	case *ast.Let:
		if s.Init == nil {
			return errors.NewCompileError("let %q has no initializer", s.Name)
		}
		if err := c.compileExpr(s.Init, bs); err != nil {
			return err
		}
		bs.declare(s.Name, c.depth)
		return nil
	case *ast.If:
		return c.compileIf(s, bs)
	case *ast.While:
		return c.compileWhile(s, bs)
	default:
		return errors.NewCompileError("unhandled statement type %T", s)
	}
}

// compileBlock opens a fresh BlockScope chained to parent, compiles each
// statement, then pops every local it declared, LIFO, so the enclosing
// code sees no net change in stack depth (spec §4.1: a block's locals
// never outlive it).
func (c *Compiler) compileBlock(b *ast.Block, parent scope) error {
	bs := newBlockScope(parent)
	startDepth := c.depth
	for _, stmt := range b.Statements {
		if err := c.compileStmt(stmt, bs); err != nil {
			return err
		}
	}
	for c.depth > startDepth {
		c.w.WriteOp(op.POP)
		c.depth--
	}
	return nil
}

func (c *Compiler) compileIf(s *ast.If, bs *BlockScope) error {
	if err := c.compileExpr(s.Cond, bs); err != nil {
		return err
	}
	c.depth--

	elseLabel := c.newLabel()
	c.w.WriteOp(op.JUMP_FALSE)
	c.emitFixup(elseLabel)

	depthBeforeBranches := c.depth
	if err := c.compileBranch(s.Then, bs); err != nil {
		return err
	}
	depthAfterThen := c.depth

	if s.Else == nil {
		c.emitLabel(elseLabel)
		return nil
	}

	endLabel := c.newLabel()
	c.w.WriteOp(op.JUMP)
	c.emitFixup(endLabel)

	c.emitLabel(elseLabel)
	c.depth = depthBeforeBranches
	if err := c.compileBranch(s.Else, bs); err != nil {
		return err
	}
	c.emitLabel(endLabel)
	c.depth = depthAfterThen
	return nil
}

func (c *Compiler) compileWhile(s *ast.While, bs *BlockScope) error {
	loopStart := c.newLabel()
	c.emitLabel(loopStart)

	if err := c.compileExpr(s.Cond, bs); err != nil {
		return err
	}
	c.depth--

	endLabel := c.newLabel()
	c.w.WriteOp(op.JUMP_FALSE)
	c.emitFixup(endLabel)

	if err := c.compileBranch(s.Body, bs); err != nil {
		return err
	}

	c.w.WriteOp(op.JUMP)
	c.emitFixup(loopStart)
	c.emitLabel(endLabel)
	return nil
}

// compileBranch compiles the body of an If/While arm. A Block body gets
// its own scope via compileBlock; a bare statement body shares the
// caller's scope, since it has no braces to delimit one of its own.
func (c *Compiler) compileBranch(s ast.Stmt, bs *BlockScope) error {
	if block, ok := s.(*ast.Block); ok {
		return c.compileBlock(block, bs)
	}
	return c.compileStmt(s, bs)
}
