// Package compiler translates a parsed ast.Module into a bytecode.Program
// (spec §4.1). Translate runs two passes: first it resolves every
// top-level name (function labels, prototype bindings) so forward
// references work regardless of declaration order, then it emits code —
// top-level statements first, terminated by STOP, followed by every
// function body.
package compiler

import (
	"github.com/imp-lang/imp/ast"
	"github.com/imp-lang/imp/builtins"
	"github.com/imp-lang/imp/bytecode"
	"github.com/imp-lang/imp/errors"
	"github.com/imp-lang/imp/op"
)

// Compiler holds the state of a single Translate call. depth is a
// counter relative to the start of whatever it's currently emitting
// (the top-level program, or one function body): it resets to 0 at each
// of those boundaries and tracks exactly how many values have been
// pushed net of pops since then. PEEK immediates are computed from it,
// which is what lets a function body compile once and run correctly
// from any call site (spec §4.1's stack-depth invariant).
type Compiler struct {
	w      *bytecode.Writer
	global *GlobalScope
	depth  int

	curNargs int // formal parameter count of the function currently being emitted
}

// Translate compiles a complete Module. It returns the first compile
// error encountered; codegen trusts that mod already passed parsing and
// does not try to recover from malformed input (spec §7).
func Translate(mod *ast.Module) (*bytecode.Program, error) {
	c := &Compiler{w: bytecode.NewWriter(), global: newGlobalScope()}

	if err := c.resolveTopLevel(mod); err != nil {
		return nil, err
	}

	topScope := newBlockScope(c.global)
	c.depth = 0
	for _, item := range mod.Items {
		if item.Stmt == nil {
			continue
		}
		if err := c.compileStmt(item.Stmt, topScope); err != nil {
			return nil, err
		}
	}
	c.w.WriteOp(op.STOP)

	for _, item := range mod.Items {
		if item.Func == nil {
			continue
		}
		if err := c.compileFunc(item.Func); err != nil {
			return nil, err
		}
	}

	return c.w.Program(), nil
}

// resolveTopLevel is the pre-pass: every function gets a label (so
// PUSH_FUNC can reference it before the body is emitted) and every
// prototype resolves to a primitive table index.
func (c *Compiler) resolveTopLevel(mod *ast.Module) error {
	for _, item := range mod.Items {
		switch {
		case item.Func != nil:
			if _, exists := c.global.funcs[item.Func.Name]; exists {
				return errors.NewCompileError("duplicate top-level name %q", item.Func.Name)
			}
			c.global.funcs[item.Func.Name] = c.newLabel()
		case item.Proto != nil:
			idx, arity, ok := builtins.Lookup(item.Proto.PrimitiveName)
			if !ok {
				return errors.NewCompileError("unknown primitive %q for proto %q", item.Proto.PrimitiveName, item.Proto.Name)
			}
			if arity != len(item.Proto.Params) {
				return errors.NewCompileError("proto %q declares %d params but primitive %q takes %d",
					item.Proto.Name, len(item.Proto.Params), item.Proto.PrimitiveName, arity)
			}
			c.global.protos[item.Proto.Name] = idx
		}
	}
	return nil
}

func (c *Compiler) compileFunc(fn *ast.FuncDecl) error {
	lbl := c.global.funcs[fn.Name]
	c.emitLabel(lbl)
	c.depth = 0
	c.curNargs = len(fn.Params)

	paramNames := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		paramNames[i] = p.Name
	}
	fs := newFuncScope(c.global, paramNames)
	bs := newBlockScope(fs)

	if !endsInReturn(fn.Body) {
		return errors.NewCompileError("function %q does not end in a return statement", fn.Name)
	}

	for _, stmt := range fn.Body.Statements {
		if err := c.compileStmt(stmt, bs); err != nil {
			return err
		}
	}
	return nil
}

// endsInReturn enforces the grammar-level rule that every function body
// terminates in a return on its final statement (SPEC_FULL.md §0.4: no
// implicit fallthrough return). An If whose both branches end in return
// counts as terminal.
func endsInReturn(b *ast.Block) bool {
	if len(b.Statements) == 0 {
		return false
	}
	switch last := b.Statements[len(b.Statements)-1].(type) {
	case *ast.Return:
		return true
	case *ast.If:
		return last.Else != nil && stmtEndsInReturn(last.Then) && stmtEndsInReturn(last.Else)
	case *ast.Block:
		return endsInReturn(last)
	default:
		return false
	}
}

func stmtEndsInReturn(s ast.Stmt) bool {
	switch v := s.(type) {
	case *ast.Return:
		return true
	case *ast.Block:
		return endsInReturn(v)
	case *ast.If:
		return v.Else != nil && stmtEndsInReturn(v.Then) && stmtEndsInReturn(v.Else)
	default:
		return false
	}
}
