// Package ast defines the abstract syntax tree consumed (read-only) by
// the compiler: a Module is an ordered sequence of top-level items, each
// either a FuncDecl, a ProtoDecl, or a top-level Stmt (spec §2).
package ast

import (
	"fmt"
	"strings"

	"github.com/imp-lang/imp/token"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Stmt is a statement node: Block, While, If, Expr, Return or Let.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node: Ref, Binary, Call or Int.
type Expr interface {
	Node
	exprNode()
}

// Param is one formal parameter of a function or prototype declaration:
// an ordered (name, type) pair (spec §6).
type Param struct {
	Name string
	Type string
}

// Item is one top-level member of a Module: exactly one of FuncDecl,
// ProtoDecl or Stmt is non-nil.
type Item struct {
	Func  *FuncDecl
	Proto *ProtoDecl
	Stmt  Stmt
}

// Module is an ordered sequence of top-level items (spec §2).
type Module struct {
	Items []Item
}

// FuncDecl is a user-defined function: a name, ordered parameters, a
// return type and a body block.
type FuncDecl struct {
	Position   token.Position
	Name       string
	Params     []Param
	ReturnType string
	Body       *Block
}

func (d *FuncDecl) Pos() token.Position { return d.Position }
func (d *FuncDecl) String() string {
	var parts []string
	for _, p := range d.Params {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Type))
	}
	return fmt.Sprintf("func %s(%s): %s %s", d.Name, strings.Join(parts, ", "), d.ReturnType, d.Body)
}

// ProtoDecl declares a host primitive: a name, ordered parameters, a
// return type and the primitive name used to look up the host
// implementation in the runtime table (spec §6).
type ProtoDecl struct {
	Position      token.Position
	Name          string
	Params        []Param
	ReturnType    string
	PrimitiveName string
}

func (d *ProtoDecl) Pos() token.Position { return d.Position }
func (d *ProtoDecl) String() string {
	var parts []string
	for _, p := range d.Params {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Type))
	}
	return fmt.Sprintf("func %s(%s): %s = %q", d.Name, strings.Join(parts, ", "), d.ReturnType, d.PrimitiveName)
}
