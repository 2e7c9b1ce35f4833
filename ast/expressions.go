package ast

import (
	"fmt"
	"strings"

	"github.com/imp-lang/imp/token"
)

// BinaryKind identifies a binary operator.
type BinaryKind int

const (
	ADD BinaryKind = iota
	SUB
	MUL
	DIV
	MOD
	GREATER
	LOWER
	GREATER_EQ
	LOWER_EQ
	IS_EQ
)

func (k BinaryKind) String() string {
	switch k {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case MOD:
		return "%"
	case GREATER:
		return ">"
	case LOWER:
		return "<"
	case GREATER_EQ:
		return ">="
	case LOWER_EQ:
		return "<="
	case IS_EQ:
		return "=="
	default:
		return "?"
	}
}

// Ref is a reference to a bound name: a function, primitive, argument or
// local (resolved by the compiler's scope chain, spec §3.4).
type Ref struct {
	Position token.Position
	Name     string
}

func (e *Ref) exprNode()           {}
func (e *Ref) Pos() token.Position { return e.Position }
func (e *Ref) String() string      { return e.Name }

// Binary is a two-operand operator application. All IMP binary operators
// are left-associative (spec §4.1, "Parser-order precedence").
type Binary struct {
	Position token.Position
	Kind     BinaryKind
	LHS, RHS Expr
}

func (e *Binary) exprNode()           {}
func (e *Binary) Pos() token.Position { return e.Position }
func (e *Binary) String() string      { return fmt.Sprintf("(%s %s %s)", e.LHS, e.Kind, e.RHS) }

// Call applies Callee to Args, in source order.
type Call struct {
	Position token.Position
	Callee   Expr
	Args     []Expr
}

func (e *Call) exprNode()           {}
func (e *Call) Pos() token.Position { return e.Position }
func (e *Call) String() string {
	var parts []string
	for _, a := range e.Args {
		parts = append(parts, a.String())
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(parts, ", "))
}

// Int is an integer literal.
type Int struct {
	Position token.Position
	Value    int64
}

func (e *Int) exprNode()           {}
func (e *Int) Pos() token.Position { return e.Position }
func (e *Int) String() string      { return fmt.Sprintf("%d", e.Value) }
