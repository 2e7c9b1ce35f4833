package ast

import (
	"fmt"
	"strings"

	"github.com/imp-lang/imp/token"
)

// Block is a sequence of statements forming a lexical block (spec §4.1's
// "Statement lowering": a Block opens a fresh scope and pops its locals
// on exit, LIFO).
type Block struct {
	Position   token.Position
	Statements []Stmt
}

func (s *Block) stmtNode()             {}
func (s *Block) Pos() token.Position   { return s.Position }
func (s *Block) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range s.Statements {
		b.WriteString("  " + stmt.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// While is a pre-tested loop: while (Cond) Body.
type While struct {
	Position token.Position
	Cond     Expr
	Body     Stmt
}

func (s *While) stmtNode()           {}
func (s *While) Pos() token.Position { return s.Position }
func (s *While) String() string      { return fmt.Sprintf("while (%s) %s", s.Cond, s.Body) }

// If is a conditional with an optional else branch.
type If struct {
	Position token.Position
	Cond     Expr
	Then     Stmt
	Else     Stmt // nil if absent
}

func (s *If) stmtNode()           {}
func (s *If) Pos() token.Position { return s.Position }
func (s *If) String() string {
	if s.Else == nil {
		return fmt.Sprintf("if (%s) %s", s.Cond, s.Then)
	}
	return fmt.Sprintf("if (%s) %s else %s", s.Cond, s.Then, s.Else)
}

// ExprStmt evaluates Expr for its side effects and discards the result.
type ExprStmt struct {
	Position token.Position
	X        Expr
}

func (s *ExprStmt) stmtNode()           {}
func (s *ExprStmt) Pos() token.Position { return s.Position }
func (s *ExprStmt) String() string      { return s.X.String() + ";" }

// Return evaluates X and transfers it to the caller.
type Return struct {
	Position token.Position
	X        Expr
}

func (s *Return) stmtNode()           {}
func (s *Return) Pos() token.Position { return s.Position }
func (s *Return) String() string      { return fmt.Sprintf("return %s;", s.X) }

// Let declares a new local. Init may be nil (spec §4.1's open question:
// a Let without an initializer binds a name to a non-existent stack
// slot; our parser never produces this, see SPEC_FULL.md §0.4).
type Let struct {
	Position token.Position
	Name     string
	Type     string
	Init     Expr // may be nil
}

func (s *Let) stmtNode()           {}
func (s *Let) Pos() token.Position { return s.Position }
func (s *Let) String() string {
	if s.Init == nil {
		return fmt.Sprintf("let %s: %s;", s.Name, s.Type)
	}
	return fmt.Sprintf("let %s: %s = %s;", s.Name, s.Type, s.Init)
}
