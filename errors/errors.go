// Package errors defines the two error taxonomies described in spec §7:
// source-located parse errors (user-visible diagnostics, aggregated so a
// single parse reports every syntax error it found) and compile errors
// (internal assertions the compiler raises when it is handed something
// the verifier should have rejected; these are never meant to carry a
// friendly message to an end user).
package errors

import (
	"fmt"

	"github.com/imp-lang/imp/token"
)

// SourceLocation pins a diagnostic to a 1-based line/column in the
// original source. It is intentionally minimal, matching the teacher's
// own bytecode.SourceLocation shape.
type SourceLocation struct {
	Line   int
	Column int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// FromPosition builds a SourceLocation from a token.Position.
func FromPosition(p token.Position) SourceLocation {
	return SourceLocation{Line: p.LineNumber(), Column: p.ColumnNumber()}
}

// ParseError is a single syntax error found while parsing.
type ParseError struct {
	Location SourceLocation
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// NewParseError builds a ParseError at the given position.
func NewParseError(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{Location: FromPosition(pos), Message: fmt.Sprintf(format, args...)}
}

// CompileError is an internal assertion failure: codegen trusts that its
// input AST has already passed verification (spec §7 — "the codegen
// trusts the verifier"). A CompileError means that trust was violated by
// a malformed or hand-built AST; production code should never recover
// from one, only report it as an opaque internal error.
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}

// NewCompileError builds a CompileError.
func NewCompileError(format string, args ...any) *CompileError {
	return &CompileError{Message: fmt.Sprintf(format, args...)}
}
