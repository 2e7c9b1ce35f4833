package parser

import (
	"github.com/hashicorp/go-multierror"

	"github.com/imp-lang/imp/errors"
	"github.com/imp-lang/imp/token"
)

// collectError records a syntax error without stopping parsing, so a
// single pass can surface every syntax error it finds instead of just
// the first one (SPEC_FULL.md §0.3 — original_source/parser.cpp throws
// on the first error; we aggregate via multierror instead).
func (p *Parser) collectError(pos token.Position, format string, args ...any) {
	p.errs = multierror.Append(p.errs, errors.NewParseError(pos, format, args...))
}

// Err returns the aggregated parse errors, or nil if parsing succeeded.
func (p *Parser) Err() error {
	if p.errs == nil {
		return nil
	}
	return p.errs.ErrorOrNil()
}
