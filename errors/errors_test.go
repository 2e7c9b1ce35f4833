package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imp-lang/imp/token"
)

func TestParseErrorFormatting(t *testing.T) {
	pos := token.Position{Line: 2, Column: 3}
	err := NewParseError(pos, "unexpected %q", "}")
	assert.Equal(t, `3:4: unexpected "}"`, err.Error())
}

func TestCompileErrorFormatting(t *testing.T) {
	err := NewCompileError("undefined name %q", "x")
	assert.Equal(t, `internal error: undefined name "x"`, err.Error())
}
