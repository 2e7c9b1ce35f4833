package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "ADD", ADD.String())
	assert.Equal(t, "STOP", STOP.String())
	assert.Equal(t, "OP(?)", Code(255).String())
}

func TestIsBinary(t *testing.T) {
	for _, c := range []Code{ADD, SUB, MUL, DIV, MOD, GREATER, LOWER, GREATER_EQ, LOWER_EQ, IS_EQ} {
		assert.Truef(t, c.IsBinary(), "%s should be binary", c)
	}
	for _, c := range []Code{PUSH_INT, PUSH_FUNC, PUSH_PROTO, PEEK, POP, CALL, RET, JUMP, JUMP_FALSE, STOP} {
		assert.Falsef(t, c.IsBinary(), "%s should not be binary", c)
	}
}
