package dis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-lang/imp/compiler"
	"github.com/imp-lang/imp/parser"
)

func TestDisassembleRoundTripsOpcodeNames(t *testing.T) {
	mod, err := parser.ParseModule("1 + 2 * 3;", "test.imp")
	require.NoError(t, err)
	prog, err := compiler.Translate(mod)
	require.NoError(t, err)

	instrs := Disassemble(prog)
	require.NotEmpty(t, instrs)
	assert.Equal(t, "PUSH_INT", instrs[0].Op.String())
	assert.Contains(t, instrs[0].Operands, "1")

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, prog))
	assert.Contains(t, buf.String(), "STOP")
}
