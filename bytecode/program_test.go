package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-lang/imp/op"
)

func TestWriteAndReadRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteOp(op.PUSH_INT)
	w.WriteInt64(-42)
	w.WriteOp(op.PEEK)
	w.WriteUint32(3)
	w.WriteOp(op.JUMP)
	w.WriteAddr(17)
	w.WriteOp(op.STOP)

	prog := w.Program()
	c := prog.NewCursor()

	require.Equal(t, op.PUSH_INT, c.ReadOp())
	assert.Equal(t, int64(-42), c.ReadInt64())
	require.Equal(t, op.PEEK, c.ReadOp())
	assert.Equal(t, uint32(3), c.ReadUint32())
	require.Equal(t, op.JUMP, c.ReadOp())
	assert.Equal(t, 17, c.ReadAddr())
	require.Equal(t, op.STOP, c.ReadOp())
	assert.True(t, c.AtEnd())
}

func TestPatchAddr(t *testing.T) {
	w := NewWriter()
	w.WriteOp(op.JUMP)
	site := w.Offset()
	w.WriteAddr(0)
	target := w.Offset()
	w.WriteOp(op.STOP)
	w.PatchAddr(site, target)

	prog := w.Program()
	c := prog.NewCursor()
	c.ReadOp()
	assert.Equal(t, target, c.ReadAddr())
}

func TestSeek(t *testing.T) {
	w := NewWriter()
	w.WriteOp(op.STOP)
	w.WriteOp(op.POP)
	prog := w.Program()
	c := prog.NewCursor()
	c.Seek(1)
	assert.Equal(t, op.POP, c.ReadOp())
}
