// Package dis disassembles a bytecode.Program back into a readable
// per-instruction listing, address-annotated so it doubles as a map for
// matching JUMP/CALL targets to the instructions they reach.
package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/imp-lang/imp/bytecode"
	"github.com/imp-lang/imp/op"
)

// Instruction is one decoded instruction: its address, opcode, and
// operands rendered as already-formatted text (an address for jumps and
// calls, a literal for immediates).
type Instruction struct {
	Addr     int
	Op       op.Code
	Operands string
}

func (ins Instruction) String() string {
	if ins.Operands == "" {
		return fmt.Sprintf("%08d  %s", ins.Addr, ins.Op)
	}
	return fmt.Sprintf("%08d  %-10s %s", ins.Addr, ins.Op, ins.Operands)
}

// Disassemble decodes every instruction in prog, in stream order.
func Disassemble(prog *bytecode.Program) []Instruction {
	var out []Instruction
	c := prog.NewCursor()
	for !c.AtEnd() {
		addr := c.Pos()
		o := c.ReadOp()
		var operands string
		switch o {
		case op.PUSH_FUNC, op.JUMP, op.JUMP_FALSE:
			operands = fmt.Sprintf("%08d", c.ReadAddr())
		case op.PUSH_PROTO:
			operands = fmt.Sprintf("#%d", c.ReadInt64())
		case op.PUSH_INT:
			operands = fmt.Sprintf("%d", c.ReadInt64())
		case op.PEEK:
			operands = fmt.Sprintf("%d", c.ReadUint32())
		case op.RET:
			depth := c.ReadUint32()
			nargs := c.ReadUint32()
			operands = fmt.Sprintf("depth=%d nargs=%d", depth, nargs)
		}
		out = append(out, Instruction{Addr: addr, Op: o, Operands: operands})
	}
	return out
}

// Fprint writes a full listing of prog to w.
func Fprint(w io.Writer, prog *bytecode.Program) error {
	var b strings.Builder
	fmt.Fprintf(&b, "; program %s, %d bytes\n", prog.ID(), prog.Len())
	for _, ins := range Disassemble(prog) {
		b.WriteString(ins.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
