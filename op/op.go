// Package op defines the closed set of bytecode opcodes emitted by the
// compiler and executed by the vm.
package op

// Code is a single bytecode opcode. It is stored as one unsigned byte in
// the bytecode stream (see bytecode.Program), but kept as a small integer
// type here so Go code never has to think about the wire width.
type Code byte

const (
	Invalid Code = iota

	PUSH_FUNC  // operand: address (8 bytes)            stack: +1 (Addr)
	PUSH_PROTO // operand: primitive index (8 bytes)     stack: +1 (Proto)
	PUSH_INT   // operand: int64 (8 bytes)               stack: +1 (Int)
	PEEK       // operand: index (4 bytes)               stack: +1 (copy)
	POP        //                                         stack: -1
	CALL       //                                         stack: -1 callee, callee consumes args
	ADD        //                                         stack: -1
	SUB        //                                         stack: -1
	MUL        //                                         stack: -1
	DIV        //                                         stack: -1
	MOD        //                                         stack: -1
	GREATER    //                                         stack: -1
	LOWER      //                                         stack: -1
	GREATER_EQ //                                         stack: -1
	LOWER_EQ   //                                         stack: -1
	IS_EQ      //                                         stack: -1
	RET        // operand: depth (4 bytes), nargs (4 bytes)
	JUMP_FALSE // operand: address (8 bytes)              stack: -1
	JUMP       // operand: address (8 bytes)              stack: 0
	STOP
)

var names = map[Code]string{
	PUSH_FUNC:  "PUSH_FUNC",
	PUSH_PROTO: "PUSH_PROTO",
	PUSH_INT:   "PUSH_INT",
	PEEK:       "PEEK",
	POP:        "POP",
	CALL:       "CALL",
	ADD:        "ADD",
	SUB:        "SUB",
	MUL:        "MUL",
	DIV:        "DIV",
	MOD:        "MOD",
	GREATER:    "GREATER",
	LOWER:      "LOWER",
	GREATER_EQ: "GREATER_EQ",
	LOWER_EQ:   "LOWER_EQ",
	IS_EQ:      "IS_EQ",
	RET:        "RET",
	JUMP_FALSE: "JUMP_FALSE",
	JUMP:       "JUMP",
	STOP:       "STOP",
}

// String returns the mnemonic for the opcode, or "OP(?)" for an unknown
// value (which should never be seen outside of memory corruption, since
// the opcode set is closed).
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "OP(?)"
}

// IsBinary reports whether c is one of the binary arithmetic or comparison
// opcodes, which all share the "pop rhs, pop lhs, push result" shape.
func (c Code) IsBinary() bool {
	switch c {
	case ADD, SUB, MUL, DIV, MOD, GREATER, LOWER, GREATER_EQ, LOWER_EQ, IS_EQ:
		return true
	default:
		return false
	}
}
