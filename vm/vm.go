// Package vm implements the stack-based interpreter that executes a
// bytecode.Program (spec §4.2): a flat fetch-decode-execute loop over a
// byte-addressable instruction stream, operating on a slice-backed value
// stack of value.Value.
package vm

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/imp-lang/imp/builtins"
	"github.com/imp-lang/imp/bytecode"
	"github.com/imp-lang/imp/op"
	"github.com/imp-lang/imp/value"
)

// Fault is a user-visible runtime failure: one of the closed set spec §7
// names (overflow, division by zero, calling a non-callable value, a
// type error) or a primitive-level failure surfaced the same way. Faults
// are terminal: execution stops, there is no recovery path.
type Fault struct {
	Message string
}

func (f *Fault) Error() string { return f.Message }

func fault(format string, args ...any) *Fault {
	return &Fault{Message: fmt.Sprintf(format, args...)}
}

const defaultMaxStackDepth = 1 << 16

// VM executes one Program to completion (a STOP opcode) or until a
// Fault occurs. A VM is used once.
type VM struct {
	prog    *bytecode.Program
	cursor  bytecode.Cursor
	stack   []value.Value
	logger  zerolog.Logger
	maxSize int
}

// Option configures a VM, following the teacher's functional-options
// pattern for optional construction-time knobs.
type Option func(*VM)

// WithLogger attaches a structured logger used for opcode-level trace
// output at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(v *VM) { v.logger = l }
}

// WithMaxStackDepth overrides the default stack-depth ceiling, guarding
// against runaway recursion consuming unbounded memory.
func WithMaxStackDepth(n int) Option {
	return func(v *VM) { v.maxSize = n }
}

// New creates a VM ready to run prog from its entry point (byte offset 0).
func New(prog *bytecode.Program, opts ...Option) *VM {
	v := &VM{
		prog:    prog,
		cursor:  prog.NewCursor(),
		logger:  zerolog.Nop(),
		maxSize: defaultMaxStackDepth,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run executes the program from its current cursor position until a
// STOP opcode or a Fault. It returns the Fault, if any; a nil return
// means the program ran to completion.
func (v *VM) Run() error {
	for {
		o := v.cursor.ReadOp()
		v.logger.Debug().Str("op", o.String()).Int("pc", v.cursor.Pos()-1).Int("depth", len(v.stack)).Msg("exec")

		switch {
		case o == op.STOP:
			return nil
		case o.IsBinary():
			if err := v.execBinary(o); err != nil {
				return err
			}
		default:
			if err := v.execOther(o); err != nil {
				return err
			}
		}
	}
}

func (v *VM) execOther(o op.Code) error {
	switch o {
	case op.PUSH_FUNC:
		return v.push(value.Addr(v.cursor.ReadAddr()))
	case op.PUSH_PROTO:
		idx := int(v.cursor.ReadInt64())
		if idx < 0 || idx >= len(builtins.Table) {
			return fault("type error: invalid primitive index %d", idx)
		}
		return v.push(value.FromProto(value.Proto{Index: idx, Name: builtins.Table[idx].Name}))
	case op.PUSH_INT:
		return v.push(value.Int(v.cursor.ReadInt64()))
	case op.PEEK:
		idx := int(v.cursor.ReadUint32())
		target := len(v.stack) - 1 - idx
		if target < 0 || target >= len(v.stack) {
			return fault("internal error: PEEK index %d out of range (stack size %d)", idx, len(v.stack))
		}
		return v.push(v.stack[target])
	case op.POP:
		if err := v.requireDepth(1); err != nil {
			return err
		}
		v.stack = v.stack[:len(v.stack)-1]
	case op.CALL:
		return v.execCall()
	case op.RET:
		return v.execRet()
	case op.JUMP:
		v.cursor.Seek(v.cursor.ReadAddr())
	case op.JUMP_FALSE:
		addr := v.cursor.ReadAddr()
		cond, err := v.pop()
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			v.cursor.Seek(addr)
		}
	default:
		return fault("internal error: unexecutable opcode %s", o)
	}
	return nil
}

func (v *VM) push(val value.Value) error {
	if len(v.stack) >= v.maxSize {
		return fault("overflow error: stack depth exceeded %d", v.maxSize)
	}
	v.stack = append(v.stack, val)
	return nil
}

func (v *VM) pop() (value.Value, error) {
	if err := v.requireDepth(1); err != nil {
		return value.Value{}, err
	}
	val := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	return val, nil
}

func (v *VM) requireDepth(n int) error {
	if len(v.stack) < n {
		return fault("internal error: stack underflow")
	}
	return nil
}
