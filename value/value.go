// Package value defines the runtime value representation used by the vm:
// a closed, three-variant tagged union over Int, Addr and Proto. There is
// deliberately no string, float, list or map variant — see the Non-goals
// in spec.md. Values interchange freely on the stack; only Int variants
// are accepted by arithmetic and comparison opcodes.
package value

import "fmt"

// Kind identifies which variant of Value is populated.
type Kind byte

const (
	// IntKind is a 64-bit signed integer.
	IntKind Kind = iota
	// AddrKind is a byte offset into a bytecode.Program: either a function
	// entry point (from PUSH_FUNC) or a saved return address (from CALL).
	AddrKind
	// ProtoKind is a handle to a host-implemented primitive function.
	ProtoKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case AddrKind:
		return "addr"
	case ProtoKind:
		return "proto"
	default:
		return "invalid"
	}
}

// Proto is a handle to a runtime primitive. It is opaque to the value
// system: the vm looks it up in the primitive table by index and invokes
// the corresponding host function. Storing Index rather than a bare func
// value keeps Proto and Value comparable with == (func values are not
// comparable in Go). IS_EQ itself accepts only Int operands.
type Proto struct {
	Index int
	Name  string
}

// Value is a single runtime value: exactly one of Int, Addr or Proto is
// meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Int   int64
	Addr  int
	Proto Proto
}

// Int returns an IntKind Value.
func Int(n int64) Value { return Value{Kind: IntKind, Int: n} }

// Addr returns an AddrKind Value.
func Addr(offset int) Value { return Value{Kind: AddrKind, Addr: offset} }

// FromProto returns a ProtoKind Value.
func FromProto(p Proto) Value { return Value{Kind: ProtoKind, Proto: p} }

// IsInt reports whether v holds an Int.
func (v Value) IsInt() bool { return v.Kind == IntKind }

// Truthy implements spec §3.3's truth test: false iff v is an Int equal to
// zero; every other variant (Addr, Proto) is truthy.
func (v Value) Truthy() bool {
	if v.Kind == IntKind {
		return v.Int != 0
	}
	return true
}

// String renders a Value for diagnostics (disassembly, debug logging).
func (v Value) String() string {
	switch v.Kind {
	case IntKind:
		return fmt.Sprintf("%d", v.Int)
	case AddrKind:
		return fmt.Sprintf("addr:%d", v.Addr)
	case ProtoKind:
		return fmt.Sprintf("proto:%s", v.Proto.Name)
	default:
		return "<invalid value>"
	}
}
