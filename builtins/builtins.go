// Package builtins implements the host primitive table: the runtime
// counterpart of an IMP ProtoDecl (spec §6). Every primitive is a host
// function over int64 arguments returning a single int64 — the host
// boundary never carries anything but Int across it, matching the
// closed three-variant Value union in package value.
package builtins

import "fmt"

// Primitive is one named, fixed-arity host function reachable from IMP
// via a ProtoDecl whose PrimitiveName matches Name.
type Primitive struct {
	Name  string
	Arity int
	Call  func(args []int64) (int64, error)
}

// Table is the closed, ordered list of primitives the vm can dispatch
// to. Index position is what value.Proto.Index refers to; it must not
// be reordered once a compiled Program depends on it; the compiler and
// vm both resolve primitives through this package so the mapping stays
// in one place.
var Table = buildTable()

var byName map[string]int

func buildTable() []Primitive {
	t := []Primitive{
		printIntPrimitive,
		randIntPrimitive,
		newTagPrimitive,
		jsonProbePrimitive,
		memoFibPrimitive,
		awsIdentityLenPrimitive,
	}
	byName = make(map[string]int, len(t))
	for i, p := range t {
		byName[p.Name] = i
	}
	return t
}

// Lookup resolves a primitive by name, returning its table index and
// arity. The compiler calls this while resolving a ProtoDecl; ok is
// false for an unknown primitive name, which the compiler surfaces as a
// CompileError.
func Lookup(name string) (index int, arity int, ok bool) {
	i, ok := byName[name]
	if !ok {
		return 0, 0, false
	}
	return i, Table[i].Arity, true
}

// errFault wraps a primitive-level failure so it surfaces through the vm
// the same way an opcode-level fault would (spec §7's closed runtime
// fault taxonomy is extended, not replaced, by primitives).
func errFault(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
