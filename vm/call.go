package vm

import (
	"github.com/imp-lang/imp/builtins"
	"github.com/imp-lang/imp/value"
)

// execCall implements CALL: pop the callee value and dispatch on its
// kind (spec §4.2). A user function (AddrKind) gets a pushed return
// address and a jump; a primitive (ProtoKind) runs immediately and
// leaves its result in the callee's place; an Int callee is the one
// non-callable case the opcode set must reject explicitly.
func (v *VM) execCall() error {
	callee, err := v.pop()
	if err != nil {
		return err
	}
	switch callee.Kind {
	case value.AddrKind:
		retAddr := v.cursor.Pos()
		if err := v.push(value.Addr(retAddr)); err != nil {
			return err
		}
		v.cursor.Seek(callee.Addr)
		return nil
	case value.ProtoKind:
		return v.execProtoCall(callee.Proto)
	case value.IntKind:
		return fault("cannot call integer")
	default:
		return fault("type error: value of kind %s is not callable", callee.Kind)
	}
}

func (v *VM) execProtoCall(p value.Proto) error {
	if p.Index < 0 || p.Index >= len(builtins.Table) {
		return fault("internal error: invalid primitive index %d", p.Index)
	}
	prim := builtins.Table[p.Index]
	args := make([]int64, prim.Arity)
	for i := 0; i < prim.Arity; i++ {
		arg, err := v.pop()
		if err != nil {
			return err
		}
		if !arg.IsInt() {
			return fault("type error: %s expects an integer argument, got %s", prim.Name, arg.Kind)
		}
		args[i] = arg.Int
	}
	result, err := prim.Call(args)
	if err != nil {
		return fault("%s: %v", prim.Name, err)
	}
	return v.push(value.Int(result))
}

// execRet implements RET depth nargs: pop the return value, drop depth
// locals, restore pc from the saved return address, drop nargs formal
// arguments, then push the return value back (spec §4.2's non-native
// calling convention).
func (v *VM) execRet() error {
	localsToDrop := int(v.cursor.ReadUint32())
	nargs := int(v.cursor.ReadUint32())

	result, err := v.pop()
	if err != nil {
		return err
	}
	if err := v.dropN(localsToDrop); err != nil {
		return err
	}
	retAddr, err := v.pop()
	if err != nil {
		return err
	}
	if retAddr.Kind != value.AddrKind {
		return fault("internal error: RET found non-address where return address was expected")
	}
	if err := v.dropN(nargs); err != nil {
		return err
	}
	v.cursor.Seek(retAddr.Addr)
	return v.push(result)
}

func (v *VM) dropN(n int) error {
	if err := v.requireDepth(n); err != nil {
		return err
	}
	v.stack = v.stack[:len(v.stack)-n]
	return nil
}
