package vm

import (
	"math"

	"github.com/imp-lang/imp/op"
	"github.com/imp-lang/imp/value"
)

// execBinary implements the arithmetic and comparison opcodes, all of
// which share the same "pop rhs, pop lhs, push result" shape. Comparison
// operands are evaluated lhs OP rhs (SPEC_FULL.md §0.4's Open Question
// resolution; the original the spec was distilled from evaluates
// rhs OP lhs for these opcodes, which we deliberately do not follow).
func (v *VM) execBinary(o op.Code) error {
	rhs, err := v.pop()
	if err != nil {
		return err
	}
	lhs, err := v.pop()
	if err != nil {
		return err
	}
	if !lhs.IsInt() || !rhs.IsInt() {
		return fault("type error: %s requires two integers, got %s and %s", o, lhs.Kind, rhs.Kind)
	}

	a, b := lhs.Int, rhs.Int
	var result value.Value
	switch o {
	case op.ADD:
		sum, ok := addOverflows(a, b)
		if !ok {
			return fault("overflow error: %d + %d overflows int64", a, b)
		}
		result = value.Int(sum)
	case op.SUB:
		diff, ok := subOverflows(a, b)
		if !ok {
			return fault("overflow error: %d - %d overflows int64", a, b)
		}
		result = value.Int(diff)
	case op.MUL:
		prod, ok := mulOverflows(a, b)
		if !ok {
			return fault("overflow error: %d * %d overflows int64", a, b)
		}
		result = value.Int(prod)
	case op.DIV:
		if b == 0 {
			return fault("division by 0")
		}
		result = value.Int(a / b)
	case op.MOD:
		if b == 0 {
			return fault("division by 0")
		}
		result = value.Int(a % b)
	case op.GREATER:
		result = boolInt(a > b)
	case op.LOWER:
		result = boolInt(a < b)
	case op.GREATER_EQ:
		result = boolInt(a >= b)
	case op.LOWER_EQ:
		result = boolInt(a <= b)
	case op.IS_EQ:
		result = boolInt(a == b)
	default:
		return fault("internal error: %s is not a binary opcode", o)
	}
	return v.push(result)
}

func boolInt(b bool) value.Value {
	if b {
		return value.Int(1)
	}
	return value.Int(0)
}

// addOverflows reports whether a+b fits in an int64, returning the sum
// and true if it does, or 0 and false if it does not.
func addOverflows(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subOverflows(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

// mulOverflows reports whether a*b fits in an int64. MUL is checked here
// even though the original source this spec was distilled from only
// checks ADD and SUB (SPEC_FULL.md §0.4's Open Question resolution
// closes that gap rather than reproducing it).
func mulOverflows(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	return prod, true
}
