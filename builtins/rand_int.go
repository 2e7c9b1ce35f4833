package builtins

import "math/rand"

// randIntPrimitive backs `rand_int(bound)`: a uniform random integer in
// [0, bound). Grounded on the pack's frequent use of math/rand for
// sampling-style primitives; seeded once at process start via the
// package-level source, same as the teacher's own rand-backed helpers.
var randIntPrimitive = Primitive{
	Name:  "rand_int",
	Arity: 1,
	Call: func(args []int64) (int64, error) {
		bound := args[0]
		if bound <= 0 {
			return 0, errFault("rand_int: bound must be positive, got %d", bound)
		}
		return rand.Int63n(bound), nil
	},
}
