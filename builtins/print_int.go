package builtins

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// printIntPrimitive is the primitive behind `print_int`, the primitive
// every end-to-end scenario in spec §8 relies on for observable output.
// It writes the argument to stdout and returns it unchanged, so callers
// can thread it through an expression without losing the value.
var printIntPrimitive = Primitive{
	Name:  "print_int",
	Arity: 1,
	Call: func(args []int64) (int64, error) {
		n := args[0]
		fmt.Println(n)
		log.Debug().Int64("value", n).Msg("print_int")
		return n, nil
	},
}
