package builtins

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// newTagPrimitive backs `new_tag()`: mints a fresh UUIDv4 and folds it
// into an int64 via FNV-1a, since Value has no string variant for the
// raw UUID to live in (spec's Non-goals exclude a string runtime type).
// Collisions are astronomically unlikely for a tagging primitive and are
// not a correctness concern here.
var newTagPrimitive = Primitive{
	Name:  "new_tag",
	Arity: 0,
	Call: func(args []int64) (int64, error) {
		id := uuid.New()
		h := fnv.New64a()
		_, _ = h.Write(id[:])
		return int64(h.Sum64()), nil
	},
}
