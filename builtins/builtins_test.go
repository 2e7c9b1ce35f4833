package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownPrimitive(t *testing.T) {
	idx, arity, ok := Lookup("print_int")
	require.True(t, ok)
	assert.Equal(t, 1, arity)
	assert.Equal(t, "print_int", Table[idx].Name)
}

func TestLookupUnknownPrimitive(t *testing.T) {
	_, _, ok := Lookup("does_not_exist")
	assert.False(t, ok)
}

func TestNewTagIsDeterministicallyShapedButUnique(t *testing.T) {
	a, err := newTagPrimitive.Call(nil)
	require.NoError(t, err)
	b, err := newTagPrimitive.Call(nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRandIntRespectsBound(t *testing.T) {
	n, err := randIntPrimitive.Call([]int64{10})
	require.NoError(t, err)
	assert.True(t, n >= 0 && n < 10)

	_, err = randIntPrimitive.Call([]int64{0})
	assert.Error(t, err)
}

func TestJSONProbeFindsStock(t *testing.T) {
	n, err := jsonProbePrimitive.Call([]int64{1})
	require.NoError(t, err)
	assert.Equal(t, int64(48), n)
}

func TestJSONProbeMissingIDReturnsSentinel(t *testing.T) {
	n, err := jsonProbePrimitive.Call([]int64{99})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), n)
}

func TestMemoFibMatchesClosedForm(t *testing.T) {
	cases := map[int64]int64{0: 0, 1: 1, 2: 1, 3: 2, 10: 55}
	for n, want := range cases {
		got, err := memoFibPrimitive.Call([]int64{n})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
