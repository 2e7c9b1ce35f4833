package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Int(0).Truthy())
	assert.True(t, Int(1).Truthy())
	assert.True(t, Int(-1).Truthy())
	assert.True(t, Addr(0).Truthy())
	assert.True(t, FromProto(Proto{Index: 0, Name: "print_int"}).Truthy())
}

func TestConstructorsSetKind(t *testing.T) {
	assert.True(t, Int(5).IsInt())
	assert.False(t, Addr(5).IsInt())
	assert.Equal(t, AddrKind, Addr(12).Kind)
	assert.Equal(t, ProtoKind, FromProto(Proto{Index: 1}).Kind)
}

func TestString(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "addr:7", Addr(7).String())
	assert.Equal(t, "proto:rand_int", FromProto(Proto{Index: 0, Name: "rand_int"}).String())
}
