package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPopTop(t *testing.T) {
	sh := New()

	sh.Dispatch([]Value{String("push"), String("a")})
	sh.Dispatch([]Value{String("push"), String("b")})

	assert.Equal(t, "2", sh.Dispatch([]Value{String("l-stack")}).Str())
	assert.Equal(t, "b", sh.Dispatch([]Value{String("top")}).Str())
	assert.Equal(t, "b", sh.Dispatch([]Value{String("pop")}).Str())
	assert.Equal(t, "a", sh.Dispatch([]Value{String("pop")}).Str())
	assert.Equal(t, "0", sh.Dispatch([]Value{String("l-stack")}).Str())
}

func TestStack_PopEmptyIsVoid(t *testing.T) {
	sh := New()
	assert.True(t, sh.Dispatch([]Value{String("pop")}).IsVoid())
	assert.True(t, sh.Dispatch([]Value{String("top")}).IsVoid())
}

func TestStack_Rot(t *testing.T) {
	sh := New()
	sh.Dispatch([]Value{String("push"), String("first")})
	sh.Dispatch([]Value{String("push"), String("second")})

	sh.Dispatch([]Value{String("rot")})

	v := sh.Dispatch([]Value{String("stack")})
	require.True(t, v.IsList())
	require.Len(t, v.List(), 2)
	assert.Equal(t, "second", v.List()[0].Str())
	assert.Equal(t, "first", v.List()[1].Str())
}

func TestStack_ListReturnsSnapshot(t *testing.T) {
	sh := New()
	sh.Dispatch([]Value{String("push"), String("x")})
	sh.Dispatch([]Value{String("push"), String("y")})

	v := sh.Dispatch([]Value{String("stack")})
	require.True(t, v.IsList())
	require.Len(t, v.List(), 2)
	assert.Equal(t, "x", v.List()[0].Str())
	assert.Equal(t, "y", v.List()[1].Str())

	sh.Dispatch([]Value{String("rot")})
	assert.Equal(t, "x", v.List()[0].Str(), "rotating the stack afterwards leaves the returned list unchanged")
}
