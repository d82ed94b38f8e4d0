package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArith_Add(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("+"), String("1"), String("2"), String("3")})
	assert.Equal(t, "6", v.Str())
}

func TestArith_SubtractLeftToRight(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("-"), String("10"), String("3"), String("2")})
	assert.Equal(t, "5", v.Str())
}

func TestArith_Multiply(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("*"), String("2"), String("3"), String("4")})
	assert.Equal(t, "24", v.Str())
}

func TestArith_DivideByZeroDefaultsToOne(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("/"), String("10"), String("0")})
	assert.Equal(t, "10", v.Str())
}

func TestArith_DivideLeftToRight(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("/"), String("20"), String("2"), String("5")})
	assert.Equal(t, "2", v.Str())
}

func TestArith_Comparisons(t *testing.T) {
	sh := New()
	assert.True(t, sh.Dispatch([]Value{String("<"), String("1"), String("2")}).Bool())
	assert.False(t, sh.Dispatch([]Value{String("<"), String("2"), String("1")}).Bool())
	assert.True(t, sh.Dispatch([]Value{String(">"), String("2"), String("1")}).Bool())
	assert.True(t, sh.Dispatch([]Value{String("="), String("abc"), String("abc")}).Bool())
	assert.False(t, sh.Dispatch([]Value{String("="), String("abc"), String("abd")}).Bool())
}

func TestArith_Overflow_Wraps(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("+"), String("2147483647"), String("1")})
	assert.Equal(t, "-2147483648", v.Str())
}
