package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_CopyIndependence(t *testing.T) {
	orig := List(String("a"), List(String("b"), String("c")))
	dup := orig.Copy()

	inner := dup.List()[1]
	inner.List()[0] = String("mutated")

	assert.Equal(t, "b", orig.List()[1].List()[0].Str(), "mutating a copy's nested list must not affect the original")
}

func TestValue_Squish(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want string
	}{
		{"plain string", String("hi"), "hi"},
		{"nested list", List(String("a"), List(String("b"), String("c"))), "abc"},
		{"bool true", True, "true"},
		{"bool false", False, "false"},
		{"void contributes nothing", List(Void, String("x")), "x"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Squish())
		})
	}
}

func TestValue_AsInt32(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want int32
	}{
		{"simple", String("42"), 42},
		{"negative", String("-7"), -7},
		{"padded", String("  13  "), 13},
		{"garbage", String("nope"), 0},
		{"empty", String(""), 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.AsInt32())
		})
	}
}

func TestValue_IsFalse(t *testing.T) {
	assert.True(t, False.IsFalse())
	assert.False(t, True.IsFalse())
	assert.False(t, String("").IsFalse(), "empty string is truthy")
	assert.False(t, List().IsFalse(), "empty list is truthy")
}

func TestValue_PrintQuotesWordsWithSpecials(t *testing.T) {
	v := List(String("foo"), String("has space"), True)
	printed := v.Print()
	require.Equal(t, `(foo "has space" true)`, printed)
}
