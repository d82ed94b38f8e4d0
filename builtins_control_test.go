package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIf_EagerArgs(t *testing.T) {
	sh := New()
	assert.Equal(t, "yes", sh.Dispatch([]Value{String("if"), True, String("yes"), String("no")}).Str())
	assert.Equal(t, "no", sh.Dispatch([]Value{String("if"), False, String("yes"), String("no")}).Str())
}

func TestIf_QuotedCondition(t *testing.T) {
	sh := New()
	cond := List(String("="), String("a"), String("a")).WithDelay(1)
	got := sh.Dispatch([]Value{String("if"), cond, String("yes"), String("no")})
	assert.Equal(t, "yes", got.Str())
}

func TestAndOr_ShortCircuit(t *testing.T) {
	sh := New()
	assert.True(t, sh.Dispatch([]Value{String("and"), True, True}).Bool())
	assert.True(t, sh.Dispatch([]Value{String("and"), True, False}).IsFalse())
	assert.False(t, sh.Dispatch([]Value{String("or"), False, False}).Bool())
	assert.True(t, sh.Dispatch([]Value{String("or"), False, True}).Bool())
}

func TestNot(t *testing.T) {
	sh := New()
	assert.True(t, sh.Dispatch([]Value{String("not"), False}).Bool())
	assert.False(t, sh.Dispatch([]Value{String("not"), True}).Bool())
}

func TestWhile_LoopsUntilFalse(t *testing.T) {
	sh := New()
	const varName = "ESH_TEST_WHILE_COUNTER"
	os.Setenv(varName, "0")
	defer os.Unsetenv(varName)

	cond := List(String("<"), List(String("get"), String(varName)).WithDelay(1), String("3")).WithDelay(1)
	body := List(String("set"), String(varName), List(String("+"), List(String("get"), String(varName)).WithDelay(1), String("1")).WithDelay(1)).WithDelay(1)

	sh.Dispatch([]Value{String("while"), cond, body})
	assert.Equal(t, "3", os.Getenv(varName))
}
