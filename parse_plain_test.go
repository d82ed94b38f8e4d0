package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlain_EagerDispatch(t *testing.T) {
	sh := New()
	v, err := sh.ParsePlain(`(+ 1 (+ 2 3))`)
	require.NoError(t, err)
	assert.Equal(t, int32(6), v.AsInt32())
}

func TestParsePlain_ExtraneousTrailing(t *testing.T) {
	sh := New()
	_, err := sh.ParsePlain(`(+ 1 2) garbage`)
	assert.Error(t, err)
}

func TestParsePlain_UnbalancedParens(t *testing.T) {
	sh := New()
	_, err := sh.ParsePlain(`(+ 1 2`)
	assert.Error(t, err)
}

func TestParseQuoted_NeverEvaluates(t *testing.T) {
	sh := New()
	v, err := sh.ParseQuoted(`(+ 1 2)`)
	require.NoError(t, err)
	require.True(t, v.IsList())
	assert.Len(t, v.List(), 3)
	assert.Equal(t, "+", v.List()[0].Str())
}

func TestParsePlain_DelayCapturesQuotedSublist(t *testing.T) {
	sh := New()
	v, err := sh.ParsePlain(`(list ~(+ 1 2))`)
	require.NoError(t, err)
	require.True(t, v.IsList())
	require.Len(t, v.List(), 1)
	quoted := v.List()[0]
	assert.Equal(t, 1, quoted.Delay())
	assert.Equal(t, "+", quoted.List()[0].Str())
}

func TestParsePlain_DelayWithoutParenIsError(t *testing.T) {
	sh := New()
	_, err := sh.ParsePlain(`(list ~foo)`)
	assert.Error(t, err, "a delay symbol must be followed by '('")
}
