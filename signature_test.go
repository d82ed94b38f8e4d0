package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignature(t *testing.T) {
	items, err := parseSignature("sl*")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, byte('s'), items[0].kind)
	assert.Equal(t, byte('l'), items[1].kind)
	assert.Equal(t, byte('*'), items[2].kind)
}

func TestParseSignature_Group(t *testing.T) {
	items, err := parseSignature("(ss)l")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, byte('('), items[0].kind)
	assert.Len(t, items[0].group, 2)
}

func TestParseSignature_Errors(t *testing.T) {
	_, err := parseSignature("(ss")
	assert.Error(t, err, "missing close paren")

	_, err = parseSignature("ss)")
	assert.Error(t, err, "unbalanced close paren")

	_, err = parseSignature("z")
	assert.Error(t, err, "unknown signature character")
}

func TestCheckSignature(t *testing.T) {
	for _, tc := range []struct {
		name    string
		sig     string
		args    []Value
		wantErr bool
		kind    typeErrorKind
	}{
		{"exact match", "sb", []Value{String("x"), True}, false, 0},
		{"missing arg", "sb", []Value{String("x")}, true, errNotEnoughArgs},
		{"wrong type", "sb", []Value{String("x"), String("not a bool")}, true, errTypeMismatch},
		{"extraneous", "s", []Value{String("x"), String("y")}, true, errExtraneousArgs},
		{"tail absorbs rest", "s*", []Value{String("x"), String("y"), True}, false, 0},
		{"one-or-more needs one", "S", []Value{}, true, errNotEnoughArgs},
		{"one-or-more consumes run", "S", []Value{String("a"), String("b"), String("c")}, false, 0},
		{"one-or-more stops at type change", "S", []Value{String("a"), True}, true, errExtraneousArgs},
		{"nested group ok", "(ss)", []Value{List(String("a"), String("b"))}, false, 0},
		{"nested group type mismatch", "(ss)", []Value{List(String("a"), True)}, true, errTypeMismatch},
		{"any single", "?", []Value{True}, false, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			items, err := parseSignature(tc.sig)
			require.NoError(t, err)
			err = checkSignature(items, tc.args)
			if tc.wantErr {
				require.Error(t, err)
				te, ok := err.(typeError)
				require.True(t, ok)
				assert.Equal(t, tc.kind, te.kind)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUsageBanner(t *testing.T) {
	b := &Builtin{Name: "if", Sig: "???", Desc: "conditional"}
	items, err := parseSignature(b.Sig)
	require.NoError(t, err)
	b.sig = items
	assert.Equal(t, "(if <arg> <arg> <arg>) conditional", usageBanner(b))
}
