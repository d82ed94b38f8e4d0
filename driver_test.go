package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBalancedForms_MultipleTopLevelForms(t *testing.T) {
	forms := splitBalancedForms("(push a) (push b)\n(push c)")
	require.Len(t, forms, 3)
	assert.Equal(t, "(push a)", forms[0])
	assert.Equal(t, "(push b)", forms[1])
	assert.Equal(t, "(push c)", forms[2])
}

func TestSplitBalancedForms_IgnoresCommentsAndNesting(t *testing.T) {
	forms := splitBalancedForms("# a comment\n(list (push a) (push b))")
	require.Len(t, forms, 1)
	assert.Equal(t, "(list (push a) (push b))", forms[0])
}

func TestSplitBalancedForms_ParenInsideQuoteDoesNotUnbalance(t *testing.T) {
	forms := splitBalancedForms(`(push "(")`)
	require.Len(t, forms, 1)
	assert.Equal(t, `(push "(")`, forms[0])
}

func TestRunScriptBuffer_ExecutesEachFormInOrder(t *testing.T) {
	sh := New()
	err := sh.RunScriptBuffer("(push a) (push b) (push c)")
	require.NoError(t, err)

	v := sh.Dispatch([]Value{String("stack")})
	require.Len(t, v.List(), 3)
	assert.Equal(t, "a", v.List()[0].Str())
	assert.Equal(t, "c", v.List()[2].Str())
}

func TestSeedArgsOnStack_LeavesFirstArgOnTop(t *testing.T) {
	sh := New()
	sh.seedArgsOnStack([]string{"one", "two", "three"})

	// seedArgsOnStack pushes args in reverse so the first argument ends up
	// on top, ready for the first `pop`.
	assert.Equal(t, "one", sh.Dispatch([]Value{String("top")}).Str())

	v := sh.Dispatch([]Value{String("stack")})
	require.Len(t, v.List(), 3)
	assert.Equal(t, "three", v.List()[0].Str())
	assert.Equal(t, "two", v.List()[1].Str())
	assert.Equal(t, "one", v.List()[2].Str())
}

func TestRenderPrompt_DefaultsToDollarSign(t *testing.T) {
	sh := New()
	assert.Equal(t, "$ ", sh.renderPrompt())
}

func TestRenderPrompt_EvaluatesPromptGlobal(t *testing.T) {
	sh := New()
	sh.Prompt = String("esh> ")
	assert.Equal(t, "esh> ", sh.renderPrompt())
}

func TestParseTopLevel_DispatchesOnLeadingParen(t *testing.T) {
	sh := New()
	v, err := sh.parseTopLevel("(list a b)")
	require.NoError(t, err)
	require.True(t, v.IsList())
	assert.Equal(t, "a", v.List()[0].Str())
}
