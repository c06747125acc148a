/*
File    : invocat/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invocat/invocat/ast"
	"github.com/invocat/invocat/lexer"
)

func parse(t *testing.T, src string) []ast.Expr {
	t.Helper()
	toks, err := lexer.All(src)
	require.NoError(t, err)
	exprs, err := Parse(toks)
	require.NoError(t, err)
	return exprs
}

func TestParse_SimpleDefinition(t *testing.T) {
	exprs := parse(t, "x :: moon")
	require.Len(t, exprs, 1)
	def, ok := exprs[0].(*ast.Definition)
	require.True(t, ok)
	assert.Equal(t, "x", def.Name)
	require.Len(t, def.Items, 1)
	assert.Equal(t, "moon", def.Items[0].String())
}

func TestParse_PipeSeparatedAlternatives(t *testing.T) {
	exprs := parse(t, "color :: red | blue | green")
	def := exprs[0].(*ast.Definition)
	require.Len(t, def.Items, 3)
	assert.Equal(t, "red", def.Items[0].String())
	assert.Equal(t, "green", def.Items[2].String())
}

func TestParse_SelectionAndEvaluatingForms(t *testing.T) {
	exprs := parse(t, "a <- x | y\nb :! x | y\nc <! x | y")
	require.Len(t, exprs, 3)
	_, ok := exprs[0].(*ast.Selection)
	assert.True(t, ok)
	_, ok = exprs[1].(*ast.EvaluatingDefinition)
	assert.True(t, ok)
	_, ok = exprs[2].(*ast.EvaluatingSelection)
	assert.True(t, ok)
}

func TestParse_ReferenceAndDraw(t *testing.T) {
	exprs := parse(t, "(color)\n{color}")
	require.Len(t, exprs, 2)
	ref, ok := exprs[0].(*ast.Reference)
	require.True(t, ok)
	assert.Equal(t, "color", ref.Name.String())
	draw, ok := exprs[1].(*ast.Draw)
	require.True(t, ok)
	assert.Equal(t, "color", draw.Name.String())
}

func TestParse_MixOfLiteralAndReference(t *testing.T) {
	exprs := parse(t, "hello (name)!")
	require.Len(t, exprs, 1)
	assert.Equal(t, "hello (name)!", exprs[0].String())
}

func TestParse_FrequencyWeight(t *testing.T) {
	exprs := parse(t, "x :: 3  a | b")
	def := exprs[0].(*ast.Definition)
	require.Len(t, def.Items, 4)
	assert.Equal(t, "a", def.Items[0].String())
	assert.Equal(t, "a", def.Items[2].String())
	assert.Equal(t, "b", def.Items[3].String())
}

func TestParse_Table1(t *testing.T) {
	src := "color\n--------\nmazarine\ncochineal\ntartrazine"
	exprs := parse(t, src)
	require.Len(t, exprs, 1)
	def, ok := exprs[0].(*ast.Definition)
	require.True(t, ok)
	assert.Equal(t, "color", def.Name)
	require.Len(t, def.Items, 3)
	assert.Equal(t, "mazarine", def.Items[0].String())
	assert.Equal(t, "cochineal", def.Items[1].String())
	assert.Equal(t, "tartrazine", def.Items[2].String())
}

func TestParse_Table2MultilineItems(t *testing.T) {
	src := "dragon murmurings\n=================\n" +
		"still having joy\n-----------------\n" +
		"the bloodline\nis not cut off\n-----------------\n"
	exprs := parse(t, src)
	require.Len(t, exprs, 1)
	def := exprs[0].(*ast.Definition)
	assert.Equal(t, "dragon murmurings", def.Name)
	require.Len(t, def.Items, 2)
	assert.Equal(t, "still having joy", def.Items[0].String())
	assert.Equal(t, "the bloodline is not cut off", def.Items[1].String())
}

func TestParse_DieNotationTableWeights(t *testing.T) {
	src := "d4  memory\n=================\n1  that (season), it disappeared.\n-----------------\n"
	exprs := parse(t, src)
	def := exprs[0].(*ast.Definition)
	require.Len(t, def.Items, 1)
	assert.Equal(t, "that (season), it disappeared.", def.Items[0].String())
}

func TestParse_Table1IndentedItemsStripLeadingWhite(t *testing.T) {
	src := "color\n--------\nmazarine\n    cochineal\n        tartrazine"
	exprs := parse(t, src)
	require.Len(t, exprs, 1)
	def, ok := exprs[0].(*ast.Definition)
	require.True(t, ok)
	require.Len(t, def.Items, 3)
	assert.Equal(t, "mazarine", def.Items[0].String())
	assert.Equal(t, "cochineal", def.Items[1].String())
	assert.Equal(t, "tartrazine", def.Items[2].String())
}

func TestParse_DieNotationTableIndentedContinuationLine(t *testing.T) {
	src := "d4  memory\n=================\n" +
		"1  that (season),\n   it disappeared.\n-----------------\n"
	exprs := parse(t, src)
	def := exprs[0].(*ast.Definition)
	require.Len(t, def.Items, 1)
	assert.Equal(t, "that (season), it disappeared.", def.Items[0].String())
}

func TestParse_Table2IndentedContinuationLines(t *testing.T) {
	src := "dragon murmurings\n=================\n" +
		"still having joy\n-----------------\n" +
		"    the bloodline\n    is not cut off\n-----------------\n"
	exprs := parse(t, src)
	def := exprs[0].(*ast.Definition)
	require.Len(t, def.Items, 2)
	assert.Equal(t, "still having joy", def.Items[0].String())
	assert.Equal(t, "the bloodline is not cut off", def.Items[1].String())
}

func TestParse_NestedReference(t *testing.T) {
	exprs := parse(t, "(nested (a))")
	ref := exprs[0].(*ast.Reference)
	inner, ok := ref.Name.(*ast.Mix)
	require.True(t, ok)
	assert.Equal(t, "nested (a)", inner.String())
}

func TestParse_UnclosedReferenceIsFatal(t *testing.T) {
	toks, err := lexer.All("(unclosed")
	require.NoError(t, err)
	_, err = Parse(toks)
	assert.Error(t, err)
}

func TestParse_EmptyInputProducesNoExpressions(t *testing.T) {
	exprs := parse(t, "")
	assert.Empty(t, exprs)
}

func TestParse_CommentOnlyInputProducesNoExpressions(t *testing.T) {
	exprs := parse(t, "-- just a comment\n")
	assert.Empty(t, exprs)
}

func TestParse_RoundTripCanonicalString(t *testing.T) {
	src := "x :: moon | star"
	exprs := parse(t, src)
	rendered := exprs[0].String()
	reparsed := parse(t, rendered)
	assert.Equal(t, exprs[0].String(), reparsed[0].String())
}
