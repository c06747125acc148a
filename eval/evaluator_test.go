/*
File    : invocat/eval/evaluator_test.go
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invocat/invocat/ast"
	"github.com/invocat/invocat/env"
)

func lit(s string) ast.Expr { return &ast.Literal{Text: s} }

func TestEval_Literal(t *testing.T) {
	ev := New("seed")
	_, v := ev.Eval(lit("moon"), env.New())
	require.NotNil(t, v)
	assert.Equal(t, "moon", *v)
}

func TestEval_MixConcatenates(t *testing.T) {
	ev := New("seed")
	m := &ast.Mix{Left: lit("hello "), Right: lit("world")}
	_, v := ev.Eval(m, env.New())
	require.NotNil(t, v)
	assert.Equal(t, "hello world", *v)
}

func TestEval_MixAssociativitySameResult(t *testing.T) {
	ev := New("seed")
	a, b, c := lit("a"), lit("b"), lit("c")
	left := &ast.Mix{Left: a, Right: &ast.Mix{Left: b, Right: c}}
	right := &ast.Mix{Left: &ast.Mix{Left: a, Right: b}, Right: c}
	_, v1 := ev.Eval(left, env.New())
	_, v2 := ev.Eval(right, env.New())
	assert.Equal(t, *v1, *v2)
}

func TestEval_DefinitionBindsVerbatim(t *testing.T) {
	ev := New("seed")
	e := env.New()
	def := &ast.Definition{Name: "x", Items: []ast.Expr{lit("moon")}}
	e, v := ev.Eval(def, e)
	assert.Nil(t, v)
	items, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, []ast.Expr{lit("moon")}, items)
}

func TestEval_SelectionFreezesOneAlternative(t *testing.T) {
	ev := New("seed")
	e := env.New()
	sel := &ast.Selection{Name: "color", Items: []ast.Expr{lit("red"), lit("blue")}}
	e, _ = ev.Eval(sel, e)
	items, ok := e.Get("color")
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.True(t, ast.Equal(items[0], lit("red")) || ast.Equal(items[0], lit("blue")))
}

func TestEval_EvaluatingSelectionIsFrozenAcrossReferences(t *testing.T) {
	// color :: red | blue ; certain color <! (color) ; (certain color) twice must agree.
	ev := New("fixed-seed")
	e := env.New()
	e, _ = ev.Eval(&ast.Definition{Name: "color", Items: []ast.Expr{lit("red"), lit("blue")}}, e)
	evalSel := &ast.EvaluatingSelection{
		Name:  "certain color",
		Items: []ast.Expr{&ast.Reference{Name: lit("color")}},
	}
	e, _ = ev.Eval(evalSel, e)

	ref := &ast.Reference{Name: lit("certain color")}
	_, v1 := ev.Eval(ref, e)
	_, v2 := ev.Eval(ref, e)
	require.NotNil(t, v1)
	require.NotNil(t, v2)
	assert.Equal(t, *v1, *v2)
}

func TestEval_ReferenceUndefinedIsEmptyString(t *testing.T) {
	ev := New("seed")
	ref := &ast.Reference{Name: lit("nope")}
	_, v := ev.Eval(ref, env.New())
	require.NotNil(t, v)
	assert.Equal(t, "", *v)
}

func TestEval_DrawRemovesItemAndEventuallyEmptiesKey(t *testing.T) {
	ev := New("draw-seed")
	e := env.New()
	e.Define("color", []ast.Expr{lit("a"), lit("b"), lit("c")})
	draw := &ast.Draw{Name: lit("color")}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		var v *string
		e, v = ev.Eval(draw, e)
		require.NotNil(t, v)
		seen[*v] = true
	}
	assert.Len(t, seen, 3)
	_, ok := e.Get("color")
	assert.False(t, ok)

	_, v := ev.Eval(draw, e)
	require.NotNil(t, v)
	assert.Equal(t, "", *v)
}

func TestEval_DeterministicAcrossRunsWithSameSeed(t *testing.T) {
	run := func() string {
		ev := New("reproducible")
		e := env.New()
		e.Define("color", []ast.Expr{lit("red"), lit("blue"), lit("green")})
		out := ""
		for i := 0; i < 5; i++ {
			var v *string
			e, v = ev.Eval(&ast.Reference{Name: lit("color")}, e)
			out += *v
		}
		return out
	}
	assert.Equal(t, run(), run())
}
