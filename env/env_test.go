/*
File    : invocat/env/env_test.go
*/
package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invocat/invocat/ast"
)

func lit(s string) ast.Expr { return &ast.Literal{Text: s} }

func TestDefine_AndGet(t *testing.T) {
	e := New()
	e.Define("x", []ast.Expr{lit("moon")})
	items, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, []ast.Expr{lit("moon")}, items)
}

func TestDefine_EmptyItemsRemovesKey(t *testing.T) {
	e := New()
	e.Define("x", []ast.Expr{lit("moon")})
	e.Define("x", nil)
	_, ok := e.Get("x")
	assert.False(t, ok)
}

func TestGet_AbsentKeyDistinctFromEmpty(t *testing.T) {
	e := New()
	_, ok := e.Get("nope")
	assert.False(t, ok)
}

func TestNames_Snapshot(t *testing.T) {
	e := New()
	e.Define("a", []ast.Expr{lit("1")})
	e.Define("b", []ast.Expr{lit("2")})
	names := e.Names()
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestDraw_RemovesStructurallyEqualItem(t *testing.T) {
	e := New()
	e.Define("color", []ast.Expr{lit("red"), lit("blue"), lit("green")})
	ok := e.Draw("color", lit("blue"))
	require.True(t, ok)
	items, _ := e.Get("color")
	for _, it := range items {
		assert.False(t, ast.Equal(it, lit("blue")))
	}
	assert.Len(t, items, 2)
}

func TestDraw_EmptiesListRemovesKey(t *testing.T) {
	e := New()
	e.Define("color", []ast.Expr{lit("red")})
	e.Draw("color", lit("red"))
	_, ok := e.Get("color")
	assert.False(t, ok)
}

func TestDraw_AbsentKeyReturnsFalse(t *testing.T) {
	e := New()
	assert.False(t, e.Draw("nope", lit("x")))
}

func TestDraw_NoMatchingItemReturnsFalse(t *testing.T) {
	e := New()
	e.Define("color", []ast.Expr{lit("red")})
	assert.False(t, e.Draw("color", lit("blue")))
	items, _ := e.Get("color")
	assert.Len(t, items, 1)
}
