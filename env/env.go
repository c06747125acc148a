/*
File    : invocat/env/env.go

Package env implements the Invocat binding environment: a flat mapping
from name to a list of alternative expressions. Unlike a lexically scoped
interpreter, Invocat's environment has no parent/child nesting — every
Definition, Selection, and Draw mutates one persistent table owned by the
interpreter facade.
*/
package env

import "github.com/invocat/invocat/ast"

// Env is a mapping from name to its list of bound alternatives. The zero
// value is ready to use.
type Env struct {
	bindings map[string][]ast.Expr
}

// New returns an empty Env.
func New() *Env {
	return &Env{bindings: make(map[string][]ast.Expr)}
}

// Define binds name to items verbatim, replacing any prior binding. A
// nil or empty items list removes the key, preserving the invariant that
// an environment never maps a name to an empty list.
func (e *Env) Define(name string, items []ast.Expr) {
	if len(items) == 0 {
		delete(e.bindings, name)
		return
	}
	if e.bindings == nil {
		e.bindings = make(map[string][]ast.Expr)
	}
	e.bindings[name] = items
}

// Get returns the list bound to name and whether it is present.
func (e *Env) Get(name string) ([]ast.Expr, bool) {
	items, ok := e.bindings[name]
	return items, ok
}

// Names returns a snapshot of every bound name. Order is unspecified.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	return names
}

// Draw removes the first item structurally equal to item from name's
// list, reporting whether a match was removed. If the list becomes
// empty, the key is removed entirely.
func (e *Env) Draw(name string, item ast.Expr) bool {
	items, ok := e.bindings[name]
	if !ok {
		return false
	}
	for i, it := range items {
		if ast.Equal(it, item) {
			remaining := append(items[:i:i], items[i+1:]...)
			e.Define(name, remaining)
			return true
		}
	}
	return false
}
