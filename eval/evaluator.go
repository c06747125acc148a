/*
File    : invocat/eval/evaluator.go

Package eval implements the tree-walking evaluator at the center of the
Invocat pipeline: given an ast.Expr and an env.Env, it produces a new
Env and an optional string value. The evaluator owns a seeded,
per-instance random source so that two Evaluators constructed with the
same seed and driven with the same calls produce identical output.
*/
package eval

import (
	"hash/fnv"

	"golang.org/x/exp/rand"

	"github.com/invocat/invocat/ast"
	"github.com/invocat/invocat/env"
)

// Evaluator walks ast.Expr trees against an env.Env. It is not safe for
// concurrent use; callers needing parallelism should construct one
// Evaluator per goroutine.
type Evaluator struct {
	rng *rand.Rand
}

// New constructs an Evaluator whose random source is derived from seed.
// The seed string is hashed to a 64-bit value with FNV-1a so that an
// arbitrary UTF-8 seed can drive a deterministic, seedable PRNG.
func New(seed string) *Evaluator {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	src := rand.NewSource(h.Sum64())
	return &Evaluator{rng: rand.New(src)}
}

// Eval evaluates exp in e, returning the resulting environment and the
// expression's value, if any. Evaluation threads the environment
// left-to-right through every sub-evaluation, per the per-variant
// semantics of the language.
func (ev *Evaluator) Eval(exp ast.Expr, e *env.Env) (*env.Env, *string) {
	switch n := exp.(type) {
	case *ast.Literal:
		v := n.Text
		return e, &v

	case *ast.Mix:
		e1, va := ev.Eval(n.Left, e)
		e2, vb := ev.Eval(n.Right, e1)
		result := valueOf(va) + valueOf(vb)
		return e2, &result

	case *ast.Definition:
		e.Define(n.Name, n.Items)
		return e, nil

	case *ast.Selection:
		if len(n.Items) == 0 {
			return e, nil
		}
		chosen := n.Items[ev.rng.Intn(len(n.Items))]
		e.Define(n.Name, []ast.Expr{chosen})
		return e, nil

	case *ast.EvaluatingDefinition:
		cur := e
		literals := make([]ast.Expr, 0, len(n.Items))
		for _, item := range n.Items {
			var v *string
			cur, v = ev.Eval(item, cur)
			if v != nil {
				literals = append(literals, &ast.Literal{Text: *v})
			}
		}
		cur.Define(n.Name, literals)
		return cur, nil

	case *ast.EvaluatingSelection:
		if len(n.Items) == 0 {
			return e, nil
		}
		chosen := n.Items[ev.rng.Intn(len(n.Items))]
		next, v := ev.Eval(chosen, e)
		next.Define(n.Name, []ast.Expr{&ast.Literal{Text: valueOf(v)}})
		return next, nil

	case *ast.Reference:
		e1, nameVal := ev.Eval(n.Name, e)
		name := valueOf(nameVal)
		items, ok := e1.Get(name)
		if !ok || len(items) == 0 {
			empty := ""
			return e1, &empty
		}
		picked := items[ev.rng.Intn(len(items))]
		return ev.Eval(picked, e1)

	case *ast.Draw:
		e1, nameVal := ev.Eval(n.Name, e)
		name := valueOf(nameVal)
		items, ok := e1.Get(name)
		if !ok || len(items) == 0 {
			empty := ""
			return e1, &empty
		}
		picked := items[ev.rng.Intn(len(items))]
		e1.Draw(name, picked)
		return ev.Eval(picked, e1)

	default:
		empty := ""
		return e, &empty
	}
}

// valueOf treats an absent value as the empty string, matching Mix's
// concatenation semantics.
func valueOf(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
