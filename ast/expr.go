/*
File    : invocat/ast/expr.go

Package ast defines the Invocat abstract syntax tree: a closed, eight-case
tagged variant produced by the parser and walked by the evaluator. Each
case is a concrete struct implementing Expr; there is no subtype
hierarchy beyond the single interface, because the set of variants is
fixed and the operations on them (evaluation, canonical printing) live
outside the type (package eval, and String below).
*/
package ast

import "strings"

// Kind identifies which of the eight Expr variants a node is.
type Kind string

const (
	KindDefinition           Kind = "Definition"           // name :: a | b
	KindSelection            Kind = "Selection"            // name <- a | b
	KindEvaluatingDefinition Kind = "EvaluatingDefinition" // name :! a | b
	KindEvaluatingSelection  Kind = "EvaluatingSelection"  // name <! a | b
	KindReference            Kind = "Reference"            // (name)
	KindDraw                 Kind = "Draw"                 // {name}
	KindLiteral              Kind = "Literal"              // bare text
	KindMix                  Kind = "Mix"                  // juxtaposition
)

// Expr is implemented by every AST node. String renders the node's
// canonical surface-text form (spec §8 round-trip property): re-parsing
// String() is expected to reproduce a structurally equal Expr, modulo the
// whitespace normalization the lexer performs.
type Expr interface {
	Kind() Kind
	String() string
}

// Definition binds name to items verbatim, without evaluating them.
type Definition struct {
	Name  string
	Items []Expr
}

func (d *Definition) Kind() Kind { return KindDefinition }
func (d *Definition) String() string {
	return d.Name + " :: " + joinItems(d.Items)
}

// Selection binds name to one alternative chosen now, without evaluating it.
type Selection struct {
	Name  string
	Items []Expr
}

func (s *Selection) Kind() Kind { return KindSelection }
func (s *Selection) String() string {
	return s.Name + " <- " + joinItems(s.Items)
}

// EvaluatingDefinition binds name to the list obtained by evaluating every
// alternative now.
type EvaluatingDefinition struct {
	Name  string
	Items []Expr
}

func (d *EvaluatingDefinition) Kind() Kind { return KindEvaluatingDefinition }
func (d *EvaluatingDefinition) String() string {
	return d.Name + " :! " + joinItems(d.Items)
}

// EvaluatingSelection binds name to a literal obtained by evaluating one
// alternative chosen now.
type EvaluatingSelection struct {
	Name  string
	Items []Expr
}

func (s *EvaluatingSelection) Kind() Kind { return KindEvaluatingSelection }
func (s *EvaluatingSelection) String() string {
	return s.Name + " <! " + joinItems(s.Items)
}

// Reference performs nondestructive sampling from a name's alternatives.
// Name is itself an expression (spec §4.2 "Recursion on Reference/Draw
// names") so that the referenced name can be computed, e.g. "(nested (a))".
type Reference struct {
	Name Expr
}

func (r *Reference) Kind() Kind      { return KindReference }
func (r *Reference) String() string { return "(" + r.Name.String() + ")" }

// Draw performs destructive sampling: the chosen alternative is removed
// from the environment list it came from.
type Draw struct {
	Name Expr
}

func (d *Draw) Kind() Kind      { return KindDraw }
func (d *Draw) String() string { return "{" + d.Name.String() + "}" }

// Literal is bare text: a run of words, numbers, punctuation, whitespace,
// or escape substitutions the parser folded together.
type Literal struct {
	Text string
}

func (l *Literal) Kind() Kind      { return KindLiteral }
func (l *Literal) String() string { return l.Text }

// Mix is the concatenation of two adjacent sub-expressions, forming a
// right-leaning binary tree over a juxtaposed run of atoms.
type Mix struct {
	Left, Right Expr
}

func (m *Mix) Kind() Kind      { return KindMix }
func (m *Mix) String() string { return m.Left.String() + m.Right.String() }

// NewMix folds a slice of expressions into a right-leaning Mix tree,
// matching the parser's mix production. A single expression is returned
// unwrapped; an empty slice yields an empty Literal.
func NewMix(items []Expr) Expr {
	if len(items) == 0 {
		return &Literal{Text: ""}
	}
	if len(items) == 1 {
		return items[0]
	}
	return &Mix{Left: items[0], Right: NewMix(items[1:])}
}

// joinItems renders a pipe-separated alternatives list for the Definition
// family's canonical String form.
func joinItems(items []Expr) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " | ")
}

// Equal reports whether two expressions are structurally equal, i.e.
// their canonical surface-text renderings match (spec §3 "Equality of
// expressions is by structural form"). This is the equality Draw uses to
// remove the chosen alternative from its environment list.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
