/*
File    : invocat/interp/interp.go

Package interp provides the Interpreter facade that combines the lexer,
parser, and evaluator behind a small persistent-state API: construct one
with a seed, then call Eval/EvalFile repeatedly, each call threading the
same environment and random source forward.
*/
package interp

import (
	"os"

	"go.uber.org/zap"

	"github.com/invocat/invocat/env"
	"github.com/invocat/invocat/eval"
	"github.com/invocat/invocat/lexer"
	"github.com/invocat/invocat/parser"
)

// Interp owns the persistent environment and evaluator for one
// interpreter session. It is not safe for concurrent use.
type Interp struct {
	env *env.Env
	ev  *eval.Evaluator
	log *zap.SugaredLogger
}

// New constructs an Interp with an empty environment and an evaluator
// seeded from seed.
func New(seed string) *Interp {
	return &Interp{
		env: env.New(),
		ev:  eval.New(seed),
	}
}

// SetLogger attaches a structured logger for Debug-level pipeline
// diagnostics. A nil logger (the default) disables logging entirely.
func (in *Interp) SetLogger(l *zap.SugaredLogger) {
	in.log = l
}

// Eval lexes and parses text, then evaluates each resulting expression
// in turn, threading the environment left to right. It returns the
// values of every expression that produced one, in source order. A lex
// or parse error aborts the call before any environment mutation.
func (in *Interp) Eval(text string) ([]string, error) {
	toks, err := lexer.All(text)
	if err != nil {
		return nil, err
	}
	in.debugf("lexed %d tokens", len(toks))

	exprs, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	in.debugf("parsed %d expressions", len(exprs))

	var out []string
	for _, exp := range exprs {
		var v *string
		in.env, v = in.ev.Eval(exp, in.env)
		if v != nil {
			out = append(out, *v)
		}
	}
	return out, nil
}

// EvalFile reads path as UTF-8 text and delegates to Eval. A read
// failure returns a nil result and the underlying error rather than
// panicking.
func (in *Interp) EvalFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		in.debugf("failed to read %s: %v", path, err)
		return nil, err
	}
	return in.Eval(string(data))
}

// Names returns a snapshot of the current environment's bound names.
func (in *Interp) Names() []string {
	return in.env.Names()
}

func (in *Interp) debugf(format string, args ...any) {
	if in.log == nil {
		return
	}
	in.log.Debugf(format, args...)
}
