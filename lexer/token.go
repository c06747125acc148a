/*
File    : invocat/lexer/token.go

Package lexer implements the regex-driven tokenizer for the Invocat
language: a stream of source text goes in, an ordered list of Token
values terminated by an EOF token comes out.
*/
package lexer

import "fmt"

// Kind identifies the lexical category of a Token. Kind is a string so
// that tokens print readably during debugging and in test failure output.
type Kind string

// Token kinds, in the priority order the lexer tests them at each cursor
// position (see lexPatterns in lexer.go). Order is part of the language:
// a dN token is tried before a weight, a weight before a bare number, and
// so on, because the patterns overlap.
const (
	KindDN      Kind = "dN"      // "d4  " — die-notation table header marker
	KindWeight  Kind = "weight"  // "3  " or "1-2  " — frequency/die weight prefix
	KindNumber  Kind = "number"  // "42"
	KindName    Kind = "name"    // one or more space-joined runs of name chars
	KindLParen  Kind = "lparen"  // "("
	KindRParen  Kind = "rparen"  // ")"
	KindLBrace  Kind = "lbrace"  // "{"
	KindRBrace  Kind = "rbrace"  // "}"
	KindPipe    Kind = "pipe"    // "|"
	KindDefine  Kind = "define"  // "::"
	KindDefEval Kind = "defEval" // ":!"
	KindSelect  Kind = "select"  // "<-"
	KindSelEval Kind = "selEval" // "<!"
	KindComment Kind = "comment" // "-- ..." (dropped, never emitted)
	KindRule1   Kind = "rule1"   // "---" rule, rest of line kept as lexeme
	KindRule2   Kind = "rule2"   // "===" rule, rest of line kept as lexeme
	KindSplit   Kind = "split"   // "\" + vertical whitespace (dropped)
	KindNewline Kind = "newline" // one logical line break
	KindWhite   Kind = "white"   // run of horizontal whitespace
	KindEscape  Kind = "escape"  // "\n" "\t" "\r" "\(" "\)" "\{" "\}" "\|" "\\"
	KindPunct   Kind = "punct"   // a single Unicode punctuation rune
	KindEOF     Kind = "eof"     // synthetic end-of-input marker
)

// Token is a single scanned unit of source text: its kind, its (possibly
// normalized) lexeme, and the 0-based source line it started on.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// String renders a Token for debugging, e.g. `name("moon")@0`.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Lexeme, t.Line)
}

// Is reports whether the token's kind matches any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}
