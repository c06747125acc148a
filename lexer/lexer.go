/*
File    : invocat/lexer/lexer.go
*/
package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

// pattern pairs a token Kind with the compiled regular expression that
// recognizes it, anchored to the start of the remaining input.
type pattern struct {
	kind Kind
	re   *regexp.Regexp
}

// blankClass is a single horizontal whitespace character; newlines are handled
// by their own token kind so they are deliberately excluded here.
const blankClass = `[ \t]`

// nameCharClass is the character class for Invocat "name" runs: word characters
// plus the punctuation the language treats as part of a bare word.
const nameCharClass = `[0-9A-Za-z_!'?.,;]`

// lexPatterns enumerates every token pattern in the exact priority order
// the language grammar requires (spec §4.1): a dN token is attempted
// before a weight, a weight before a bare number, a number before a name,
// and so on, because the underlying regular expressions overlap and the
// first one that matches at the cursor wins.
var lexPatterns = []pattern{
	{KindDN, regexp.MustCompile(`^d[0-9]+` + blankClass + `(?:` + blankClass + `|\p{P})` + blankClass + `*`)},
	{KindWeight, regexp.MustCompile(`^[0-9]+(?:-[0-9]+)?` + blankClass + `(?:` + blankClass + `|\p{P})` + blankClass + `*`)},
	{KindNumber, regexp.MustCompile(`^[0-9]+`)},
	{KindName, regexp.MustCompile(`^` + nameCharClass + `+(?:` + blankClass + `+` + nameCharClass + `+)*`)},
	{KindLParen, regexp.MustCompile(`^\(`)},
	{KindRParen, regexp.MustCompile(`^\)`)},
	{KindLBrace, regexp.MustCompile(`^\{`)},
	{KindRBrace, regexp.MustCompile(`^\}`)},
	{KindPipe, regexp.MustCompile(`^` + blankClass + `*\|` + blankClass + `*`)},
	{KindDefine, regexp.MustCompile(`^` + blankClass + `*::` + blankClass + `*`)},
	{KindDefEval, regexp.MustCompile(`^` + blankClass + `*:!` + blankClass + `*`)},
	{KindSelect, regexp.MustCompile(`^` + blankClass + `*<-` + blankClass + `*`)},
	{KindSelEval, regexp.MustCompile(`^` + blankClass + `*<!` + blankClass + `*`)},
	{KindComment, regexp.MustCompile(`^` + blankClass + `*--` + blankClass + `+[^\n]*`)},
	{KindRule1, regexp.MustCompile(`^---+[^\n]*`)},
	{KindRule2, regexp.MustCompile(`^===+[^\n]*`)},
	{KindSplit, regexp.MustCompile(`^\\[\r\n\v\f\x85\x{2028}\x{2029}]`)},
	{KindNewline, regexp.MustCompile(`^` + blankClass + `*\n`)},
	{KindWhite, regexp.MustCompile(`^` + blankClass + `+`)},
	{KindEscape, regexp.MustCompile(`^\\[nrt(){}|\\]`)},
	{KindPunct, regexp.MustCompile(`^\p{P}`)},
}

// escapeSubstitutes maps an escape token's lexeme to the single character
// it denotes (spec §6.3).
var escapeSubstitutes = map[string]string{
	`\n`: "\n",
	`\r`: "\r",
	`\t`: "\t",
	`\(`: "(",
	`\)`: ")",
	`\{`: "{",
	`\}`: "}",
	`\|`: "|",
	`\\`: `\`,
}

// Error reports a lexical failure: no pattern matched at the cursor. This
// happens for characters no pattern covers, such as ASCII symbols that are
// not Unicode punctuation ('+', '<', '=', '>', '^', '~', '$'), a lone
// carriage return, or a backslash before a character it cannot escape.
type Error struct {
	Line int
	Rune rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] lex error: no token matches %q", e.Line, e.Rune)
}

// Lexer scans Invocat source text into tokens. It is stateless across
// calls: construct one per source string with New.
type Lexer struct {
	src  string
	pos  int
	line int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 0}
}

// Next returns the next token in the source, advancing the cursor. Once
// the input is exhausted it returns a KindEOF token on every call.
func (l *Lexer) Next() (Token, error) {
	if l.pos >= len(l.src) {
		return Token{Kind: KindEOF, Lexeme: "", Line: l.line}, nil
	}

	rest := l.src[l.pos:]
	for _, p := range lexPatterns {
		loc := p.re.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			continue
		}
		lexeme := rest[:loc[1]]
		return l.emit(p.kind, lexeme)
	}

	return Token{}, &Error{Line: l.line, Rune: firstRune(rest)}
}

// emit applies per-kind post-processing (spec §4.1 "Post-processing per
// token") and advances the cursor past the matched lexeme.
func (l *Lexer) emit(kind Kind, lexeme string) (Token, error) {
	startLine := l.line
	newlines := strings.Count(lexeme, "\n")

	switch kind {
	case KindComment, KindSplit:
		// Dropped tokens: advance past them and recurse for the next real token.
		l.pos += len(lexeme)
		l.line += newlines
		return l.Next()
	case KindNewline:
		l.pos += len(lexeme)
		l.line++
		return Token{Kind: KindNewline, Lexeme: "\n", Line: startLine}, nil
	case KindEscape:
		l.pos += len(lexeme)
		return Token{Kind: KindEscape, Lexeme: escapeSubstitutes[lexeme], Line: startLine}, nil
	case KindPipe, KindDefine, KindDefEval, KindSelect, KindSelEval:
		l.pos += len(lexeme)
		l.line += newlines
		return Token{Kind: kind, Lexeme: strings.TrimSpace(lexeme), Line: startLine}, nil
	default:
		l.pos += len(lexeme)
		l.line += newlines
		return Token{Kind: kind, Lexeme: lexeme, Line: startLine}, nil
	}
}

// firstRune returns the first rune of s, or the zero rune for an empty
// string. Used only to build a readable Error.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// All scans the entire source and returns its tokens, terminated by a
// single KindEOF token. It stops and returns the lexer's error on the
// first unmatched cursor position.
func All(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == KindEOF {
			return toks, nil
		}
	}
}
