/*
File    : invocat/parser/parser.go

Package parser implements the recursive-descent parser that turns a token
list from package lexer into an ordered list of ast.Expr. Parsing never
recovers from a malformed construct: the first failure aborts the whole
call and no partial result is returned.
*/
package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/invocat/invocat/ast"
	"github.com/invocat/invocat/lexer"
)

// Error reports a fatal parse failure at a source line.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] parse error: %s", e.Line, e.Message)
}

// weightNumRe extracts the digit(s) (and optional range) out of a weight
// token's lexeme, which also carries the trailing blank-or-punct that
// distinguished it from a bare number at lex time.
var weightNumRe = regexp.MustCompile(`^([0-9]+)(?:-([0-9]+))?`)

// alwaysStop lists token kinds that a mix never consumes as an atom,
// regardless of which terminator the caller asked for: pipe and the
// closing brackets only ever appear as structural delimiters.
var alwaysStop = map[lexer.Kind]bool{
	lexer.KindEOF:    true,
	lexer.KindPipe:   true,
	lexer.KindRParen: true,
	lexer.KindRBrace: true,
}

// parser walks a fixed token slice with a single cursor. It holds no
// state beyond that cursor, matching the lexer's statelessness across
// separate Parse calls.
type parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse produces the ordered list of top-level expressions in tokens.
// Leading newlines are skipped; a stray token that no production accepts
// is a fatal error, and the first error encountered anywhere aborts the
// entire call.
func Parse(tokens []lexer.Token) ([]ast.Expr, error) {
	p := &parser{tokens: tokens}
	var exprs []ast.Expr
	p.skipNewlines()
	for !p.atEOF() {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		p.skipNewlines()
	}
	return exprs, nil
}

// --- cursor helpers (peek/take/seq, named per the component's cursor model) ---

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// peek reports whether the current token matches any of kinds.
func (p *parser) peek(kinds ...lexer.Kind) bool {
	return containsKind(kinds, p.current().Kind)
}

// take advances and returns the current token iff it matches one of
// kinds; otherwise the cursor is left unchanged.
func (p *parser) take(kinds ...lexer.Kind) (lexer.Token, bool) {
	if p.peek(kinds...) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

// seq advances past len(kinds) tokens iff they match in order, atomically
// rewinding the cursor otherwise.
func (p *parser) seq(kinds ...lexer.Kind) bool {
	mark := p.pos
	for _, k := range kinds {
		if p.current().Kind != k {
			p.pos = mark
			return false
		}
		p.advance()
	}
	return true
}

func (p *parser) skipNewlines() {
	for p.current().Kind == lexer.KindNewline {
		p.advance()
	}
}

// skipLeadingWhite discards a single leading horizontal-whitespace token,
// the indentation at the start of a table item or a multiline continuation
// line. It is a no-op when the current token isn't whitespace.
func (p *parser) skipLeadingWhite() {
	p.take(lexer.KindWhite)
}

func (p *parser) atEOF() bool {
	return p.current().Kind == lexer.KindEOF
}

func (p *parser) errorf(format string, args ...any) error {
	return &Error{Line: p.current().Line, Message: fmt.Sprintf(format, args...)}
}

func containsKind(kinds []lexer.Kind, k lexer.Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// --- expression-level grammar ---

// parseExpression tries each production in priority order: the two table
// forms, then a named binding (definition/selection/evalDef/evalSel), and
// finally falls back to a bare mix (plain text evaluated for its value).
func (p *parser) parseExpression() (ast.Expr, error) {
	if e, ok, err := p.parseTable(lexer.KindRule1); ok || err != nil {
		return e, err
	}
	if e, ok, err := p.parseTable(lexer.KindRule2); ok || err != nil {
		return e, err
	}
	if e, ok, err := p.parseNamedBinding(); ok || err != nil {
		return e, err
	}
	e, err := p.mix(nil, false)
	if err != nil {
		return nil, p.errorf("could not parse expression: %s", err)
	}
	return e, nil
}

// parseNamedBinding recognizes "name OP items" for the four binding
// operators. It reports ok=false without error when the input does not
// begin with "name OP", so the caller can fall through to the bare mix
// production.
func (p *parser) parseNamedBinding() (ast.Expr, bool, error) {
	mark := p.pos
	nameTok, ok := p.take(lexer.KindName)
	if !ok {
		return nil, false, nil
	}

	switch {
	case p.seq(lexer.KindDefine):
		items, err := p.parsePipeItems()
		if err != nil {
			return nil, true, err
		}
		return &ast.Definition{Name: nameTok.Lexeme, Items: items}, true, nil
	case p.seq(lexer.KindDefEval):
		items, err := p.parsePipeItems()
		if err != nil {
			return nil, true, err
		}
		return &ast.EvaluatingDefinition{Name: nameTok.Lexeme, Items: items}, true, nil
	case p.seq(lexer.KindSelect):
		items, err := p.parsePipeItems()
		if err != nil {
			return nil, true, err
		}
		return &ast.Selection{Name: nameTok.Lexeme, Items: items}, true, nil
	case p.seq(lexer.KindSelEval):
		items, err := p.parsePipeItems()
		if err != nil {
			return nil, true, err
		}
		return &ast.EvaluatingSelection{Name: nameTok.Lexeme, Items: items}, true, nil
	default:
		p.pos = mark
		return nil, false, nil
	}
}

// parsePipeItems parses "(weight? mix)" alternatives separated by pipe
// tokens, applying each item's weight by repeating it in the result list,
// and stops at the first newline or eof.
func (p *parser) parsePipeItems() ([]ast.Expr, error) {
	var items []ast.Expr
	for {
		count, err := p.parseWeightCount(false)
		if err != nil {
			return nil, err
		}
		item, err := p.mix(nil, false)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			items = append(items, item)
		}
		if _, ok := p.take(lexer.KindPipe); ok {
			continue
		}
		break
	}
	p.take(lexer.KindNewline)
	return items, nil
}

// parseWeightCount consumes a leading weight token, if any, and resolves
// it to a repeat count: frequency mode multiplies by the literal number;
// die mode counts a bare number as 1 occurrence and a range s-t as
// t-s+1 occurrences.
func (p *parser) parseWeightCount(dieMode bool) (int, error) {
	tok, ok := p.take(lexer.KindWeight)
	if !ok {
		return 1, nil
	}
	m := weightNumRe.FindStringSubmatch(tok.Lexeme)
	if m == nil {
		return 1, nil
	}
	lo, _ := strconv.Atoi(m[1])
	if m[2] == "" {
		if dieMode {
			return 1, nil
		}
		return lo, nil
	}
	hi, _ := strconv.Atoi(m[2])
	if hi < lo {
		lo, hi = hi, lo
	}
	return hi - lo + 1, nil
}

// parseTable recognizes a table header "dN? name \n ruleKind \n" followed
// by a ruleKind-delimited item list, producing a Definition. ruleKind is
// rule1 for Table 1 (one item per line) or rule2 for Table 2 (multi-line
// items separated by a rule1 line). ok=false without error means the
// input does not begin with this table's header.
func (p *parser) parseTable(ruleKind lexer.Kind) (ast.Expr, bool, error) {
	mark := p.pos

	dieMode := false
	if _, ok := p.take(lexer.KindDN); ok {
		dieMode = true
	}
	nameTok, ok := p.take(lexer.KindName)
	if !ok {
		p.pos = mark
		return nil, false, nil
	}
	if !p.seq(lexer.KindNewline, ruleKind, lexer.KindNewline) {
		p.pos = mark
		return nil, false, nil
	}

	multiline := ruleKind == lexer.KindRule2
	var items []ast.Expr

	for {
		p.skipLeadingWhite()
		count, err := p.parseWeightCount(dieMode)
		if err != nil {
			return nil, true, err
		}
		var extraStop []lexer.Kind
		if multiline {
			extraStop = []lexer.Kind{lexer.KindRule1}
		}
		item, err := p.mix(extraStop, multiline)
		if err != nil {
			return nil, true, err
		}
		for i := 0; i < count; i++ {
			items = append(items, item)
		}

		switch p.current().Kind {
		case lexer.KindEOF:
			return &ast.Definition{Name: nameTok.Lexeme, Items: items}, true, nil
		case lexer.KindNewline:
			if nxt := p.peekAt(1); nxt.Kind == lexer.KindNewline || nxt.Kind == lexer.KindEOF {
				return &ast.Definition{Name: nameTok.Lexeme, Items: items}, true, nil
			}
			if multiline {
				return nil, true, p.errorf("expected rule1-separated list items")
			}
			p.advance()
		case lexer.KindRule1:
			if !multiline {
				return nil, true, p.errorf("expected list item")
			}
			p.advance()
			if _, ok := p.take(lexer.KindNewline); !ok {
				return &ast.Definition{Name: nameTok.Lexeme, Items: items}, true, nil
			}
			if p.current().Kind == lexer.KindEOF || p.current().Kind == lexer.KindNewline {
				return &ast.Definition{Name: nameTok.Lexeme, Items: items}, true, nil
			}
		default:
			return nil, true, p.errorf("expected rule1-separated list items")
		}
	}
}

// mix assembles a right-leaning Mix tree over a run of atoms. Parsing
// stops unconditionally at eof or any of pipe/rparen/rbrace, and at a
// newline unless multiline is set. In multiline mode a newline is
// consumed and, unless the following token is the terminator, a single
// space literal is spliced in and atom parsing continues, joining the
// two physical lines.
func (p *parser) mix(extraStop []lexer.Kind, multiline bool) (ast.Expr, error) {
	startLine := p.current().Line
	var atoms []ast.Expr
	for {
		tok := p.current()
		if alwaysStop[tok.Kind] || containsKind(extraStop, tok.Kind) {
			break
		}
		if tok.Kind == lexer.KindNewline {
			if !multiline {
				break
			}
			p.advance()
			p.skipLeadingWhite()
			nt := p.current()
			if alwaysStop[nt.Kind] || containsKind(extraStop, nt.Kind) {
				break
			}
			atoms = append(atoms, &ast.Literal{Text: " "})
			continue
		}
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	if len(atoms) == 0 {
		return nil, &Error{Line: startLine, Message: "expected list item"}
	}
	return ast.NewMix(atoms), nil
}

// parseAtom recognizes one reference, draw, or literal run.
func (p *parser) parseAtom() (ast.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case lexer.KindLParen:
		p.advance()
		inner, err := p.mix(nil, false)
		if err != nil {
			return nil, err
		}
		if _, ok := p.take(lexer.KindRParen); !ok {
			return nil, p.errorf("expected ')' to close reference")
		}
		return &ast.Reference{Name: inner}, nil
	case lexer.KindLBrace:
		p.advance()
		inner, err := p.mix(nil, false)
		if err != nil {
			return nil, err
		}
		if _, ok := p.take(lexer.KindRBrace); !ok {
			return nil, p.errorf("expected '}' to close draw")
		}
		return &ast.Draw{Name: inner}, nil
	case lexer.KindName, lexer.KindNumber, lexer.KindPunct, lexer.KindEscape,
		lexer.KindWhite, lexer.KindDN, lexer.KindWeight:
		return p.parseLiteralRun(), nil
	default:
		return nil, p.errorf("could not parse expression: unexpected token %s", tok)
	}
}

// parseLiteralRun consumes a maximal run of name/number/punct/escape/
// white/dN/weight tokens and concatenates their lexemes into one Literal.
func (p *parser) parseLiteralRun() ast.Expr {
	text := ""
	for {
		switch p.current().Kind {
		case lexer.KindName, lexer.KindNumber, lexer.KindPunct, lexer.KindWhite,
			lexer.KindDN, lexer.KindWeight, lexer.KindEscape:
			text += p.advance().Lexeme
		default:
			return &ast.Literal{Text: text}
		}
	}
}
