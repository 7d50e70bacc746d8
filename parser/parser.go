/*
File   : nougo/parser/parser.go
Package: parser

Package parser implements the Language's recursive-descent parser with
explicit precedence climbing for arithmetic/comparison operators. Each
grammar production (program/statement/expr/comp-expr/arith-expr/term/
factor/power/atom/call/access) is its own method rather than an entry
in a token-keyed dispatch table, keeping the code in lockstep with the
grammar it parses.
*/
package parser

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/lexer"
	"github.com/nougo-lang/nougo/position"
	"github.com/nougo-lang/nougo/token"
)

// Parser holds two tokens of lookahead (current + peek).
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New creates a Parser over src, primed with its first two tokens.
func New(src *position.Source) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) at(kind token.Kind) bool     { return p.cur.Kind == kind }
func (p *Parser) peekAt(kind token.Kind) bool { return p.peek.Kind == kind }

func (p *Parser) atKeyword(kw string) bool {
	return p.cur.Kind == token.KEYWORD && p.cur.Lexeme == kw
}

func (p *Parser) peekKeyword(kw string) bool {
	return p.peek.Kind == token.KEYWORD && p.peek.Lexeme == kw
}

// expect advances past a token of kind, or records an InvalidSyntaxError
// naming what was expected.
func (p *Parser) expect(kind token.Kind) (token.Token, *langerr.Error) {
	if p.cur.Kind != kind {
		return token.Token{}, p.errorf("expected %s, got %s", kind, p.cur.Quoted())
	}
	t := p.cur
	p.advance()
	return t, nil
}

func (p *Parser) expectKeyword(kw string) *langerr.Error {
	if !p.atKeyword(kw) {
		return p.errorf("expected '%s', got %s", kw, p.cur.Quoted())
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...interface{}) *langerr.Error {
	return langerr.New(langerr.InvalidSyntaxError, p.cur.Range, format, args...)
}

// skipNewlines consumes zero or more NEWLINE tokens (statement
// separators coalesced by the lexer).
func (p *Parser) skipNewlines() {
	for p.at(token.NEWLINE) {
		p.advance()
	}
}

// Parse parses an entire source chunk into a *ast.Program, or the first
// error encountered; the parser does not attempt expression-level
// recovery.
func Parse(src *position.Source) (*ast.Program, *langerr.Error) {
	p := New(src)
	return p.parseProgram()
}

// program := NEWLINE* (statement (NEWLINE+ statement)*)? NEWLINE* EOF
func (p *Parser) parseProgram() (*ast.Program, *langerr.Error) {
	start := p.cur.Range.Start
	p.skipNewlines()
	var stmts []ast.Stmt
	for !p.at(token.EOF) {
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
		p.skipNewlines()
	}
	end := p.cur.Range.End
	progRng := position.Range{Start: start, End: end}
	if len(stmts) == 0 {
		stmts = []ast.Stmt{&ast.Empty{Rng: progRng}}
	}
	return &ast.Program{Statements: stmts, Rng: progRng}, nil
}

// parseBlockUntil parses statements separated by NEWLINEs until one of
// the given terminator keywords is the current token (without
// consuming it), used for bodies closed by `end` or chained by
// `elif`/`else`.
func (p *Parser) parseBlockUntil(terminators ...string) (*ast.Block, *langerr.Error) {
	start := p.cur.Range.Start
	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.atAnyKeyword(terminators...) && !p.at(token.EOF) {
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
		p.skipNewlines()
	}
	end := p.cur.Range.Start
	return &ast.Block{Statements: stmts, Rng: position.Range{Start: start, End: end}}, nil
}

// rng builds a position.Range, used throughout the parser to keep node
// construction terse.
func rng(start, end position.Position) position.Range {
	return position.Range{Start: start, End: end}
}

func (p *Parser) atAnyKeyword(kws ...string) bool {
	for _, kw := range kws {
		if p.atKeyword(kw) {
			return true
		}
	}
	return false
}
