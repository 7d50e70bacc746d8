package parser

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/token"
)

// fn-def := IDENTIFIER? '(' param-list? ')' ('->'? NEWLINE block 'end' | '->' expr)
//
// An arrow followed by a same-line expression is the auto-return form;
// an arrow followed by a NEWLINE opens an ordinary block body, so
// `def fact(n) ->` on its own line reads the same as `def fact(n)`.
// Each parameter may carry a trailing '?' marking it optional;
// optional parameters must all follow required ones.
func (p *Parser) parseFuncDef() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	name := ""
	if p.at(token.IDENTIFIER) {
		name = p.cur.Lexeme
		p.advance()
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var required, optional []string
	if !p.at(token.RPAREN) {
		for {
			id, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			if p.at(token.INTERROGATIVE_PNT) {
				p.advance()
				optional = append(optional, id.Lexeme)
			} else {
				if len(optional) > 0 {
					return nil, langerr.New(langerr.InvalidSyntaxError, id.Range,
						"required parameter '%s' cannot follow an optional parameter", id.Lexeme)
				}
				required = append(required, id.Lexeme)
			}
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	autoReturn := false
	var body ast.Stmt
	var end = p.cur.Range.Start
	arrow := p.at(token.ARROW)
	if arrow {
		p.advance()
	}
	if arrow && !p.at(token.NEWLINE) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body = e
		autoReturn = true
		end = e.Range().End
	} else {
		block, err := p.parseBlockUntil("end")
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("end"); err != nil {
			return nil, err
		}
		body = block
		end = p.cur.Range.Start
	}
	return &ast.FuncDef{
		Name: name, Params: required, OptionalParams: optional,
		Body: body, AutoReturn: autoReturn, Rng: rng(start, end),
	}, nil
}

// class-def := IDENTIFIER? ('->' IDENTIFIER)? ('->'? NEWLINE block 'end' | '->' expr)
func (p *Parser) parseClassDef() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	name := ""
	if p.at(token.IDENTIFIER) {
		name = p.cur.Lexeme
		p.advance()
	}
	parent := ""
	if p.at(token.ARROW) && p.peekAt(token.IDENTIFIER) {
		p.advance()
		parent = p.cur.Lexeme
		p.advance()
	}
	autoReturn := false
	var body ast.Stmt
	end := p.cur.Range.Start
	arrow := p.at(token.ARROW)
	if arrow {
		p.advance()
	}
	if arrow && !p.at(token.NEWLINE) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body = e
		autoReturn = true
		end = e.Range().End
	} else {
		block, err := p.parseBlockUntil("end")
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("end"); err != nil {
			return nil, err
		}
		body = block
		end = p.cur.Range.Start
	}
	return &ast.ClassDef{
		Name: name, Parent: parent, Body: body, AutoReturn: autoReturn, Rng: rng(start, end),
	}, nil
}
