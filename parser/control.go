package parser

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/position"
	"github.com/nougo-lang/nougo/token"
)

// if := 'if' expr 'then' (expr | NEWLINE block) ('elif' expr 'then' (expr|NEWLINE block))* ('else' (expr|NEWLINE block))? 'end'?
//
// The single-line form (`if cond then expr`) takes an optional closing
// `end`; the multi-line form (body starts with NEWLINE) requires it.
func (p *Parser) parseIf() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	var cases []ast.IfCase
	if err := p.expectKeyword("if"); err != nil {
		return nil, err
	}
	multiline := false
	for {
		cond, err := p.parseLogical()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("then"); err != nil {
			return nil, err
		}
		body, ml, err := p.parseBranchBody()
		if err != nil {
			return nil, err
		}
		multiline = multiline || ml
		cases = append(cases, ast.IfCase{Cond: cond, Body: body})
		if p.atKeyword("elif") {
			p.advance()
			continue
		}
		break
	}
	var elseBody ast.Stmt
	if p.atKeyword("else") {
		p.advance()
		body, ml, err := p.parseBranchBody()
		if err != nil {
			return nil, err
		}
		multiline = multiline || ml
		elseBody = body
	}
	end, err := p.closeBody(multiline)
	if err != nil {
		return nil, err
	}
	return &ast.If{Cases: cases, Else: elseBody, Rng: rng(start, end)}, nil
}

// parseBranchBody parses either a single inline expression-statement, or
// (when the branch opens with a NEWLINE) a NEWLINE-separated block
// terminated by one of elif/else/end — the caller decides whether `end`
// must then be consumed.
func (p *Parser) parseBranchBody() (ast.Stmt, bool, *langerr.Error) {
	if p.at(token.NEWLINE) {
		block, err := p.parseBlockUntil("elif", "else", "end")
		if err != nil {
			return nil, false, err
		}
		return block, true, nil
	}
	st, err := p.parseStatement()
	if err != nil {
		return nil, false, err
	}
	return st, false, nil
}

// closeBody consumes a body's terminator: a multiline body requires
// `end`, while a single-line body takes an optional immediate `end`, so
// an inline statement such as `if cond then break end` closes itself
// instead of ending the enclosing block.
func (p *Parser) closeBody(multiline bool) (position.Position, *langerr.Error) {
	if multiline {
		if err := p.expectKeyword("end"); err != nil {
			return position.Position{}, err
		}
	} else if p.atKeyword("end") {
		p.advance()
	}
	return p.cur.Range.Start, nil
}

// for := 'for' IDENTIFIER '=' expr 'to' expr ('step' expr)? body
//      | 'for' IDENTIFIER 'in' expr body
func (p *Parser) parseFor() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if p.atKeyword("in") {
		p.advance()
		iter, err := p.parseLogical()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("then"); err != nil {
			return nil, err
		}
		body, multiline, err := p.parseBranchBody()
		if err != nil {
			return nil, err
		}
		end, err := p.closeBody(multiline)
		if err != nil {
			return nil, err
		}
		return &ast.ForIn{Name: name.Lexeme, Iter: iter, Body: body, Rng: rng(start, end)}, nil
	}
	if _, err := p.expect(token.EQ); err != nil {
		return nil, err
	}
	from, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("to"); err != nil {
		return nil, err
	}
	to, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	var step ast.Expr
	if p.atKeyword("step") {
		p.advance()
		step, err = p.parseLogical()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, multiline, err := p.parseBranchBody()
	if err != nil {
		return nil, err
	}
	end, err := p.closeBody(multiline)
	if err != nil {
		return nil, err
	}
	return &ast.For{Name: name.Lexeme, Start: from, End: to, Step: step, Body: body, Rng: rng(start, end)}, nil
}

// while := 'while' expr 'then'|'do' body
func (p *Parser) parseWhile() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	cond, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	if p.atKeyword("then") || p.atKeyword("do") {
		p.advance()
	} else {
		return nil, p.errorf("expected 'then' or 'do', got %s", p.cur.Quoted())
	}
	body, multiline, err := p.parseBranchBody()
	if err != nil {
		return nil, err
	}
	end, err := p.closeBody(multiline)
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Rng: rng(start, end)}, nil
}

// doWhile := 'do' body 'loop' 'while' expr
func (p *Parser) parseDoWhile() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	block, err := p.parseBlockUntil("loop")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("loop"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("while"); err != nil {
		return nil, err
	}
	cond, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	return &ast.DoWhile{Body: block, Cond: cond, Rng: rng(start, cond.Range().End)}, nil
}
