package parser

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/token"
)

// call := access ('(' arg-list? ')')*
func (p *Parser) parseCall() (ast.Expr, *langerr.Error) {
	target, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.at(token.LPAREN) {
		start := target.Range().Start
		p.advance()
		var args []ast.CallArg
		if !p.at(token.RPAREN) {
			for {
				spread := false
				if p.at(token.MUL) {
					spread = true
					p.advance()
				}
				v, err := p.parseLogical()
				if err != nil {
					return nil, err
				}
				args = append(args, ast.CallArg{Value: v, Spread: spread})
				if !p.at(token.COMMA) {
					break
				}
				p.advance()
			}
		}
		closeParen, err := p.expect(token.RPAREN)
		if err != nil {
			return nil, err
		}
		target = &ast.Call{Target: target, Args: args, Rng: rng(start, closeParen.Range.End)}
	}
	return target, nil
}

// access := ident ('?' ident)*
func (p *Parser) parseAccess() (ast.Expr, *langerr.Error) {
	first, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	chain := []string{first.Lexeme}
	end := first.Range.End
	for p.at(token.INTERROGATIVE_PNT) {
		p.advance()
		next, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		chain = append(chain, next.Lexeme)
		end = next.Range.End
	}
	return &ast.VarAccess{Chain: chain, Rng: rng(first.Range.Start, end)}, nil
}

// atom := INT | FLOAT | STRING | '(' expr ')' | list | if | for | while
//
//	| do | 'def' fn-def | 'class' class-def | access
func (p *Parser) parseAtom() (ast.Expr, *langerr.Error) {
	switch {
	case p.at(token.INT):
		return p.parseIntOrNumE()
	case p.at(token.FLOAT):
		return p.parseFloatOrNumE()
	case p.at(token.STRING):
		t := p.cur
		p.advance()
		return &ast.StringLit{Value: t.Payload.(string), Rng: t.Range}, nil
	case p.at(token.LPAREN):
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	case p.at(token.LSQUARE):
		return p.parseListLit()
	case p.atKeyword("if"):
		return p.parseIf()
	case p.atKeyword("for"):
		return p.parseFor()
	case p.atKeyword("while"):
		return p.parseWhile()
	case p.atKeyword("do"):
		return p.parseDoWhile()
	case p.atKeyword("def"):
		return p.parseFuncDef()
	case p.atKeyword("class"):
		return p.parseClassDef()
	case p.at(token.IDENTIFIER):
		return p.parseAccess()
	case p.at(token.DOLLAR):
		return p.parseDollarPrint()
	}
	return nil, p.errorf("unexpected token %s", p.cur.Quoted())
}

// $identifier prints the named binding's string form.
func (p *Parser) parseDollarPrint() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	id, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &ast.DollarPrint{Identifier: id.Lexeme, Rng: rng(start, id.Range.End)}, nil
}

// parseIntOrNumE consumes an INT token; if the lexer queued an EXP
// token directly behind it, folds it into a NumE node.
func (p *Parser) parseIntOrNumE() (ast.Expr, *langerr.Error) {
	t := p.cur
	p.advance()
	lit := &ast.IntLit{Value: t.Payload.(int64), Rng: t.Range}
	if p.at(token.EXP) {
		exp := p.cur
		p.advance()
		return &ast.NumE{Mantissa: lit, Exponent: exp.Payload.(int64), Rng: rng(t.Range.Start, exp.Range.End)}, nil
	}
	return lit, nil
}

func (p *Parser) parseFloatOrNumE() (ast.Expr, *langerr.Error) {
	t := p.cur
	p.advance()
	lit := &ast.FloatLit{Value: t.Payload.(float64), Rng: t.Range}
	if p.at(token.EXP) {
		exp := p.cur
		p.advance()
		return &ast.NumE{Mantissa: lit, Exponent: exp.Payload.(int64), Rng: rng(t.Range.Start, exp.Range.End)}, nil
	}
	return lit, nil
}

// list := '[' (expr (',' expr)*)? ']', each element optionally prefixed
// with '*' to mark a spread, flattened at eval time.
func (p *Parser) parseListLit() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	var elems []ast.Expr
	var spreads []bool
	p.skipNewlines()
	if !p.at(token.RSQUARE) {
		for {
			p.skipNewlines()
			spread := false
			if p.at(token.MUL) {
				spread = true
				p.advance()
			}
			e, err := p.parseLogical()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			spreads = append(spreads, spread)
			p.skipNewlines()
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.skipNewlines()
	end, err := p.expect(token.RSQUARE)
	if err != nil {
		return nil, err
	}
	return &ast.ListLit{Elements: elems, Spreads: spreads, Rng: rng(start, end.Range.End)}, nil
}
