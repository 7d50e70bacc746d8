package parser

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/token"
)

// expr := 'var' assign-targets (= |compound-assign) expr (',' expr)*
//       | 'del' ident
//       | 'write' expr (>>|!>>) expr NUM?
//       | 'read' expr ('>>' ident)? NUM?
//       | 'assert' expr (',' expr)?
//       | comp-expr (('and'|'or'|'xor') comp-expr)*
func (p *Parser) parseExpr() (ast.Expr, *langerr.Error) {
	switch {
	case p.atKeyword("var"):
		return p.parseVarAssign()
	case p.atKeyword("del"):
		return p.parseVarDelete()
	case p.atKeyword("write"):
		return p.parseWrite()
	case p.atKeyword("read"):
		return p.parseRead()
	case p.atKeyword("assert"):
		return p.parseAssert()
	}
	return p.parseLogical()
}

var compoundAssignOps = map[token.Kind]bool{
	token.EQ: true, token.PLUSEQ: true, token.MINUSEQ: true, token.MULTEQ: true,
	token.DIVEQ: true, token.POWEQ: true, token.PERCEQ: true, token.FLOORDIVEQ: true,
	token.OREQ: true, token.ANDEQ: true, token.XOREQ: true, token.BITOREQ: true,
	token.BITANDEQ: true, token.BITXOREQ: true, token.EEEQ: true, token.LTEEQ: true,
	token.GTEEQ: true, token.LTEQ: true, token.GTEQ: true,
}

// parseAssignChain parses one target of a var-assign: IDENTIFIER
// ('?' IDENTIFIER)*, the same shape as a VarAccess chain.
func (p *Parser) parseAssignChain() ([]string, *langerr.Error) {
	first, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	chain := []string{first.Lexeme}
	for p.at(token.INTERROGATIVE_PNT) {
		p.advance()
		id, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		chain = append(chain, id.Lexeme)
	}
	return chain, nil
}

func (p *Parser) parseVarAssign() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	var targets [][]string
	first, err := p.parseAssignChain()
	if err != nil {
		return nil, err
	}
	targets = append(targets, first)
	for p.at(token.COMMA) && (p.peekAt(token.IDENTIFIER)) {
		// lookahead further: only consume the comma as a target
		// separator if an '=' / compound-assign eventually follows this
		// chain, otherwise it's the RHS expression list and we stop
		// collecting targets (`var a = 1, 2` is a single target with a
		// list of values is NOT valid — multi assign is
		// `var a, b = 1, 2`). We resolve this by requiring an assign
		// operator directly after the chain below.
		save := *p
		p.advance() // consume comma
		if !p.at(token.IDENTIFIER) {
			*p = save
			break
		}
		chain, err := p.parseAssignChain()
		if err != nil {
			*p = save
			break
		}
		if !compoundAssignOps[p.cur.Kind] && p.cur.Kind != token.COMMA {
			*p = save
			break
		}
		targets = append(targets, chain)
	}
	if !compoundAssignOps[p.cur.Kind] {
		return nil, p.errorf("expected '=' or a compound assignment operator, got %s", p.cur.Quoted())
	}
	op := string(p.cur.Kind)
	p.advance()
	var values []ast.Expr
	v, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	values = append(values, v)
	for p.at(token.COMMA) {
		p.advance()
		v, err := p.parseLogical()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	end := values[len(values)-1].Range().End
	return &ast.VarAssign{Targets: targets, Op: op, Values: values, Rng: rng(start, end)}, nil
}

func (p *Parser) parseVarDelete() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &ast.VarDelete{Name: name.Lexeme, Rng: rng(start, name.Range.End)}, nil
}

// write := 'write' expr (>>|!>>) expr NUM?
func (p *Parser) parseWrite() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	e, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	var op string
	switch p.cur.Kind {
	case token.TO:
		op = ">>"
	case token.TO_AND_OVERWRITE:
		op = "!>>"
	default:
		return nil, p.errorf("expected '>>' or '!>>', got %s", p.cur.Quoted())
	}
	p.advance()
	file, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	var lineExpr ast.Expr
	end := file.Range().End
	if p.at(token.INT) {
		lineExpr, err = p.parseAtom()
		if err != nil {
			return nil, err
		}
		end = lineExpr.Range().End
	}
	return &ast.Write{Expr: e, FileExpr: file, ToOp: op, LineOrAll: lineExpr, Rng: rng(start, end)}, nil
}

// read := 'read' expr ('>>' ident)? NUM?
func (p *Parser) parseRead() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	file, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	target := ""
	end := file.Range().End
	if p.at(token.TO) {
		p.advance()
		id, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		target = id.Lexeme
		end = id.Range.End
	}
	var lineExpr ast.Expr
	if p.at(token.INT) {
		lineExpr, err = p.parseAtom()
		if err != nil {
			return nil, err
		}
		end = lineExpr.Range().End
	}
	return &ast.Read{FileExpr: file, Target: target, LineOrAll: lineExpr, Rng: rng(start, end)}, nil
}

// assert := 'assert' expr (',' expr)?
func (p *Parser) parseAssert() (ast.Expr, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	cond, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	var msg ast.Expr
	end := cond.Range().End
	if p.at(token.COMMA) {
		p.advance()
		msg, err = p.parseLogical()
		if err != nil {
			return nil, err
		}
		end = msg.Range().End
	}
	return &ast.Assert{Cond: cond, Msg: msg, Rng: rng(start, end)}, nil
}

// comp-expr (('and'|'or'|'xor') comp-expr)*
func (p *Parser) parseLogical() (ast.Expr, *langerr.Error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("and") || p.atKeyword("or") || p.atKeyword("xor") {
		op := p.cur.Lexeme
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, Rng: rng(left.Range().Start, right.Range().End)}
	}
	return left, nil
}
