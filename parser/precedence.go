package parser

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/token"
)

var cmpOps = map[token.Kind]string{
	token.EE: "==", token.NE: "!=", token.LT: "<", token.GT: ">",
	token.LTE: "<=", token.GTE: ">=",
}

// comp-expr := 'not' comp-expr | arith-expr (CMP arith-expr)*
//
// A run of two or more comparisons builds a CompareChain (comparison
// "non-associative as a binary" — `a < b < c` is conjunctive, not
// (a<b)<c), evaluated left-to-right with each operand evaluated at most
// once, stopping at the first comparison that does not hold.
func (p *Parser) parseComparison() (ast.Expr, *langerr.Error) {
	if p.atKeyword("not") {
		start := p.cur.Range.Start
		p.advance()
		operand, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "not", Node: operand, Rng: rng(start, operand.Range().End)}, nil
	}

	first, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if op, ok := cmpOps[p.cur.Kind]; ok {
		operands := []ast.Expr{first}
		var ops []string
		for {
			op, ok = cmpOps[p.cur.Kind]
			if !ok {
				break
			}
			p.advance()
			next, err := p.parseArith()
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
			operands = append(operands, next)
		}
		return &ast.CompareChain{
			Operands: operands,
			Ops:      ops,
			Rng:      rng(operands[0].Range().Start, operands[len(operands)-1].Range().End),
		}, nil
	}
	return first, nil
}

var arithOps = map[token.Kind]string{
	token.PLUS: "+", token.MINUS: "-", token.BITWISEOR: "|",
	token.BITWISEAND: "&", token.BITWISEXOR: "^^",
}

// arith-expr := term (('+'|'-'|'|'|'&'|'^^') term)*
func (p *Parser) parseArith() (ast.Expr, *langerr.Error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := arithOps[p.cur.Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, Rng: rng(left.Range().Start, right.Range().End)}
	}
}

var termOps = map[token.Kind]string{
	token.MUL: "*", token.DIV: "/", token.FLOORDIV: "//", token.PERC: "%",
}

// term := factor (('*'|'/'|'//'|'%') factor)*
func (p *Parser) parseTerm() (ast.Expr, *langerr.Error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := termOps[p.cur.Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, Rng: rng(left.Range().Start, right.Range().End)}
	}
}

var unaryOps = map[token.Kind]string{
	token.PLUS: "+", token.MINUS: "-", token.BITWISENOT: "~",
}

// factor := ('+'|'-'|'~') factor | power
func (p *Parser) parseFactor() (ast.Expr, *langerr.Error) {
	if op, ok := unaryOps[p.cur.Kind]; ok {
		start := p.cur.Range.Start
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Node: operand, Rng: rng(start, operand.Range().End)}, nil
	}
	return p.parsePower()
}

// power := atom ('^' factor)?
//
// Right-associative: parses the exponent with parseFactor, not
// parsePower, so `2^3^2` is `2^(3^2)`.
func (p *Parser) parsePower() (ast.Expr, *langerr.Error) {
	base, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if p.at(token.POW) {
		p.advance()
		exp, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Left: base, Op: "^", Right: exp, Rng: rng(base.Range().Start, exp.Range().End)}, nil
	}
	return base, nil
}
