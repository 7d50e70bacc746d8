package parser

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/token"
)

// statement := 'return' expr? | 'break' | 'continue' | 'import' ... | 'export' ... | expr
func (p *Parser) parseStatement() (ast.Stmt, *langerr.Error) {
	switch {
	case p.atKeyword("return"):
		return p.parseReturn()
	case p.atKeyword("break"):
		start := p.cur.Range
		p.advance()
		return &ast.Break{Rng: start}, nil
	case p.atKeyword("continue"):
		start := p.cur.Range
		p.advance()
		return &ast.Continue{Rng: start}, nil
	case p.atKeyword("import"):
		return p.parseImport()
	case p.atKeyword("export"):
		return p.parseExport()
	}
	return p.parseExpr()
}

func (p *Parser) parseReturn() (ast.Stmt, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	if p.at(token.NEWLINE) || p.at(token.EOF) || p.atAnyKeyword("end", "elif", "else") {
		return &ast.Return{Rng: rng(start, p.cur.Range.Start)}, nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Expr: e, Rng: rng(start, e.Range().End)}, nil
}

// import := 'import' IDENTIFIER ('?' IDENTIFIER)* ('->' IDENTIFIER)?
func (p *Parser) parseImport() (ast.Stmt, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	var segs []string
	first, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	segs = append(segs, first.Lexeme)
	for p.at(token.INTERROGATIVE_PNT) {
		p.advance()
		seg, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg.Lexeme)
	}
	alias := ""
	end := p.cur.Range.Start
	if p.at(token.ARROW) {
		p.advance()
		a, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		alias = a.Lexeme
		end = a.Range.End
	}
	return &ast.Import{PathSegments: segs, Alias: alias, Rng: rng(start, end)}, nil
}

// export := 'export' (IDENTIFIER | expr) ('->' IDENTIFIER)?
func (p *Parser) parseExport() (ast.Stmt, *langerr.Error) {
	start := p.cur.Range.Start
	p.advance()
	var name string
	var expr ast.Expr
	if p.at(token.IDENTIFIER) && (p.peekAt(token.NEWLINE) || p.peekAt(token.EOF) || p.peekAt(token.ARROW)) {
		name = p.cur.Lexeme
		p.advance()
	} else {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		expr = e
	}
	alias := ""
	end := p.cur.Range.Start
	if p.at(token.ARROW) {
		p.advance()
		a, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		alias = a.Lexeme
		end = a.Range.End
	}
	return &ast.Export{Name: name, Expr: expr, Alias: alias, Rng: rng(start, end)}, nil
}
