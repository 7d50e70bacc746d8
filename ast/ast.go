/*
File   : nougo/ast/ast.go
Package: ast

Package ast defines the closed set of syntax tree node types produced
by the parser and consumed by eval. The evaluator dispatches on these
with a type switch rather than a visitor interface, which scales better
across this language's ~25 node kinds than a 25-method visitor would.
*/
package ast

import "github.com/nougo-lang/nougo/position"

// Node is the base interface every syntax tree node satisfies.
type Node interface {
	Range() position.Range
	String() string
}

// Expr marks nodes that produce a value when evaluated.
type Expr interface {
	Node
	exprNode()
	stmtNode()
}

// Stmt marks nodes executed for effect. Every Expr is also usable as
// a Stmt (an expression statement).
type Stmt interface {
	Node
	stmtNode()
}

// Block is a sequence of statements executed in order, e.g. the body of
// an `if`/`for`/`while`/`def` closed by `end`. Its value (for the
// `auto_return` / loop-accumulator rules) is its last statement's value.
type Block struct {
	Statements []Stmt
	Rng        position.Range
}

func (n *Block) Range() position.Range { return n.Rng }
func (n *Block) String() string        { return "<block>" }
func (*Block) exprNode()               {}
func (*Block) stmtNode()               {}

// Program is the root of a parsed source file or REPL chunk: a sequence
// of statements executed in order.
type Program struct {
	Statements []Stmt
	Rng        position.Range
}

func (p *Program) Range() position.Range { return p.Rng }
func (p *Program) String() string {
	s := ""
	for _, st := range p.Statements {
		s += st.String() + "\n"
	}
	return s
}
