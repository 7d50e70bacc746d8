package ast

import "github.com/nougo-lang/nougo/position"

// BinOp is a binary operator application: arithmetic, bitwise, or the
// logical and/or/xor family (logical operators still short-circuit in
// eval, not here — the node only records the two operands and the op).
type BinOp struct {
	Left  Expr
	Op    string
	Right Expr
	Rng   position.Range
}

func (n *BinOp) Range() position.Range { return n.Rng }
func (n *BinOp) String() string        { return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")" }
func (*BinOp) exprNode()               {}
func (*BinOp) stmtNode()               {}

// CompareChain represents `o0 c1 o1 c2 o2 ...`: Operands has len N+1,
// Ops has len N. Each operand is evaluated at most once, and evaluation
// stops at the first comparison that does not hold; the chain's truth
// value is the AND of every adjacent comparison.
type CompareChain struct {
	Operands []Expr
	Ops      []string
	Rng      position.Range
}

func (n *CompareChain) Range() position.Range { return n.Rng }
func (n *CompareChain) String() string        { return "<compare-chain>" }
func (*CompareChain) exprNode()               {}
func (*CompareChain) stmtNode()               {}

// UnaryOp applies a prefix operator: "+", "-", "~", or "not".
type UnaryOp struct {
	Op   string
	Node Expr
	Rng  position.Range
}

func (n *UnaryOp) Range() position.Range { return n.Rng }
func (n *UnaryOp) String() string        { return n.Op + n.Node.String() }
func (*UnaryOp) exprNode()               {}
func (*UnaryOp) stmtNode()               {}
