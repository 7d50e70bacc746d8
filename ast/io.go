package ast

import "github.com/nougo-lang/nougo/position"

// Write evaluates Expr and writes its stringified form to FileExpr (a
// String path). ToOp is ">>" (append) or "!>>" (overwrite). LineOrAll is
// nil for the default ("last" for >>, full-file replace for !>>), an Expr
// evaluating to an Int for a specific 1-based line.
type Write struct {
	Expr      Expr
	FileExpr  Expr
	ToOp      string
	LineOrAll Expr // nil, or an Int-valued expression
	Rng       position.Range
}

func (n *Write) Range() position.Range { return n.Rng }
func (n *Write) String() string        { return "write ... " + n.ToOp + " ..." }
func (*Write) exprNode()               {}
func (*Write) stmtNode()               {}

// Read reads FileExpr. LineOrAll is nil for "all" (whole file), or an
// Expr evaluating to Int for a specific line. Target, if set, is the
// identifier bound in the current scope; otherwise the read value
// becomes the statement's result.
type Read struct {
	FileExpr  Expr
	Target    string // "" if unset
	LineOrAll Expr   // nil means "all"
	Rng       position.Range
}

func (n *Read) Range() position.Range { return n.Rng }
func (n *Read) String() string        { return "read ..." }
func (*Read) exprNode()               {}
func (*Read) stmtNode()               {}

// DollarPrint prints the named binding's string form and yields None.
type DollarPrint struct {
	Identifier string
	Rng        position.Range
}

func (n *DollarPrint) Range() position.Range { return n.Rng }
func (n *DollarPrint) String() string        { return "$" + n.Identifier }
func (*DollarPrint) exprNode()               {}
func (*DollarPrint) stmtNode()               {}
