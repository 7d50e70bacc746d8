package ast

import (
	"strings"

	"github.com/nougo-lang/nougo/position"
)

// Import resolves PathSegments (a dotted module path) against the
// built-in registry first, then on-disk source files. Alias, if set,
// names the binding in the importing scope; otherwise the last segment
// is used.
type Import struct {
	PathSegments []string
	Alias        string // "" if no alias
	Rng          position.Range
}

func (n *Import) Range() position.Range { return n.Rng }
func (n *Import) String() string        { return "import " + strings.Join(n.PathSegments, ".") }
func (*Import) exprNode()               {}
func (*Import) stmtNode()               {}

// Export publishes a binding from the current module's export table.
// Name is set when the exported thing is a bare identifier (the common
// case); Expr is set when an arbitrary expression is exported under
// Alias. Exactly one of Name/Expr is non-zero.
type Export struct {
	Name  string // "" if Expr is used instead
	Expr  Expr   // nil if Name is used instead
	Alias string // "" to use Name verbatim
	Rng   position.Range
}

func (n *Export) Range() position.Range { return n.Rng }
func (n *Export) String() string        { return "export " + n.Name }
func (*Export) exprNode()               {}
func (*Export) stmtNode()               {}
