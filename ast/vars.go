package ast

import (
	"strings"

	"github.com/nougo-lang/nougo/position"
)

// VarAccess reads a chain of identifiers: Chain[0] is a scope lookup,
// Chain[1:] are '?' attribute accesses off the previous value.
type VarAccess struct {
	Chain []string
	Rng   position.Range
}

func (n *VarAccess) Range() position.Range { return n.Rng }
func (n *VarAccess) String() string        { return strings.Join(n.Chain, "?") }
func (*VarAccess) exprNode()               {}
func (*VarAccess) stmtNode()               {}

// VarAssign binds Values to Targets under Op ("=" or a compound-assign
// lexeme such as "+="). len(Targets) == len(Values) for the parallel
// multi-assign form `var a, b = 1, 2`. Each target is itself a chain:
// Targets[i][0] is a plain scope binding when len(Targets[i]) == 1;
// a longer chain assigns an attribute on the value reached by walking
// Targets[i][:len-1] (e.g. `var this?count = n`), mirroring VarAccess's
// read-side chain.
type VarAssign struct {
	Targets [][]string
	Op      string
	Values  []Expr
	Rng     position.Range
}

func (n *VarAssign) Range() position.Range { return n.Rng }
func (n *VarAssign) String() string {
	names := make([]string, len(n.Targets))
	for i, t := range n.Targets {
		names[i] = strings.Join(t, "?")
	}
	return "var " + strings.Join(names, ", ") + " " + n.Op + " ..."
}
func (*VarAssign) exprNode()               {}
func (*VarAssign) stmtNode()               {}

// VarDelete removes Name's binding from the scope that owns it.
type VarDelete struct {
	Name string
	Rng  position.Range
}

func (n *VarDelete) Range() position.Range { return n.Rng }
func (n *VarDelete) String() string        { return "del " + n.Name }
func (*VarDelete) exprNode()               {}
func (*VarDelete) stmtNode()               {}
