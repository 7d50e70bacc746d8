package ast

import "github.com/nougo-lang/nougo/position"

// FuncDef is a function definition. Params holds required parameter
// names in order; OptionalParams holds the names declared with a
// trailing '?'. Name is "" for an anonymous function
// expression.
type FuncDef struct {
	Name           string
	Params         []string
	OptionalParams []string
	Body           Stmt
	AutoReturn     bool // true when Body is a single expression (`->`)
	Rng            position.Range
}

func (n *FuncDef) Range() position.Range { return n.Rng }
func (n *FuncDef) String() string        { return "def " + n.Name }
func (*FuncDef) exprNode()               {}
func (*FuncDef) stmtNode()               {}

// ClassDef is a class definition with an optional single parent (single
// inheritance). Name is "" for an anonymous class
// expression.
type ClassDef struct {
	Name       string
	Parent     string // "" if no parent
	Body       Stmt
	AutoReturn bool
	Rng        position.Range
}

func (n *ClassDef) Range() position.Range { return n.Rng }
func (n *ClassDef) String() string        { return "class " + n.Name }
func (*ClassDef) exprNode()               {}
func (*ClassDef) stmtNode()               {}

// CallArg is one argument to a Call; Spread reports whether it was
// written with a leading '*' — the evaluator rejects spread on values
// that are not a List.
type CallArg struct {
	Value  Expr
	Spread bool
}

// Call invokes Target (a function, class, or builtin value) with Args.
type Call struct {
	Target Expr
	Args   []CallArg
	Rng    position.Range
}

func (n *Call) Range() position.Range { return n.Rng }
func (n *Call) String() string        { return n.Target.String() + "(...)" }
func (*Call) exprNode()               {}
func (*Call) stmtNode()               {}
