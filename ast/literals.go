package ast

import (
	"strconv"

	"github.com/nougo-lang/nougo/position"
)

// IntLit is an integer literal, e.g. 42.
type IntLit struct {
	Value int64
	Rng   position.Range
}

func (n *IntLit) Range() position.Range { return n.Rng }
func (n *IntLit) String() string        { return itoa(n.Value) }
func (*IntLit) exprNode()               {}
func (*IntLit) stmtNode()               {}

// FloatLit is a floating-point literal, e.g. 3.14.
type FloatLit struct {
	Value float64
	Rng   position.Range
}

func (n *FloatLit) Range() position.Range { return n.Rng }
func (n *FloatLit) String() string        { return ftoa(n.Value) }
func (*FloatLit) exprNode()               {}
func (*FloatLit) stmtNode()               {}

// StringLit is a quoted string literal with escapes already resolved by
// the lexer.
type StringLit struct {
	Value string
	Rng   position.Range
}

func (n *StringLit) Range() position.Range { return n.Rng }
func (n *StringLit) String() string        { return "\"" + n.Value + "\"" }
func (*StringLit) exprNode()               {}
func (*StringLit) stmtNode()               {}

// ListLit is a bracketed list literal; Spreads[i] reports whether
// Elements[i] was written with a leading '*' (flattened at eval time).
type ListLit struct {
	Elements []Expr
	Spreads  []bool
	Rng      position.Range
}

func (n *ListLit) Range() position.Range { return n.Rng }
func (n *ListLit) String() string        { return "[list]" }
func (*ListLit) exprNode()               {}
func (*ListLit) stmtNode()               {}

// NumE is a scientific-notation number: Mantissa * 10^Exponent. The
// parser builds this only when the lexer's EXP token immediately follows
// the mantissa token.
type NumE struct {
	Mantissa Expr // *IntLit or *FloatLit
	Exponent int64
	Rng      position.Range
}

func (n *NumE) Range() position.Range { return n.Rng }
func (n *NumE) String() string        { return n.Mantissa.String() + "e" + itoa(n.Exponent) }
func (*NumE) exprNode()               {}
func (*NumE) stmtNode()               {}

// Empty is the sentinel node returned for an empty file or an empty
// program chunk.
type Empty struct {
	Rng position.Range
}

func (n *Empty) Range() position.Range { return n.Rng }
func (n *Empty) String() string        { return "<empty>" }
func (*Empty) exprNode()               {}
func (*Empty) stmtNode()               {}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
