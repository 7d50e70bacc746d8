/*
File   : nougo/eval/expressions.go
Package: eval

Handlers for the expression-shaped nodes: literals needing evaluation
(ListLit, NumE), name resolution/assignment, and the binary/compare/
unary operator families, all built on value/ops.go's operator laws.
*/
package eval

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/runtime"
	"github.com/nougo-lang/nougo/scope"
	"github.com/nougo-lang/nougo/value"
)

// evalListLit evaluates each element left-to-right; a spread element
// must itself be a List and is flattened in place.
func (e *Evaluator) evalListLit(n *ast.ListLit, s *scope.Scope) *runtime.RTR {
	var elems []value.Value
	for i, el := range n.Elements {
		r := e.Eval(el, s)
		if r.ShouldUnwind() {
			return r
		}
		if n.Spreads[i] {
			list, ok := r.Value.(*value.List)
			if !ok {
				return e.errorf(langerr.RTTypeError, el, "cannot spread a %s, expected list", r.Value.Type())
			}
			elems = append(elems, list.Elems...)
		} else {
			elems = append(elems, r.Value)
		}
	}
	return runtime.Ok(value.NewList(elems...))
}

// evalNumE folds a NumE node: m * 10^e, Int if e >= 0, the mantissa is
// an Int and both 10^e and the product fit in an Int, Float otherwise.
func (e *Evaluator) evalNumE(n *ast.NumE, s *scope.Scope) *runtime.RTR {
	mr := e.Eval(n.Mantissa, s)
	if mr.ShouldUnwind() {
		return mr
	}
	if iv, ok := mr.Value.(*value.Int); ok && n.Exponent >= 0 {
		scale, fits := int64(1), true
		for i := int64(0); i < n.Exponent && fits; i++ {
			fits = scale <= (1<<63-1)/10
			scale *= 10
		}
		if fits && (iv.I == 0 || (iv.I*scale)/scale == iv.I) {
			return runtime.Ok(&value.Int{I: iv.I * scale})
		}
	}
	f, _, ok := numericValue(mr.Value)
	if !ok {
		return e.errorf(langerr.RTTypeError, n, "exponent notation requires a numeric mantissa, got %s", mr.Value.Type())
	}
	scale := 1.0
	neg := n.Exponent < 0
	exp := n.Exponent
	if neg {
		exp = -exp
	}
	for i := int64(0); i < exp; i++ {
		scale *= 10
	}
	if neg {
		scale = 1 / scale
	}
	return runtime.Ok(&value.Float{F: f * scale})
}

func numericValue(v value.Value) (float64, bool, bool) {
	switch x := v.(type) {
	case *value.Int:
		return float64(x.I), true, true
	case *value.Float:
		return x.F, false, true
	}
	return 0, false, false
}

// evalVarAccess resolves Chain[0] by scope lookup, then walks Chain[1:]
// as attribute accesses off the previous value.
func (e *Evaluator) evalVarAccess(n *ast.VarAccess, s *scope.Scope) *runtime.RTR {
	name := n.Chain[0]
	v, ok := s.LookUp(name)
	if !ok {
		return e.errorf(langerr.RTNameError, n, "'%s' is not defined", name)
	}
	for _, attr := range n.Chain[1:] {
		next, ok := getAttr(v, attr)
		if !ok {
			return e.errorf(langerr.RTAttributeError, n, "'%s' has no attribute '%s'", v.Type(), attr)
		}
		v = next
	}
	return runtime.Ok(v)
}

// getAttr dispatches attribute access across the value kinds that
// support it.
func getAttr(v value.Value, name string) (value.Value, bool) {
	switch x := v.(type) {
	case *value.Module:
		return x.GetAttr(name)
	case *value.Instance:
		return x.GetAttr(name)
	case *value.Class:
		return x.Method(name)
	}
	return nil, false
}

// evalVarAssign implements the multi-assign/compound-assign contract:
// all right sides evaluate first, then bindings apply.
func (e *Evaluator) evalVarAssign(n *ast.VarAssign, s *scope.Scope) *runtime.RTR {
	values := make([]value.Value, len(n.Values))
	for i, ve := range n.Values {
		r := e.Eval(ve, s)
		if r.ShouldUnwind() {
			return r
		}
		values[i] = r.Value
	}
	if len(n.Targets) != len(values) {
		return e.errorf(langerr.RunTimeError, n, "assignment target/value count mismatch (%d targets, %d values)", len(n.Targets), len(values))
	}
	for i, chain := range n.Targets {
		if len(chain) == 1 {
			if rtErr := e.assignName(n, s, chain[0], n.Op, values[i]); rtErr != nil {
				return rtErr
			}
			continue
		}
		if rtErr := e.assignAttr(n, s, chain, n.Op, values[i]); rtErr != nil {
			return rtErr
		}
	}
	return runtime.Ok(values[len(values)-1])
}

// assignName applies one scope-binding target (len(chain) == 1): either
// a plain `=` bind or, for a compound op, reads the current value first
// and folds it through BinOp/Compare.
func (e *Evaluator) assignName(n ast.Node, s *scope.Scope, name, op string, newVal value.Value) *runtime.RTR {
	if s.IsProtected(name) {
		return e.errorf(langerr.RunTimeError, n, "'%s' cannot be modified", name)
	}
	if op != "=" {
		current, ok := s.LookUp(name)
		if !ok {
			return e.errorf(langerr.RTNameError, n, "'%s' is not defined", name)
		}
		folded, rtErr := e.foldCompound(n, op, current, newVal)
		if rtErr != nil {
			return rtErr
		}
		newVal = folded
	}
	if owner := s.Owner(name); owner != nil {
		s.Assign(name, newVal)
	} else {
		s.Bind(name, newVal)
	}
	return nil
}

// assignAttr walks chain[:len-1] as a VarAccess to find the owning
// value, then sets its last segment as an attribute.
func (e *Evaluator) assignAttr(n ast.Node, s *scope.Scope, chain []string, op string, newVal value.Value) *runtime.RTR {
	owner, rtErr := e.resolveChainPrefix(n, s, chain[:len(chain)-1])
	if rtErr != nil {
		return rtErr
	}
	inst, ok := owner.(*value.Instance)
	if !ok {
		return e.errorf(langerr.RTAttributeError, n, "cannot assign an attribute on a %s", owner.Type())
	}
	last := chain[len(chain)-1]
	if op != "=" {
		current, ok := inst.GetAttr(last)
		if !ok {
			return e.errorf(langerr.RTAttributeError, n, "'%s' has no attribute '%s'", inst.Type(), last)
		}
		folded, rtErr := e.foldCompound(n, op, current, newVal)
		if rtErr != nil {
			return rtErr
		}
		newVal = folded
	}
	inst.SetAttr(last, newVal)
	return nil
}

// resolveChainPrefix evaluates a non-empty identifier/attribute chain
// the same way evalVarAccess does, without constructing an ast.VarAccess.
func (e *Evaluator) resolveChainPrefix(n ast.Node, s *scope.Scope, chain []string) (value.Value, *runtime.RTR) {
	v, ok := s.LookUp(chain[0])
	if !ok {
		return nil, e.errorf(langerr.RTNameError, n, "'%s' is not defined", chain[0])
	}
	for _, attr := range chain[1:] {
		next, ok := getAttr(v, attr)
		if !ok {
			return nil, e.errorf(langerr.RTAttributeError, n, "'%s' has no attribute '%s'", v.Type(), attr)
		}
		v = next
	}
	return v, nil
}

// foldCompound applies a compound-assign lexeme's underlying operator
// to (current, rhs). The logical compounds keep the same
// value-returning semantics as `and`/`or`/`xor` binary operators.
func (e *Evaluator) foldCompound(n ast.Node, op string, current, rhs value.Value) (value.Value, *runtime.RTR) {
	switch op {
	case "||=":
		if value.Truthy(current) {
			return current, nil
		}
		return rhs, nil
	case "&&=":
		if !value.Truthy(current) {
			return current, nil
		}
		return rhs, nil
	case "^^^=":
		return boolToInt(value.Truthy(current) != value.Truthy(rhs)), nil
	}
	underlying, isBinOp := compoundBinOp(op)
	if isBinOp {
		result, err := value.BinOp(underlying, current, rhs)
		if err != nil {
			return nil, e.wrapOpError(n, err)
		}
		return result, nil
	}
	result, err := value.Compare(underlying, current, rhs)
	if err != nil {
		return nil, e.wrapOpError(n, err)
	}
	return result, nil
}

// compoundBinOp maps a compound-assign lexeme to the underlying
// operator it applies, and whether that operator belongs to BinOp
// (true) vs Compare (false, for "===" and the "<==" family).
func compoundBinOp(op string) (string, bool) {
	switch op {
	case "+=":
		return "+", true
	case "-=":
		return "-", true
	case "*=":
		return "*", true
	case "/=":
		return "/", true
	case "^=":
		return "^", true
	case "%=":
		return "%", true
	case "//=":
		return "//", true
	case "|=":
		return "|", true
	case "&=":
		return "&", true
	case "^^=":
		return "^^", true
	case "<==":
		return "<=", false
	case ">==":
		return ">=", false
	case "<<=":
		return "<", false
	case ">>=":
		return ">", false
	}
	return "==", false
}

// evalVarDelete removes a binding; deleting a
// protected or unbound name is an error.
func (e *Evaluator) evalVarDelete(n *ast.VarDelete, s *scope.Scope) *runtime.RTR {
	if s.IsProtected(n.Name) {
		return e.errorf(langerr.RunTimeError, n, "'%s' cannot be modified", n.Name)
	}
	if !s.Delete(n.Name) {
		return e.errorf(langerr.RTNameError, n, "'%s' is not defined", n.Name)
	}
	return runtime.Ok(value.NoneValue)
}

// evalBinOp evaluates both operands, short-circuiting "and"/"or" before
// the right operand is touched, then dispatches everything else to
// value.BinOp.
func (e *Evaluator) evalBinOp(n *ast.BinOp, s *scope.Scope) *runtime.RTR {
	lr := e.Eval(n.Left, s)
	if lr.ShouldUnwind() {
		return lr
	}
	switch n.Op {
	case "and":
		if !value.Truthy(lr.Value) {
			return runtime.Ok(lr.Value)
		}
		return e.Eval(n.Right, s)
	case "or":
		if value.Truthy(lr.Value) {
			return runtime.Ok(lr.Value)
		}
		return e.Eval(n.Right, s)
	case "xor":
		rr := e.Eval(n.Right, s)
		if rr.ShouldUnwind() {
			return rr
		}
		lt, rt := value.Truthy(lr.Value), value.Truthy(rr.Value)
		return runtime.Ok(boolToInt(lt != rt))
	}
	rr := e.Eval(n.Right, s)
	if rr.ShouldUnwind() {
		return rr
	}
	result, err := value.BinOp(n.Op, lr.Value, rr.Value)
	if err != nil {
		return e.wrapOpError(n, err)
	}
	return runtime.Ok(result)
}

func boolToInt(b bool) *value.Int {
	if b {
		return &value.Int{I: 1}
	}
	return &value.Int{I: 0}
}

// evalCompareChain evaluates operands left-to-right, ANDing adjacent
// comparisons with the same short-circuit evalBinOp gives `and`: a
// later operand is only evaluated once every earlier comparison has
// held, and each operand is evaluated at most once.
func (e *Evaluator) evalCompareChain(n *ast.CompareChain, s *scope.Scope) *runtime.RTR {
	leftR := e.Eval(n.Operands[0], s)
	if leftR.ShouldUnwind() {
		return leftR
	}
	left := leftR.Value
	for i, op := range n.Ops {
		rightR := e.Eval(n.Operands[i+1], s)
		if rightR.ShouldUnwind() {
			return rightR
		}
		cmp, err := value.Compare(op, left, rightR.Value)
		if err != nil {
			return e.wrapOpError(n, err)
		}
		if !value.Truthy(cmp) {
			return runtime.Ok(&value.Int{I: 0})
		}
		left = rightR.Value
	}
	return runtime.Ok(&value.Int{I: 1})
}

// evalUnaryOp evaluates the operand then applies value.UnaryOp.
func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp, s *scope.Scope) *runtime.RTR {
	r := e.Eval(n.Node, s)
	if r.ShouldUnwind() {
		return r
	}
	result, err := value.UnaryOp(n.Op, r.Value)
	if err != nil {
		return e.wrapOpError(n, err)
	}
	return runtime.Ok(result)
}

// wrapOpError converts an operator or builtin error into the matching
// langerr.Kind, attaching the failing node's position and the
// call-stack context chain the same way errorf does. A *langerr.Error
// coming out of a builtin keeps its kind (e.g. RTIndexError) but is
// re-stamped with the call site's range, which the builtin never had.
func (e *Evaluator) wrapOpError(n ast.Node, err error) *runtime.RTR {
	if le, ok := err.(*langerr.Error); ok {
		return e.errorf(le.Kind, n, "%s", le.Message)
	}
	if opErr, ok := err.(*value.OpError); ok {
		kind := langerr.RTTypeError
		if opErr.Arithmetic {
			kind = langerr.RTArithmeticError
		}
		return e.errorf(kind, n, "%s", opErr.Msg)
	}
	return e.errorf(langerr.RunTimeError, n, "%s", err.Error())
}
