/*
File   : nougo/eval/control.go
Package: eval

Handlers for control-flow nodes: if/assert, the four loop forms with
their list-accumulator rule, and return/break/continue signaling on the
*runtime.RTR carrier. The loop variable is saved and restored around
each loop so it never leaks into the enclosing scope.
*/
package eval

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/runtime"
	"github.com/nougo-lang/nougo/scope"
	"github.com/nougo-lang/nougo/value"
)

// evalIf runs the first truthy case's body; else runs the else branch
// or yields None.
func (e *Evaluator) evalIf(n *ast.If, s *scope.Scope) *runtime.RTR {
	for _, c := range n.Cases {
		cond := e.Eval(c.Cond, s)
		if cond.ShouldUnwind() {
			return cond
		}
		if value.Truthy(cond.Value) {
			return e.Eval(c.Body, s)
		}
	}
	if n.Else != nil {
		return e.Eval(n.Else, s)
	}
	return runtime.Ok(value.NoneValue)
}

// evalAssert fails with RTAssertionError if Cond is falsy.
func (e *Evaluator) evalAssert(n *ast.Assert, s *scope.Scope) *runtime.RTR {
	cond := e.Eval(n.Cond, s)
	if cond.ShouldUnwind() {
		return cond
	}
	if value.Truthy(cond.Value) {
		return runtime.Ok(value.NoneValue)
	}
	msg := ""
	if n.Msg != nil {
		mr := e.Eval(n.Msg, s)
		if mr.ShouldUnwind() {
			return mr
		}
		msg = mr.Value.String()
	}
	return e.errorf(langerr.RTAssertionError, n, "%s", msg)
}

// evalFor runs the counted loop. Step defaults to 1 when omitted; the
// loop direction is then derived from the sign of step, matching
// `i < end` for positive step and `i > end` for negative. The iterator variable is bound in
// the enclosing scope and restored to its prior value (or unbound) on
// exit.
func (e *Evaluator) evalFor(n *ast.For, s *scope.Scope) *runtime.RTR {
	startR := e.Eval(n.Start, s)
	if startR.ShouldUnwind() {
		return startR
	}
	endR := e.Eval(n.End, s)
	if endR.ShouldUnwind() {
		return endR
	}
	startF, _, ok := numericValue(startR.Value)
	if !ok {
		return e.errorf(langerr.RTTypeError, n, "for-loop start must be a number, got %s", startR.Value.Type())
	}
	endF, _, ok := numericValue(endR.Value)
	if !ok {
		return e.errorf(langerr.RTTypeError, n, "for-loop end must be a number, got %s", endR.Value.Type())
	}
	stepF := 1.0
	if n.Step != nil {
		stepR := e.Eval(n.Step, s)
		if stepR.ShouldUnwind() {
			return stepR
		}
		stepF, _, ok = numericValue(stepR.Value)
		if !ok {
			return e.errorf(langerr.RTTypeError, n, "for-loop step must be a number, got %s", stepR.Value.Type())
		}
		if stepF == 0 {
			return e.errorf(langerr.RTArithmeticError, n, "for-loop step cannot be zero")
		}
	}

	prior, hadPrior := s.LookUp(n.Name)
	var elems []value.Value
	i := startF
	for (stepF > 0 && i < endF) || (stepF < 0 && i > endF) {
		s.Bind(n.Name, numToValue(i))
		r := e.Eval(n.Body, s)
		if r.IsError() || r.ShouldReturn {
			return r
		}
		if r.ShouldBreak {
			restoreLoopVar(s, n.Name, prior, hadPrior)
			return runtime.Ok(value.NoneValue)
		}
		if !r.ShouldContinue {
			elems = append(elems, r.Value)
		}
		i += stepF
	}
	restoreLoopVar(s, n.Name, prior, hadPrior)
	return runtime.Ok(value.NewList(elems...))
}

func numToValue(f float64) value.Value {
	if f == float64(int64(f)) {
		return &value.Int{I: int64(f)}
	}
	return &value.Float{F: f}
}

func restoreLoopVar(s *scope.Scope, name string, prior value.Value, hadPrior bool) {
	if hadPrior {
		s.Bind(name, prior)
	} else {
		s.Delete(name)
	}
}

// evalForIn iterates over a List's elements or a String's characters
//.
func (e *Evaluator) evalForIn(n *ast.ForIn, s *scope.Scope) *runtime.RTR {
	iterR := e.Eval(n.Iter, s)
	if iterR.ShouldUnwind() {
		return iterR
	}
	var items []value.Value
	switch x := iterR.Value.(type) {
	case *value.List:
		items = x.Elems
	case *value.String:
		for _, r := range x.S {
			items = append(items, &value.String{S: string(r)})
		}
	default:
		return e.errorf(langerr.RTTypeError, n, "for-in requires a list or string, got %s", x.Type())
	}

	prior, hadPrior := s.LookUp(n.Name)
	var elems []value.Value
	for _, item := range items {
		s.Bind(n.Name, item)
		r := e.Eval(n.Body, s)
		if r.IsError() || r.ShouldReturn {
			return r
		}
		if r.ShouldBreak {
			restoreLoopVar(s, n.Name, prior, hadPrior)
			return runtime.Ok(value.NoneValue)
		}
		if !r.ShouldContinue {
			elems = append(elems, r.Value)
		}
	}
	restoreLoopVar(s, n.Name, prior, hadPrior)
	return runtime.Ok(value.NewList(elems...))
}

// evalWhile is the pre-test loop with the same accumulator rule as For.
func (e *Evaluator) evalWhile(n *ast.While, s *scope.Scope) *runtime.RTR {
	var elems []value.Value
	for {
		cond := e.Eval(n.Cond, s)
		if cond.ShouldUnwind() {
			return cond
		}
		if !value.Truthy(cond.Value) {
			break
		}
		r := e.Eval(n.Body, s)
		if r.IsError() || r.ShouldReturn {
			return r
		}
		if r.ShouldBreak {
			return runtime.Ok(value.NoneValue)
		}
		if !r.ShouldContinue {
			elems = append(elems, r.Value)
		}
	}
	return runtime.Ok(value.NewList(elems...))
}

// evalDoWhile executes Body once before the first test of Cond.
func (e *Evaluator) evalDoWhile(n *ast.DoWhile, s *scope.Scope) *runtime.RTR {
	var elems []value.Value
	for {
		r := e.Eval(n.Body, s)
		if r.IsError() || r.ShouldReturn {
			return r
		}
		if r.ShouldBreak {
			return runtime.Ok(value.NoneValue)
		}
		if !r.ShouldContinue {
			elems = append(elems, r.Value)
		}
		cond := e.Eval(n.Cond, s)
		if cond.ShouldUnwind() {
			return cond
		}
		if !value.Truthy(cond.Value) {
			break
		}
	}
	return runtime.Ok(value.NewList(elems...))
}

// evalReturn evaluates its operand (None for a bare `return`) and sets
// ShouldReturn; evalCall is responsible for catching it at the function
// boundary.
func (e *Evaluator) evalReturn(n *ast.Return, s *scope.Scope) *runtime.RTR {
	if e.funcDepth == 0 {
		return e.errorf(langerr.RunTimeError, n, "'return' outside a function")
	}
	if n.Expr == nil {
		return runtime.ReturnWith(value.NoneValue)
	}
	r := e.Eval(n.Expr, s)
	if r.ShouldUnwind() {
		return r
	}
	return runtime.ReturnWith(r.Value)
}
