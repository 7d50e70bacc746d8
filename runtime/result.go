/*
File   : nougo/runtime/result.go
Package: runtime

Package runtime implements RuntimeResult (RTR), the sole return medium
of the evaluator: a result carrier with an explicit discriminant.
Instead of smuggling return/break/continue through sentinel values,
every eval method returns an *RTR whose flags the caller inspects
before touching .Value.
*/
package runtime

import "github.com/nougo-lang/nougo/value"

// RTR carries a computation's outcome: a value, an error, or one of the
// three non-local control-flow signals. Invariant: exactly one
// of Value/Err is populated on completion; the flags are mutually
// exclusive with each other but may coexist with a Value (a `return
// expr` sets both ShouldReturn and Value).
type RTR struct {
	Value          value.Value
	Err            error
	ShouldReturn   bool
	ShouldBreak    bool
	ShouldContinue bool
}

// Ok wraps a plain value with no error or control-flow flag set.
func Ok(v value.Value) *RTR { return &RTR{Value: v} }

// Fail wraps an error.
func Fail(err error) *RTR { return &RTR{Err: err} }

// ReturnWith sets ShouldReturn, carrying v (value.NoneValue for a bare
// `return`).
func ReturnWith(v value.Value) *RTR { return &RTR{Value: v, ShouldReturn: true} }

// BreakSignal sets ShouldBreak. Loops catching a break yield None as the
// loop's value.
func BreakSignal() *RTR { return &RTR{Value: value.NoneValue, ShouldBreak: true} }

// ContinueSignal sets ShouldContinue.
func ContinueSignal() *RTR { return &RTR{Value: value.NoneValue, ShouldContinue: true} }

// IsError reports whether r carries an error that should halt evaluation
// and propagate to the caller.
func (r *RTR) IsError() bool { return r != nil && r.Err != nil }

// ShouldUnwind reports whether r carries any signal (error or control
// flow) that the current statement-sequence evaluator must stop and
// propagate rather than continue to the next statement.
func (r *RTR) ShouldUnwind() bool {
	return r != nil && (r.Err != nil || r.ShouldReturn || r.ShouldBreak || r.ShouldContinue)
}

// Loop-local unwind: break/continue are consumed by the nearest
// enclosing loop and must not propagate past it, unlike Err/ShouldReturn.

// ClearLoopSignal returns a copy of r with ShouldBreak/ShouldContinue
// cleared, used by a loop after it has consumed the signal for this
// iteration.
func (r *RTR) ClearLoopSignal() *RTR {
	cp := *r
	cp.ShouldBreak = false
	cp.ShouldContinue = false
	return &cp
}
