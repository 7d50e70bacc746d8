/*
File   : nougo/eval/io.go
Package: eval

Handlers for Write/Read/DollarPrint, delegating the actual filesystem
work to stdlib/iobuiltin's plain Go functions rather than going through
the Builtin/registry call machinery — Write and Read are statements
with dedicated AST shapes (file, op, line-or-all), not ordinary calls.
*/
package eval

import (
	"fmt"

	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/runtime"
	"github.com/nougo-lang/nougo/scope"
	"github.com/nougo-lang/nougo/stdlib/core"
	"github.com/nougo-lang/nougo/stdlib/iobuiltin"
	"github.com/nougo-lang/nougo/value"
)

// evalWrite evaluates Expr and FileExpr, then writes the stringified
// Expr to the named file per ToOp/LineOrAll.
func (e *Evaluator) evalWrite(n *ast.Write, s *scope.Scope) *runtime.RTR {
	vr := e.Eval(n.Expr, s)
	if vr.ShouldUnwind() {
		return vr
	}
	path, rtErr := e.fileArg(n, n.FileExpr, s)
	if rtErr != nil {
		return rtErr
	}
	content := vr.Value.String()

	if n.LineOrAll != nil {
		line, rtErr := e.lineArg(n, n.LineOrAll, s)
		if rtErr != nil {
			return rtErr
		}
		if err := iobuiltin.WriteAtLine(path, line, content); err != nil {
			return e.errorf(langerr.RunTimeError, n, "%s", err.Error())
		}
		return runtime.Ok(vr.Value)
	}

	var err error
	if n.ToOp == "!>>" {
		err = iobuiltin.OverwriteAll(path, content)
	} else {
		err = iobuiltin.WriteLast(path, content)
	}
	if err != nil {
		return e.errorf(langerr.RunTimeError, n, "%s", err.Error())
	}
	return runtime.Ok(vr.Value)
}

// evalRead reads FileExpr per LineOrAll, binding Target in s if set,
// otherwise yielding the read String as the statement's result.
func (e *Evaluator) evalRead(n *ast.Read, s *scope.Scope) *runtime.RTR {
	path, rtErr := e.fileArg(n, n.FileExpr, s)
	if rtErr != nil {
		return rtErr
	}

	var text string
	var err error
	if n.LineOrAll == nil {
		text, err = iobuiltin.ReadAll(path)
	} else {
		var line int
		line, rtErr = e.lineArg(n, n.LineOrAll, s)
		if rtErr != nil {
			return rtErr
		}
		text, err = iobuiltin.ReadLine(path, line)
	}
	if err != nil {
		return e.errorf(langerr.RunTimeError, n, "%s", err.Error())
	}

	result := &value.String{S: text}
	if n.Target != "" {
		if s.IsProtected(n.Target) {
			return e.errorf(langerr.RunTimeError, n, "'%s' cannot be modified", n.Target)
		}
		s.Bind(n.Target, result)
	}
	return runtime.Ok(result)
}

// evalDollarPrint prints the named binding's string form and yields
// None.
func (e *Evaluator) evalDollarPrint(n *ast.DollarPrint, s *scope.Scope) *runtime.RTR {
	v, ok := s.LookUp(n.Identifier)
	if !ok {
		return e.errorf(langerr.RTNameError, n, "'%s' is not defined", n.Identifier)
	}
	fmt.Fprintln(core.Out, v.String())
	return runtime.Ok(value.NoneValue)
}

// fileArg evaluates expr and requires it to be a String path.
func (e *Evaluator) fileArg(n ast.Node, expr ast.Expr, s *scope.Scope) (string, *runtime.RTR) {
	r := e.Eval(expr, s)
	if r.ShouldUnwind() {
		return "", r
	}
	str, ok := r.Value.(*value.String)
	if !ok {
		return "", e.errorf(langerr.RTTypeError, n, "file path must be a string, got %s", r.Value.Type())
	}
	return str.S, nil
}

// lineArg evaluates expr and requires it to be an Int (the 1-based
// line number).
func (e *Evaluator) lineArg(n ast.Node, expr ast.Expr, s *scope.Scope) (int, *runtime.RTR) {
	r := e.Eval(expr, s)
	if r.ShouldUnwind() {
		return 0, r
	}
	i, ok := r.Value.(*value.Int)
	if !ok {
		return 0, e.errorf(langerr.RTTypeError, n, "line number must be an int, got %s", r.Value.Type())
	}
	return int(i.I), nil
}
