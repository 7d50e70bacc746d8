/*
File   : nougo/eval/evaluator.go
Package: eval

Package eval is the tree-walking evaluator: it visits ast nodes and
produces runtime.RTR results under a scope.Scope. Every handler returns
an explicit *runtime.RTR so errors and control-flow signals travel the
same path as values.
*/
package eval

import (
	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/runtime"
	"github.com/nougo-lang/nougo/scope"
	"github.com/nougo-lang/nougo/value"
)

// Evaluator walks one program's AST under a root scope. WorkDir and
// ModuleDir are threaded to builtins whose descriptor requests them
//.
type Evaluator struct {
	Root      *scope.Scope
	WorkDir   string
	ModuleDir string

	// callStack mirrors the lexical call chain for langerr.Error context
	// frames.
	callStack []langerr.Frame

	// funcDepth counts active user/builtin call frames so evalReturn can
	// reject a `return` outside any function.
	funcDepth int

	// exports collects this evaluator's top-level Export bindings when it
	// is evaluating a source module; nil for the program-level
	// Evaluator created by New, where Export still evaluates its
	// expression but has no export table to publish into.
	exports map[string]value.Value
}

// New creates an Evaluator with a freshly pre-bound root scope.
func New(workDir, moduleDir string) *Evaluator {
	e := &Evaluator{Root: scope.NewRoot("<module>"), WorkDir: workDir, ModuleDir: moduleDir}
	BindGlobals(e.Root)
	return e
}

// Eval is the central dispatcher, routing each concrete ast node to
// its handler.
func (e *Evaluator) Eval(n ast.Node, s *scope.Scope) *runtime.RTR {
	switch node := n.(type) {
	case *ast.Program:
		return e.evalStatements(node.Statements, s)
	case *ast.Block:
		return e.evalStatements(node.Statements, s)
	case *ast.Empty:
		return runtime.Ok(value.NoneValue)

	case *ast.IntLit:
		return runtime.Ok(&value.Int{I: node.Value})
	case *ast.FloatLit:
		return runtime.Ok(&value.Float{F: node.Value})
	case *ast.StringLit:
		return runtime.Ok(&value.String{S: node.Value})
	case *ast.ListLit:
		return e.evalListLit(node, s)
	case *ast.NumE:
		return e.evalNumE(node, s)

	case *ast.VarAccess:
		return e.evalVarAccess(node, s)
	case *ast.VarAssign:
		return e.evalVarAssign(node, s)
	case *ast.VarDelete:
		return e.evalVarDelete(node, s)

	case *ast.BinOp:
		return e.evalBinOp(node, s)
	case *ast.CompareChain:
		return e.evalCompareChain(node, s)
	case *ast.UnaryOp:
		return e.evalUnaryOp(node, s)

	case *ast.If:
		return e.evalIf(node, s)
	case *ast.Assert:
		return e.evalAssert(node, s)
	case *ast.For:
		return e.evalFor(node, s)
	case *ast.ForIn:
		return e.evalForIn(node, s)
	case *ast.While:
		return e.evalWhile(node, s)
	case *ast.DoWhile:
		return e.evalDoWhile(node, s)
	case *ast.Break:
		return runtime.BreakSignal()
	case *ast.Continue:
		return runtime.ContinueSignal()
	case *ast.Return:
		return e.evalReturn(node, s)

	case *ast.FuncDef:
		return e.evalFuncDef(node, s)
	case *ast.ClassDef:
		return e.evalClassDef(node, s)
	case *ast.Call:
		return e.evalCall(node, s)

	case *ast.Import:
		return e.evalImport(node, s)
	case *ast.Export:
		return e.evalExport(node, s)

	case *ast.Write:
		return e.evalWrite(node, s)
	case *ast.Read:
		return e.evalRead(node, s)
	case *ast.DollarPrint:
		return e.evalDollarPrint(node, s)
	}
	return runtime.Ok(value.NoneValue)
}

// evalStatements runs stmts in order, threading the same scope. Its
// Value is the last statement's Value (auto-return / loop-accumulator
// rules build on this); it stops at the first error or control-flow
// signal.
func (e *Evaluator) evalStatements(stmts []ast.Stmt, s *scope.Scope) *runtime.RTR {
	result := runtime.Ok(value.NoneValue)
	for _, st := range stmts {
		result = e.Eval(st, s)
		if result.ShouldUnwind() {
			return result
		}
	}
	return result
}

func (e *Evaluator) errorf(kind langerr.Kind, n ast.Node, format string, args ...interface{}) *runtime.RTR {
	err := langerr.New(kind, n.Range(), format, args...)
	for i := len(e.callStack) - 1; i >= 0; i-- {
		err = err.WithFrame(e.callStack[i])
	}
	return runtime.Fail(err)
}
