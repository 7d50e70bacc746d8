/*
File   : nougo/eval/callable.go
Package: eval

Handlers for function/class definitions and the uniform call
protocol — arity check, argument population, child-scope creation,
auto-return unwrapping — for both user Functions and Builtins, plus
class instantiation via an "init" constructor method.
*/
package eval

import (
	"fmt"

	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/runtime"
	"github.com/nougo-lang/nougo/scope"
	"github.com/nougo-lang/nougo/value"
)

// evalFuncDef builds a Function value capturing s as its defining scope
//. A named def also binds itself into s so it can
// recurse.
func (e *Evaluator) evalFuncDef(n *ast.FuncDef, s *scope.Scope) *runtime.RTR {
	fn := &value.Function{
		Name:           n.Name,
		Params:         n.Params,
		OptionalParams: n.OptionalParams,
		Body:           n.Body,
		DefiningScope:  s,
		AutoReturn:     n.AutoReturn,
	}
	if n.Name != "" {
		if s.IsProtected(n.Name) {
			return e.errorf(langerr.RunTimeError, n, "'%s' cannot be modified", n.Name)
		}
		s.Bind(n.Name, fn)
	}
	return runtime.Ok(fn)
}

// evalClassDef executes the class body in a fresh class scope and
// collects its top-level bindings as Members, methods and class-level
// values alike.
func (e *Evaluator) evalClassDef(n *ast.ClassDef, s *scope.Scope) *runtime.RTR {
	var parent *value.Class
	if n.Parent != "" {
		pv, ok := s.LookUp(n.Parent)
		if !ok {
			return e.errorf(langerr.RTNameError, n, "'%s' is not defined", n.Parent)
		}
		pc, ok := pv.(*value.Class)
		if !ok {
			return e.errorf(langerr.RTTypeError, n, "'%s' is not a class", n.Parent)
		}
		parent = pc
	}

	classScope := scope.NewChild("<class "+n.Name+">", s)
	if r := e.Eval(n.Body, classScope); r.ShouldUnwind() {
		return r
	}
	members := make(map[string]value.Value, len(classScope.Bindings))
	for k, v := range classScope.Bindings {
		members[k] = v
	}
	class := &value.Class{Name: n.Name, Parent: parent, Members: members}
	if n.Name != "" {
		if s.IsProtected(n.Name) {
			return e.errorf(langerr.RunTimeError, n, "'%s' cannot be modified", n.Name)
		}
		s.Bind(n.Name, class)
	}
	return runtime.Ok(class)
}

// evalCall dispatches on the callee's runtime type: Function, Builtin,
// or Class (constructor). Everything else is a RTTypeError.
func (e *Evaluator) evalCall(n *ast.Call, s *scope.Scope) *runtime.RTR {
	targetR := e.Eval(n.Target, s)
	if targetR.ShouldUnwind() {
		return targetR
	}
	args, r := e.evalCallArgs(n.Args, s)
	if r != nil {
		return r
	}

	switch callee := targetR.Value.(type) {
	case *value.Function:
		return e.callFunction(n, callee, args)
	case *value.Builtin:
		return e.callBuiltin(n, callee, args)
	case *value.Class:
		return e.instantiate(n, callee, args)
	default:
		return e.errorf(langerr.RTTypeError, n, "%s is not callable", targetR.Value.Type())
	}
}

// evalCallArgs evaluates each argument, flattening spread ('*') list
// arguments in place.
func (e *Evaluator) evalCallArgs(callArgs []ast.CallArg, s *scope.Scope) ([]value.Value, *runtime.RTR) {
	var args []value.Value
	for _, a := range callArgs {
		r := e.Eval(a.Value, s)
		if r.ShouldUnwind() {
			return nil, r
		}
		if a.Spread {
			list, ok := r.Value.(*value.List)
			if !ok {
				return nil, e.errorf(langerr.RTTypeError, a.Value, "cannot spread a %s, expected list", r.Value.Type())
			}
			args = append(args, list.Elems...)
		} else {
			args = append(args, r.Value)
		}
	}
	return args, nil
}

// checkArity implements check_args. strict, when
// set by a Builtin descriptor, additionally forbids fewer args than
// required+optional (no sliding-default calls for that builtin).
func checkArity(required, optional []string, strict bool, argc int) error {
	maxArgs := len(required) + len(optional)
	if argc > maxArgs {
		return fmt.Errorf("%d too many args", argc-maxArgs)
	}
	if argc < len(required) {
		return fmt.Errorf("%d too few args", len(required)-argc)
	}
	if strict && argc != maxArgs {
		return fmt.Errorf("%d too few args", maxArgs-argc)
	}
	return nil
}

// populateArgs implements populate_args: required
// names bind first, then optional names in order. Missing optional args
// bind to None.
func populateArgs(dest *scope.Scope, required, optional []string, args []value.Value) {
	i := 0
	for _, name := range required {
		dest.Bind(name, args[i])
		i++
	}
	for _, name := range optional {
		if i < len(args) {
			dest.Bind(name, args[i])
			i++
		} else {
			dest.Bind(name, value.NoneValue)
		}
	}
}

// callFunction runs the user-function call protocol: arity check,
// child scope off the captured defining scope (NOT the caller's),
// populate args, evaluate body, unwrap auto-return/Return/None.
func (e *Evaluator) callFunction(n *ast.Call, fn *value.Function, args []value.Value) *runtime.RTR {
	if err := checkArity(fn.Params, fn.OptionalParams, false, len(args)); err != nil {
		return e.errorf(langerr.RunTimeError, n, "%s", err.Error())
	}
	defining, ok := fn.DefiningScope.(*scope.Scope)
	if !ok {
		return e.errorf(langerr.RunTimeError, n, "malformed function value")
	}
	callScope := scope.NewChild("<function "+displayOrAnon(fn.Name)+">", defining)
	if fn.BoundThis != nil {
		callScope.Bind("this", fn.BoundThis)
	}
	populateArgs(callScope, fn.Params, fn.OptionalParams, args)

	frameName := displayOrAnon(fn.Name)
	e.callStack = append(e.callStack, langerr.Frame{DisplayName: frameName, CallRange: n.Rng})
	e.funcDepth++
	r := e.Eval(fn.Body, callScope)
	e.funcDepth--
	e.callStack = e.callStack[:len(e.callStack)-1]

	if r.IsError() {
		return r
	}
	if fn.AutoReturn {
		return runtime.Ok(r.Value)
	}
	if r.ShouldReturn {
		return runtime.Ok(r.Value)
	}
	return runtime.Ok(value.NoneValue)
}

func displayOrAnon(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}

// callBuiltin runs a Builtin descriptor's call protocol.
func (e *Evaluator) callBuiltin(n *ast.Call, b *value.Builtin, args []value.Value) *runtime.RTR {
	if err := checkArity(b.ParamNames, b.OptionalParams, b.StrictArity, len(args)); err != nil {
		return e.errorf(langerr.RunTimeError, n, "%s: %s", b.Name, err.Error())
	}
	execScope := scope.NewChild("<built-in "+b.Name+">", e.Root)
	populateArgs(execScope, b.ParamNames, b.OptionalParams, args)
	if b.NeedsWorkDir {
		execScope.Bind("__work_dir__", &value.String{S: e.WorkDir})
	}
	if b.NeedsModuleDir {
		execScope.Bind("__module_dir__", &value.String{S: e.ModuleDir})
	}

	e.funcDepth++
	result, err := b.Fn(execScope)
	e.funcDepth--
	if err != nil {
		return e.wrapOpError(n, err)
	}
	if result == nil {
		result = value.NoneValue
	}
	return runtime.Ok(result)
}

// instantiate builds an Instance and runs its "init" method if defined
//.
func (e *Evaluator) instantiate(n *ast.Call, class *value.Class, args []value.Value) *runtime.RTR {
	inst := value.NewInstance(class)
	if initFn, ok := class.Method("init"); ok {
		fn, ok := initFn.(*value.Function)
		if !ok {
			return e.errorf(langerr.RTTypeError, n, "'init' is not callable")
		}
		boundInit := &value.Function{
			Name:           "init",
			Params:         fn.Params,
			OptionalParams: fn.OptionalParams,
			Body:           fn.Body,
			DefiningScope:  fn.DefiningScope,
			AutoReturn:     fn.AutoReturn,
		}
		defining, ok := boundInit.DefiningScope.(*scope.Scope)
		if !ok {
			return e.errorf(langerr.RunTimeError, n, "malformed function value")
		}
		if err := checkArity(boundInit.Params, boundInit.OptionalParams, false, len(args)); err != nil {
			return e.errorf(langerr.RunTimeError, n, "%s", err.Error())
		}
		callScope := scope.NewChild("<init "+class.Name+">", defining)
		callScope.Bind("this", inst)
		populateArgs(callScope, boundInit.Params, boundInit.OptionalParams, args)

		e.callStack = append(e.callStack, langerr.Frame{DisplayName: "init", CallRange: n.Rng})
		e.funcDepth++
		r := e.Eval(boundInit.Body, callScope)
		e.funcDepth--
		e.callStack = e.callStack[:len(e.callStack)-1]
		if r.IsError() {
			return r
		}
	}
	return runtime.Ok(inst)
}
