/*
File   : nougo/eval/modules.go
Package: eval

Handlers for Import/Export. A dotted path that isn't a registered
built-in module is read as a source file relative to ModuleDir, parsed
and evaluated in a fresh module scope, and its Export bindings become
the resulting value.Module's export table.
*/
package eval

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/parser"
	"github.com/nougo-lang/nougo/position"
	"github.com/nougo-lang/nougo/registry"
	"github.com/nougo-lang/nougo/runtime"
	"github.com/nougo-lang/nougo/scope"
	"github.com/nougo-lang/nougo/value"
)

// evalImport resolves the dotted path against the built-in module
// registry first, then against an on-disk source file relative to
// ModuleDir. The alias, or the path's last segment, is
// bound in the importing scope.
func (e *Evaluator) evalImport(n *ast.Import, s *scope.Scope) *runtime.RTR {
	dotted := strings.Join(n.PathSegments, ".")
	bindName := n.Alias
	if bindName == "" {
		bindName = n.PathSegments[len(n.PathSegments)-1]
	}

	if mod, ok := registry.Module(dotted); ok {
		// Binding a built-in module under its own (protected) name is
		// the one legal way that name ever gets bound; only an alias
		// onto some other protected name is rejected.
		if bindName != dotted && s.IsProtected(bindName) {
			return e.errorf(langerr.RunTimeError, n, "'%s' cannot be modified", bindName)
		}
		s.Bind(bindName, mod)
		return runtime.Ok(mod)
	}

	mod, rtErr := e.loadSourceModule(n, dotted)
	if rtErr != nil {
		return rtErr
	}
	if s.IsProtected(bindName) {
		return e.errorf(langerr.RunTimeError, n, "'%s' cannot be modified", bindName)
	}
	s.Bind(bindName, mod)
	return runtime.Ok(mod)
}

// loadSourceModule reads <ModuleDir>/<path segments joined by "/">.ng,
// lexes, parses, and evaluates it in a fresh module scope, then builds
// a value.Module from that scope's Export table.
func (e *Evaluator) loadSourceModule(n *ast.Import, dotted string) (*value.Module, *runtime.RTR) {
	relPath := filepath.Join(n.PathSegments...) + ".ng"
	fullPath := filepath.Join(e.ModuleDir, relPath)
	text, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, e.errorf(langerr.RunTimeError, n, "could not import '%s': %v", dotted, err)
	}

	src := position.NewSource(fullPath, string(text))
	program, perr := parser.Parse(src)
	if perr != nil {
		return nil, e.errorf(langerr.InvalidSyntaxError, n, "could not import '%s': %s", dotted, perr.Message)
	}

	modScope := scope.NewChild(dotted, e.Root)
	modEval := &Evaluator{Root: e.Root, WorkDir: e.WorkDir, ModuleDir: e.ModuleDir}
	modEval.exports = make(map[string]value.Value)
	if r := modEval.Eval(program, modScope); r.IsError() {
		return nil, runtime.Fail(r.Err)
	}

	return &value.Module{Name: dotted, Exports: modEval.exports}, nil
}

// evalExport publishes a binding into the current module's export
// table. Exports only take effect while evaluating at
// module top level; e.exports is nil otherwise and Export is a no-op
// there beyond evaluating its expression.
func (e *Evaluator) evalExport(n *ast.Export, s *scope.Scope) *runtime.RTR {
	name := n.Alias
	var v value.Value

	if n.Name != "" {
		if name == "" {
			name = n.Name
		}
		bound, ok := s.LookUp(n.Name)
		if !ok {
			return e.errorf(langerr.RTNameError, n, "'%s' is not defined", n.Name)
		}
		v = bound
	} else {
		if name == "" {
			return e.errorf(langerr.RunTimeError, n, "export requires an alias when exporting an expression")
		}
		r := e.Eval(n.Expr, s)
		if r.ShouldUnwind() {
			return r
		}
		v = r.Value
	}

	if e.exports != nil {
		e.exports[name] = v
	}
	return runtime.Ok(v)
}
