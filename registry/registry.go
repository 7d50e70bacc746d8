/*
File   : nougo/registry/registry.go
Package: registry

Package registry is the static name -> descriptor table builtin
dispatch runs on; no reflective resolution. It is a dependency-free
package so both eval and the stdlib/* packages can import it without a
cycle: stdlib packages register themselves here from init(), and eval
reads the table back in BindGlobals.
*/
package registry

import "github.com/nougo-lang/nougo/value"

var builtins = map[string]*value.Builtin{}
var modules = map[string]func() *value.Module{}

// RegisterBuiltin adds a free-standing builtin function to the root
// scope's pre-bound set. Called from a stdlib package's init().
func RegisterBuiltin(b *value.Builtin) {
	builtins[b.Name] = b
}

// RegisterModule adds a built-in importable module. build is called
// lazily on each import so every importer gets its own Module value.
func RegisterModule(name string, build func() *value.Module) {
	modules[name] = build
}

// Builtins returns every registered builtin, for BindGlobals to bind
// into the root scope.
func Builtins() []*value.Builtin {
	out := make([]*value.Builtin, 0, len(builtins))
	for _, b := range builtins {
		out = append(out, b)
	}
	return out
}

// Module looks up and builds a fresh instance of a registered built-in
// module by name.
func Module(name string) (*value.Module, bool) {
	build, ok := modules[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// ModuleNames lists every registered built-in module name, used to seed
// VARS_CANNOT_MODIFY.
func ModuleNames() []string {
	out := make([]string, 0, len(modules))
	for name := range modules {
		out = append(out, name)
	}
	return out
}
