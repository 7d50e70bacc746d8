/*
File   : nougo/eval/globals.go
Package: eval

BindGlobals pre-binds the root scope's constants, built-ins, and
module names, and protects all of them from rebinding. It blank-imports
every registering stdlib/* package so their init() functions populate
the registry before BindGlobals reads it.
*/
package eval

import (
	"runtime"

	"github.com/nougo-lang/nougo/registry"
	"github.com/nougo-lang/nougo/scope"
	"github.com/nougo-lang/nougo/token"
	"github.com/nougo-lang/nougo/value"

	_ "github.com/nougo-lang/nougo/stdlib/core"
	_ "github.com/nougo-lang/nougo/stdlib/json"
	_ "github.com/nougo-lang/nougo/stdlib/lists"
	_ "github.com/nougo-lang/nougo/stdlib/math"
	_ "github.com/nougo-lang/nougo/stdlib/strings"
)

// Version is the interpreter's self-reported version string, bound as
// noug_version.
const Version = "1.0.0"

// BindGlobals seeds root with every constant, builtin, and module name
// the Language's root scope carries before any program statement runs.
func BindGlobals(root *scope.Scope) {
	constants := map[string]value.Value{
		"null":         value.NoneValue,
		"None":         value.NoneValue,
		"True":         &value.Int{I: 1},
		"False":        &value.Int{I: 0},
		"noug_version": &value.String{S: Version},
		"os_name":      &value.String{S: runtime.GOOS},
		"os_release":   &value.String{S: Version},
		"os_version":   &value.String{S: runtime.GOOS + "/" + runtime.GOARCH},

		"answerToTheLifeTheUniverseAndEverything": &value.Int{I: 42},
	}
	for name, v := range constants {
		root.Bind(name, v)
		root.Protect(name)
	}

	for _, b := range registry.Builtins() {
		root.Bind(b.Name, b)
		root.Protect(b.Name)
	}

	for name := range token.Keywords {
		root.Protect(name)
	}

	// Module names are protected but not bound: `import math` binds the
	// name on import, not at startup.
	for _, name := range registry.ModuleNames() {
		root.Protect(name)
	}
}
