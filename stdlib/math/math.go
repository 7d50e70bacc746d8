/*
File   : nougo/stdlib/math/math.go
Package: math

Package math implements the built-in "math" module: the pi/sqrt_pi/e
constants plus sqrt/isqrt/root/iroot/radians/degrees/sin/cos/tan/asin/
acos/atan/abs/log/log2, backed by the host's IEEE-754 double precision
math library. It registers itself as a named importable module
(`import math`) rather than flattening into the global builtin
namespace; root and iroot are reachable only through it.
*/
package math

import (
	"fmt"
	stdmath "math"

	"github.com/nougo-lang/nougo/registry"
	"github.com/nougo-lang/nougo/value"
)

func init() {
	registry.RegisterModule("math", build)
}

func build() *value.Module {
	exports := map[string]value.Value{
		"pi":      &value.Float{F: stdmath.Pi},
		"sqrt_pi": &value.Float{F: stdmath.Sqrt(stdmath.Pi)},
		"e":       &value.Float{F: stdmath.E},
	}
	for _, fn := range unaryFuncs {
		exports[fn.name] = unaryBuiltin(fn.name, fn.f, fn.domain)
	}
	exports["isqrt"] = isqrtBuiltin()
	exports["root"] = rootBuiltin("root", false)
	exports["iroot"] = rootBuiltin("iroot", true)
	exports["log"] = logBuiltin()
	return &value.Module{Name: "math", Exports: exports}
}

// unaryFuncs lists the Float-returning one-argument functions. domain,
// when non-nil, validates the argument before f runs; a rejected value
// is an arithmetic error, not a type error.
var unaryFuncs = []struct {
	name   string
	f      func(float64) float64
	domain func(float64) bool
}{
	{"sqrt", stdmath.Sqrt, func(x float64) bool { return x >= 0 }},
	{"radians", func(deg float64) float64 { return deg * stdmath.Pi / 180 }, nil},
	{"degrees", func(rad float64) float64 { return rad * 180 / stdmath.Pi }, nil},
	{"sin", stdmath.Sin, nil},
	{"cos", stdmath.Cos, nil},
	{"tan", stdmath.Tan, nil},
	{"asin", stdmath.Asin, func(x float64) bool { return x >= -1 && x <= 1 }},
	{"acos", stdmath.Acos, func(x float64) bool { return x >= -1 && x <= 1 }},
	{"atan", stdmath.Atan, nil},
	{"abs", stdmath.Abs, nil},
	{"log2", stdmath.Log2, func(x float64) bool { return x > 0 }},
}

func unaryBuiltin(name string, f func(float64) float64, domain func(float64) bool) *value.Builtin {
	return &value.Builtin{
		Name:       name,
		ParamNames: []string{"x"},
		Fn: func(exec value.Scope) (value.Value, error) {
			x, err := numArg(exec, "x", name)
			if err != nil {
				return nil, err
			}
			if domain != nil && !domain(x) {
				return nil, arithErr("%s: argument out of domain", name)
			}
			return &value.Float{F: f(x)}, nil
		},
	}
}

// isqrt requires an Int and yields the floor of the real square root.
func isqrtBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "isqrt",
		ParamNames: []string{"x"},
		Fn: func(exec value.Scope) (value.Value, error) {
			x, err := intArg(exec, "x", "isqrt")
			if err != nil {
				return nil, err
			}
			if x < 0 {
				return nil, arithErr("isqrt: cannot take the root of a negative number")
			}
			return &value.Int{I: int64(stdmath.Sqrt(float64(x)))}, nil
		},
	}
}

// rootBuiltin implements both `root(x, n?)` (Float result) and
// `iroot(x, n?)` (Int input and result, floor of the real root). The
// degree n defaults to 2.
func rootBuiltin(name string, integer bool) *value.Builtin {
	return &value.Builtin{
		Name:           name,
		ParamNames:     []string{"x"},
		OptionalParams: []string{"n"},
		Fn: func(exec value.Scope) (value.Value, error) {
			var x float64
			var err error
			if integer {
				var i int64
				i, err = intArg(exec, "x", name)
				x = float64(i)
			} else {
				x, err = numArg(exec, "x", name)
			}
			if err != nil {
				return nil, err
			}
			n := 2.0
			if hasArg(exec, "n") {
				n, err = numArg(exec, "n", name)
				if err != nil {
					return nil, err
				}
			}
			if n == 0 {
				return nil, arithErr("%s: degree cannot be zero", name)
			}
			if x < 0 {
				return nil, arithErr("%s: cannot take the root of a negative number", name)
			}
			r := stdmath.Pow(x, 1/n)
			if integer {
				// Pow can land just below an exact root (27^(1/3) gives
				// 2.999...), so step up when the next integer still fits.
				c := stdmath.Floor(r)
				if n > 0 && stdmath.Pow(c+1, n) <= x {
					c++
				}
				return &value.Int{I: int64(c)}, nil
			}
			return &value.Float{F: r}, nil
		},
	}
}

// logBuiltin computes the logarithm of x in the given base, natural by
// default.
func logBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:           "log",
		ParamNames:     []string{"x"},
		OptionalParams: []string{"base"},
		Fn: func(exec value.Scope) (value.Value, error) {
			x, err := numArg(exec, "x", "log")
			if err != nil {
				return nil, err
			}
			if x <= 0 {
				return nil, arithErr("log: argument out of domain")
			}
			if !hasArg(exec, "base") {
				return &value.Float{F: stdmath.Log(x)}, nil
			}
			base, err := numArg(exec, "base", "log")
			if err != nil {
				return nil, err
			}
			if base <= 0 || base == 1 {
				return nil, arithErr("log: invalid base")
			}
			return &value.Float{F: stdmath.Log(x) / stdmath.Log(base)}, nil
		},
	}
}

// hasArg reports whether an optional parameter was actually supplied
// (missing optionals are bound to None by the call protocol).
func hasArg(exec value.Scope, name string) bool {
	v, ok := exec.LookUp(name)
	if !ok || v == nil {
		return false
	}
	_, isNone := v.(*value.None)
	return !isNone
}

func numArg(exec value.Scope, name, fn string) (float64, error) {
	v, _ := exec.LookUp(name)
	switch x := v.(type) {
	case *value.Int:
		return float64(x.I), nil
	case *value.Float:
		return x.F, nil
	}
	return 0, typeErr("%s: argument '%s' must be a number, got %s", fn, name, typeName(v))
}

func intArg(exec value.Scope, name, fn string) (int64, error) {
	v, _ := exec.LookUp(name)
	if i, ok := v.(*value.Int); ok {
		return i.I, nil
	}
	return 0, typeErr("%s: argument '%s' must be an int, got %s", fn, name, typeName(v))
}

func typeName(v value.Value) value.Type {
	if v == nil {
		return "None"
	}
	return v.Type()
}

func typeErr(format string, a ...interface{}) error {
	return &value.OpError{Msg: fmt.Sprintf(format, a...)}
}

func arithErr(format string, a ...interface{}) error {
	return &value.OpError{Msg: fmt.Sprintf(format, a...), Arithmetic: true}
}
