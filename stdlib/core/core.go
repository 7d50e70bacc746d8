/*
File   : nougo/stdlib/core/core.go
Package: core

Package core implements the console and conversion builtins every
program can reach without an import: print, print_ret, input, void,
str, int, float, type, and exit. Output goes through the package-level
Out writer, which the evaluator's $name statement shares, so a test can
capture everything a program prints by pointing Out at a buffer.
*/
package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nougo-lang/nougo/registry"
	"github.com/nougo-lang/nougo/value"
)

// Out is the sink print and print_ret write to.
var Out io.Writer = os.Stdout

var stdin = bufio.NewReader(os.Stdin)

// SetInput redirects input() to read from r.
func SetInput(r io.Reader) { stdin = bufio.NewReader(r) }

// osExit is swapped out in tests.
var osExit = os.Exit

func init() {
	registry.RegisterBuiltin(printBuiltin("print", false))
	registry.RegisterBuiltin(printBuiltin("print_ret", true))
	registry.RegisterBuiltin(inputBuiltin())
	registry.RegisterBuiltin(voidBuiltin())
	registry.RegisterBuiltin(convUnary("str", toStr))
	registry.RegisterBuiltin(convUnary("int", toInt))
	registry.RegisterBuiltin(convUnary("float", toFloat))
	registry.RegisterBuiltin(convUnary("type", typeOf))
	registry.RegisterBuiltin(exitBuiltin())
}

// printBuiltin writes value's display form plus a newline to Out.
// print_ret additionally returns the printed text as a String; print
// yields None.
func printBuiltin(name string, returnsText bool) *value.Builtin {
	return &value.Builtin{
		Name:        name,
		ParamNames:  []string{"value"},
		StrictArity: true,
		Fn: func(exec value.Scope) (value.Value, error) {
			v, _ := exec.LookUp("value")
			text := v.String()
			fmt.Fprintln(Out, text)
			if returnsText {
				return &value.String{S: text}, nil
			}
			return value.NoneValue, nil
		},
	}
}

// inputBuiltin reads one line from stdin, with an optional prompt
// written to Out first. The returned String carries no trailing
// newline.
func inputBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:           "input",
		OptionalParams: []string{"text_to_display"},
		Fn: func(exec value.Scope) (value.Value, error) {
			if prompt, ok := exec.LookUp("text_to_display"); ok {
				switch prompt.(type) {
				case *value.String, *value.Int, *value.Float:
					fmt.Fprint(Out, prompt.String())
				}
			}
			line, err := stdin.ReadString('\n')
			if err != nil && line == "" {
				return nil, fmt.Errorf("input: %s", err.Error())
			}
			return &value.String{S: strings.TrimRight(line, "\r\n")}, nil
		},
	}
}

// voidBuiltin takes any arguments and yields None.
func voidBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:           "void",
		OptionalParams: []string{"value"},
		Fn: func(value.Scope) (value.Value, error) {
			return value.NoneValue, nil
		},
	}
}

func convUnary(name string, impl func(v value.Value) (value.Value, error)) *value.Builtin {
	return &value.Builtin{
		Name:        name,
		ParamNames:  []string{"value"},
		StrictArity: true,
		Fn: func(exec value.Scope) (value.Value, error) {
			v, _ := exec.LookUp("value")
			return impl(v)
		},
	}
}

func toStr(v value.Value) (value.Value, error) {
	return &value.String{S: v.String()}, nil
}

// toInt truncates Floats toward zero and parses decimal Strings.
func toInt(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.Int:
		return x, nil
	case *value.Float:
		return &value.Int{I: int64(x.F)}, nil
	case *value.String:
		i, err := strconv.ParseInt(strings.TrimSpace(x.S), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int: cannot convert %q to int", x.S)
		}
		return &value.Int{I: i}, nil
	}
	return nil, fmt.Errorf("int: cannot convert %s to int", v.Type())
}

func toFloat(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.Int:
		return &value.Float{F: float64(x.I)}, nil
	case *value.Float:
		return x, nil
	case *value.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(x.S), 64)
		if err != nil {
			return nil, fmt.Errorf("float: cannot convert %q to float", x.S)
		}
		return &value.Float{F: f}, nil
	}
	return nil, fmt.Errorf("float: cannot convert %s to float", v.Type())
}

func typeOf(v value.Value) (value.Value, error) {
	return &value.String{S: string(v.Type())}, nil
}

// exitBuiltin stops the process with the given integer code (0 when
// omitted or not an Int).
func exitBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:           "exit",
		OptionalParams: []string{"code"},
		Fn: func(exec value.Scope) (value.Value, error) {
			code := 0
			if v, ok := exec.LookUp("code"); ok {
				if i, ok := v.(*value.Int); ok {
					code = int(i.I)
				}
			}
			osExit(code)
			return value.NoneValue, nil
		},
	}
}
