/*
File   : nougo/stdlib/strings/strings.go
Package: strings

Package strings implements the string builtins: upper/lower/trim/
split/join/replace/contains/index/starts_with/ends_with/reverse/
substring. contains, index, and reverse are polymorphic over String and
List — one name per operation reads more naturally for callers and
avoids a registry collision between stdlib/lists and stdlib/strings.
*/
package strings

import (
	"fmt"
	gostrings "strings"

	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/position"
	"github.com/nougo-lang/nougo/registry"
	"github.com/nougo-lang/nougo/value"
)

func init() {
	registry.RegisterBuiltin(stringUnary("upper", gostrings.ToUpper))
	registry.RegisterBuiltin(stringUnary("lower", gostrings.ToLower))
	registry.RegisterBuiltin(stringUnary("trim", gostrings.TrimSpace))
	registry.RegisterBuiltin(stringUnary("ltrim", func(s string) string { return gostrings.TrimLeft(s, " \t\n\r") }))
	registry.RegisterBuiltin(stringUnary("rtrim", func(s string) string { return gostrings.TrimRight(s, " \t\n\r") }))
	registry.RegisterBuiltin(stringUnary("capitalize", capitalize))
	registry.RegisterBuiltin(splitBuiltin())
	registry.RegisterBuiltin(joinBuiltin())
	registry.RegisterBuiltin(replaceBuiltin())
	registry.RegisterBuiltin(startsWithBuiltin())
	registry.RegisterBuiltin(endsWithBuiltin())
	registry.RegisterBuiltin(substringBuiltin())
	registry.RegisterBuiltin(containsBuiltin())
	registry.RegisterBuiltin(indexBuiltin())
	registry.RegisterBuiltin(reverseBuiltin())
}

func asString(v value.Value) (string, error) {
	s, ok := v.(*value.String)
	if !ok {
		return "", fmt.Errorf("expected a string, got %s", typeName(v))
	}
	return s.S, nil
}

func typeName(v value.Value) value.Type {
	if v == nil {
		return "None"
	}
	return v.Type()
}

func stringUnary(name string, f func(string) string) *value.Builtin {
	return &value.Builtin{
		Name:       name,
		ParamNames: []string{"s"},
		Fn: func(exec value.Scope) (value.Value, error) {
			v, _ := exec.LookUp("s")
			s, err := asString(v)
			if err != nil {
				return nil, err
			}
			return &value.String{S: f(s)}, nil
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return gostrings.ToUpper(string(r[0])) + string(r[1:])
}

func splitBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "split",
		ParamNames: []string{"s", "sep"},
		Fn: func(exec value.Scope) (value.Value, error) {
			sv, _ := exec.LookUp("s")
			s, err := asString(sv)
			if err != nil {
				return nil, err
			}
			sepv, _ := exec.LookUp("sep")
			sep, err := asString(sepv)
			if err != nil {
				return nil, err
			}
			parts := gostrings.Split(s, sep)
			elems := make([]value.Value, len(parts))
			for i, p := range parts {
				elems[i] = &value.String{S: p}
			}
			return value.NewList(elems...), nil
		},
	}
}

func joinBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "join",
		ParamNames: []string{"list", "sep"},
		Fn: func(exec value.Scope) (value.Value, error) {
			lv, _ := exec.LookUp("list")
			l, ok := lv.(*value.List)
			if !ok {
				return nil, fmt.Errorf("join: expected a list, got %s", typeName(lv))
			}
			sepv, _ := exec.LookUp("sep")
			sep, err := asString(sepv)
			if err != nil {
				return nil, err
			}
			parts := make([]string, len(l.Elems))
			for i, el := range l.Elems {
				parts[i] = el.String()
			}
			return &value.String{S: gostrings.Join(parts, sep)}, nil
		},
	}
}

func replaceBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "replace",
		ParamNames: []string{"s", "old", "new"},
		Fn: func(exec value.Scope) (value.Value, error) {
			sv, _ := exec.LookUp("s")
			s, err := asString(sv)
			if err != nil {
				return nil, err
			}
			oldv, _ := exec.LookUp("old")
			oldS, err := asString(oldv)
			if err != nil {
				return nil, err
			}
			newv, _ := exec.LookUp("new")
			newS, err := asString(newv)
			if err != nil {
				return nil, err
			}
			return &value.String{S: gostrings.ReplaceAll(s, oldS, newS)}, nil
		},
	}
}

func startsWithBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "starts_with",
		ParamNames: []string{"s", "prefix"},
		Fn: func(exec value.Scope) (value.Value, error) {
			sv, _ := exec.LookUp("s")
			s, err := asString(sv)
			if err != nil {
				return nil, err
			}
			pv, _ := exec.LookUp("prefix")
			p, err := asString(pv)
			if err != nil {
				return nil, err
			}
			return boolInt(gostrings.HasPrefix(s, p)), nil
		},
	}
}

func endsWithBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "ends_with",
		ParamNames: []string{"s", "suffix"},
		Fn: func(exec value.Scope) (value.Value, error) {
			sv, _ := exec.LookUp("s")
			s, err := asString(sv)
			if err != nil {
				return nil, err
			}
			pv, _ := exec.LookUp("suffix")
			p, err := asString(pv)
			if err != nil {
				return nil, err
			}
			return boolInt(gostrings.HasSuffix(s, p)), nil
		},
	}
}

func substringBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "substring",
		ParamNames: []string{"s", "start", "end"},
		Fn: func(exec value.Scope) (value.Value, error) {
			sv, _ := exec.LookUp("s")
			s, err := asString(sv)
			if err != nil {
				return nil, err
			}
			r := []rune(s)
			start, err := intArg(exec, "start")
			if err != nil {
				return nil, err
			}
			end, err := intArg(exec, "end")
			if err != nil {
				return nil, err
			}
			if start < 0 || end > int64(len(r)) || start > end {
				return nil, langerr.New(langerr.RTIndexError, position.Range{}, "substring: index out of range")
			}
			return &value.String{S: string(r[start:end])}, nil
		},
	}
}

func intArg(exec value.Scope, name string) (int64, error) {
	v, _ := exec.LookUp(name)
	i, ok := v.(*value.Int)
	if !ok {
		return 0, fmt.Errorf("argument '%s' must be an int, got %s", name, typeName(v))
	}
	return i.I, nil
}

func boolInt(b bool) *value.Int {
	if b {
		return &value.Int{I: 1}
	}
	return &value.Int{I: 0}
}

// containsBuiltin accepts either a String haystack/needle pair or a
// List/value pair (so the same name serves both collection kinds).
func containsBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "contains",
		ParamNames: []string{"collection", "value"},
		Fn: func(exec value.Scope) (value.Value, error) {
			cv, _ := exec.LookUp("collection")
			needle, _ := exec.LookUp("value")
			switch c := cv.(type) {
			case *value.String:
				n, err := asString(needle)
				if err != nil {
					return nil, err
				}
				return boolInt(gostrings.Contains(c.S, n)), nil
			case *value.List:
				for _, el := range c.Elems {
					if value.Equal(el, needle) {
						return boolInt(true), nil
					}
				}
				return boolInt(false), nil
			}
			return nil, fmt.Errorf("contains: expected a string or list, got %s", typeName(cv))
		},
	}
}

func indexBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "index",
		ParamNames: []string{"collection", "value"},
		Fn: func(exec value.Scope) (value.Value, error) {
			cv, _ := exec.LookUp("collection")
			needle, _ := exec.LookUp("value")
			switch c := cv.(type) {
			case *value.String:
				n, err := asString(needle)
				if err != nil {
					return nil, err
				}
				return &value.Int{I: int64(gostrings.Index(c.S, n))}, nil
			case *value.List:
				for i, el := range c.Elems {
					if value.Equal(el, needle) {
						return &value.Int{I: int64(i)}, nil
					}
				}
				return &value.Int{I: -1}, nil
			}
			return nil, fmt.Errorf("index: expected a string or list, got %s", typeName(cv))
		},
	}
}

func reverseBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "reverse",
		ParamNames: []string{"collection"},
		Fn: func(exec value.Scope) (value.Value, error) {
			cv, _ := exec.LookUp("collection")
			switch c := cv.(type) {
			case *value.String:
				r := []rune(c.S)
				for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
					r[i], r[j] = r[j], r[i]
				}
				return &value.String{S: string(r)}, nil
			case *value.List:
				for i, j := 0, len(c.Elems)-1; i < j; i, j = i+1, j-1 {
					c.Elems[i], c.Elems[j] = c.Elems[j], c.Elems[i]
				}
				return c, nil
			}
			return nil, fmt.Errorf("reverse: expected a string or list, got %s", typeName(cv))
		},
	}
}
