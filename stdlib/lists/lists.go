/*
File   : nougo/stdlib/lists/lists.go
Package: lists

Package lists implements the list builtins: append/push/pop/shift/
unshift/sort/len, registered as free-standing builtins rather than a
named module so evaluated code calls them directly. Lists are mutated
in place; every alias of the same handle sees the change.
*/
package lists

import (
	"fmt"
	"sort"

	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/position"
	"github.com/nougo-lang/nougo/registry"
	"github.com/nougo-lang/nougo/value"
)

func init() {
	registry.RegisterBuiltin(listArg1Mutator("append", pushImpl))
	registry.RegisterBuiltin(listArg1Mutator("push", pushImpl))
	registry.RegisterBuiltin(simpleUnary("pop", popImpl))
	registry.RegisterBuiltin(simpleUnary("shift", shiftImpl))
	registry.RegisterBuiltin(listArg1Mutator("unshift", unshiftImpl))
	registry.RegisterBuiltin(simpleUnary("sort", sortImpl))
	registry.RegisterBuiltin(simpleUnary("len", lenImpl))
}

// reverse, contains, and index also accept Strings (stdlib/strings
// registers those polymorphic builtins so the name is owned by one
// package only).

func asList(v value.Value) (*value.List, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %s", typeName(v))
	}
	return l, nil
}

func typeName(v value.Value) value.Type {
	if v == nil {
		return "None"
	}
	return v.Type()
}

// simpleUnary builds a single-argument ("list") builtin from impl.
func simpleUnary(name string, impl func(l *value.List) (value.Value, error)) *value.Builtin {
	return &value.Builtin{
		Name:       name,
		ParamNames: []string{"list"},
		Fn: func(exec value.Scope) (value.Value, error) {
			v, _ := exec.LookUp("list")
			l, err := asList(v)
			if err != nil {
				return nil, err
			}
			return impl(l)
		},
	}
}

// listArg1Mutator builds a two-argument ("list", "value") builtin.
func listArg1Mutator(name string, impl func(l *value.List, item value.Value) (value.Value, error)) *value.Builtin {
	return &value.Builtin{
		Name:       name,
		ParamNames: []string{"list", "value"},
		Fn: func(exec value.Scope) (value.Value, error) {
			v, _ := exec.LookUp("list")
			l, err := asList(v)
			if err != nil {
				return nil, err
			}
			item, _ := exec.LookUp("value")
			return impl(l, item)
		},
	}
}

func pushImpl(l *value.List, item value.Value) (value.Value, error) {
	l.Elems = append(l.Elems, item)
	return l, nil
}

func unshiftImpl(l *value.List, item value.Value) (value.Value, error) {
	l.Elems = append([]value.Value{item}, l.Elems...)
	return l, nil
}

func popImpl(l *value.List) (value.Value, error) {
	if len(l.Elems) == 0 {
		return nil, langerr.New(langerr.RTIndexError, position.Range{}, "pop: list is empty")
	}
	last := l.Elems[len(l.Elems)-1]
	l.Elems = l.Elems[:len(l.Elems)-1]
	return last, nil
}

func shiftImpl(l *value.List) (value.Value, error) {
	if len(l.Elems) == 0 {
		return nil, langerr.New(langerr.RTIndexError, position.Range{}, "shift: list is empty")
	}
	first := l.Elems[0]
	l.Elems = l.Elems[1:]
	return first, nil
}

// sortImpl sorts in place; elements must be pairwise comparable via
// value.Compare("<", ...) (numbers, or all strings).
func sortImpl(l *value.List) (value.Value, error) {
	var sortErr error
	sort.SliceStable(l.Elems, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := value.Compare("<", l.Elems[i], l.Elems[j])
		if err != nil {
			sortErr = err
			return false
		}
		return value.Truthy(less)
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return l, nil
}

func lenImpl(l *value.List) (value.Value, error) {
	return &value.Int{I: int64(len(l.Elems))}, nil
}
