/*
File   : nougo/stdlib/json/json.go
Package: json

Package json implements the json_encode/json_decode builtins over
encoding/json. The Language has no Map value kind, so a decoded JSON
object becomes a list of [key, value] pairs rather than being dropped.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/nougo-lang/nougo/registry"
	"github.com/nougo-lang/nougo/value"
)

func init() {
	registry.RegisterBuiltin(encodeBuiltin())
	registry.RegisterBuiltin(decodeBuiltin())
}

func encodeBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "json_encode",
		ParamNames: []string{"v"},
		Fn: func(exec value.Scope) (value.Value, error) {
			v, _ := exec.LookUp("v")
			native := toNative(v)
			bytes, err := json.Marshal(native)
			if err != nil {
				return nil, fmt.Errorf("json_encode: %v", err)
			}
			return &value.String{S: string(bytes)}, nil
		},
	}
}

func decodeBuiltin() *value.Builtin {
	return &value.Builtin{
		Name:       "json_decode",
		ParamNames: []string{"s"},
		Fn: func(exec value.Scope) (value.Value, error) {
			sv, _ := exec.LookUp("s")
			s, ok := sv.(*value.String)
			if !ok {
				return nil, fmt.Errorf("json_decode: expected a string, got %s", typeName(sv))
			}
			var data interface{}
			if err := json.Unmarshal([]byte(s.S), &data); err != nil {
				return nil, fmt.Errorf("json_decode: %v", err)
			}
			return fromNative(data), nil
		},
	}
}

func typeName(v value.Value) value.Type {
	if v == nil {
		return "None"
	}
	return v.Type()
}

// toNative converts a value.Value tree into plain Go values json.Marshal
// understands.
func toNative(v value.Value) interface{} {
	switch x := v.(type) {
	case *value.Int:
		return x.I
	case *value.Float:
		return x.F
	case *value.String:
		return x.S
	case *value.List:
		out := make([]interface{}, len(x.Elems))
		for i, el := range x.Elems {
			out[i] = toNative(el)
		}
		return out
	case *value.None, nil:
		return nil
	default:
		return v.String()
	}
}

// fromNative converts decoded JSON back into value.Value. A JSON object
// becomes a List of 2-element [key, value] Lists since this Language has
// no map type.
func fromNative(val interface{}) value.Value {
	switch x := val.(type) {
	case nil:
		return value.NoneValue
	case bool:
		if x {
			return &value.Int{I: 1}
		}
		return &value.Int{I: 0}
	case float64:
		if x == float64(int64(x)) {
			return &value.Int{I: int64(x)}
		}
		return &value.Float{F: x}
	case string:
		return &value.String{S: x}
	case []interface{}:
		elems := make([]value.Value, len(x))
		for i, el := range x {
			elems[i] = fromNative(el)
		}
		return value.NewList(elems...)
	case map[string]interface{}:
		elems := make([]value.Value, 0, len(x))
		for k, v := range x {
			elems = append(elems, value.NewList(&value.String{S: k}, fromNative(v)))
		}
		return value.NewList(elems...)
	}
	return value.NoneValue
}
