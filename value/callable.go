package value

import "github.com/nougo-lang/nougo/ast"

// Scope is the subset of scope.Scope that value needs to hold a
// function's captured defining scope and a module's export table,
// without value importing the scope package (which itself imports
// value for its bindings map). scope.Scope satisfies this interface
// structurally; see scope/scope.go.
type Scope interface {
	LookUp(name string) (Value, bool)
	Bind(name string, v Value)
	DisplayName() string
}

// BuiltinFn is the function pointer invoked through a Builtin descriptor.
// exec is the scope.Scope (typed as Scope here) populated with the
// call's arguments; the return carries a Value or an error.
type BuiltinFn func(exec Scope) (Value, error)

// Function is a user-defined function value. It captures DefiningScope
// at definition time.
type Function struct {
	Name           string
	Params         []string
	OptionalParams []string
	Body           ast.Stmt
	DefiningScope  Scope
	AutoReturn     bool

	// BoundThis is set when this Function value was reached by looking
	// up a method through an Instance (`inst?method`): the call protocol
	// binds `this` to BoundThis in the call scope before populating the
	// declared parameters, the same way `init` binds `this` to the
	// instance being constructed.
	BoundThis Value
}

func (v *Function) Type() Type     { return FuncType }
func (v *Function) String() string { return "func(" + v.Name + ")" }
func (v *Function) Inspect() string {
	args := ""
	for i, p := range v.Params {
		if i > 0 {
			args += ", "
		}
		args += p
	}
	return "<func[" + v.Name + "(" + args + ")]>"
}

// Builtin is the descriptor for a native function: a dispatch-table
// entry the evaluator invokes uniformly for both interpreter-internal
// and standard-library functions.
type Builtin struct {
	Name           string
	ParamNames     []string
	OptionalParams []string
	StrictArity    bool
	NeedsWorkDir   bool
	NeedsModuleDir bool
	Fn             BuiltinFn
}

func (v *Builtin) Type() Type      { return BuiltinType }
func (v *Builtin) String() string  { return "built-in function " + v.Name }
func (v *Builtin) Inspect() string { return "<built-in-func " + v.Name + ">" }

// Class is a class value with single inheritance. Members holds methods
// and class-level bindings executed in the class body's own scope.
type Class struct {
	Name    string
	Parent  *Class // nil if no parent
	Members map[string]Value
}

func (v *Class) Type() Type      { return ClassType }
func (v *Class) String() string  { return "class " + v.Name }
func (v *Class) Inspect() string { return "<class " + v.Name + ">" }

// Method looks up name on the class, then its parent chain.
func (c *Class) Method(name string) (Value, bool) {
	for cl := c; cl != nil; cl = cl.Parent {
		if m, ok := cl.Members[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Instance is an object created by calling a Class. Attributes is its
// own fresh table; attribute lookup falls back to Class.Method for
// methods.
type Instance struct {
	ClassRef   *Class
	Attributes map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{ClassRef: class, Attributes: make(map[string]Value)}
}

func (v *Instance) Type() Type      { return InstanceType }
func (v *Instance) String() string  { return "object(" + v.ClassRef.Name + ")" }
func (v *Instance) Inspect() string { return "<object " + v.ClassRef.Name + ">" }

// GetAttr resolves name on an instance: own attributes first, then the
// class/parent method chain. A method pulled from the class is returned
// bound to v, so a later Call supplies `this` automatically.
func (v *Instance) GetAttr(name string) (Value, bool) {
	if a, ok := v.Attributes[name]; ok {
		return a, true
	}
	m, ok := v.ClassRef.Method(name)
	if !ok {
		return nil, false
	}
	if fn, ok := m.(*Function); ok {
		bound := *fn
		bound.BoundThis = v
		return &bound, true
	}
	return m, true
}

// SetAttr stores val directly in the instance's own attribute table,
// shadowing (not mutating) any class method of the same name — the
// target of an attribute-chain assignment such as `var this?count = n`.
func (v *Instance) SetAttr(name string, val Value) {
	v.Attributes[name] = val
}

// Module is a value produced by Import: either a built-in module's
// pre-built export table, or a source module's top-level Export
// bindings.
type Module struct {
	Name    string
	Exports map[string]Value
}

func (v *Module) Type() Type      { return ModuleType }
func (v *Module) String() string  { return "module " + v.Name }
func (v *Module) Inspect() string { return "<module " + v.Name + ">" }

// GetAttr resolves a `?`-chained attribute access on a module.
func (v *Module) GetAttr(name string) (Value, bool) {
	val, ok := v.Exports[name]
	return val, ok
}
