/*
File   : nougo/scope/scope.go
Package: scope

Package scope implements the Language's context and symbol table: a
tree of lexically nested frames linked upward only, used for read-only
lookup but single-frame writes, plus one protected-name set shared by
every scope in the chain.
*/
package scope

import "github.com/nougo-lang/nougo/value"

// Scope is one lexical frame: a name, its own bindings, and a parent
// link used only for lookup. The root scope has a
// nil Parent and owns the constants set.
type Scope struct {
	Name     string
	Bindings map[string]value.Value
	Parent   *Scope

	// Protected, non-nil only on the root scope, holds names no scope
	// may ever rebind (constants, built-ins, module names).
	Protected map[string]bool

	// CallPos is not read by the evaluator or by langerr; an error's
	// context chain ("In <name>, file X, line Y") is built from the
	// evaluator's own call stack.
	CallPos string
}

// NewRoot creates the program's root scope with an empty protected set.
func NewRoot(name string) *Scope {
	return &Scope{
		Name:      name,
		Bindings:  make(map[string]value.Value),
		Protected: make(map[string]bool),
	}
}

// NewChild creates a scope nested under parent, e.g. a function call
// frame or a loop body frame.
func NewChild(name string, parent *Scope) *Scope {
	return &Scope{Name: name, Bindings: make(map[string]value.Value), Parent: parent}
}

// DisplayName satisfies value.Scope.
func (s *Scope) DisplayName() string { return s.Name }

// root walks up to the scope holding the Protected set.
func (s *Scope) root() *Scope {
	cur := s
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// IsProtected reports whether name may never be rebound.
func (s *Scope) IsProtected(name string) bool {
	return s.root().Protected[name]
}

// Protect marks name as permanently unrebindable; only meaningful on
// the root scope but callable from any scope for convenience.
func (s *Scope) Protect(name string) {
	s.root().Protected[name] = true
}

// LookUp searches this scope then its ancestors.
func (s *Scope) LookUp(name string) (value.Value, bool) {
	if v, ok := s.Bindings[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, false
}

// Bind creates or overwrites name in this scope only — fresh
// declarations always target the current scope.
func (s *Scope) Bind(name string, v value.Value) {
	s.Bindings[name] = v
}

// Owner returns the scope in the chain that owns name's binding, or nil
// if unbound anywhere.
func (s *Scope) Owner(name string) *Scope {
	if _, ok := s.Bindings[name]; ok {
		return s
	}
	if s.Parent != nil {
		return s.Parent.Owner(name)
	}
	return nil
}

// Assign rewrites name in the scope that owns it (walking up the
// chain); binding modifications happen only in the scope that owns
// the name. Reports false if name is unbound anywhere.
func (s *Scope) Assign(name string, v value.Value) bool {
	owner := s.Owner(name)
	if owner == nil {
		return false
	}
	owner.Bindings[name] = v
	return true
}

// Delete removes name's binding from the scope that owns it. Reports
// false if name is unbound anywhere.
func (s *Scope) Delete(name string) bool {
	owner := s.Owner(name)
	if owner == nil {
		return false
	}
	delete(owner.Bindings, name)
	return true
}
