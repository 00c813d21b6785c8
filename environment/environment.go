/*
File    : golox/environment/environment.go
Package environment implements the variable-binding chain the
interpreter threads through statement execution: one Environment per
lexical scope, each linked to its Enclosing parent.

Closures capture an *Environment by reference, not by copy — a closure
and its enclosing scope see the same mutations to a shared variable.
This is the opposite of the teacher package's Scope.Copy(), which
snapshots bindings for its closures; Lox's semantics require the
live-sharing form (spec.md's "closures observe later mutation" law), so
Copy has no counterpart here.

Distance-indexed lookups (GetAt/AssignAt) exist alongside the
chain-walking Get/Assign because the resolver has already computed,
for every variable reference, exactly how many enclosing scopes to
walk. The interpreter trusts that number rather than re-searching by
name, so a local shadowing a global resolves to the local every time.
*/
package environment

// Environment is one lexical scope's variable bindings.
type Environment struct {
	Values    map[string]interface{}
	Enclosing *Environment
}

// New creates an Environment enclosed by parent, or a global scope if
// parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{
		Values:    make(map[string]interface{}),
		Enclosing: parent,
	}
}

// Define binds name to value in this environment. A redeclaration of
// an existing name in the same scope simply overwrites it — Lox
// permits `var a = 1; var a = 2;` at global scope (the resolver
// rejects the same redeclaration in a local scope).
func (e *Environment) Define(name string, value interface{}) {
	e.Values[name] = value
}

// Get looks up name starting in this environment and walking Enclosing
// links outward. ok is false if no scope in the chain defines name.
func (e *Environment) Get(name string) (interface{}, bool) {
	if v, ok := e.Values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign updates the nearest existing binding of name, walking
// Enclosing links outward. ok is false if name is not defined anywhere
// in the chain — Lox assignment, unlike declaration, never creates a
// new binding.
func (e *Environment) Assign(name string, value interface{}) bool {
	if _, ok := e.Values[name]; ok {
		e.Values[name] = value
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return false
}

// ancestor walks exactly distance Enclosing links outward. The
// resolver guarantees distance never overruns the chain for a
// successfully-resolved variable.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name from the environment exactly distance scopes out,
// per the resolver's precomputed answer.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).Values[name]
}

// AssignAt writes name in the environment exactly distance scopes out.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).Values[name] = value
}
