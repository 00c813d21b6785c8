/*
File    : golox/object/class.go
Class is the runtime representation of a `class` declaration: its own
method table plus an optional Superclass link for single inheritance.
A Class is itself Callable — calling it constructs an Instance and, if
an `init` method exists, runs it as the constructor.

Grounded on the teacher's objects.GoMixStruct/GoMixObjectInstance pair
(GetMethod, NewStructInstance), generalized with a Superclass pointer
for inheritance, which GoMix's struct model has no counterpart for.
*/
package object

// Class is a Lox class: a name, an optional superclass, and its own
// (non-inherited) methods.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a Class. superclass is nil for a class with no
// `< Base` clause.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name in this class's own method table, falling
// back to the superclass chain. This is also how `super.method()`
// dispatch is implemented: the interpreter calls FindMethod on the
// superclass directly rather than on the instance's runtime class.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the constructor's arity: the init method's arity if one
// exists, else 0 — a class with no init takes no arguments to
// instantiate.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class (or an ancestor)
// defines init, runs it bound to that instance.
func (c *Class) Call(interp Interpreter, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		bound := init.Bind(instance)
		if _, err := bound.Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}
