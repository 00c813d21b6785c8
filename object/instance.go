package object

import "fmt"

// Instance is a runtime instance of a Class: its own field table plus
// a link back to the class for method lookup.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

// NewInstance creates a field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// Get resolves a property read: fields shadow methods, so a field
// named the same as a method wins. Methods are bound to this instance
// on lookup, not at class-definition time, so each access gets a
// fresh closure over `this`.
func (i *Instance) Get(name string) (interface{}, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance. Lox instances are open: any
// name can be set, creating the field if it doesn't already exist.
func (i *Instance) Set(name string, value interface{}) {
	i.Fields[name] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}
