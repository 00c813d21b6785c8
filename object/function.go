/*
File    : golox/object/function.go
Function is the runtime representation of a `fun` declaration or class
method: the parsed Params/Body from ast.FunctionStmt, plus the
Closure environment captured at definition time — this is what gives
Lox closures by-reference access to their enclosing scope (see
environment.Environment's doc comment).

Grounded on the teacher's function.Function (same three fields: name,
params, captured scope), generalized to hold an *environment.Environment
instead of a copied scope.Scope, and to carry IsInitializer so a class's
init method can special-case its implicit `this` return.
*/
package object

import (
	"fmt"

	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/environment"
)

// Function is a user-defined Lox function or method.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction builds a Function closing over env.
func NewFunction(decl *ast.FunctionStmt, env *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: env, IsInitializer: isInitializer}
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call binds each parameter to its argument in a fresh environment
// enclosed by the closure, then executes the body. A bare `return;`
// (or falling off the end) yields nil, except in an initializer,
// which always yields the instance bound as `this` regardless of what
// the body returned — per spec.md's "init always returns the
// instance" rule.
func (f *Function) Call(interp Interpreter, args []interface{}) (interface{}, error) {
	env := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if rs, ok := AsReturn(err); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return rs.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a copy of f whose closure has `this` bound to
// instance, used when a method is looked up off an instance (either
// directly or via a Get expression) rather than called bare.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
