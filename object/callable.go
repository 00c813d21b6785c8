package object

import (
	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/environment"
)

// Interpreter is the sliver of interpreter.Interpreter that a Callable
// needs to run a function body: execute a block of statements in a
// fresh environment and report either a *ReturnSignal (unwrapped by
// the caller) or a genuine evaluation error. Kept as a narrow
// interface here, rather than importing the interpreter package
// directly, to avoid an import cycle — interpreter already imports
// object for the value domain.
type Interpreter interface {
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
}

// Callable is any Lox value that can appear on the left of a call
// expression: a user-defined Function, a native function, or a Class
// acting as its own constructor.
type Callable interface {
	Arity() int
	Call(interp Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// NativeFunction wraps a Go func as a Callable, for built-ins like
// clock that have no Lox-level definition.
type NativeFunction struct {
	Name    string
	ArgLen  int
	Fn      func(args []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.ArgLen }

func (n *NativeFunction) Call(_ Interpreter, args []interface{}) (interface{}, error) {
	return n.Fn(args)
}

func (n *NativeFunction) String() string {
	return "<native fn " + n.Name + ">"
}
