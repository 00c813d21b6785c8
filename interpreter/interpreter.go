/*
File    : golox/interpreter/interpreter.go
Package interpreter tree-walks the resolved AST and evaluates it
against the object value domain, per spec.md §4.4. It is the single
ExprVisitor/StmtVisitor implementation that does real work (the
resolver is the other, side-effect-only one).

Grounded on the teacher's eval.Evaluator: an Out io.Writer defaulting
to os.Stdout (SetWriter/SetOutput for tests), a current-scope field
threaded through execution, and a Reporter used for error surfacing.
Scope handling is generalized from the teacher's single Scp field plus
scope.Copy()-based closures to an explicit Globals/environment split
with the resolver's locals side table driving every variable
lookup/assignment instead of name-based chain walking.
*/
package interpreter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/environment"
	"github.com/ajmajic/golox/object"
	"github.com/ajmajic/golox/reporter"
)

// Interpreter executes a resolved program. Construct with New, call
// Resolve with the resolver's side table for a parsed statement list,
// then Interpret it — the REPL reuses one Interpreter across lines so
// top-level `var`, `fun` and `class` declarations persist.
type Interpreter struct {
	Globals     *environment.Environment
	environment *environment.Environment
	locals      map[interface{}]int
	rep         *reporter.Reporter
	Out         io.Writer
}

// New creates an Interpreter with a fresh global environment seeded
// with the native functions (currently just clock), writing `print`
// output to os.Stdout and reporting runtime errors through rep.
func New(rep *reporter.Reporter) *Interpreter {
	globals := environment.New(nil)
	interp := &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(map[interface{}]int),
		rep:         rep,
		Out:         os.Stdout,
	}
	registerNatives(globals)
	return interp
}

// SetOutput redirects `print` output, used by tests and the driver's
// REPL/file split to capture or stream program output independently
// of the reporter's diagnostic channel.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.Out = w
}

// Resolve adds the resolver's completed node-to-distance side table to
// the entries installed by earlier calls, so functions declared on an
// earlier REPL line keep their resolved locals. Must be called before
// Interpret.
func (i *Interpreter) Resolve(locals map[interface{}]int) {
	for node, distance := range locals {
		i.locals[node] = distance
	}
}

// Interpret executes a program's statement list. A runtime error is
// reported through the reporter and returned so the driver can set the
// process's exit code; it is not itself a Go panic (per spec.md's
// non-goal of treating runtime errors as something other than a
// reportable, recoverable condition).
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			if rtErr, ok := err.(*reporter.RuntimeError); ok {
				i.rep.Runtime(rtErr)
				return rtErr
			}
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.AcceptStmt(i)
}

func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	return expr.AcceptExpr(i)
}

// ExecuteBlock implements object.Interpreter: it executes statements
// inside env, restoring the interpreter's previous environment
// afterward even if a return signal or runtime error propagates out.
// Function.Call relies on this exact contract to run a body in a
// fresh scope chained off the function's closure.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) lookUpVariable(name string, node interface{}) (interface{}, error) {
	if distance, ok := i.locals[node]; ok {
		return i.environment.GetAt(distance, name), nil
	}
	if v, ok := i.Globals.Get(name); ok {
		return v, nil
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

func registerNatives(globals *environment.Environment) {
	globals.Define("clock", &object.NativeFunction{
		Name:   "clock",
		ArgLen: 0,
		Fn: func(args []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
}
