/*
File    : golox/resolver/resolver.go
Package resolver performs the static analysis pass between parsing and
evaluation: it walks the AST once, maintaining a stack of lexical
scopes, and for every Variable/Assign/This/Super expression it computes
how many enclosing scopes separate the reference from its declaration.
That distance is recorded in a side table keyed by the expression
node's own pointer — never by name or source position, since two
syntactically identical references at different points in the source
must resolve independently (shadowing, redeclaration).

The interpreter consults this table (interpreter.Interpreter.locals)
instead of re-searching the environment chain by name at every lookup,
which is what keeps each reference bound to the declaration in scope
where it appears: a closure that reads a global keeps reading the
global even after a later `var` in its enclosing block shadows the name.

Grounded on the teacher's visitor-driven tree walk (eval/evaluator.go),
generalized from "evaluate immediately" to "record scope depth, then
move on" and restricted to a single pass with no side effects on the
value domain.
*/
package resolver

import (
	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/lexer"
	"github.com/ajmajic/golox/reporter"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver is a one-shot AST walker; construct one per compilation
// unit with New and call Resolve once.
type Resolver struct {
	rep    *reporter.Reporter
	scopes []map[string]bool
	locals map[interface{}]int

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports errors through rep and fills
// locals with the expression-node-to-scope-distance table.
func New(rep *reporter.Reporter) *Resolver {
	return &Resolver{
		rep:    rep,
		locals: make(map[interface{}]int),
	}
}

// Locals returns the completed side table once Resolve has run.
func (r *Resolver) Locals() map[interface{}]int {
	return r.locals
}

// Resolve walks an entire program's statement list.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	_ = stmt.AcceptStmt(r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	_, _ = expr.AcceptExpr(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present-but-not-yet-initialized in the
// innermost scope, so `var a = a;` can be caught: the initializer
// expression resolves before the declaration is marked ready.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.rep.Parse(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost to outermost
// looking for name, recording the distance the first time it finds a
// declaration. A miss leaves no entry, which the interpreter treats as
// "look in globals" per spec.md's resolution contract.
func (r *Resolver) resolveLocal(node interface{}, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[node] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}
