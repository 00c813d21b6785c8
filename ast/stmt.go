/*
File    : golox/ast/stmt.go
Statement node types. Function is shared between the `fun` declaration
and a class's methods — the parser builds the same node for both, and
the interpreter decides at binding time whether it closes over `this`.
*/
package ast

import "github.com/ajmajic/golox/lexer"

// Stmt is the base interface for every statement node.
type Stmt interface {
	AcceptStmt(v StmtVisitor) error
}

// StmtVisitor dispatches over every statement variant.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
	VisitClassStmt(s *ClassStmt) error
}

// ExpressionStmt evaluates Expr for its side effect and discards the value.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expr and writes its stringified form followed by
// a newline.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current environment, bound to
// Initializer's value or nil if Initializer is nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope enclosing Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt executes Then if Condition is truthy, else Else (nil when
// there was no else clause).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt repeatedly executes Body while Condition is truthy. A
// desugared `for` loop is a WhileStmt wrapped in a BlockStmt (see
// parser's forStatement).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt is a `fun name(params) { body }` declaration. It also
// backs class methods, parsed with the same shape but never reaching
// the environment as a VarStmt-style binding directly — the class
// body hands it to ClassStmt.Methods instead.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds the nearest enclosing function call. Value is nil
// for a bare `return;`. This is control-flow propagation, not a Lox
// runtime error, so the interpreter threads it back up as a sentinel
// result rather than a Go panic — see object.ReturnSignal.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) AcceptStmt(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// ClassStmt declares a class, optionally with a Superclass reference
// (nil when there is none).
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *ClassStmt) AcceptStmt(v StmtVisitor) error { return v.VisitClassStmt(s) }
