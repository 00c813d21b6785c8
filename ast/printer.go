package ast

import (
	"bytes"
	"fmt"
)

// Printer renders an expression tree as a parenthesized (Lisp-style)
// string, grounded on the teacher's PrintingVisitor (print_visitor.go)
// generalized from its indented node dump to the original's compact
// `(operator operand...)` sexp format. Used only by tests that assert
// on AST shape; the CLI never calls it.
type Printer struct {
	buf bytes.Buffer
}

// Print renders expr as a parenthesized string, e.g. "(* (- 123) (group 45.67))".
func Print(expr Expr) string {
	p := &Printer{}
	s, _ := expr.AcceptExpr(p)
	return s.(string)
}

func (p *Printer) sexp(name string, exprs ...Expr) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(name)
	for _, e := range exprs {
		buf.WriteString(" ")
		s, _ := e.AcceptExpr(p)
		buf.WriteString(s.(string))
	}
	buf.WriteString(")")
	return buf.String()
}

func (p *Printer) VisitLiteralExpr(e *Literal) (interface{}, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", e.Value), nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (interface{}, error) {
	return p.sexp(e.Operator.Lexeme, e.Right), nil
}

func (p *Printer) VisitBinaryExpr(e *Binary) (interface{}, error) {
	return p.sexp(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitLogicalExpr(e *Logical) (interface{}, error) {
	return p.sexp(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (interface{}, error) {
	return p.sexp("group", e.Inner), nil
}

func (p *Printer) VisitVariableExpr(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *Printer) VisitAssignExpr(e *Assign) (interface{}, error) {
	return p.sexp("= "+e.Name.Lexeme, e.Value), nil
}

func (p *Printer) VisitCallExpr(e *Call) (interface{}, error) {
	return p.sexp("call", append([]Expr{e.Callee}, e.Args...)...), nil
}

func (p *Printer) VisitGetExpr(e *Get) (interface{}, error) {
	return p.sexp("get "+e.Name.Lexeme, e.Object), nil
}

func (p *Printer) VisitSetExpr(e *Set) (interface{}, error) {
	return p.sexp("set "+e.Name.Lexeme, e.Object, e.Value), nil
}

func (p *Printer) VisitThisExpr(e *This) (interface{}, error) {
	return "this", nil
}

func (p *Printer) VisitSuperExpr(e *Super) (interface{}, error) {
	return "super." + e.Method.Lexeme, nil
}
