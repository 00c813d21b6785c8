package resolver

import "github.com/ajmajic/golox/ast"

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
			r.rep.Parse(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (interface{}, error) {
	if r.currentClass == classNone {
		r.rep.Parse(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	switch r.currentClass {
	case classNone:
		r.rep.Parse(e.Keyword, "Can't use 'super' outside of a class.")
	case classClass:
		r.rep.Parse(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}
