package resolver

import "github.com/ajmajic/golox/ast"

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) error {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) error {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) error {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, fnFunction)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	if r.currentFunction == fnNone {
		r.rep.Parse(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == fnInitializer {
			r.rep.Parse(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) error {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.rep.Parse(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}
	return nil
}
