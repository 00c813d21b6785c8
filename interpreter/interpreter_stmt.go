package interpreter

import (
	"fmt"

	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/environment"
	"github.com/ajmajic/golox/object"
)

func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := i.evaluate(s.Expr)
	return err
}

func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := i.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.Out, object.Stringify(v))
	return nil
}

func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var value interface{}
	if s.Initializer != nil {
		v, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	i.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return i.ExecuteBlock(s.Statements, environment.New(i.environment))
}

func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if object.IsTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !object.IsTruthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := object.NewFunction(s, i.environment, false)
	i.environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (i *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var value interface{}
	if s.Value != nil {
		v, err := i.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &object.ReturnSignal{Value: value}
}
