/*
File    : golox/interpreter/interpreter_expr.go
Expression evaluation. Runtime type errors are built as
*reporter.RuntimeError carrying the offending operator/keyword token's
line, matching spec.md §7's taxonomy (bad operand type, bad `+`
operands, undefined variable/property, not callable, arity mismatch,
not an instance, bad superclass).
*/
package interpreter

import (
	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/object"
	"github.com/ajmajic/golox/reporter"
)

func (i *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (i *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return i.evaluate(e.Inner)
}

func (i *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case "-":
		n, ok := right.(float64)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return -n, nil
	case "!":
		return !object.IsTruthy(right), nil
	}
	return nil, nil
}

func (i *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case "-":
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return l - r, nil
	case "/":
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return l / r, nil
	case "*":
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return l * r, nil
	case "+":
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operands must both be either strings or numbers")
	case ">":
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return l > r, nil
	case ">=":
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return l >= r, nil
	case "<":
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return l < r, nil
	case "<=":
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return l <= r, nil
	case "!=":
		return !object.IsEqual(left, right), nil
	case "==":
		return object.IsEqual(left, right), nil
	}
	return nil, nil
}

func bothNumbers(left, right interface{}) (float64, float64, bool) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	return l, r, ok1 && ok2
}

func (i *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == "or" {
		if object.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !object.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	v, err := i.lookUpVariable(e.Name.Lexeme, e)
	if err != nil {
		return nil, reporter.NewRuntimeError(e.Name.Line(), "Undefined Variable '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (i *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[e]; ok {
		i.environment.AssignAt(distance, e.Name.Lexeme, value)
	} else if !i.Globals.Assign(e.Name.Lexeme, value) {
		return nil, reporter.NewRuntimeError(e.Name.Line(), "Undefined Variable '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, reporter.NewRuntimeError(e.Paren.Line(), "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, reporter.NewRuntimeError(e.Paren.Line(), "Wrong number of arguments.")
	}
	return callable.Call(i, args)
}

func (i *Interpreter) VisitGetExpr(e *ast.Get) (interface{}, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, reporter.NewRuntimeError(e.Name.Line(), "Only instances have properties.")
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, reporter.NewRuntimeError(e.Name.Line(), "Undefined property %s.", e.Name.Lexeme)
	}
	return v, nil
}

func (i *Interpreter) VisitSetExpr(e *ast.Set) (interface{}, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, reporter.NewRuntimeError(e.Name.Line(), "Only instances have fields.")
	}

	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) VisitThisExpr(e *ast.This) (interface{}, error) {
	v, err := i.lookUpVariable("this", e)
	if err != nil {
		return nil, reporter.NewRuntimeError(e.Keyword.Line(), "Undefined Variable 'this'.")
	}
	return v, nil
}

func (i *Interpreter) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	distance := i.locals[e]
	superclass := i.environment.GetAt(distance, "super").(*object.Class)
	instance := i.environment.GetAt(distance-1, "this").(*object.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, reporter.NewRuntimeError(e.Method.Line(), "Undefined property %s.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
