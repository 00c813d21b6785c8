package interpreter

import (
	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/environment"
	"github.com/ajmajic/golox/object"
	"github.com/ajmajic/golox/reporter"
)

func (i *Interpreter) VisitClassStmt(s *ast.ClassStmt) error {
	var superclass *object.Class
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*object.Class)
		if !ok {
			return reporter.NewRuntimeError(s.Superclass.Name.Line(), "Superclass must be a class.")
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	classEnv := i.environment
	if s.Superclass != nil {
		classEnv = environment.New(i.environment)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.Function)
	for _, method := range s.Methods {
		isInit := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = object.NewFunction(method, classEnv, isInit)
	}

	class := object.NewClass(s.Name.Lexeme, superclass, methods)
	i.environment.Assign(s.Name.Lexeme, class)
	return nil
}
