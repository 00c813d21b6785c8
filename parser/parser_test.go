package parser

import (
	"bytes"
	"testing"

	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/lexer"
	"github.com/ajmajic/golox/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	tokens := lexer.NewLexer(src, rep).ScanTokens()
	return New(tokens, rep).Parse(), rep
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts, rep := parse(t, "1 + 2 * 3;")
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	binary := exprStmt.Expr.(*ast.Binary)
	assert.Equal(t, lexer.PLUS, binary.Operator.Type)

	right := binary.Right.(*ast.Binary)
	assert.Equal(t, lexer.STAR, right.Operator.Type)
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts, rep := parse(t, `var a = "hello";`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	varStmt := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "a", varStmt.Name.Lexeme)
	lit := varStmt.Initializer.(*ast.Literal)
	assert.Equal(t, "hello", lit.Value)
}

func TestParse_IfElse(t *testing.T) {
	stmts, rep := parse(t, `if (true) print 1; else print 2;`)
	require.False(t, rep.HadError)
	ifStmt := stmts[0].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, rep := parse(t, `for (var i = 0; i < 10; i = i + 1) print i;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	outer := stmts[0].(*ast.BlockStmt)
	require.Len(t, outer.Statements, 2)
	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)
	_, isWhile := outer.Statements[1].(*ast.WhileStmt)
	assert.True(t, isWhile)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, rep := parse(t, `
		class Base {
			greet() { print "hi"; }
		}
		class Derived < Base {
			greet() { super.greet(); }
		}
	`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 2)

	derived := stmts[1].(*ast.ClassStmt)
	require.NotNil(t, derived.Superclass)
	assert.Equal(t, "Base", derived.Superclass.Name.Lexeme)
	require.Len(t, derived.Methods, 1)
	assert.Equal(t, "greet", derived.Methods[0].Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReportsButDoesNotPanic(t *testing.T) {
	_, rep := parse(t, `1 + 2 = 3;`)
	assert.True(t, rep.HadError)
}

func TestParse_MissingSemicolonSynchronizesAndReportsOnce(t *testing.T) {
	stmts, rep := parse(t, `
		var a = 1
		var b = 2;
	`)
	assert.True(t, rep.HadError)
	require.Len(t, stmts, 1)
	assert.Equal(t, "b", stmts[0].(*ast.VarStmt).Name.Lexeme)
}

func TestParse_CallChainAndPropertyAccess(t *testing.T) {
	stmts, rep := parse(t, `a.b.c(1, 2)();`)
	require.False(t, rep.HadError)
	exprStmt := stmts[0].(*ast.ExpressionStmt)

	outerCall := exprStmt.Expr.(*ast.Call)
	assert.Empty(t, outerCall.Args)

	innerCall := outerCall.Callee.(*ast.Call)
	require.Len(t, innerCall.Args, 2)

	get := innerCall.Callee.(*ast.Get)
	assert.Equal(t, "c", get.Name.Lexeme)
}
