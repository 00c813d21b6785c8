package resolver

import (
	"bytes"
	"testing"

	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/lexer"
	"github.com/ajmajic/golox/parser"
	"github.com/ajmajic/golox/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) ([]ast.Stmt, *Resolver, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	tokens := lexer.NewLexer(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.False(t, rep.HadError, "unexpected parse error: %s", buf.String())

	res := New(rep)
	res.Resolve(stmts)
	return stmts, res, rep
}

func TestResolve_LocalVariableGetsDistance(t *testing.T) {
	stmts, res, rep := resolveSrc(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
	`)
	assert.False(t, rep.HadError)

	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expr.(*ast.Variable)

	distance, ok := res.Locals()[variable]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolve_GlobalReferenceHasNoLocalsEntry(t *testing.T) {
	stmts, res, rep := resolveSrc(t, `
		var a = "global";
		print a;
	`)
	assert.False(t, rep.HadError)

	printStmt := stmts[1].(*ast.PrintStmt)
	variable := printStmt.Expr.(*ast.Variable)

	_, ok := res.Locals()[variable]
	assert.False(t, ok)
}

func TestResolve_SelfReferentialInitializerIsError(t *testing.T) {
	_, _, rep := resolveSrc(t, `var a = a;`)
	assert.True(t, rep.HadError)
}

func TestResolve_ReturnOutsideFunctionIsError(t *testing.T) {
	_, _, rep := resolveSrc(t, `return 1;`)
	assert.True(t, rep.HadError)
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, _, rep := resolveSrc(t, `print this;`)
	assert.True(t, rep.HadError)
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	_, _, rep := resolveSrc(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, rep.HadError)
}

func TestResolve_SuperWithoutSuperclassIsError(t *testing.T) {
	_, _, rep := resolveSrc(t, `
		class Foo {
			bar() {
				super.bar();
			}
		}
	`)
	assert.True(t, rep.HadError)
}

func TestResolve_ClassInheritingFromItselfIsError(t *testing.T) {
	_, _, rep := resolveSrc(t, `class Foo < Foo {}`)
	assert.True(t, rep.HadError)
}

func TestResolve_DistinctVariableNodesResolveIndependently(t *testing.T) {
	stmts, res, rep := resolveSrc(t, `
		var a = "global";
		{
			print a;
			var a = "shadow";
			print a;
		}
	`)
	assert.False(t, rep.HadError)

	block := stmts[1].(*ast.BlockStmt)
	firstPrint := block.Statements[0].(*ast.PrintStmt)
	firstVar := firstPrint.Expr.(*ast.Variable)
	secondPrint := block.Statements[2].(*ast.PrintStmt)
	secondVar := secondPrint.Expr.(*ast.Variable)

	_, firstIsLocal := res.Locals()[firstVar]
	assert.False(t, firstIsLocal, "first reference predates the shadowing declaration")

	secondDistance, secondIsLocal := res.Locals()[secondVar]
	assert.True(t, secondIsLocal)
	assert.Equal(t, 0, secondDistance)
}
