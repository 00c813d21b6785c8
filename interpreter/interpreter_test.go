package interpreter

import (
	"bytes"
	"testing"

	"github.com/ajmajic/golox/lexer"
	"github.com/ajmajic/golox/parser"
	"github.com/ajmajic/golox/reporter"
	"github.com/ajmajic/golox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, *reporter.Reporter) {
	t.Helper()
	var diag bytes.Buffer
	rep := reporter.New(&diag)

	tokens := lexer.NewLexer(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.False(t, rep.HadError, "unexpected parse error: %s", diag.String())

	res := resolver.New(rep)
	res.Resolve(stmts)
	require.False(t, rep.HadError, "unexpected resolve error: %s", diag.String())

	interp := New(rep)
	var out bytes.Buffer
	interp.SetOutput(&out)
	interp.Resolve(res.Locals())
	interp.Interpret(stmts)

	return out.String(), rep
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, rep := run(t, `print 1 + 2 * 3;`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_WholeNumberPrintsWithoutDecimal(t *testing.T) {
	out, _ := run(t, `print 8 / 2;`)
	assert.Equal(t, "4\n", out)
}

func TestInterpret_ClosuresCaptureByReference(t *testing.T) {
	out, rep := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_ClosureKeepsGlobalAfterLaterLocalShadow(t *testing.T) {
	out, _ := run(t, `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
	`)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestInterpret_SingleInheritanceAndSuper(t *testing.T) {
	out, rep := run(t, `
		class Doughnut {
			cook() {
				print "Fry until golden brown.";
			}
		}
		class BostonCream < Doughnut {
			cook() {
				super.cook();
				print "Pipe full of custard and coat with chocolate.";
			}
		}
		BostonCream().cook();
	`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n", out)
}

func TestInterpret_InitializerAlwaysReturnsInstance(t *testing.T) {
	out, rep := run(t, `
		class Point {
			init(x, y) {
				this.x = x;
				this.y = y;
			}
		}
		var p = Point(1, 2);
		print p.x;
		print p.y;
	`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpret_ClassAndInstancePrintUnbracketed(t *testing.T) {
	out, rep := run(t, `
		class C {
			init() {}
		}
		print C;
		print C().init();
	`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "C\nC instance\n", out)
}

func TestInterpret_RuntimeErrorOnBadOperand(t *testing.T) {
	_, rep := run(t, `print "a" - 1;`)
	assert.True(t, rep.HadRuntimeError)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print nope;`)
	assert.True(t, rep.HadRuntimeError)
}
