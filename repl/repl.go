/*
File    : golox/repl/repl.go
Package repl implements the interactive read-eval-print loop: one line
of Lox in, its diagnostics or its `print` output out. It keeps the
teacher's readline + fatih/color shape (banner, colored error output,
persistent history file) but drives the actual Lox pipeline —
lex/parse/resolve/interpret — rather than the teacher's single-pass
Pratt parser and Evaluator.Eval call.

Unlike file mode, a bad line here never exits: the reporter is Reset
between lines, and a single shared Interpreter persists across lines so
`var`/`fun`/`class` declarations accumulate the way a real REPL session
expects.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ajmajic/golox/interpreter"
	"github.com/ajmajic/golox/lexer"
	"github.com/ajmajic/golox/parser"
	"github.com/ajmajic/golox/reporter"
	"github.com/ajmajic/golox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive golox session.
type Repl struct {
	Banner      string
	Version     string
	Line        string
	Prompt      string
	HistoryFile string
}

// New creates a Repl with the given banner, version string, separator
// line, prompt, and readline history file path.
func New(banner, version, line, prompt, historyFile string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, HistoryFile: historyFile}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "golox "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type Lox statements and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until EOF (Ctrl-D) or the user types `.exit`,
// reading keystrokes from in and writing the banner, prompt, and all
// output to out. Passing a TCP connection as both is what backs the
// `serve` command's networked sessions; stdin/stdout back the local one.
func (r *Repl) Start(in io.Reader, out io.Writer) int {
	r.printBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     r.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
		Stdin:           io.NopCloser(in),
		Stdout:          out,
	})
	if err != nil {
		redColor.Fprintf(out, "readline: %v\n", err)
		return 70
	}
	defer rl.Close()
	w := out

	rep := reporter.New(w)
	interp := interpreter.New(rep)
	interp.SetOutput(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			break
		}

		rep.Reset()
		r.evalLine(w, rep, interp, line)
	}
	return 0
}

func (r *Repl) evalLine(w io.Writer, rep *reporter.Reporter, interp *interpreter.Interpreter, line string) {
	tokens := lexer.NewLexer(line, rep).ScanTokens()
	if rep.HadError {
		return
	}

	stmts := parser.New(tokens, rep).Parse()
	if rep.HadError {
		return
	}

	res := resolver.New(rep)
	res.Resolve(stmts)
	if rep.HadError {
		return
	}
	interp.Resolve(res.Locals())
	interp.Interpret(stmts)
}
