/*
File    : golox/reporter/reporter.go
Package reporter centralizes the three error channels shared by every
stage of the pipeline: the lexer, the parser, the resolver, and the
interpreter. Lex/parse/resolve errors are collected and reported
without halting their stage; a runtime error unwinds the interpreter
immediately. The driver (REPL or file runner) checks HadError /
HadRuntimeError after each stage to decide whether to continue.
*/
package reporter

import (
	"fmt"
	"io"
)

// Reporter accumulates had-error/had-runtime-error flags across a single
// run of the pipeline and writes formatted diagnostics to Out.
//
// A fresh Reporter (or a Reset call) is required between REPL lines so
// that one bad line doesn't permanently block later ones.
type Reporter struct {
	Out             io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New creates a Reporter that writes diagnostics to w.
func New(w io.Writer) *Reporter {
	return &Reporter{Out: w}
}

// Reset clears both had-error flags. Called before each REPL line.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Lex reports a lexical error at the given source line.
// Format: "[line <n>] Error: <message>"
func (r *Reporter) Lex(line int, message string) {
	r.report(line, "", message)
}

// TokenLike is satisfied by any token carrying the fields a parse/resolve
// error needs to format itself (kept minimal so reporter does not import
// the lexer package and create a cycle).
type TokenLike interface {
	Line() int
	LexemeText() string
	IsEOF() bool
}

// Parse reports a parse-time or resolve-time error attached to a token.
// If the token is EOF: "[line <n>] Error at end: <message>"
// Otherwise:           "[line <n>] Error at '<lexeme>': <message>"
func (r *Reporter) Parse(tok TokenLike, message string) {
	if tok.IsEOF() {
		r.report(tok.Line(), " at end", message)
	} else {
		r.report(tok.Line(), fmt.Sprintf(" at '%s'", tok.LexemeText()), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// RuntimeError is a Lox runtime error carrying the offending token's line
// so the driver can print a line marker, per spec.md §7's error taxonomy
// (arity mismatch, not callable, bad operand type, bad `+` operands,
// undefined variable, undefined property, not an instance, bad superclass).
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError builds a RuntimeError from a token's line and a formatted
// message.
func NewRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}

// Runtime reports an unrecovered runtime error: "<message>\n[line <n>]".
func (r *Reporter) Runtime(err *RuntimeError) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", err.Message, err.Line)
	r.HadRuntimeError = true
}
