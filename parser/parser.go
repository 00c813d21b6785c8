/*
File    : golox/parser/parser.go
Package parser implements a recursive-descent parser for Lox,
producing the ast.Expr/ast.Stmt tree the resolver and interpreter walk.

Unlike the teacher package's Pratt parser (table-driven prefix/infix
parse functions keyed by token type), this parser follows spec.md's
explicit precedence-climbing grammar directly: one method per
precedence level, each calling the next-tightest level and looping on
its own operators. The two-token lookahead pattern (par.advance(),
expectAdvance/expectNext, an Errors/error-reporting channel) is kept
from the teacher's shape, adapted to a single current-token cursor
with one token of peek, and to report through reporter.Reporter instead
of collecting message strings.
*/
package parser

import (
	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/lexer"
	"github.com/ajmajic/golox/reporter"
)

// parseError unwinds parsing of the current statement back to
// synchronize(), the way a Lox syntax error is meant to: report one
// diagnostic, skip to the next statement boundary, keep going.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser consumes a token slice produced by the lexer and builds the
// statement list for a program.
type Parser struct {
	tokens  []lexer.Token
	current int
	rep     *reporter.Reporter
}

// New creates a Parser over tokens (including the trailing EOF) that
// reports syntax errors through rep.
func New(tokens []lexer.Token, rep *reporter.Reporter) *Parser {
	return &Parser{tokens: tokens, rep: rep}
}

// Parse parses the whole token stream as a program: a list of
// declarations. A statement that fails to parse is skipped (after
// synchronize()) rather than aborting the rest of the file, so one
// syntax error doesn't hide later ones.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) declaration() (stmt ast.Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				p.synchronize()
				stmt, ok = nil, false
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration(), true
	case p.match(lexer.FUN):
		return p.function("function"), true
	case p.match(lexer.VAR):
		return p.varDeclaration(), true
	default:
		return p.statement(), true
	}
}

// synchronize discards tokens until it's plausibly at the start of the
// next statement, so error recovery doesn't cascade into nonsense
// follow-on errors.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
	}
}

// --- token cursor primitives ---

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume requires the next token to be of type t, reporting message
// and aborting the current statement via parseError if it isn't.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

func (p *Parser) error(tok lexer.Token, message string) parseError {
	p.rep.Parse(tok, message)
	return parseError{}
}
