/*
File    : golox/parser/parser_statements.go
Statement grammar: declarations (var/fun/class) and the statement
forms that don't declare a name (print, block, if, while, for, return,
bare expression).
*/
package parser

import (
	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/lexer"
)

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = &ast.Variable{Name: p.previous()}
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function parses a `name(params) { body }` shape shared by `fun`
// declarations and class methods; kind is only used in error messages
// ("function"/"method").
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into the
// equivalent while-loop block: there is no ForStmt node, matching
// jlox's "syntactic sugar" treatment of for.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}
