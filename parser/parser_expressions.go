/*
File    : golox/parser/parser_expressions.go
Expression grammar, one method per precedence level from lowest
(assignment) to highest (call/primary), each falling through to the
next tightest level and looping on its own operator set — the
precedence-climbing shape spec.md's grammar lays out directly, as
opposed to the teacher's table of registered prefix/infix functions.
*/
package parser

import (
	"github.com/ajmajic/golox/ast"
	"github.com/ajmajic/golox/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative and only accepts a restricted set of
// left-hand sides (Variable, Get); anything else reaches here, fails
// that check, and reports "Invalid assignment target." without
// aborting the parse — the already-parsed left expression is returned
// as an ordinary expression.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.error(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by any number of `(args)`
// or `.name` suffixes, so `a()()`, `a.b.c`, and `a.b()` all fall out
// of the same loop.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.error(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		panic(p.error(p.peek(), "Expect expression."))
	}
}
