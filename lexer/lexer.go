/*
File    : golox/lexer/lexer.go
Package lexer performs lexical analysis of Lox source code: characters
in, a Token stream out. Single-character tokens are direct; one byte
of lookahead resolves the two-character operators (!=, ==, <=, >=). A
"//" starts a line comment that runs to end-of-line. String literals
may span multiple lines; numbers have no sign, no exponent, no hex.
*/
package lexer

import (
	"strconv"

	"github.com/ajmajic/golox/reporter"
)

// Lexer scans Src one byte at a time, tracking Line for error messages.
// Column tracking isn't part of this grammar's error model (spec.md only
// surfaces line numbers), so only Line is carried.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int

	rep *reporter.Reporter
}

// NewLexer creates a Lexer over src that reports lex errors through rep.
func NewLexer(src string, rep *reporter.Reporter) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		rep:       rep,
	}
}

// ScanTokens tokenizes the entire source and returns the token list,
// always ending with a single EOF token.
func (lex *Lexer) ScanTokens() []Token {
	var tokens []Token
	for {
		tok, ok := lex.NextToken()
		if ok {
			tokens = append(tokens, tok)
		}
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}

// NextToken scans and returns the next token. ok is false when the
// lexer swallowed a malformed token (e.g. an unterminated string) after
// already reporting the error; the caller should skip it, not append it.
func (lex *Lexer) NextToken() (Token, bool) {
	lex.skipWhitespaceAndComments()

	line := lex.Line

	switch c := lex.Current; {
	case c == 0:
		return NewToken(EOF, "", nil, line), true
	case c == '(':
		lex.advance()
		return NewToken(LEFT_PAREN, "(", nil, line), true
	case c == ')':
		lex.advance()
		return NewToken(RIGHT_PAREN, ")", nil, line), true
	case c == '{':
		lex.advance()
		return NewToken(LEFT_BRACE, "{", nil, line), true
	case c == '}':
		lex.advance()
		return NewToken(RIGHT_BRACE, "}", nil, line), true
	case c == ',':
		lex.advance()
		return NewToken(COMMA, ",", nil, line), true
	case c == '.':
		lex.advance()
		return NewToken(DOT, ".", nil, line), true
	case c == '-':
		lex.advance()
		return NewToken(MINUS, "-", nil, line), true
	case c == '+':
		lex.advance()
		return NewToken(PLUS, "+", nil, line), true
	case c == ';':
		lex.advance()
		return NewToken(SEMICOLON, ";", nil, line), true
	case c == '*':
		lex.advance()
		return NewToken(STAR, "*", nil, line), true
	case c == '!':
		lex.advance()
		if lex.match('=') {
			return NewToken(BANG_EQUAL, "!=", nil, line), true
		}
		return NewToken(BANG, "!", nil, line), true
	case c == '=':
		lex.advance()
		if lex.match('=') {
			return NewToken(EQUAL_EQUAL, "==", nil, line), true
		}
		return NewToken(EQUAL, "=", nil, line), true
	case c == '<':
		lex.advance()
		if lex.match('=') {
			return NewToken(LESS_EQUAL, "<=", nil, line), true
		}
		return NewToken(LESS, "<", nil, line), true
	case c == '>':
		lex.advance()
		if lex.match('=') {
			return NewToken(GREATER_EQUAL, ">=", nil, line), true
		}
		return NewToken(GREATER, ">", nil, line), true
	case c == '/':
		lex.advance()
		return NewToken(SLASH, "/", nil, line), true
	case c == '"':
		return lex.readString()
	case isDigit(c):
		return lex.readNumber(), true
	case isAlpha(c):
		return lex.readIdentifier(), true
	default:
		lex.advance()
		lex.rep.Lex(line, "Unexpected Character.")
		return Token{}, false
	}
}

// advance consumes the current byte and moves to the next.
func (lex *Lexer) advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// peek returns the byte after Current without consuming anything.
func (lex *Lexer) peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// match consumes Current and returns true if it equals want; otherwise
// leaves the lexer untouched and returns false. Used for the one-byte
// lookahead behind !=, ==, <=, >=.
func (lex *Lexer) match(want byte) bool {
	if lex.Current != want {
		return false
	}
	lex.advance()
	return true
}

// skipWhitespaceAndComments discards spaces, tabs, carriage returns,
// newlines (bumping Line), and "//" line comments.
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch lex.Current {
		case ' ', '\t', '\r':
			lex.advance()
		case '\n':
			lex.Line++
			lex.advance()
		case '/':
			if lex.peek() == '/' {
				for lex.Current != '\n' && lex.Current != 0 {
					lex.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// readString scans a "..."-delimited string literal. Strings may span
// multiple lines; an embedded newline advances Line. EOF before the
// closing quote is a lex error and no token is produced.
func (lex *Lexer) readString() (Token, bool) {
	startLine := lex.Line
	lex.advance() // consume opening quote
	start := lex.Position

	for lex.Current != '"' && lex.Current != 0 {
		if lex.Current == '\n' {
			lex.Line++
		}
		lex.advance()
	}

	if lex.Current == 0 {
		lex.rep.Lex(startLine, "Unterminated string.")
		return Token{}, false
	}

	value := lex.Src[start:lex.Position]
	lex.advance() // consume closing quote
	return NewToken(STRING, value, value, startLine), true
}

// readNumber scans one or more digits, optionally followed by '.' and
// one or more digits. No leading sign, no exponent, no hex.
func (lex *Lexer) readNumber() Token {
	line := lex.Line
	start := lex.Position

	for isDigit(lex.Current) {
		lex.advance()
	}

	if lex.Current == '.' && isDigit(lex.peek()) {
		lex.advance() // consume '.'
		for isDigit(lex.Current) {
			lex.advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return NewToken(NUMBER, lexeme, value, line)
}

// readIdentifier scans [A-Za-z_][A-Za-z_0-9]* and classifies it against
// the keyword table.
func (lex *Lexer) readIdentifier() Token {
	line := lex.Line
	start := lex.Position

	for isAlphaNumeric(lex.Current) {
		lex.advance()
	}

	lexeme := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(lexeme), lexeme, nil, line)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
