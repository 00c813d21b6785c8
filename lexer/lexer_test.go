/*
File    : golox/lexer/lexer_test.go
*/
package lexer

import (
	"bytes"
	"testing"

	"github.com/ajmajic/golox/reporter"
	"github.com/stretchr/testify/assert"
)

func scan(t *testing.T, src string) ([]Token, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	lex := NewLexer(src, rep)
	return lex.ScanTokens(), rep
}

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestScanTokens_Operators(t *testing.T) {
	tokens, rep := scan(t, `( ) { } , . - + ; * ! != = == > >= < <= /`)
	assert.False(t, rep.HadError)
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS,
		PLUS, SEMICOLON, STAR, BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL,
		GREATER, GREATER_EQUAL, LESS, LESS_EQUAL, SLASH, EOF,
	}, types(tokens))
}

func TestScanTokens_Keywords(t *testing.T) {
	tokens, _ := scan(t, `and class else false fun for if nil or print return super this true var while notakeyword`)
	got := types(tokens)
	want := []TokenType{AND, CLASS, ELSE, FALSE, FUN, FOR, IF, NIL, OR, PRINT,
		RETURN, SUPER, THIS, TRUE, VAR, WHILE, IDENTIFIER, EOF}
	assert.Equal(t, want, got)
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	tokens, _ := scan(t, `123 3.14`)
	require := assert.New(t)
	require.Equal(NUMBER, tokens[0].Type)
	require.Equal(float64(123), tokens[0].Literal)
	require.Equal(NUMBER, tokens[1].Type)
	require.Equal(3.14, tokens[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, rep := scan(t, `"hello world"`)
	assert.False(t, rep.HadError)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_MultilineString(t *testing.T) {
	tokens, rep := scan(t, "\"line one\nline two\" true")
	assert.False(t, rep.HadError)
	assert.Equal(t, "line one\nline two", tokens[0].Literal)
	// the second token should be on line 2
	assert.Equal(t, 2, tokens[1].LineNo)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	tokens, rep := scan(t, `"unterminated`)
	assert.True(t, rep.HadError)
	assert.Equal(t, []TokenType{EOF}, types(tokens))
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, _ := scan(t, "var a = 1; // this is ignored\nvar b = 2;")
	got := types(tokens)
	assert.Equal(t, []TokenType{VAR, IDENTIFIER, EQUAL, NUMBER, SEMICOLON,
		VAR, IDENTIFIER, EQUAL, NUMBER, SEMICOLON, EOF}, got)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	tokens, rep := scan(t, `@`)
	assert.True(t, rep.HadError)
	assert.Equal(t, []TokenType{EOF}, types(tokens))
}

func TestScanTokens_LineTracking(t *testing.T) {
	tokens, _ := scan(t, "var a = 1;\nvar b = 2;\nprint a;")
	var printLine int
	for _, tok := range tokens {
		if tok.Type == PRINT {
			printLine = tok.LineNo
		}
	}
	assert.Equal(t, 3, printLine)
}

func TestScanTokens_Identifiers(t *testing.T) {
	tokens, _ := scan(t, `_a1 a_B2 __dunder__`)
	assert.Equal(t, []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF}, types(tokens))
}
