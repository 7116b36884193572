package calc

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Col     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, col int) *Token {
	return &Token{typ, lexeme, literal, col}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

// TokenType is a just a wrapped string used to represent token's type
type TokenType string

const (
	// Single-character tokens
	LEFT_PAREN  TokenType = "("
	RIGHT_PAREN TokenType = ")"
	MINUS       TokenType = "-"
	PLUS        TokenType = "+"
	SLASH       TokenType = "/"
	STAR        TokenType = "*"

	// Literals
	NUMBER TokenType = "NUMBER"
	// NEG is the "-1" of a normalized unary minus, always followed by "*"
	NEG TokenType = "NEG"

	EOF TokenType = "EOF"
)

// isOperator reports whether the lexeme names one of the four arithmetic
// operators.
func isOperator(lexeme string) bool {
	switch TokenType(lexeme) {
	case PLUS, MINUS, STAR, SLASH:
		return true
	}
	return false
}
