package calc

import "fmt"

// ScanError is returned by the scanner when the source contains something
// that is not a number, an operator or a parenthesis.
type ScanError struct {
	col     int
	message string
}

// NewScanError creates a new scanner error
func NewScanError(col int, message string) error {
	return &ScanError{col, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[col %d] Error: %s", err.col, err.message)
}

// ParseError wraps the error message returned by the parser with the token
// where the error occurred.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parser error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

// Token returns the offending token.
func (err *ParseError) Token() *Token {
	return err.token
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[col %d] Error at end: %s",
			err.token.Col,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[col %d] Error at '%s': %s",
		err.token.Col,
		err.token.Lexeme,
		err.message,
	)
}

// EvalError is returned when folding meets a node that cannot be reduced.
type EvalError struct {
	pos     int
	value   string
	message string
}

// NewEvalError creates a new evaluation error for the node at pos
func NewEvalError(pos int, value string, message string) error {
	return &EvalError{pos, value, message}
}

func (err *EvalError) Error() string {
	return fmt.Sprintf(
		"[node %d] Error at '%s': %s",
		err.pos,
		err.value,
		err.message,
	)
}
