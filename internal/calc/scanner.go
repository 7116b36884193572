package calc

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// lexDef matches the raw lexemes. Rules are tried in order, so a run of signs
// wins over a single operator.
var lexDef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "SignRun", Pattern: `[-+]{2,}`},
	{Name: "Operator", Pattern: `[-+*/]`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	symbols       = lexDef.Symbols()
	symNumber     = symbols["Number"]
	symSignRun    = symbols["SignRun"]
	symOperator   = symbols["Operator"]
	symParen      = symbols["Paren"]
	symWhitespace = symbols["Whitespace"]
)

// Scanner splits the source into tokens. Signs are normalized while scanning
// so that the parser only ever sees binary operators: a '-' following an
// operand becomes "+ -1 *", any other '-' becomes "-1 *", and a '+' that does
// not follow an operand is dropped.
type Scanner struct {
	source string
	tokens []*Token
	done   bool
	err    error
}

// NewScanner creates a new token scanner
func NewScanner(source string) *Scanner {
	scanner := new(Scanner)
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The last token is always EOF. Scanning happens once, later calls
// return the same result.
func (scanner *Scanner) Scan() ([]*Token, error) {
	if !scanner.done {
		scanner.done = true
		if scanner.err = scanner.scan(); scanner.err != nil {
			scanner.tokens = nil
		}
	}
	return scanner.tokens, scanner.err
}

func (scanner *Scanner) scan() error {
	lex, err := lexDef.LexString("", scanner.source)
	if err != nil {
		return err
	}
	for {
		tok, err := lex.Next()
		if err != nil {
			return scanner.lexError(err)
		}
		if tok.EOF() {
			break
		}
		col := tok.Pos.Column
		switch tok.Type {
		// Whitespaces
		case symWhitespace:
		// Literals
		case symNumber:
			literal, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				return NewScanError(col, fmt.Sprintf("Invalid number '%s'.", tok.Value))
			}
			scanner.addToken(NUMBER, tok.Value, literal, col)
		case symSignRun:
			return NewScanError(col, fmt.Sprintf("Malformed sign run '%s'.", tok.Value))
		case symOperator:
			scanner.scanOperator(tok.Value, col)
		case symParen:
			scanner.addToken(TokenType(tok.Value), tok.Value, nil, col)
		}
	}
	scanner.addToken(EOF, "", nil, len(scanner.source)+1)
	return nil
}

func (scanner *Scanner) scanOperator(op string, col int) {
	switch TokenType(op) {
	case MINUS:
		if scanner.afterOperand() {
			scanner.addToken(PLUS, "+", nil, col)
		}
		scanner.addToken(NEG, "-1", -1.0, col)
		scanner.addToken(STAR, "*", nil, col)
	case PLUS:
		// unary plus has no effect
		if scanner.afterOperand() {
			scanner.addToken(PLUS, op, nil, col)
		}
	default:
		scanner.addToken(TokenType(op), op, nil, col)
	}
}

// afterOperand reports whether the last token ends an operand.
func (scanner *Scanner) afterOperand() bool {
	if len(scanner.tokens) == 0 {
		return false
	}
	switch scanner.tokens[len(scanner.tokens)-1].Typ {
	case NUMBER, RIGHT_PAREN:
		return true
	}
	return false
}

// lexError turns an error of the underlying lexer into a ScanError pointing
// at the offending character.
func (scanner *Scanner) lexError(err error) error {
	var perr interface{ Position() lexer.Position }
	if !errors.As(err, &perr) {
		return NewScanError(0, err.Error())
	}
	pos := perr.Position()
	if pos.Offset < 0 || pos.Offset >= len(scanner.source) {
		return NewScanError(pos.Column, "Unexpected character.")
	}
	r, _ := utf8.DecodeRuneInString(scanner.source[pos.Offset:])
	return NewScanError(pos.Column, fmt.Sprintf("Unexpected character '%c'.", r))
}

// addToken appends a token of the given type that carries the given literal
func (scanner *Scanner) addToken(typ TokenType, lexeme string, literal interface{}, col int) {
	scanner.tokens = append(scanner.tokens, NewToken(typ, lexeme, literal, col))
}
