package calc

import (
	"github.com/pkg/errors"

	"github.com/ltungv/treecalc/internal/kary"
)

// Parser assembles a binary expression tree from a sequence of tokens that
// follow this grammar:
//
//	expr     --> term exprTail ;
//	exprTail --> ( "+" | "-" ) term exprTail | ε ;
//	term     --> factor termTail ;
//	termTail --> ( "*" | "/" ) factor termTail | ε ;
//	factor   --> NEG "*" factor | NUMBER | "(" expr ")" ;
//
// Partial trees live on a working stack. Every number pushes a leaf and every
// operator pushes a single node; once the right operand of an operator has
// been parsed the top three entries are reduced into one tree, the operator
// taking the older operand as its left child and the newer one as its right
// child. Reducing before the rest of the tail is parsed keeps operators of
// the same precedence left-associative.
type Parser struct {
	current int
	tokens  []*Token
	stack   []*kary.Tree[string]
}

// NewParser creates a new parser over the given tokens. A missing trailing
// EOF token is added.
func NewParser(tokens []*Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Typ != EOF {
		col := 1
		if len(tokens) != 0 {
			col = tokens[len(tokens)-1].Col + 1
		}
		tokens = append(tokens[:len(tokens):len(tokens)], NewToken(EOF, "", nil, col))
	}
	return &Parser{0, tokens, nil}
}

// Parse consumes every token and returns the finished expression tree.
func (parser *Parser) Parse() (*kary.Tree[string], error) {
	parser.current = 0
	parser.stack = parser.stack[:0]
	if err := parser.expr(); err != nil {
		return nil, err
	}
	if err := parser.match(EOF, "Expect end of expression."); err != nil {
		return nil, err
	}
	if len(parser.stack) != 1 {
		return nil, NewParseError(parser.peek(), "Unbalanced expression.")
	}
	tree := parser.stack[0]
	parser.stack = nil
	return tree, nil
}

// expr --> term exprTail ;
func (parser *Parser) expr() error {
	if err := parser.term(); err != nil {
		return err
	}
	return parser.exprTail()
}

// exprTail --> ( "+" | "-" ) term exprTail | ε ;
func (parser *Parser) exprTail() error {
	if !parser.check(PLUS, MINUS) {
		return nil
	}
	parser.pushNode(parser.advance())
	if err := parser.term(); err != nil {
		return err
	}
	if err := parser.reduce(); err != nil {
		return err
	}
	return parser.exprTail()
}

// term --> factor termTail ;
func (parser *Parser) term() error {
	if err := parser.factor(); err != nil {
		return err
	}
	return parser.termTail()
}

// termTail --> ( "*" | "/" ) factor termTail | ε ;
func (parser *Parser) termTail() error {
	if !parser.check(STAR, SLASH) {
		return nil
	}
	parser.pushNode(parser.advance())
	if err := parser.factor(); err != nil {
		return err
	}
	if err := parser.reduce(); err != nil {
		return err
	}
	return parser.termTail()
}

// factor --> NEG "*" factor | NUMBER | "(" expr ")" ;
//
// A negation only scales the factor that follows it, so "6 / -2" is
// 6 / (-1 * 2) rather than (6 / -1) * 2.
func (parser *Parser) factor() error {
	if parser.check(NEG) {
		parser.pushNode(parser.advance())
		if !parser.check(STAR) {
			return nil
		}
		parser.pushNode(parser.advance())
		if err := parser.factor(); err != nil {
			return err
		}
		return parser.reduce()
	}
	if parser.check(NUMBER) {
		parser.pushNode(parser.advance())
		return nil
	}
	if parser.check(LEFT_PAREN) {
		parser.advance()
		if err := parser.expr(); err != nil {
			return err
		}
		return parser.match(RIGHT_PAREN, "Expect ')' after expression.")
	}
	return NewParseError(parser.peek(), "Expect expression.")
}

// pushNode pushes a single node tree holding the token's lexeme.
func (parser *Parser) pushNode(tok *Token) {
	tree := kary.New[string](2)
	// the root of an empty tree can always be set
	_, _, _ = tree.Set(0, tok.Lexeme)
	parser.stack = append(parser.stack, tree)
}

// reduce pops the left operand, the operator and the right operand, hangs the
// operands under the operator and pushes the result back.
func (parser *Parser) reduce() error {
	n := len(parser.stack)
	if n < 3 {
		return NewParseError(parser.peek(), "Missing operand.")
	}
	left, op, right := parser.stack[n-3], parser.stack[n-2], parser.stack[n-1]
	if err := op.Hang(left, op.JthChild(0, 0), 0); err != nil {
		return parser.hangError(err, "hanging left operand")
	}
	if err := op.Hang(right, op.JthChild(0, 1), 0); err != nil {
		return parser.hangError(err, "hanging right operand")
	}
	parser.stack = append(parser.stack[:n-3], op)
	return nil
}

// hangError reports a tree that grew too deep as a parse error at the
// current token.
func (parser *Parser) hangError(err error, message string) error {
	var capErr *kary.CapacityError
	if errors.As(err, &capErr) {
		return NewParseError(parser.peek(), "Expression is nested too deeply.")
	}
	return errors.Wrap(err, message)
}

// match consumes the next token if it has the expected type. At the end of
// the input only EOF matches and nothing is consumed.
func (parser *Parser) match(typ TokenType, message string) error {
	if parser.peek().Typ != typ {
		return NewParseError(parser.peek(), message)
	}
	parser.advance()
	return nil
}

func (parser *Parser) check(types ...TokenType) bool {
	for _, tt := range types {
		if parser.peek().Typ == tt {
			return true
		}
	}
	return false
}

func (parser *Parser) advance() *Token {
	tok := parser.peek()
	if !parser.isEOF() {
		parser.current++
	}
	return tok
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}
