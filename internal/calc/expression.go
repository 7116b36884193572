package calc

import (
	"fmt"
	"io"
	"strings"

	"github.com/ltungv/treecalc/internal/kary"
)

// Option configures how an Expression is built.
type Option func(*options)

type options struct {
	echo io.Writer
}

// WithEcho writes the recognized tokens, separated by spaces, to w before
// parsing starts.
func WithEcho(w io.Writer) Option {
	return func(o *options) {
		o.echo = w
	}
}

// Expression is a parsed arithmetic expression. Its tree is consumed by the
// first call to Calculate, which caches the result.
type Expression struct {
	source string
	tokens []*Token
	tree   *kary.Tree[string]
	result *float64
}

// NewExpression scans and parses source.
func NewExpression(source string, opts ...Option) (*Expression, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := NewScanner(source).Scan()
	if err != nil {
		return nil, err
	}
	if o.echo != nil {
		if _, err := fmt.Fprintln(o.echo, joinLexemes(tokens)); err != nil {
			return nil, err
		}
	}
	tree, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}
	return &Expression{source, tokens, tree, nil}, nil
}

// Source returns the text the expression was built from.
func (e *Expression) Source() string {
	return e.source
}

// Tokens returns the normalized tokens, EOF included.
func (e *Expression) Tokens() []*Token {
	return e.tokens
}

// Tree returns the expression tree. After Calculate it only holds the
// result.
func (e *Expression) Tree() *kary.Tree[string] {
	return e.tree
}

// Calculate folds the expression tree into its value. Division by zero is
// not an error, it yields an infinity or NaN.
func (e *Expression) Calculate() (float64, error) {
	if e.result != nil {
		return *e.result, nil
	}
	result, err := NewEvaluator(e.tree).Evaluate()
	if err != nil {
		return 0, err
	}
	e.result = &result
	return result, nil
}

func joinLexemes(tokens []*Token) string {
	lexemes := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Typ != EOF {
			lexemes = append(lexemes, tok.Lexeme)
		}
	}
	return strings.Join(lexemes, " ")
}
