package calc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltungv/treecalc/internal/kary"
)

func tokEOF(col int) *Token {
	return NewToken(EOF, "", nil, col)
}

func tokNum(lexeme string, literal float64, col int) *Token {
	return NewToken(NUMBER, lexeme, literal, col)
}

func tokNeg(col int) *Token {
	return NewToken(NEG, "-1", -1.0, col)
}

func tokOp(typ TokenType, col int) *Token {
	return NewToken(typ, string(typ), nil, col)
}

// node describes an expected tree slot.
type node struct {
	pos   int
	value string
}

// newTree builds a binary tree from nodes listed parents first.
func newTree(t *testing.T, nodes ...node) *kary.Tree[string] {
	t.Helper()
	tree := kary.New[string](2)
	for _, n := range nodes {
		_, _, err := tree.Set(n.pos, n.value)
		require.NoError(t, err)
	}
	return tree
}

// nodesOf lists the occupied slots of a tree in pre-order.
func nodesOf(t *testing.T, tree *kary.Tree[string]) []node {
	t.Helper()
	nodes := make([]node, 0)
	err := tree.PreorderTraversal(0, func(pos int, value string) error {
		nodes = append(nodes, node{pos, value})
		return nil
	})
	require.NoError(t, err)
	return nodes
}
