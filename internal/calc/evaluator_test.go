package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTree(t *testing.T) {
	testCases := []struct {
		nodes []node
		eval  float64
	}{
		{[]node{{0, "3.14"}}, 3.14},
		{[]node{{0, "-"}, {1, "8"}, {2, "3"}}, 5},
		{[]node{{0, "/"}, {1, "3"}, {2, "8"}}, 0.375},
		// (8 - 2) - 1
		{[]node{{0, "-"}, {1, "-"}, {2, "1"}, {3, "8"}, {4, "2"}}, 5},
		// 8 - (2 - 1)
		{[]node{{0, "-"}, {1, "8"}, {2, "-"}, {5, "2"}, {6, "1"}}, 7},
		// (1 + 2) * (3 + 4)
		{[]node{{0, "*"}, {1, "+"}, {2, "+"}, {3, "1"}, {4, "2"}, {5, "3"}, {6, "4"}}, 21},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tree := newTree(t, tc.nodes...)
		result, err := NewEvaluator(tree).Evaluate()
		assert.NoError(err)
		assert.Equal(tc.eval, result)
		assert.Equal(1, tree.Size())
	}
}

func TestEvaluateFoldsInPlace(t *testing.T) {
	tree := newTree(t, node{0, "+"}, node{1, "*"}, node{2, "1"}, node{3, "2"}, node{4, "0.5"})
	_, err := NewEvaluator(tree).Evaluate()
	require.NoError(t, err)

	assert.Equal(t, []node{{0, "2"}}, nodesOf(t, tree))
}

func TestEvaluateErrors(t *testing.T) {
	testCases := []struct {
		nodes []node
		msg   string
	}{
		{[]node{{0, "+"}, {1, "1"}}, "[node 0] Error at '+': Operator needs two operands."},
		{[]node{{0, "%"}, {1, "1"}, {2, "2"}}, "[node 0] Error at '%': Unknown operator."},
		{[]node{{0, "+"}, {1, "x"}, {2, "2"}}, "[node 0] Error at '+': Operands must be numbers."},
		{[]node{{0, "+"}}, "[node 0] Error at '+': Result must be a number."},
		{nil, "[node 0] Error at '': Empty expression."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tree := newTree(t, tc.nodes...)
		_, err := NewEvaluator(tree).Evaluate()
		var evalErr *EvalError
		if assert.True(errors.As(err, &evalErr)) {
			assert.Equal(tc.msg, err.Error())
		}
	}
}
