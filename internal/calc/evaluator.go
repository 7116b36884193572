package calc

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/ltungv/treecalc/internal/kary"
)

// Evaluator folds an expression tree into a single number. Folding is
// destructive: every operator node is replaced by the value it computes and
// its operands are removed, so only the root is left once it is done.
type Evaluator struct {
	tree *kary.Tree[string]
}

func NewEvaluator(tree *kary.Tree[string]) *Evaluator {
	return &Evaluator{tree}
}

// Evaluate walks the tree in post-order so both operands of a node are plain
// numbers by the time the node itself is visited.
func (ev *Evaluator) Evaluate() (float64, error) {
	if err := ev.tree.PostorderTraversal(0, ev.visit); err != nil {
		return 0, err
	}
	root, ok, err := ev.tree.Get(0)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, NewEvalError(0, "", "Empty expression.")
	}
	result, err := strconv.ParseFloat(root, 64)
	if err != nil {
		return 0, NewEvalError(0, root, "Result must be a number.")
	}
	return result, nil
}

func (ev *Evaluator) visit(pos int, value string) error {
	lhs, okLeft, err := ev.tree.Get(ev.tree.JthChild(pos, 0))
	if err != nil {
		return err
	}
	rhs, okRight, err := ev.tree.Get(ev.tree.JthChild(pos, 1))
	if err != nil {
		return err
	}
	// leaves are left as they are
	if !okLeft && !okRight {
		return nil
	}
	if !okLeft || !okRight {
		return NewEvalError(pos, value, "Operator needs two operands.")
	}

	leftNum, errLeft := strconv.ParseFloat(lhs, 64)
	rightNum, errRight := strconv.ParseFloat(rhs, 64)
	if errLeft != nil || errRight != nil {
		return NewEvalError(pos, value, "Operands must be numbers.")
	}

	var result float64
	switch TokenType(value) {
	case PLUS:
		result = leftNum + rightNum
	case MINUS:
		result = leftNum - rightNum
	case STAR:
		result = leftNum * rightNum
	case SLASH:
		result = leftNum / rightNum
	default:
		return NewEvalError(pos, value, "Unknown operator.")
	}

	for j := 0; j < 2; j++ {
		if _, _, err := ev.tree.Clear(ev.tree.JthChild(pos, j)); err != nil {
			return errors.Wrapf(err, "folding node %d", pos)
		}
	}
	if _, _, err := ev.tree.Set(pos, stringify(result)); err != nil {
		return errors.Wrapf(err, "folding node %d", pos)
	}
	return nil
}

// stringify formats a number so that parsing it back yields the same value.
func stringify(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
