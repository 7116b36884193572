package calc

import (
	"fmt"
	"strings"

	"github.com/ltungv/treecalc/internal/kary"
)

// Printer renders expression trees as text.
type Printer struct{}

// Print renders the subtree at the root in parenthesized prefix form, e.g.
// "(+ 1 (* 2 3))".
func (printer *Printer) Print(tree *kary.Tree[string]) string {
	var sb strings.Builder
	printer.print(&sb, tree, 0)
	return sb.String()
}

func (printer *Printer) print(sb *strings.Builder, tree *kary.Tree[string], pos int) {
	value, ok, _ := tree.Get(pos)
	if !ok {
		return
	}
	if !isOperator(value) {
		sb.WriteString(value)
		return
	}
	fmt.Fprintf(sb, "(%s", value)
	for j := 0; j < tree.Degree(); j++ {
		if _, ok, _ := tree.Get(tree.JthChild(pos, j)); ok {
			sb.WriteByte(' ')
			printer.print(sb, tree, tree.JthChild(pos, j))
		}
	}
	sb.WriteByte(')')
}

// Prefix renders the tree in Polish notation, e.g. "+ 1 * 2 3".
func (printer *Printer) Prefix(tree *kary.Tree[string]) (string, error) {
	values := make([]string, 0, tree.Size())
	err := tree.PreorderTraversal(0, func(pos int, value string) error {
		values = append(values, value)
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(values, " "), nil
}
