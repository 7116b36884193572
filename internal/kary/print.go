package kary

import (
	"fmt"
	"io"
	"strings"
)

// Fprint draws the tree on its side, one node per line, indented by depth.
// The first half of a node's children is drawn above it and the rest below,
// so a binary tree reads left to right from top to bottom.
func (t *Tree[E]) Fprint(w io.Writer) error {
	return t.fprint(w, 0, 0)
}

// String renders the tree with Fprint.
func (t *Tree[E]) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}

func (t *Tree[E]) fprint(w io.Writer, i, depth int) error {
	value, ok, err := t.Get(i)
	if err != nil || !ok {
		return err
	}
	half := (t.degree + 1) / 2
	for j := 0; j < half; j++ {
		if err := t.fprint(w, t.JthChild(i, j), depth+1); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat("   ", depth), value); err != nil {
		return err
	}
	for j := half; j < t.degree; j++ {
		if err := t.fprint(w, t.JthChild(i, j), depth+1); err != nil {
			return err
		}
	}
	return nil
}
