package main

import (
	"fmt"
	"os"

	"github.com/ltungv/treecalc/internal/kary"
)

// Builds two small binary trees, hangs the second one under a leaf of the
// first, then draws the result and lists its post-order walk.
func main() {
	tree1 := kary.New[int](2)
	for i := 0; i < 5; i++ {
		must(tree1.Set(i, i+1))
	}

	tree2 := kary.New[int](2)
	for i := 0; i < 3; i++ {
		must(tree2.Set(i, -i))
	}

	if err := tree1.Hang(tree2, 5, 0); err != nil {
		exit(err)
	}
	if err := tree1.Fprint(os.Stdout); err != nil {
		exit(err)
	}
	fmt.Println()

	err := tree1.PostorderTraversal(0, func(pos int, value int) error {
		_, err := fmt.Printf("[%d]=%d\n", pos, value)
		return err
	})
	if err != nil {
		exit(err)
	}
}

func must(_ int, _ bool, err error) {
	if err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
