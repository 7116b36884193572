// Package kary implements a complete k-ary tree stored implicitly in a flat,
// growable slice. Node i keeps its children at degree*i+1 .. degree*i+degree
// and its parent at (i-1)/degree, so no links are stored.
//
// The backing slice grows one level at a time. Reading a slot in the level
// right after the last grown one is legal and yields an absent value, which is
// what lets callers probe the children of any occupied node without checking
// bounds first.
package kary

import "fmt"

// MaxCap bounds the number of slots a tree may grow to. A degenerate tree
// such as a long left spine doubles its slots with every level.
const MaxCap = 1 << 20

// Visitor is called for every occupied node of a traversal. The visitor is
// allowed to mutate the tree it is walking: the current node and anything
// already visited may be set or cleared.
type Visitor[E any] func(pos int, value E) error

type slot[E any] struct {
	value E
	ok    bool
}

// Tree is an implicit k-ary tree. The zero value is not usable, see New.
type Tree[E any] struct {
	degree int
	// number of occupied slots
	size int
	// number of grown levels
	height int
	// number of slots in the next, not yet grown, level
	lastLevelSize int
	slots         []slot[E]
}

// New creates an empty tree whose nodes have at most degree children. Only
// the root level is allocated.
func New[E any](degree int) *Tree[E] {
	if degree < 1 {
		panic(fmt.Sprintf("kary: invalid degree %d", degree))
	}
	t := new(Tree[E])
	t.degree = degree
	t.height = 1
	t.lastLevelSize = degree
	t.slots = make([]slot[E], 1)
	return t
}

// Degree returns the maximum number of children of a node.
func (t *Tree[E]) Degree() int {
	return t.degree
}

// Size returns the number of occupied nodes.
func (t *Tree[E]) Size() int {
	return t.size
}

// IsEmpty reports whether no node is occupied.
func (t *Tree[E]) IsEmpty() bool {
	return t.size == 0
}

// Height returns the number of grown levels.
func (t *Tree[E]) Height() int {
	return t.height
}

// Cap returns the number of slots in the grown levels.
func (t *Tree[E]) Cap() int {
	return len(t.slots)
}

// Parent returns the index of the parent of node i. The result is
// meaningless for the root.
func (t *Tree[E]) Parent(i int) int {
	return (i - 1) / t.degree
}

// JthChild returns the index of the j-th child of node i.
func (t *Tree[E]) JthChild(i, j int) int {
	return t.degree*i + j + 1
}

// Get returns the value stored at i and whether the slot is occupied.
func (t *Tree[E]) Get(i int) (E, bool, error) {
	var zero E
	if !t.inBounds(i) {
		return zero, false, &IndexError{i, len(t.slots)}
	}
	if i >= len(t.slots) {
		return zero, false, nil
	}
	s := t.slots[i]
	return s.value, s.ok, nil
}

// Set stores value at i and returns the previous value. Writing into the next
// level grows the tree first, which fails with a CapacityError once the tree
// would outgrow MaxCap. Every node but the root needs an occupied parent.
func (t *Tree[E]) Set(i int, value E) (E, bool, error) {
	var zero E
	if !t.inBounds(i) {
		return zero, false, &IndexError{i, len(t.slots)}
	}
	if i >= len(t.slots) {
		if err := t.addLevel(); err != nil {
			return zero, false, err
		}
	}
	if i != 0 && !t.slots[t.Parent(i)].ok {
		return zero, false, &OrphanError{i, "parent is empty"}
	}
	prev := t.store(i, slot[E]{value, true})
	return prev.value, prev.ok, nil
}

// Clear empties slot i and returns the value it held. A node that still has
// children cannot be cleared. Clearing a slot of the next level is a no-op.
func (t *Tree[E]) Clear(i int) (E, bool, error) {
	var zero E
	if !t.inBounds(i) {
		return zero, false, &IndexError{i, len(t.slots)}
	}
	if i >= len(t.slots) {
		return zero, false, nil
	}
	for j := 0; j < t.degree; j++ {
		if c := t.JthChild(i, j); c < len(t.slots) && t.slots[c].ok {
			return zero, false, &OrphanError{i, "node still has children"}
		}
	}
	prev := t.store(i, slot[E]{})
	return prev.value, prev.ok, nil
}

// store is the only place that writes a slot and keeps size in sync.
func (t *Tree[E]) store(i int, s slot[E]) slot[E] {
	prev := t.slots[i]
	switch {
	case !prev.ok && s.ok:
		t.size++
	case prev.ok && !s.ok:
		t.size--
	}
	t.slots[i] = s
	return prev
}

func (t *Tree[E]) inBounds(i int) bool {
	return i >= 0 && i < len(t.slots)+t.lastLevelSize
}

// addLevel grows the backing slice by the next level, keeping every stored
// element in place.
func (t *Tree[E]) addLevel() error {
	if t.lastLevelSize > MaxCap-len(t.slots) {
		return &CapacityError{Height: t.height + 1, Limit: MaxCap}
	}
	slots := make([]slot[E], len(t.slots)+t.lastLevelSize)
	copy(slots, t.slots)
	t.slots = slots
	t.height++
	// saturate so that the size of far levels cannot overflow
	if t.lastLevelSize > MaxCap/t.degree {
		t.lastLevelSize = MaxCap + 1
	} else {
		t.lastLevelSize *= t.degree
	}
	return nil
}

// Hang copies the subtree of src rooted at from into this tree, with the
// root of the copy at target. Children are copied recursively into the
// matching children of target. src may be t itself.
func (t *Tree[E]) Hang(src *Tree[E], target, from int) error {
	if src.degree != t.degree {
		return &DegreeError{Want: t.degree, Got: src.degree}
	}
	if src == t {
		src = t.Clone()
	}
	return t.hang(src, target, from)
}

func (t *Tree[E]) hang(src *Tree[E], target, from int) error {
	value, ok, err := src.Get(from)
	if err != nil {
		return err
	}
	if !ok {
		_, _, err := t.Clear(target)
		return err
	}
	if _, _, err := t.Set(target, value); err != nil {
		return err
	}
	for j := 0; j < t.degree; j++ {
		_, ok, err := src.Get(src.JthChild(from, j))
		if err != nil {
			return err
		}
		if ok {
			if err := t.hang(src, t.JthChild(target, j), src.JthChild(from, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the tree.
func (t *Tree[E]) Clone() *Tree[E] {
	c := *t
	c.slots = make([]slot[E], len(t.slots))
	copy(c.slots, t.slots)
	return &c
}

// PreorderTraversal visits the subtree rooted at i, every node before its
// children. Children are read after the visitor returns, so nodes it adds or
// clears below the current one are taken into account.
func (t *Tree[E]) PreorderTraversal(i int, visit Visitor[E]) error {
	value, ok, err := t.Get(i)
	if err != nil || !ok {
		return err
	}
	if err := visit(i, value); err != nil {
		return err
	}
	for j := 0; j < t.degree; j++ {
		if err := t.PreorderTraversal(t.JthChild(i, j), visit); err != nil {
			return err
		}
	}
	return nil
}

// PostorderTraversal visits the subtree rooted at i, every node after its
// children. The value handed to the visitor is read after the children were
// visited.
func (t *Tree[E]) PostorderTraversal(i int, visit Visitor[E]) error {
	if _, ok, err := t.Get(i); err != nil || !ok {
		return err
	}
	for j := 0; j < t.degree; j++ {
		if err := t.PostorderTraversal(t.JthChild(i, j), visit); err != nil {
			return err
		}
	}
	value, ok, err := t.Get(i)
	if err != nil || !ok {
		return err
	}
	return visit(i, value)
}
