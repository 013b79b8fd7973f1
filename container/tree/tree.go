// Package tree contains the implementation of a binary search tree holding a
// set of unique ordered values.
//
// Trees are built in a height-balanced shape, but point inserts and deletes do
// not rotate nodes: a tree which received many inserts at one end may become
// unbalanced, which programs can detect with IsBalanced and repair with
// Rebalance.
//
// The types in this package are not safe to use concurrently from multiple
// goroutines.
package tree

import (
	"errors"

	"github.com/segmentio/bst/compare"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ErrNoVisitor is returned by the traversal methods when they are called with
// a nil visitor function.
var ErrNoVisitor = errors.New("tree traversal requires a visitor function")

// Node is a single value stored in a tree.
//
// The methods of Node are safe to call on a nil pointer, which is how the
// absence of a child or of a search result is represented.
type Node[E constraints.Ordered] struct {
	left  *Node[E]
	right *Node[E]
	value E
}

// Value returns the value held by n, or the zero-value if n is nil.
func (n *Node[E]) Value() (value E) {
	if n != nil {
		value = n.value
	}
	return value
}

// Left returns the root of the subtree holding values lower than n's.
func (n *Node[E]) Left() *Node[E] {
	if n != nil {
		return n.left
	}
	return nil
}

// Right returns the root of the subtree holding values greater than n's.
func (n *Node[E]) Right() *Node[E] {
	if n != nil {
		return n.right
	}
	return nil
}

// Tree is a binary search tree containing unique elements of type E.
//
// The zero-value is a valid empty tree.
type Tree[E constraints.Ordered] struct {
	root *Node[E]
	len  int
}

// New constructs a tree holding the values passed as arguments. Duplicate
// values are discarded.
func New[E constraints.Ordered](values ...E) *Tree[E] {
	t := new(Tree[E])
	t.Init(values...)
	return t
}

// Init (re-)initializes the tree to hold the given values in a balanced shape.
// Duplicate values are discarded, and values are not required to be sorted.
//
// Complexity: O(n log n)
func (t *Tree[E]) Init(values ...E) {
	sorted := sortedUnique(values)
	t.root = build(sorted, 0, len(sorted)-1)
	t.len = len(sorted)
}

// Build returns the root of a balanced tree holding the values passed as
// argument, without duplicates.
//
// The middle element of each sorted range becomes the root of the subtree
// built from that range, rounding down for even lengths, so the same set of
// values always produces the same shape.
func Build[E constraints.Ordered](values []E) *Node[E] {
	sorted := sortedUnique(values)
	return build(sorted, 0, len(sorted)-1)
}

func sortedUnique[E constraints.Ordered](values []E) []E {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

func build[E constraints.Ordered](sorted []E, lo, hi int) *Node[E] {
	if lo > hi {
		return nil
	}
	mid := (lo + hi) / 2
	return &Node[E]{
		left:  build(sorted, lo, mid-1),
		right: build(sorted, mid+1, hi),
		value: sorted[mid],
	}
}

// Len returns the number of values in the tree.
func (t *Tree[E]) Len() int { return t.len }

// Root returns the root node of the tree, or nil if the tree is empty.
func (t *Tree[E]) Root() *Node[E] { return t.root }

// Insert inserts value in the tree. Values which already exist in the tree
// are ignored. The tree is not rebalanced.
//
// The method returns false when the tree was empty and value became its root,
// and true in every other case.
//
// Complexity: O(h) where h is the height of the tree
func (t *Tree[E]) Insert(value E) (hadRoot bool) {
	if t.root == nil {
		t.root = &Node[E]{value: value}
		t.len = 1
		return false
	}
	for n := t.root; ; {
		switch cmp := compare.Function(value, n.value); {
		case cmp < 0:
			if n.left == nil {
				n.left = &Node[E]{value: value}
				t.len++
				return true
			}
			n = n.left
		case cmp > 0:
			if n.right == nil {
				n.right = &Node[E]{value: value}
				t.len++
				return true
			}
			n = n.right
		default:
			return true
		}
	}
}

// Delete removes value from the tree. When the node holding value has two
// children, the value of its in-order successor is moved into it and the
// successor is removed from the right subtree instead. The tree is not
// rebalanced.
//
// The method returns whether a value was removed; deleting from an empty tree
// or deleting a value that does not exist leaves the tree unmodified.
//
// Complexity: O(h) where h is the height of the tree
func (t *Tree[E]) Delete(value E) (deleted bool) {
	t.root, deleted = remove(t.root, value)
	if deleted {
		t.len--
	}
	return deleted
}

func remove[E constraints.Ordered](n *Node[E], value E) (*Node[E], bool) {
	if n == nil {
		return nil, false
	}
	deleted := false
	switch cmp := compare.Function(value, n.value); {
	case cmp < 0:
		n.left, deleted = remove(n.left, value)
	case cmp > 0:
		n.right, deleted = remove(n.right, value)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := leftmost(n.right)
		n.value = succ.value
		n.right, _ = remove(n.right, succ.value)
		deleted = true
	}
	return n, deleted
}

// Find returns the node holding value, or nil if value is not in the tree.
//
// Complexity: O(h) where h is the height of the tree
func (t *Tree[E]) Find(value E) *Node[E] {
	for n := t.root; n != nil; {
		switch cmp := compare.Function(value, n.value); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains returns true if value exists in the tree.
func (t *Tree[E]) Contains(value E) bool { return t.Find(value) != nil }

// Min returns the smallest value in the tree.
func (t *Tree[E]) Min() (value E, found bool) {
	if t.root != nil {
		value, found = leftmost(t.root).value, true
	}
	return value, found
}

// Max returns the largest value in the tree.
func (t *Tree[E]) Max() (value E, found bool) {
	if t.root != nil {
		value, found = rightmost(t.root).value, true
	}
	return value, found
}

func leftmost[E constraints.Ordered](n *Node[E]) *Node[E] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[E constraints.Ordered](n *Node[E]) *Node[E] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Height returns the number of edges on the longest path from n down to a
// leaf. The height of a nil subtree is -1, so a leaf has a height of zero.
//
// Complexity: O(n)
func Height[E constraints.Ordered](n *Node[E]) int {
	if n == nil {
		return -1
	}
	lh, rh := Height(n.left), Height(n.right)
	if lh < rh {
		lh = rh
	}
	return lh + 1
}

// Height returns the height of the tree root, or -1 if the tree is empty.
func (t *Tree[E]) Height() int { return Height(t.root) }

// Depth returns the number of edges from the root of the tree to the node
// holding the same value as n, or -1 if n is nil or its value is not in the
// tree.
//
// The node is located by value, so n does not need to have been obtained from
// this tree.
//
// Complexity: O(h) where h is the height of the tree
func (t *Tree[E]) Depth(n *Node[E]) int {
	if n == nil {
		return -1
	}
	depth := 0
	for x := t.root; x != nil; depth++ {
		switch cmp := compare.Function(n.value, x.value); {
		case cmp < 0:
			x = x.left
		case cmp > 0:
			x = x.right
		default:
			return depth
		}
	}
	return -1
}

// IsBalanced returns true if, for every node of the tree, the heights of the
// left and right subtrees differ by at most one.
//
// Complexity: O(n)
func (t *Tree[E]) IsBalanced() bool {
	ok, _ := balanced(t.root)
	return ok
}

// balanced reports whether n is balanced, and its height when it is. The
// height is meaningless once a subtree was found to be unbalanced.
func balanced[E constraints.Ordered](n *Node[E]) (ok bool, height int) {
	if n == nil {
		return true, -1
	}
	ok, lh := balanced(n.left)
	if !ok {
		return false, 0
	}
	ok, rh := balanced(n.right)
	if !ok {
		return false, 0
	}
	if diff := lh - rh; diff < -1 || diff > 1 {
		return false, 0
	}
	if lh < rh {
		lh = rh
	}
	return true, lh + 1
}

// Rebalance rebuilds the tree in a balanced shape holding the same values.
//
// Complexity: O(n)
func (t *Tree[E]) Rebalance() {
	if t.root == nil {
		return
	}
	sorted := t.Values()
	t.root = build(sorted, 0, len(sorted)-1)
}
