package tree

import "golang.org/x/exp/constraints"

// Visitor is the type of functions called on each node by the tree traversal
// methods. Visitors must not modify the tree they are traversing.
type Visitor[E constraints.Ordered] func(*Node[E])

// LevelOrder calls f for each node of the tree, breadth first, visiting the
// nodes of each level from left to right.
//
// The method returns ErrNoVisitor if f is nil.
func (t *Tree[E]) LevelOrder(f Visitor[E]) error {
	if f == nil {
		return ErrNoVisitor
	}
	if t.root == nil {
		return nil
	}
	queue := make([]*Node[E], 0, t.len)
	queue = append(queue, t.root)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		f(n)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return nil
}

// PreOrder calls f for each node of the tree, visiting a node before its left
// subtree, then its right subtree.
//
// The method returns ErrNoVisitor if f is nil.
func (t *Tree[E]) PreOrder(f Visitor[E]) error {
	if f == nil {
		return ErrNoVisitor
	}
	stack := make([]*Node[E], 0, 32)
	if t.root != nil {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(n)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return nil
}

// InOrder calls f for each node of the tree, visiting a node after its left
// subtree and before its right subtree. Nodes are therefore presented in
// ascending order of their values.
//
// The method returns ErrNoVisitor if f is nil.
func (t *Tree[E]) InOrder(f Visitor[E]) error {
	if f == nil {
		return ErrNoVisitor
	}
	walk(t.root, func(n *Node[E]) bool { f(n); return true })
	return nil
}

// PostOrder calls f for each node of the tree, visiting a node after both its
// left and right subtrees.
//
// The method returns ErrNoVisitor if f is nil.
func (t *Tree[E]) PostOrder(f Visitor[E]) error {
	if f == nil {
		return ErrNoVisitor
	}
	stack := make([]*Node[E], 0, 32)
	last := (*Node[E])(nil)
	for n := t.root; n != nil || len(stack) > 0; {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		f(top)
		last = top
	}
	return nil
}

// Range calls f for each value in the tree, in ascending order. If f returns
// false, the iteration is stopped.
func (t *Tree[E]) Range(f func(E) bool) {
	walk(t.root, func(n *Node[E]) bool { return f(n.value) })
}

// Values returns the values of the tree in ascending order.
func (t *Tree[E]) Values() []E {
	values := make([]E, 0, t.len)
	t.Range(func(value E) bool {
		values = append(values, value)
		return true
	})
	return values
}

// walk visits the subtree rooted at n in order, using an explicit stack so
// that skewed trees do not grow the goroutine stack with their height.
func walk[E constraints.Ordered](n *Node[E], call func(*Node[E]) bool) bool {
	stack := make([]*Node[E], 0, 32)
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !call(n) {
			return false
		}
		n = n.right
	}
	return true
}
