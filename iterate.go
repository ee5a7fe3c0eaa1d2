package arbor

import "iter"

// Visit calls action for every payload in order: first the left subtree, then
// the node itself, then the right subtree. The sequence of payloads is sorted
// by the tree's comparison, with equal payloads in insertion order.
//
// Visit does not modify the tree. It recurses once per tree level; see Walk
// for a variant with bounded stack growth.
func (t *Tree[T]) Visit(action func(payload T)) {
	if t.IsEmpty() || action == nil {
		return
	}
	t.root.visit(action)
}

func (n *Node[T]) visit(action func(T)) {
	if n.left != nil {
		n.left.visit(action)
	}
	action(n.payload)
	if n.right != nil {
		n.right.visit(action)
	}
}

// Walk calls action for every payload in the same order as Visit, without
// recursion. Iteration stops early if action returns false.
func (t *Tree[T]) Walk(action func(payload T) bool) {
	if t.IsEmpty() || action == nil {
		return
	}
	t.walkNodes(func(n *Node[T]) bool {
		return action(n.payload)
	})
}

// All returns an iterator over all payloads in order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Walk(yield)
	}
}

// Nodes returns an iterator over all nodes in order.
func (t *Tree[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if t.IsEmpty() {
			return
		}
		t.walkNodes(yield)
	}
}

// walkNodes is an in-order traversal with an explicit stack of pending
// ancestors.
func (t *Tree[T]) walkNodes(fn func(*Node[T]) bool) bool {
	stack := make([]*Node[T], 0, 16)
	current := t.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(current) {
			return false
		}
		current = current.right
	}
	return true
}
