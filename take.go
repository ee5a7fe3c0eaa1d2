package arbor

// Take dismantles the tree and moves the root payload out of it. Afterwards
// the tree is empty (but keeps its comparison, so it may be re-used for
// insertion). Nodes obtained from the tree before are dismantled and must not
// be used any more.
//
// ok is false if the tree has been empty.
func (t *Tree[T]) Take() (payload T, ok bool) {
	if t.IsEmpty() {
		return payload, false
	}
	root, size := t.root, t.size
	payload = root.payload
	t.root, t.size = nil, 0
	dismantle(root)
	tracer().Debugf("took root payload, %d nodes dismantled", size)
	return payload, true
}

// Drain dismantles the tree, moving all payloads out in order. Afterwards the
// tree is empty. The result is never nil.
func (t *Tree[T]) Drain() []T {
	if t.IsEmpty() {
		return []T{}
	}
	out := make([]T, 0, t.size)
	t.walkNodes(func(n *Node[T]) bool {
		out = append(out, n.payload)
		return true
	})
	root := t.root
	t.root, t.size = nil, 0
	dismantle(root)
	return out
}

// dismantle unlinks every node below (and including) n, clearing payloads.
func dismantle[T any](n *Node[T]) {
	var zero T
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.left != nil {
			stack = append(stack, top.left)
		}
		if top.right != nil {
			stack = append(stack, top.right)
		}
		top.left, top.right = nil, nil
		top.payload = zero
		top.dismantled = true
	}
}
