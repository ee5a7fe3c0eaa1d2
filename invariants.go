package arbor

import "fmt"

// Check validates structural tree invariants: every node is owned exactly
// once, every payload lies within the bounds given by its ancestors, and the
// node count matches Len.
//
// This checker is intended for tests and debugging; it costs O(n) time and
// memory.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports %d nodes", ErrSizeMismatch, t.size)
		}
		return nil
	}
	if t.compare == nil {
		return fmt.Errorf("%w: tree has no comparison", ErrIllegalArguments)
	}
	type frame struct {
		node   *Node[T]
		lower  *Node[T] // payload must compare >= lower.payload
		upper  *Node[T] // payload must compare <  upper.payload
		height int
	}
	seen := make(map[*Node[T]]bool, t.size)
	stack := []frame{{node: t.root, height: 1}}
	count := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		if seen[n] {
			return fmt.Errorf("%w: node %v at depth %d", ErrCycle, n, f.height)
		}
		seen[n] = true
		count++
		if n.dismantled {
			return fmt.Errorf("%w: at depth %d", ErrDismantled, f.height)
		}
		if f.lower != nil && t.compare(n.payload, f.lower.payload) < 0 {
			return fmt.Errorf("%w: %v is less than ancestor %v but in its right subtree",
				ErrOrderViolated, n.payload, f.lower.payload)
		}
		if f.upper != nil && t.compare(n.payload, f.upper.payload) >= 0 {
			return fmt.Errorf("%w: %v is not less than ancestor %v but in its left subtree",
				ErrOrderViolated, n.payload, f.upper.payload)
		}
		if n.left != nil {
			stack = append(stack, frame{node: n.left, lower: f.lower, upper: n, height: f.height + 1})
		}
		if n.right != nil {
			stack = append(stack, frame{node: n.right, lower: n, upper: f.upper, height: f.height + 1})
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, tree reports %d", ErrSizeMismatch, count, t.size)
	}
	return nil
}
