package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/arbor/order"
)

// Node is a single element of a tree. It carries one payload and owns at most
// two children.
//
// Clients never create nodes directly; they get read-only access to the nodes
// of a tree through Tree.Root and Node.Left/Node.Right.
type Node[T any] struct {
	payload    T
	left       *Node[T] // every payload below left compares less than payload
	right      *Node[T] // every payload below right compares greater or equal
	dismantled bool
}

func newNode[T any](payload T) *Node[T] {
	return &Node[T]{payload: payload}
}

// Payload returns the payload of a node. It borrows from the node: calling
// Payload on a node which has been dismantled by Tree.Take or Tree.Drain
// panics.
func (n *Node[T]) Payload() T {
	assert(n != nil, "payload of nil node")
	assert(!n.dismantled, "payload of dismantled node")
	return n.payload
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	assert(!n.dismantled, "left child of dismantled node")
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	assert(!n.dismantled, "right child of dismantled node")
	return n.right
}

// IsLeaf is true if n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.dismantled {
		return "<dismantled>"
	}
	return fmt.Sprint(n.payload)
}

// --- Tree ------------------------------------------------------------------

// Tree is an ordered binary tree. It holds the root node and the comparison
// which decides where payloads go.
//
// A tree created by
//
//	&Tree[T]{}
//
// is a valid empty tree, but it has no comparison; inserting into it is a
// programming error. Use New or NewFunc instead.
//
//	Operation       |  balanced       |  degenerated
//	----------------+-----------------+-------------
//	Insert          |   O(log n)      |   O(n)
//	Visit/Walk/All  |   O(n)          |   O(n)
//	Height          |   O(n)          |   O(n)
//	Len             |   O(1)          |   O(1)
type Tree[T any] struct {
	root    *Node[T]
	compare order.Func[T]
	size    int
}

// New creates a tree holding a single node with payload, ordered by the
// natural order of T.
func New[T cmp.Ordered](payload T) *Tree[T] {
	return NewFunc(payload, order.Natural[T]())
}

// NewFunc creates a tree holding a single node with payload, ordered by
// compare. compare must be a total order; it must not be nil.
func NewFunc[T any](payload T, compare order.Func[T]) *Tree[T] {
	t := Empty(compare)
	t.root = newNode(payload)
	t.size = 1
	return t
}

// Empty creates a tree without any nodes, ordered by compare.
func Empty[T any](compare order.Func[T]) *Tree[T] {
	assert(compare != nil, "tree needs a comparison")
	return &Tree[T]{compare: compare}
}

// Root returns the root node of t, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of payloads in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path,
// 0 for an empty tree.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	height := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Insert adds data to the tree. If data compares less than a node's payload,
// it goes to the node's left subtree, otherwise (including equality) to the
// right one. A new leaf is created where the subtree is missing. Insert never
// rejects a value and never rebalances.
//
// Insert recurses once per level of the tree. For heavily skewed trees use
// InsertIterative.
func (t *Tree[T]) Insert(data T) {
	assert(t != nil, "insert into nil tree")
	assert(t.compare != nil, "tree needs a comparison")
	if t.root == nil {
		t.root = newNode(data)
	} else {
		t.root.insert(data, t.compare)
	}
	t.size++
}

func (n *Node[T]) insert(data T, compare order.Func[T]) {
	if compare(data, n.payload) < 0 {
		if n.left == nil {
			n.left = newNode(data)
			return
		}
		n.left.insert(data, compare)
		return
	}
	if n.right == nil {
		n.right = newNode(data)
		return
	}
	n.right.insert(data, compare)
}

// InsertIterative adds data to the tree with the same policy as Insert,
// using constant stack space.
func (t *Tree[T]) InsertIterative(data T) {
	assert(t != nil, "insert into nil tree")
	assert(t.compare != nil, "tree needs a comparison")
	slot := &t.root
	for *slot != nil {
		if t.compare(data, (*slot).payload) < 0 {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	*slot = newNode(data)
	t.size++
}

// String returns the payloads of t in order, formatted like a slice.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	t.Walk(func(payload T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, payload)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
