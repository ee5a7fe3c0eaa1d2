/*
Package arbor offers an ordered binary tree with exclusively owned nodes.

Trees

A Tree keeps its payloads in a plain (unbalanced) binary search tree. Every
node owns its two optional children; no node is ever referenced from two
places, so the structure cannot form cycles. Ordering is given by a three-way
comparison (see package order). Insertion routes a value left if it compares
less than a node's payload and right otherwise, i.e., ties go right. Equal
values are therefore visited in the order they have been inserted.

	tree := arbor.New("root")
	tree.Insert("one")
	tree.Insert("two")
	tree.Insert("four")
	tree.Visit(func(s string) {
	    fmt.Println(s)   // four, one, root, two
	})

There is no rebalancing. Inserting a strictly increasing (or decreasing)
sequence degenerates the tree to a list of depth n. The recursive operations
Insert and Visit then use O(n) call stack per call; this is an accepted
limitation. Clients expecting skewed input should use the iterative variants
InsertIterative, Walk and All, which produce identical results with bounded
native stack growth.

Ownership

Reading a payload and taking it out of the tree are distinct operations.
Node.Payload is a borrowing read, valid as long as the node is part of a
tree. Tree.Take and Tree.Drain dismantle the tree and move payloads out;
nodes obtained earlier become unusable and panic on access.

Concurrency

Trees are not synchronized. Clients sharing a tree between goroutines have to
guard the whole tree with a mutex of their own.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package arbor

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// ArborError is an error type for the arbor module
type ArborError string

func (e ArborError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ArborError("illegal arguments")

// ErrOrderViolated is flagged by Check if a payload is found in a subtree
// where it does not belong according to the tree's comparison.
const ErrOrderViolated = ArborError("tree order violated")

// ErrCycle is flagged by Check if a node is reachable by more than one path.
const ErrCycle = ArborError("node owned more than once")

// ErrSizeMismatch is flagged by Check if the node count differs from the
// tree's bookkeeping.
const ErrSizeMismatch = ArborError("tree size mismatch")

// ErrDismantled is flagged by Check if a dismantled node is still linked
// into a tree.
const ErrDismantled = ArborError("dismantled node in tree")

func assert(condition bool, msg string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("arbor: "+msg, args...))
	}
}
