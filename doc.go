/*
Package ravl implements a rank-augmented AVL tree ("RAVL" tree).

A RAVL tree is a height-balanced binary search tree in which every node
additionally caches the size of its subtree. The height cache drives the
usual AVL rebalancing by rotations, while the size cache turns the tree into
an order-statistics structure: besides search, insert and delete, the tree
answers two positional queries in logarithmic time.

Rank(k) yields the 1-based position of key k in the sorted sequence of all
keys, and FindRank(r) is its inverse, selecting the entry at position r.
Both are simple guided descents over the cached subtree sizes and never
touch more nodes than the height of the tree.

Keys are signed 64-bit integers and must be unique; inserting a key that is
already present is a silent no-op. Values are an opaque payload type
parameter and are owned by their node until the node is deleted or the tree
is torn down with Release.

Trees are not safe for concurrent use. All operations are synchronous
recursive tree walks; callers sharing a tree across goroutines must provide
their own synchronization.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ravl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ravl'
func tracer() tracing.Trace {
	return tracing.Select("ravl")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
