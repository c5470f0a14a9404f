package ravl

import "iter"

// Each visits all entries in ascending key order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[V]) Each(fn func(key int64, val V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	eachNode(t.root, fn)
}

func eachNode[V any](n *node[V], fn func(key int64, val V) bool) bool {
	if n == nil {
		return true
	}
	if !eachNode(n.left, fn) {
		return false
	}
	if !fn(n.key, n.val) {
		return false
	}
	return eachNode(n.right, fn)
}

// All returns an iterator over all entries in ascending key order.
func (t *Tree[V]) All() iter.Seq2[int64, V] {
	return func(yield func(int64, V) bool) {
		t.Each(yield)
	}
}
