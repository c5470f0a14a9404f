package ravl

// Tree is a rank-augmented AVL tree over int64 keys.
//
// A tree created by
//
//	ravl.Tree[string]{}
//
// is a valid object and behaves like an empty tree. Methods that take or
// return positions ("ranks") use 1-based positions in the sorted key
// sequence.
//
// Due to the cached subtree sizes, trees have performance characteristics
// differing from a sorted slice:
//
//	Operation     |   Tree          |  sorted slice
//	--------------+-----------------+--------------
//	Search        |   O(log n)      |   O(log n)
//	Insert        |   O(log n)      |   O(n)
//	Delete        |   O(log n)      |   O(n)
//	Rank          |   O(log n)      |   O(log n)
//	FindRank      |   O(log n)      |   O(1)
//
// For use cases with many mutations interleaved with order-statistics
// queries, trees have stable performance and space characteristics.
//
// Trees are not safe for concurrent use.
type Tree[V any] struct {
	root *node[V]
}

// New creates an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.sz()
}

// Height returns the tree height, where 0 means empty and 1 a single node.
func (t *Tree[V]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.ht()
}

// Search returns the value stored under key.
func (t *Tree[V]) Search(key int64) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	n := searchNode(t.root, key)
	if n == nil {
		return zero, false
	}
	return n.val, true
}

// Contains reports whether key is present in the tree.
func (t *Tree[V]) Contains(key int64) bool {
	return t != nil && searchNode(t.root, key) != nil
}

// Insert stores val under key and reports whether a new entry was created.
//
// Duplicate keys are rejected silently: inserting a key that is already
// present leaves the tree unchanged and returns false. Callers that need
// overwrite semantics delete first, then insert.
func (t *Tree[V]) Insert(key int64, val V) bool {
	root, created := insertNode(t.root, key, val)
	t.root = root
	return created
}

// Delete removes the entry stored under key and reports whether an entry was
// removed. Deleting an absent key is a no-op.
func (t *Tree[V]) Delete(key int64) bool {
	root, removed := deleteNode(t.root, key)
	t.root = root
	return removed
}

// Rank returns the 1-based position of key in the sorted sequence of all
// keys in the tree; ok is false if key is not present.
func (t *Tree[V]) Rank(key int64) (r int, ok bool) {
	if t == nil {
		return 0, false
	}
	return rankNode(t.root, key)
}

// FindRank returns the key and value at 1-based rank r. The last return
// value is false if r < 1 or r > Len(). FindRank is the inverse of Rank for
// every key present in the tree.
func (t *Tree[V]) FindRank(r int) (int64, V, bool) {
	var zero V
	if t == nil {
		return 0, zero, false
	}
	n := findRankNode(t.root, r)
	if n == nil {
		return 0, zero, false
	}
	return n.key, n.val, true
}

// Min returns the smallest key and its value; ok is false for an empty tree.
func (t *Tree[V]) Min() (int64, V, bool) {
	return t.FindRank(1)
}

// Max returns the largest key and its value; ok is false for an empty tree.
func (t *Tree[V]) Max() (int64, V, bool) {
	return t.FindRank(t.Len())
}

// Release tears down the whole tree. Every node is visited exactly once in
// post-order; child links and payload references are cleared so that no
// reference into caller-owned payloads survives teardown. The tree is empty
// and reusable afterwards.
func (t *Tree[V]) Release() {
	if t == nil || t.root == nil {
		return
	}
	count := releaseNode(t.root)
	t.root = nil
	tracer().Debugf("ravl: released %d nodes", count)
}

// searchNode descends from n to the node holding key, or nil if absent.
// No side effects.
func searchNode[V any](n *node[V], key int64) *node[V] {
	if n == nil || n.key == key {
		return n
	}
	if key > n.key {
		return searchNode(n.right, key)
	}
	return searchNode(n.left, key)
}

func releaseNode[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	count := releaseNode(n.left) + releaseNode(n.right) + 1
	n.scrub()
	return count
}
