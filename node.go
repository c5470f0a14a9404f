package ravl

// node is a single key/value entry together with the subtree rooted at it.
//
// height and size are cached summaries of the subtree, recomputed bottom-up
// (children before parent) after every structural change. An absent subtree
// is a nil *node and has height 0 and size 0 by convention.
//
// Ownership is strictly hierarchical: a node owns its two children, and no
// shared or back references into the tree exist.
type node[V any] struct {
	key    int64
	val    V
	height int
	size   int
	left   *node[V]
	right  *node[V]
}

// newNode creates a leaf node with height and size 1.
func newNode[V any](key int64, val V) *node[V] {
	return &node[V]{key: key, val: val, height: 1, size: 1}
}

// ht returns the cached subtree height; 0 for an absent subtree.
func (n *node[V]) ht() int {
	if n == nil {
		return 0
	}
	return n.height
}

// sz returns the cached subtree size; 0 for an absent subtree.
func (n *node[V]) sz() int {
	if n == nil {
		return 0
	}
	return n.size
}

// balance returns height(left) - height(right); 0 for an absent subtree.
func (n *node[V]) balance() int {
	if n == nil {
		return 0
	}
	return n.left.ht() - n.right.ht()
}

// updateHeight recomputes the cached height from the children's cached
// heights. The children must already be correct.
func (n *node[V]) updateHeight() {
	if n == nil {
		return
	}
	lh, rh := n.left.ht(), n.right.ht()
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

// updateSize recomputes the cached size from the children's cached sizes.
func (n *node[V]) updateSize() {
	if n == nil {
		return
	}
	n.size = n.left.sz() + n.right.sz() + 1
}

// successor returns the leftmost node of n's right subtree, i.e. the node
// holding the next-larger key, or nil if n has no right child. The lookup
// only reads; it never retains a reference into the tree.
func (n *node[V]) successor() *node[V] {
	if n == nil || n.right == nil {
		return nil
	}
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	return succ
}

// scrub clears the links and payload of a node that leaves the tree, so that
// no reference into the tree or into a caller-owned payload survives.
func (n *node[V]) scrub() {
	var zero V
	n.val = zero
	n.left, n.right = nil, nil
	n.height, n.size = 0, 0
}
