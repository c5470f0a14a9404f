package ravl

// insertNode inserts key/val into the subtree rooted at n and returns the new
// subtree root together with a flag reporting whether a node was created.
// The caller rewires its own child pointer from the return value.
//
// A key already present leaves the subtree untouched (created == false).
// On the unwind the node's cached height and size are recomputed and at most
// one rotation (single or double) repairs the balance bound; only one
// ancestor on the insertion path can ever trigger, but every ancestor is
// checked regardless.
//
// The tie-break between single and double rotation inspects the inserted key
// against the child's key: an imbalance inside the child's inner subtree
// needs the double rotation. Delete uses a different tie-break, see
// deleteNode.
func insertNode[V any](n *node[V], key int64, val V) (*node[V], bool) {
	if n == nil {
		return newNode(key, val), true
	}
	var created bool
	switch {
	case key < n.key:
		n.left, created = insertNode(n.left, key, val)
	case key > n.key:
		n.right, created = insertNode(n.right, key, val)
	default:
		return n, false // duplicate key, tree unchanged
	}
	n.updateHeight()
	n.updateSize()

	switch b := n.balance(); {
	case b > 1: // left heavy
		assert(n.left != nil, "left-heavy node without left child")
		if key > n.left.key {
			return rotateLeftRight(n), created
		}
		return rotateRight(n), created
	case b < -1: // right heavy
		assert(n.right != nil, "right-heavy node without right child")
		if key < n.right.key {
			return rotateRightLeft(n), created
		}
		return rotateLeft(n), created
	}
	return n, created
}
