package ravl

// deleteNode removes key from the subtree rooted at n and returns the new
// subtree root together with a flag reporting whether a node was removed.
// An absent key leaves the subtree unchanged.
//
// A node with at most one child is spliced out and replaced by that child.
// A node with two children is not unlinked at all: the in-order successor's
// key and value are copied into it and the successor's key is then deleted
// from the right subtree, which always ends in the at-most-one-child case.
// Keeping the node in place keeps the augmentation update strictly bottom-up
// and avoids relinking grandparent pointers.
//
// Rebalancing on the unwind inspects the balance factor of the relevant
// child to choose between single and double rotation: a left-heavy node
// takes the single right rotation when its left child leans left or is even,
// and a right-heavy node takes the single left rotation when its right child
// leans right or is even; the double rotation handles the inner-heavy child.
// This is a different tie-break than insert's, and unlike insert, every
// ancestor on the path may need a rotation.
func deleteNode[V any](n *node[V], key int64) (*node[V], bool) {
	if n == nil {
		return nil, false
	}
	removed := true
	switch {
	case key < n.key:
		n.left, removed = deleteNode(n.left, key)
	case key > n.key:
		n.right, removed = deleteNode(n.right, key)
	default:
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}
			n.scrub()
			n = child
		} else {
			succ := n.successor()
			n.key = succ.key
			n.val = succ.val
			n.right, _ = deleteNode(n.right, succ.key)
		}
	}
	if n == nil {
		return nil, removed
	}
	n.updateHeight()
	n.updateSize()

	switch b := n.balance(); {
	case b > 1: // left heavy
		assert(n.left != nil, "left-heavy node without left child")
		if n.left.balance() >= 0 {
			return rotateRight(n), removed
		}
		return rotateLeftRight(n), removed
	case b < -1: // right heavy
		assert(n.right != nil, "right-heavy node without right child")
		if n.right.balance() <= 0 {
			return rotateLeft(n), removed
		}
		return rotateRightLeft(n), removed
	}
	return n, removed
}
