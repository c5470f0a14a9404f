package ravl

// Rotations restore BST order and the AVL balance bound locally in O(1).
// Each returns the new local root; callers rewire their child pointer from
// the return value. A rotation whose required child is absent returns the
// input unchanged.

// rotateRight promotes n.left to the local root and hands its former right
// child over as n's new left child.
func rotateRight[V any](n *node[V]) *node[V] {
	if n == nil || n.left == nil {
		return n
	}
	root := n.left
	n.left = root.right
	root.right = n

	// demoted node first, then the new local root
	n.updateHeight()
	n.updateSize()
	root.updateHeight()
	root.updateSize()
	return root
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft[V any](n *node[V]) *node[V] {
	if n == nil || n.right == nil {
		return n
	}
	root := n.right
	n.right = root.left
	root.left = n

	n.updateHeight()
	n.updateSize()
	root.updateHeight()
	root.updateSize()
	return root
}

// rotateLeftRight corrects a left-child-right-heavy imbalance: a left
// rotation of n.left followed by a right rotation of n.
func rotateLeftRight[V any](n *node[V]) *node[V] {
	if n == nil || n.left == nil {
		return n
	}
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}

// rotateRightLeft corrects a right-child-left-heavy imbalance: a right
// rotation of n.right followed by a left rotation of n.
func rotateRightLeft[V any](n *node[V]) *node[V] {
	if n == nil || n.right == nil {
		return n
	}
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}
