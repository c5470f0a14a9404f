package ravl

// rankNode returns the 1-based position of key in the sorted key sequence of
// the subtree rooted at n; ok is false if the key is not in the subtree.
//
// The descent is guided by the cached subtree sizes: a match counts the left
// subtree plus the node itself, a descent to the right additionally counts
// everything to the left of the current node, a descent to the left counts
// nothing.
func rankNode[V any](n *node[V], key int64) (r int, ok bool) {
	if n == nil {
		return 0, false
	}
	switch {
	case key == n.key:
		return n.left.sz() + 1, true
	case key > n.key:
		r, ok = rankNode(n.right, key)
		if !ok {
			return 0, false
		}
		return n.left.sz() + 1 + r, true
	default:
		return rankNode(n.left, key)
	}
}

// findRankNode returns the node at 1-based rank r, or nil if r is out of
// range for the subtree. It is the inverse of rankNode for present keys.
func findRankNode[V any](n *node[V], r int) *node[V] {
	if n == nil {
		return nil
	}
	local := n.left.sz() + 1
	switch {
	case r == local:
		return n
	case r < local:
		return findRankNode(n.left, r)
	default:
		return findRankNode(n.right, r-local)
	}
}
