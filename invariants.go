package ravl

import "fmt"

// Check validates structural tree invariants: binary-search-tree key order,
// the AVL balance bound, and exactness of the cached height and size on
// every node.
//
// This checker is intentionally strict and walks the whole tree; it is meant
// for tests and debugging, not for hot paths. A violation indicates a tree
// algorithm bug, not an input error.
func (t *Tree[V]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	_, _, err := checkNode(t.root, nil, nil)
	if err != nil {
		tracer().Errorf("ravl: invariant check failed: %s", err.Error())
	}
	return err
}

// checkNode recursively validates the subtree rooted at n. lo and hi are
// exclusive key bounds inherited from ancestors; nil means unbounded, so
// that the extreme int64 values remain usable as keys.
func checkNode[V any](n *node[V], lo, hi *int64) (height int, size int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, 0, fmt.Errorf("%w: key %d violates BST order (must be > %d)", ErrInvalidTree, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, 0, fmt.Errorf("%w: key %d violates BST order (must be < %d)", ErrInvalidTree, n.key, *hi)
	}
	lh, ls, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rs, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d at key %d", ErrInvalidTree, b, n.key)
	}
	if h := max(lh, rh) + 1; n.height != h {
		return 0, 0, fmt.Errorf("%w: cached height %d at key %d, recomputed %d", ErrInvalidTree, n.height, n.key, h)
	}
	if s := ls + rs + 1; n.size != s {
		return 0, 0, fmt.Errorf("%w: cached size %d at key %d, recomputed %d", ErrInvalidTree, n.size, n.key, s)
	}
	return n.height, n.size, nil
}
