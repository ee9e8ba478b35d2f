package rbtree

import "github.com/cockroachdb/errors"

// Check validates the red-black invariants, search order, parent links and
// size of the live tree.
//
// This checker is strict and intended for tests and debugging.
func (t *Tree) Check() error {
	if t == nil || t.root == nil {
		if t.Len() != 0 {
			return errors.Wrapf(ErrSize, "empty tree has size %d", t.Len())
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.Wrapf(ErrParentLink, "root %d has parent %d", t.root.key, t.root.parent.key)
	}
	if t.root.color != Black {
		return errors.Wrapf(ErrRootNotBlack, "root %d", t.root.key)
	}
	count, _, err := checkLiveNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return errors.Wrapf(ErrSize, "counted %d nodes, tree size is %d", count, t.size)
	}
	return nil
}

// checkLiveNode returns the number of nodes and the black height of the
// subtree at n. Keys must lie in [lo, hi] where nil bounds are open.
func checkLiveNode(n *node, lo, hi *int) (count int, bh int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if err := checkOrder(n.key, lo, hi); err != nil {
		return 0, 0, err
	}
	for _, c := range [2]*node{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, 0, errors.Wrapf(ErrParentLink, "child %d does not point back to %d", c.key, n.key)
		}
		if n.color == Red && c.color == Red {
			return 0, 0, errors.Wrapf(ErrRedViolation, "node %d, child %d", n.key, c.key)
		}
	}
	lc, lbh, err := checkLiveNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rbh, err := checkLiveNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, errors.Wrapf(ErrBlackHeight, "at node %d: left %d, right %d", n.key, lbh, rbh)
	}
	if n.color == Black {
		lbh++
	}
	return lc + rc + 1, lbh, nil
}

// Check validates the red-black invariants and search order of a snapshot.
// Snapshots of intermediate fixup states may legitimately fail this check.
func (s *Snapshot) Check() error {
	if s.IsEmpty() {
		return nil
	}
	if s.root.color != Black {
		return errors.Wrapf(ErrRootNotBlack, "root %d", s.root.key)
	}
	count, _, err := checkSnapshotNode(s.root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.size {
		return errors.Wrapf(ErrSize, "counted %d nodes, snapshot size is %d", count, s.size)
	}
	return nil
}

func checkSnapshotNode(n *SnapshotNode, lo, hi *int) (count int, bh int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if err := checkOrder(n.key, lo, hi); err != nil {
		return 0, 0, err
	}
	if n.color == Red && (n.left.IsRed() || n.right.IsRed()) {
		return 0, 0, errors.Wrapf(ErrRedViolation, "node %d", n.key)
	}
	lc, lbh, err := checkSnapshotNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rbh, err := checkSnapshotNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, errors.Wrapf(ErrBlackHeight, "at node %d: left %d, right %d", n.key, lbh, rbh)
	}
	if n.color == Black {
		lbh++
	}
	return lc + rc + 1, lbh, nil
}

// checkOrder enforces lo <= key <= hi. Insertion routes equal keys to the
// right, but rotations may later lift a duplicate above its twin, so both
// bounds are inclusive.
func checkOrder(key int, lo, hi *int) error {
	if lo != nil && key < *lo {
		return errors.Wrapf(ErrOrder, "key %d below lower bound %d", key, *lo)
	}
	if hi != nil && key > *hi {
		return errors.Wrapf(ErrOrder, "key %d above upper bound %d", key, *hi)
	}
	return nil
}
