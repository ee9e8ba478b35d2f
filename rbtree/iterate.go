package rbtree

import "iter"

// ForEachKey walks the keys of the live tree in order.
//
// Iteration stops early if callback returns false.
func (t *Tree) ForEachKey(fn func(key int) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachKeyNode(t.root, fn)
}

func (t *Tree) forEachKeyNode(n *node, fn func(key int) bool) bool {
	if n == nil {
		return true
	}
	if !t.forEachKeyNode(n.left, fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}
	return t.forEachKeyNode(n.right, fn)
}

// All returns an iterator over the keys of the live tree in order.
// The tree must not be modified during iteration.
func (t *Tree) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		t.ForEachKey(yield)
	}
}

// Keys returns all keys of the live tree in order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.Len())
	t.ForEachKey(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
