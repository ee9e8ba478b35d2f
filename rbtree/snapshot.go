package rbtree

import (
	"iter"
	"strconv"
	"strings"
)

// Snapshot is a frozen deep copy of a tree.
//
// Snapshots share no nodes with the live tree or with each other's origin,
// so later insertions never change a snapshot taken earlier. A nil *Snapshot
// behaves like an empty tree.
type Snapshot struct {
	root *SnapshotNode
	size int
}

// SnapshotNode is a read-only node of a Snapshot.
type SnapshotNode struct {
	key   int
	color Color
	left  *SnapshotNode
	right *SnapshotNode
}

func freeze(n *node) *SnapshotNode {
	if n == nil {
		return nil
	}
	return &SnapshotNode{
		key:   n.key,
		color: n.color,
		left:  freeze(n.left),
		right: freeze(n.right),
	}
}

// Key returns the node's key.
func (sn *SnapshotNode) Key() int { return sn.key }

// Color returns the node's color.
func (sn *SnapshotNode) Color() Color { return sn.color }

// IsRed reports whether the node is red. Absent nodes are black.
func (sn *SnapshotNode) IsRed() bool { return sn != nil && sn.color == Red }

// Left returns the left child or nil.
func (sn *SnapshotNode) Left() *SnapshotNode { return sn.left }

// Right returns the right child or nil.
func (sn *SnapshotNode) Right() *SnapshotNode { return sn.right }

// Root returns the root node, or nil for an empty snapshot.
func (s *Snapshot) Root() *SnapshotNode {
	if s == nil {
		return nil
	}
	return s.root
}

// IsEmpty reports whether the snapshot holds no keys.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || s.root == nil
}

// Len returns the number of keys in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (s *Snapshot) Height() int {
	return height(s.Root())
}

func height(n *SnapshotNode) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// BlackHeight returns the number of black nodes on the leftmost root-to-leaf
// path. For a valid red-black tree all paths have this count.
func (s *Snapshot) BlackHeight() int {
	bh := 0
	for n := s.Root(); n != nil; n = n.left {
		if n.color == Black {
			bh++
		}
	}
	return bh
}

// Keys returns all keys in order.
func (s *Snapshot) Keys() []int {
	keys := make([]int, 0, s.Len())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// All returns an iterator over all keys in order.
func (s *Snapshot) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		walkSnapshot(s.Root(), yield)
	}
}

func walkSnapshot(n *SnapshotNode, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return walkSnapshot(n.left, yield) && yield(n.key) && walkSnapshot(n.right, yield)
}

// Equal reports whether two snapshots have the same shape, keys and colors.
func (s *Snapshot) Equal(other *Snapshot) bool {
	return equalNodes(s.Root(), other.Root())
}

func equalNodes(a, b *SnapshotNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.key == b.key && a.color == b.color &&
		equalNodes(a.left, b.left) && equalNodes(a.right, b.right)
}

// String returns a compact pre-order rendering of the snapshot, e.g.
//
//	15B(10R 20R)
//
// Absent children of inner nodes are written as '_', an empty tree as "()".
func (s *Snapshot) String() string {
	if s.IsEmpty() {
		return "()"
	}
	var sb strings.Builder
	writeNode(&sb, s.root)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *SnapshotNode) {
	if n == nil {
		sb.WriteByte('_')
		return
	}
	sb.WriteString(strconv.Itoa(n.key))
	if n.color == Red {
		sb.WriteByte('R')
	} else {
		sb.WriteByte('B')
	}
	if n.left == nil && n.right == nil {
		return
	}
	sb.WriteByte('(')
	writeNode(sb, n.left)
	sb.WriteByte(' ')
	writeNode(sb, n.right)
	sb.WriteByte(')')
}
