package rbtree

import (
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

// sameShape compares the key structure of a snapshot with a gods tree.
func sameShape(t *testing.T, sn *SnapshotNode, gn *rbt.Node) {
	t.Helper()
	if sn == nil || gn == nil {
		require.True(t, sn == nil && gn == nil, "subtree present on one side only")
		return
	}
	require.Equal(t, sn.Key(), gn.Key.(int))
	sameShape(t, sn.Left(), gn.Left)
	sameShape(t, sn.Right(), gn.Right)
}

// For distinct keys the classic insertion algorithm is deterministic, so the
// shape must agree with an independent red-black implementation.
func TestShapeMatchesGodsTree(t *testing.T) {
	for round := 0; round < 30; round++ {
		tree := New()
		oracle := rbt.NewWithIntComparator()
		for _, k := range rg.Perm(1 + rg.Intn(150)) {
			tree.Insert(k)
			oracle.Put(k, struct{}{})
		}
		require.Equal(t, oracle.Size(), tree.Len())
		sameShape(t, tree.Snapshot().Root(), oracle.Root)
	}
}

type seqKey struct {
	key, seq int
}

// With duplicates the in-order sequence must equal the multiset of keys.
func TestOrderMatchesBTreeMultiset(t *testing.T) {
	for round := 0; round < 30; round++ {
		tree := New()
		oracle := btree.NewG(4, func(a, b seqKey) bool {
			if a.key != b.key {
				return a.key < b.key
			}
			return a.seq < b.seq
		})
		n := rg.Intn(300)
		for i := 0; i < n; i++ {
			k := rg.Intn(20)
			tree.Insert(k)
			oracle.ReplaceOrInsert(seqKey{key: k, seq: i})
		}
		expected := make([]int, 0, n)
		oracle.Ascend(func(item seqKey) bool {
			expected = append(expected, item.key)
			return true
		})
		require.Equal(t, expected, tree.Keys())
		require.NoError(t, tree.Check())
	}
}
