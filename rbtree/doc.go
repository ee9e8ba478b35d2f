/*
Package rbtree provides an instrumented red-black tree over integer keys.

The package is intentionally not a general-purpose ordered container. It exists
to make the insertion rebalancing of red-black trees observable: every call to
Insert returns an Insertion record holding a frozen copy of the final tree,
the sequence of corrective actions (the classic three insertion cases) and a
frozen copy of the tree after each of these actions.

Current status:
  - insertion with duplicates routed to the right subtree,
  - case-classified fixup (red uncle, inner grandchild, outer grandchild),
  - parent-linked rotations,
  - deep-copy snapshots, immune to later mutation of the live tree,
  - invariant checker for the live tree and for snapshots.

Deletion is not supported.

Case model:
  - Case 1: the uncle is red. Parent and uncle turn black, the grandparent
    turns red and the check continues at the grandparent.
  - Case 2: the uncle is black and the new node is an inner grandchild.
    Rotate around the parent, turning it into Case 3.
  - Case 3: the uncle is black and the new node is an outer grandchild.
    Recolor parent and grandparent and rotate around the grandparent.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'redblack'
func tracer() tracing.Trace {
	return tracing.Select("redblack")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
