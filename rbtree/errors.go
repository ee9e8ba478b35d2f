package rbtree

import "github.com/cockroachdb/errors"

var (
	// ErrRootNotBlack signals a red root node.
	ErrRootNotBlack = errors.New("rbtree: root is not black")
	// ErrRedViolation signals a red node with a red child.
	ErrRedViolation = errors.New("rbtree: red node has red child")
	// ErrBlackHeight signals root-to-leaf paths with differing black counts.
	ErrBlackHeight = errors.New("rbtree: non-uniform black height")
	// ErrOrder signals a key placed on the wrong side of an ancestor.
	ErrOrder = errors.New("rbtree: search order violated")
	// ErrParentLink signals a parent back-reference inconsistent with the child links.
	ErrParentLink = errors.New("rbtree: inconsistent parent link")
	// ErrSize signals a node count differing from the recorded tree size.
	ErrSize = errors.New("rbtree: size mismatch")
)
