package rbtree

// Color is the color of a tree node.
type Color uint8

const (
	// Red is the color of every freshly inserted node.
	Red Color = iota
	// Black is the color of the root and of absent children.
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// node is a cell of the live tree.
//
// left and right are owned by the node. parent is a back-reference used for
// upward walks during fixup and rotation only; it never decides lifetime.
type node struct {
	key    int
	color  Color
	left   *node
	right  *node
	parent *node
}

func newNode(key int) *node {
	return &node{key: key, color: Red}
}

// isRed treats absent nodes as black leaves.
func isRed(n *node) bool {
	return n != nil && n.color == Red
}

// sibling returns the other child of n's parent.
func (n *node) sibling() *node {
	if n.parent == nil {
		return nil
	}
	if n == n.parent.left {
		return n.parent.right
	}
	return n.parent.left
}

func (n *node) isLeftChild() bool {
	return n.parent != nil && n == n.parent.left
}
