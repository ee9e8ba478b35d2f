package rbtree

// rotateLeft rotates around x, lifting its right child into x's position.
//
//	  P                P
//	  |                |
//	  x                y
//	 / \              / \
//	A   y     →      x   C
//	   / \          / \
//	  B   C        A   B
//
// x.right must be present.
func (t *Tree) rotateLeft(x *node) {
	y := x.right
	assert(y != nil, "rotateLeft called without right child")
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft. x.left must be present.
func (t *Tree) rotateRight(x *node) {
	y := x.left
	assert(y != nil, "rotateRight called without left child")
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
}

// replaceChild puts y at x's position below x's parent, or at the root.
func (t *Tree) replaceChild(x, y *node) {
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
}
