package rbtree

// Tree is a red-black tree over integer keys.
//
// A tree created by
//
//	Tree{}
//
// is a valid empty tree. Keys are not unique: a key equal to an existing one
// is inserted into the right subtree of that key.
type Tree struct {
	root *node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree, duplicates included.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert adds key to the tree and restores the red-black properties.
//
// The returned record lists every corrective action in the order it was
// applied, together with frozen copies of the intermediate and final trees.
func (t *Tree) Insert(key int) *Insertion {
	assert(t != nil, "Insert called on nil tree")
	n := newNode(key)
	t.attach(n)
	t.size++
	tracer().Debugf("rbtree: insert %d", key)
	rec := &recorder{tree: t}
	t.fixup(n, rec)
	return rec.finish(key)
}

// attach links n as a leaf. Strictly smaller keys go left, all others right.
func (t *Tree) attach(n *node) {
	var parent *node
	cur := t.root
	for cur != nil {
		parent = cur
		if n.key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n.parent = parent
	switch {
	case parent == nil:
		t.root = n
	case n.key < parent.key:
		parent.left = n
	default:
		parent.right = n
	}
}

// Snapshot returns a deep copy of the current tree.
func (t *Tree) Snapshot() *Snapshot {
	if t == nil {
		return &Snapshot{}
	}
	return &Snapshot{root: freeze(t.root), size: t.size}
}
