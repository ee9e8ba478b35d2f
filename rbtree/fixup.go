package rbtree

// fixup restores the red-black properties after n has been attached as a
// red leaf. Every corrective action is reported to rec together with a
// snapshot of the tree right after the action.
func (t *Tree) fixup(n *node, rec *recorder) {
	for n.parent != nil && n.parent.color == Red {
		p := n.parent
		g := p.parent
		if g == nil {
			break
		}
		u := p.sibling()
		switch {
		case isRed(u):
			p.color = Black
			u.color = Black
			g.color = Red
			t.applied(RedUncle, n, rec)
			n = g
		case n.isLeftChild() != p.isLeftChild():
			if n.isLeftChild() {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
			t.applied(InnerChild, n, rec)
			n = p
		default:
			p.color = Black
			g.color = Red
			if n.isLeftChild() {
				t.rotateRight(g)
			} else {
				t.rotateLeft(g)
			}
			t.applied(OuterChild, n, rec)
			t.root.color = Black
			return
		}
	}
	t.root.color = Black
}

func (t *Tree) applied(c Case, at *node, rec *recorder) {
	tracer().Debugf("rbtree: %s at node %d", c, at.key)
	rec.record(c)
}
