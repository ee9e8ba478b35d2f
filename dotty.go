package redblack

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/redblack/rbtree"
)

type nodeids struct {
	idTable map[*rbtree.SnapshotNode]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*rbtree.SnapshotNode]int),
		max:     1,
	}
}

func (ids nodeids) find(node *rbtree.SnapshotNode) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *rbtree.SnapshotNode) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Snapshot2Dot outputs a tree snapshot in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as small black NIL leaves.
func Snapshot2Dot(snap *rbtree.Snapshot, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist strings.Builder
	nils := 1 // NIL leaves are numbered separately, with prefix "nil"
	var walk func(node *rbtree.SnapshotNode)
	walk = func(node *rbtree.SnapshotNode) {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", ID, node.Key(), nodeDotStyles(node))
		for _, child := range [2]*rbtree.SnapshotNode{node.Left(), node.Right()} {
			if child == nil {
				nilid := nils
				nils++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if root := snap.Root(); root != nil {
		walk(root)
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"NIL\",style=filled,color=black,fillcolor=black,fontcolor=white,shape=box,fontsize=8,width=.3,height=.2]"
}

func nodeDotStyles(node *rbtree.SnapshotNode) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if node.IsRed() {
		s += ",color=\"#b00000\",fillcolor=\"#e03030\""
	} else {
		s += ",color=black,fillcolor=\"#202020\""
	}
	return s
}
