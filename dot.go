package ravl

import (
	"fmt"
	"io"
)

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes). Keys are unique, so they double as node IDs;
// missing children of partially filled nodes are drawn as empty circles to
// keep left and right distinguishable.
func (t *Tree[V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		d := &dotWriter[V]{}
		d.node(t.root)
		io.WriteString(w, d.nodelist)
		io.WriteString(w, d.edgelist)
	}
	io.WriteString(w, "}\n")
}

type dotWriter[V any] struct {
	nodelist, edgelist string
	nilcnt             int
}

func (d *dotWriter[V]) node(n *node[V]) {
	label := fmt.Sprintf("%d\\n[%d / %d]", n.key, n.height, n.size)
	d.nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", n.key, label)
	if n.left == nil && n.right == nil {
		return
	}
	d.edge(n, n.left)
	d.edge(n, n.right)
}

func (d *dotWriter[V]) edge(parent, child *node[V]) {
	if child == nil {
		d.nilcnt++
		d.nodelist += fmt.Sprintf("\"nil%d\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.4];\n", d.nilcnt)
		d.edgelist += fmt.Sprintf("\"%d\" -> \"nil%d\";\n", parent.key, d.nilcnt)
		return
	}
	d.edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", parent.key, child.key)
	d.node(child)
}
