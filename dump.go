package ravl

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes an indented structure dump of the tree to w, one line per node
// in the format "key [height / size]". The right subtree is printed first
// and indentation grows with depth, yielding a tree layout rotated 90
// degrees counter-clockwise. Output is colorized when w is an interactive
// terminal.
//
// The format is a debugging aid, not a stable machine-readable contract.
func (t *Tree[V]) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "<empty tree>")
		return
	}
	keys, annotations := dumpPalette(w)
	dumpNode(w, t.root, 0, keys, annotations)
}

func dumpNode[V any](w io.Writer, n *node[V], depth int, keys, annotations *color.Color) {
	if n == nil {
		return
	}
	dumpNode(w, n.right, depth+1, keys, annotations)
	fmt.Fprintf(w, "%s%s %s\n", indent(depth),
		keys.Sprintf("%d", n.key),
		annotations.Sprintf("[%d / %d]", n.height, n.size))
	dumpNode(w, n.left, depth+1, keys, annotations)
}

func indent(d int) string {
	ind := ""
	for d > 0 {
		ind = ind + "  "
		d--
	}
	return ind
}

// dumpPalette enables colors only if w is an interactive terminal.
func dumpPalette(w io.Writer) (keys, annotations *color.Color) {
	keys = color.New(color.FgBlue)
	annotations = color.New(color.Faint)
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		keys.DisableColor()
		annotations.DisableColor()
	}
	return keys, annotations
}
