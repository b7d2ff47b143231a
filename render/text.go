// Package render turns trees into human-readable output: flat traversal
// listings, an ASCII sketch, Graphviz DOT, and an image of the tree layout.
// The traversal algorithms themselves live in the tree package and stay
// pure; this package is the thin adapter that owns all printing.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/YuminosukeSato/treekit/pkg/errors"
	"github.com/YuminosukeSato/treekit/tree"
)

// Fprint writes the values of root in the given order to w, space separated
// and newline terminated. The empty tree writes a bare newline.
func Fprint[T any](w io.Writer, root *tree.Node[T], order tree.Order) error {
	if !order.Valid() {
		return errors.NewValidationError("order", "unknown traversal order", int(order))
	}
	var b strings.Builder
	for i, v := range tree.Sequence(root, order) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrapf(err, "printing %s sequence", order)
	}
	return nil
}

// Print writes the traversal to standard output.
func Print[T any](root *tree.Node[T], order tree.Order) error {
	return Fprint(os.Stdout, root, order)
}

// ASCII returns a sideways sketch of the tree, right subtree on top, one
// node per line, indented by depth. The empty tree renders as the empty
// string.
func ASCII[T any](root *tree.Node[T]) string {
	var b strings.Builder
	asciiNode(&b, root, 0)
	return b.String()
}

func asciiNode[T any](b *strings.Builder, n *tree.Node[T], depth int) {
	if n == nil {
		return
	}
	asciiNode(b, n.Right, depth+1)
	b.WriteString(strings.Repeat("    ", depth))
	fmt.Fprintf(b, "%v\n", n.Value)
	asciiNode(b, n.Left, depth+1)
}

// DOT returns a Graphviz digraph of the node structure. Nodes are numbered
// in level order so the output is stable for a given shape.
func DOT[T any](root *tree.Node[T]) string {
	var b strings.Builder
	b.WriteString("digraph tree {\n")
	if root != nil {
		index := map[*tree.Node[T]]int{root: 0}
		queue := []*tree.Node[T]{root}
		next := 1
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			fmt.Fprintf(&b, "\tn%d [label=%q];\n", index[n], fmt.Sprintf("%v", n.Value))
			for _, c := range []*tree.Node[T]{n.Left, n.Right} {
				if c == nil {
					continue
				}
				index[c] = next
				next++
				fmt.Fprintf(&b, "\tn%d -> n%d;\n", index[n], index[c])
				queue = append(queue, c)
			}
		}
	}
	b.WriteString("}\n")
	return b.String()
}
