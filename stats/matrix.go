package stats

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/treekit/pkg/errors"
	"github.com/YuminosukeSato/treekit/tree"
)

// AdjacencyMatrix returns the parent-child adjacency matrix of the tree
// under a level-order node numbering: entry (i, j) is 1 when node j is a
// child of node i. The numbering matches tree.LevelOrder, so row 0 is the
// root. The empty tree has no matrix and yields an EmptyTreeError.
func AdjacencyMatrix[T any](root *tree.Node[T]) (*mat.Dense, error) {
	if root == nil {
		return nil, errors.NewEmptyTreeError("AdjacencyMatrix")
	}

	var nodes []*tree.Node[T]
	index := make(map[*tree.Node[T]]int)
	queue := []*tree.Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		index[n] = len(nodes)
		nodes = append(nodes, n)
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}

	m := mat.NewDense(len(nodes), len(nodes), nil)
	for i, n := range nodes {
		if n.Left != nil {
			m.Set(i, index[n.Left], 1)
		}
		if n.Right != nil {
			m.Set(i, index[n.Right], 1)
		}
	}
	return m, nil
}
