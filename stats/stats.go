// Package stats computes shape statistics over binary trees: leaf depth
// profiles, balance measures, and the adjacency matrix of the node
// structure. It is the read-only companion to the traversal package; nothing
// here mutates a tree.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/treekit/tree"
)

// Profile summarizes the shape of a tree. Depths count nodes on the
// root-to-leaf path, so a single-node tree has one leaf at depth 1.
type Profile struct {
	Nodes  int
	Height int
	Leaves int

	MeanLeafDepth   float64
	StdDevLeafDepth float64
	MinLeafDepth    int
	MaxLeafDepth    int
}

// Summarize returns the shape profile of the tree rooted at root. The empty
// tree yields the zero Profile.
func Summarize[T any](root *tree.Node[T]) Profile {
	p := Profile{
		Nodes:  root.Count(),
		Height: root.Height(),
	}
	if root == nil {
		return p
	}

	var depths []float64
	collectLeafDepths(root, 1, &depths)
	p.Leaves = len(depths)
	p.MeanLeafDepth = stat.Mean(depths, nil)
	if len(depths) > 1 {
		p.StdDevLeafDepth = stat.StdDev(depths, nil)
	}
	p.MinLeafDepth = int(depths[0])
	p.MaxLeafDepth = int(depths[0])
	for _, d := range depths[1:] {
		if int(d) < p.MinLeafDepth {
			p.MinLeafDepth = int(d)
		}
		if int(d) > p.MaxLeafDepth {
			p.MaxLeafDepth = int(d)
		}
	}
	return p
}

func collectLeafDepths[T any](n *tree.Node[T], depth int, out *[]float64) {
	if n.Left == nil && n.Right == nil {
		*out = append(*out, float64(depth))
		return
	}
	if n.Left != nil {
		collectLeafDepths(n.Left, depth+1, out)
	}
	if n.Right != nil {
		collectLeafDepths(n.Right, depth+1, out)
	}
}

// BalanceRatio compares the tree's height against the minimum height a tree
// with the same node count could have, ceil(log2(n+1)). A perfectly balanced
// tree scores 1.0; a chain of n nodes scores n/ceil(log2(n+1)). The empty
// tree scores 0.
func BalanceRatio[T any](root *tree.Node[T]) float64 {
	n := root.Count()
	if n == 0 {
		return 0
	}
	ideal := math.Ceil(math.Log2(float64(n) + 1))
	return float64(root.Height()) / ideal
}
