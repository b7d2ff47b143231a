// Package bst builds binary search trees over ordered values. The traversal
// packages treat construction as the caller's business; this package is the
// caller most tests and examples want to be.
package bst

import (
	"golang.org/x/exp/constraints"

	"github.com/YuminosukeSato/treekit/pkg/errors"
	"github.com/YuminosukeSato/treekit/tree"
)

// degenerateWarnMin is the smallest tree size for which FromSlice raises a
// DegenerateTreeWarning. Tiny chains are fine; long ones make the recursive
// traversals cost O(n) stack depth.
const degenerateWarnMin = 16

// Insert adds v to the tree rooted at root and returns the root of the
// resulting tree, which differs from root only when root is nil. Duplicates
// go to the right subtree.
func Insert[T constraints.Ordered](root *tree.Node[T], v T) *tree.Node[T] {
	if root == nil {
		return tree.New(v)
	}
	if v < root.Value {
		root.Left = Insert(root.Left, v)
	} else {
		root.Right = Insert(root.Right, v)
	}
	return root
}

// FromSlice inserts the values one by one and returns the resulting root.
// Pre-sorted input degenerates into a single chain; when that happens on a
// tree of degenerateWarnMin nodes or more a DegenerateTreeWarning is raised
// through the errors package warning handler.
func FromSlice[T constraints.Ordered](values []T) *tree.Node[T] {
	var root *tree.Node[T]
	for _, v := range values {
		root = Insert(root, v)
	}
	if n := len(values); n >= degenerateWarnMin && root.Height() == n {
		errors.Warn(errors.NewDegenerateTreeWarning("bst.FromSlice", n, n))
	}
	return root
}

// FromSorted builds a height-balanced tree from values in ascending order.
// The midpoint of each range becomes the subtree root, as in the classic
// sorted-array-to-BST construction. Unsorted input is rejected.
func FromSorted[T constraints.Ordered](values []T) (*tree.Node[T], error) {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return nil, errors.NewValidationError("values", "must be in ascending order", values[i])
		}
	}
	return fromSorted(values), nil
}

func fromSorted[T constraints.Ordered](values []T) *tree.Node[T] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) / 2
	n := tree.New(values[mid])
	n.Left = fromSorted(values[:mid])
	n.Right = fromSorted(values[mid+1:])
	return n
}

// Contains reports whether v is present in the tree rooted at root.
func Contains[T constraints.Ordered](root *tree.Node[T], v T) bool {
	for root != nil {
		switch {
		case v < root.Value:
			root = root.Left
		case v > root.Value:
			root = root.Right
		default:
			return true
		}
	}
	return false
}
