// Package tree implements a generic binary tree and the classic traversal
// orders over it: preorder, inorder, postorder and level-order, each in a
// sequence-returning and a visitor form, plus an explicit-stack preorder for
// trees too deep for comfortable recursion.
//
// A *Node[T] value is the tree itself; the nil pointer is the empty tree.
// Every entry point accepts a nil root and treats it as the empty tree, so
// callers never need a separate guard. Traversals are read-only and never
// modify the nodes they visit.
//
// The node graph must be a finite, acyclic tree: no node may be reachable
// from itself and no node may be the child of two parents. Supplying a
// cyclic or shared-child structure is out of contract; traversal over such a
// structure may not terminate.
package tree

// Node is a binary tree node carrying a value of type T. A nil *Node is the
// empty tree.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// New returns a leaf node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Count returns the number of nodes in the tree rooted at n. The empty tree
// has zero nodes.
func (n *Node[T]) Count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Count() + n.Right.Count()
}

// Height returns the number of nodes on the longest root-to-leaf path. The
// empty tree has height zero, a single node height one.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	lh := n.Left.Height()
	rh := n.Right.Height()
	if lh < rh {
		return rh + 1
	}
	return lh + 1
}
