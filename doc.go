// Package treekit is a binary-tree traversal toolkit for Go.
//
// It provides a generic tree node and the five classic traversal strategies
// over it (preorder, inorder, postorder, level-order, and an explicit-stack
// preorder for deep trees), together with lazy iterators, tree builders,
// rendering, and shape statistics.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/YuminosukeSato/treekit/tree"
//	)
//
//	func main() {
//	    root := tree.New(1)
//	    root.Left = tree.New(2)
//	    root.Right = tree.New(3)
//
//	    fmt.Println(tree.Preorder(root))   // [1 2 3]
//	    fmt.Println(tree.Inorder(root))    // [2 1 3]
//	    fmt.Println(tree.Postorder(root))  // [2 3 1]
//	    fmt.Println(tree.LevelOrder(root)) // [1 2 3]
//	}
//
// # Packages
//
//   - tree: the node type, the five traversals, visitor walks
//   - tree/iterator: lazy pull-style iterators over the same orders
//   - bst: binary-search-tree builders (insertion, balanced-from-sorted)
//   - forest: concurrent traversal across many independent trees
//   - render: printing, ASCII sketches, DOT export, layout plots
//   - stats: leaf-depth profiles, balance measures, adjacency matrices
//   - pkg/errors: stack-traced errors and the warning system
//   - pkg/log: structured logging helpers
//
// # Contract
//
// A nil *tree.Node[T] is the empty tree and is accepted everywhere; every
// traversal of it is the empty sequence. Traversals never mutate nodes and
// always terminate in O(n) steps on finite acyclic trees. Cyclic or
// shared-child structures are out of contract.
package treekit
