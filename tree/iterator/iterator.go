// Package iterator provides lazy, pull-style traversal over binary trees.
//
// Each iterator holds only the frontier of the walk: O(height) pending nodes
// for the depth-first forms and O(width) for the breadth-first one, so large
// trees can be consumed a value at a time without materializing the full
// sequence. Iterators are safe to create on the empty tree; the first Next
// simply reports false.
package iterator

import "github.com/YuminosukeSato/treekit/tree"

// Iterator is a pull-style cursor over the values of a tree. Next advances
// to the next value and reports whether one exists; Item returns the value
// at the current position. Item must only be called after Next has returned
// true.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

var (
	_ Iterator[int] = (*Preorder[int])(nil)
	_ Iterator[int] = (*Inorder[int])(nil)
	_ Iterator[int] = (*LevelOrder[int])(nil)
)

// Preorder iterates in preorder using an explicit stack, mirroring
// tree.PreorderIterative one element at a time.
type Preorder[T any] struct {
	stack []*tree.Node[T]
	cur   *tree.Node[T]
}

// NewPreorder creates a preorder iterator over the tree rooted at root.
func NewPreorder[T any](root *tree.Node[T]) *Preorder[T] {
	it := &Preorder[T]{}
	if root != nil {
		it.stack = append(it.stack, root)
	}
	return it
}

func (it *Preorder[T]) Next() bool {
	if len(it.stack) == 0 {
		it.cur = nil
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	// Right below left on the stack, so left is visited first.
	if n.Right != nil {
		it.stack = append(it.stack, n.Right)
	}
	if n.Left != nil {
		it.stack = append(it.stack, n.Left)
	}
	it.cur = n
	return true
}

func (it *Preorder[T]) Item() T {
	return it.cur.Value
}

// Inorder iterates in inorder. The stack holds the ancestors whose left
// subtree has been consumed but whose own value has not been emitted yet;
// pending points at the next unexplored subtree.
type Inorder[T any] struct {
	pending *tree.Node[T]
	stack   []*tree.Node[T]
	cur     *tree.Node[T]
}

// NewInorder creates an inorder iterator over the tree rooted at root.
func NewInorder[T any](root *tree.Node[T]) *Inorder[T] {
	return &Inorder[T]{pending: root}
}

func (it *Inorder[T]) Next() bool {
	for it.pending != nil {
		it.stack = append(it.stack, it.pending)
		it.pending = it.pending.Left
	}
	if len(it.stack) == 0 {
		it.cur = nil
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.cur = n
	it.pending = n.Right
	return true
}

func (it *Inorder[T]) Item() T {
	return it.cur.Value
}

// LevelOrder iterates level by level, left to right, using a FIFO queue.
type LevelOrder[T any] struct {
	queue []*tree.Node[T]
	cur   *tree.Node[T]
}

// NewLevelOrder creates a breadth-first iterator over the tree rooted at
// root.
func NewLevelOrder[T any](root *tree.Node[T]) *LevelOrder[T] {
	it := &LevelOrder[T]{}
	if root != nil {
		it.queue = append(it.queue, root)
	}
	return it
}

func (it *LevelOrder[T]) Next() bool {
	if len(it.queue) == 0 {
		it.cur = nil
		return false
	}
	n := it.queue[0]
	it.queue = it.queue[1:]
	if n.Left != nil {
		it.queue = append(it.queue, n.Left)
	}
	if n.Right != nil {
		it.queue = append(it.queue, n.Right)
	}
	it.cur = n
	return true
}

func (it *LevelOrder[T]) Item() T {
	return it.cur.Value
}

// Collect drains it and returns the remaining values as a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for it.Next() {
		out = append(out, it.Item())
	}
	return out
}
