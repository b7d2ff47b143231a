package tree

// Preorder returns the values of the tree rooted at root in preorder: each
// node before its left subtree, the left subtree before the right. The empty
// tree yields a nil slice.
func Preorder[T any](root *Node[T]) []T {
	return appendPreorder(nil, root)
}

func appendPreorder[T any](out []T, n *Node[T]) []T {
	if n == nil {
		return out
	}
	out = append(out, n.Value)
	out = appendPreorder(out, n.Left)
	return appendPreorder(out, n.Right)
}

// Inorder returns the values in inorder: left subtree, node, right subtree.
// For a binary search tree this is ascending value order.
func Inorder[T any](root *Node[T]) []T {
	return appendInorder(nil, root)
}

func appendInorder[T any](out []T, n *Node[T]) []T {
	if n == nil {
		return out
	}
	out = appendInorder(out, n.Left)
	out = append(out, n.Value)
	return appendInorder(out, n.Right)
}

// Postorder returns the values in postorder: left subtree, right subtree,
// node. The root is always last.
func Postorder[T any](root *Node[T]) []T {
	return appendPostorder(nil, root)
}

func appendPostorder[T any](out []T, n *Node[T]) []T {
	if n == nil {
		return out
	}
	out = appendPostorder(out, n.Left)
	out = appendPostorder(out, n.Right)
	return append(out, n.Value)
}

// LevelOrder returns the values level by level, left to right within each
// level. All nodes at depth d appear before any node at depth d+1.
func LevelOrder[T any](root *Node[T]) []T {
	if root == nil {
		return nil
	}
	var out []T
	queue := []*Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.Value)
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}
	return out
}

// PreorderIterative returns exactly the same sequence as Preorder, driven by
// an explicit stack instead of recursion. Use it when the tree may be deep
// enough to threaten the call stack; a maximally skewed tree costs the
// recursive forms O(n) stack frames.
func PreorderIterative[T any](root *Node[T]) []T {
	if root == nil {
		return nil
	}
	var out []T
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.Value)
		// Right is pushed first so the left child is popped, and
		// therefore visited, before it.
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return out
}
