package tree

// WalkPreorder calls visit for each value in preorder. If visit returns
// false the walk stops and no further nodes are visited.
func WalkPreorder[T any](root *Node[T], visit func(T) bool) {
	walkPreorder(root, visit)
}

func walkPreorder[T any](n *Node[T], visit func(T) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n.Value) {
		return false
	}
	if !walkPreorder(n.Left, visit) {
		return false
	}
	return walkPreorder(n.Right, visit)
}

// WalkInorder calls visit for each value in inorder, stopping early when
// visit returns false.
func WalkInorder[T any](root *Node[T], visit func(T) bool) {
	walkInorder(root, visit)
}

func walkInorder[T any](n *Node[T], visit func(T) bool) bool {
	if n == nil {
		return true
	}
	if !walkInorder(n.Left, visit) {
		return false
	}
	if !visit(n.Value) {
		return false
	}
	return walkInorder(n.Right, visit)
}

// WalkPostorder calls visit for each value in postorder, stopping early when
// visit returns false.
func WalkPostorder[T any](root *Node[T], visit func(T) bool) {
	walkPostorder(root, visit)
}

func walkPostorder[T any](n *Node[T], visit func(T) bool) bool {
	if n == nil {
		return true
	}
	if !walkPostorder(n.Left, visit) {
		return false
	}
	if !walkPostorder(n.Right, visit) {
		return false
	}
	return visit(n.Value)
}

// WalkLevelOrder calls visit for each value in level order, stopping early
// when visit returns false.
func WalkLevelOrder[T any](root *Node[T], visit func(T) bool) {
	if root == nil {
		return
	}
	queue := []*Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !visit(n.Value) {
			return
		}
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}
}
