package tree

// Order names one of the traversal strategies so that callers can select a
// traversal at run time (renderers, bulk walkers, command handlers).
type Order int

const (
	OrderPreorder Order = iota
	OrderInorder
	OrderPostorder
	OrderLevelOrder
	OrderPreorderIterative
)

// String returns the conventional name of the order.
func (o Order) String() string {
	switch o {
	case OrderPreorder:
		return "preorder"
	case OrderInorder:
		return "inorder"
	case OrderPostorder:
		return "postorder"
	case OrderLevelOrder:
		return "levelorder"
	case OrderPreorderIterative:
		return "preorder-iterative"
	default:
		return "unknown"
	}
}

// Valid reports whether o names a known traversal order.
func (o Order) Valid() bool {
	return o >= OrderPreorder && o <= OrderPreorderIterative
}

// Sequence returns the traversal of root in the given order. An invalid
// order yields nil; callers that accept orders from outside should check
// Valid first and report the error themselves.
func Sequence[T any](root *Node[T], o Order) []T {
	switch o {
	case OrderPreorder:
		return Preorder(root)
	case OrderInorder:
		return Inorder(root)
	case OrderPostorder:
		return Postorder(root)
	case OrderLevelOrder:
		return LevelOrder(root)
	case OrderPreorderIterative:
		return PreorderIterative(root)
	default:
		return nil
	}
}
