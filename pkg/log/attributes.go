// Standard attribute keys for traversal operations. Using these constants
// keeps field names consistent across the render, forest and builder
// packages, which makes the JSON logs filterable.

package log

// Operation context.
const (
	// OperationKey names the operation being performed.
	// Standard values: "traverse", "render", "build".
	OperationKey = "tree.operation"

	// OrderKey names the traversal order in use.
	// Standard values: "preorder", "inorder", "postorder", "levelorder",
	// "preorder-iterative".
	OrderKey = "tree.order"

	// ComponentKey identifies the package emitting the record.
	ComponentKey = "component"
)

// Tree shape.
const (
	// NodesKey is the node count of the tree being processed.
	NodesKey = "tree.nodes"

	// HeightKey is the height of the tree being processed.
	HeightKey = "tree.height"

	// LeavesKey is the leaf count of the tree being processed.
	LeavesKey = "tree.leaves"

	// TreesKey is the number of trees in a bulk operation.
	TreesKey = "forest.trees"
)

// Performance.
const (
	// DurationMsKey is the elapsed time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard operation values.
const (
	OperationTraverse = "traverse"
	OperationRender   = "render"
	OperationBuild    = "build"
)
