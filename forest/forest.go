// Package forest traverses many independent trees at once. Each individual
// traversal is the plain sequential algorithm from the tree package;
// concurrency exists only across trees, so per-tree ordering guarantees are
// untouched.
package forest

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/YuminosukeSato/treekit/pkg/errors"
	"github.com/YuminosukeSato/treekit/pkg/log"
	"github.com/YuminosukeSato/treekit/tree"
)

// sequentialThreshold is the forest size below which Traverse skips the
// worker pool and runs inline.
const sequentialThreshold = 8

// Traverse walks every tree in roots in the given order and returns the
// sequences index-aligned with roots: out[i] is the traversal of roots[i].
// A nil entry yields a nil sequence at its index.
//
// Trees are split into contiguous index chunks, one goroutine per chunk,
// sized to the CPU count. Cancelling ctx stops workers between trees; the
// context error is returned and the partial results are discarded.
func Traverse[T any](ctx context.Context, roots []*tree.Node[T], order tree.Order) ([][]T, error) {
	if !order.Valid() {
		return nil, errors.NewValidationError("order", "unknown traversal order", int(order))
	}

	out := make([][]T, len(roots))
	if len(roots) == 0 {
		return out, nil
	}

	if len(roots) <= sequentialThreshold {
		for i, root := range roots {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "forest traversal canceled")
			}
			out[i] = tree.Sequence(root, order)
		}
		return out, nil
	}

	workers := runtime.NumCPU()
	if workers > len(roots) {
		workers = len(roots)
	}
	chunk := (len(roots) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(roots) {
			end = len(roots)
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return errors.Wrap(err, "forest traversal canceled")
				}
				out[i] = tree.Sequence(roots[i], order)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger := log.GetLoggerWithName("forest")
	if logger.Enabled(ctx, log.LevelDebug) {
		logger.Debug("forest traversal finished",
			log.OperationKey, log.OperationTraverse,
			log.OrderKey, order.String(),
			log.TreesKey, len(roots),
		)
	}
	return out, nil
}

// Count returns the total node count across the forest.
func Count[T any](roots []*tree.Node[T]) int {
	total := 0
	for _, root := range roots {
		total += root.Count()
	}
	return total
}
