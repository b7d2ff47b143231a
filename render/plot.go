package render

import (
	"fmt"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/treekit/pkg/errors"
	"github.com/YuminosukeSato/treekit/pkg/log"
	"github.com/YuminosukeSato/treekit/tree"
)

// SavePlot draws the tree layout and writes it to path. Nodes are placed at
// (inorder index, -depth), so the drawing matches the usual whiteboard
// sketch: left subtrees to the left, deeper nodes lower. The image format
// follows the file extension (png, svg, pdf, and the other formats
// gonum/plot supports).
//
// The plotting backend can panic on degenerate input; any such panic is
// recovered and returned as an error.
func SavePlot[T any](root *tree.Node[T], path string) (err error) {
	if root == nil {
		return errors.NewEmptyTreeError("SavePlot")
	}
	defer errors.Recover(&err, "render.SavePlot")
	start := time.Now()

	// Inorder placement: x advances with each visited node, y is depth.
	type placed struct {
		node *tree.Node[T]
		xy   plotter.XY
	}
	var nodes []placed
	coord := make(map[*tree.Node[T]]plotter.XY)
	var place func(n *tree.Node[T], depth int)
	place = func(n *tree.Node[T], depth int) {
		if n == nil {
			return
		}
		place(n.Left, depth+1)
		xy := plotter.XY{X: float64(len(nodes)), Y: -float64(depth)}
		coord[n] = xy
		nodes = append(nodes, placed{node: n, xy: xy})
		place(n.Right, depth+1)
	}
	place(root, 0)

	p := plot.New()
	p.HideAxes()

	// Edges first so the markers draw over them.
	for _, pn := range nodes {
		for _, c := range []*tree.Node[T]{pn.node.Left, pn.node.Right} {
			if c == nil {
				continue
			}
			line, lerr := plotter.NewLine(plotter.XYs{pn.xy, coord[c]})
			if lerr != nil {
				return errors.Wrap(lerr, "adding tree edge")
			}
			p.Add(line)
		}
	}

	pts := make(plotter.XYs, len(nodes))
	labels := make([]string, len(nodes))
	for i, pn := range nodes {
		pts[i] = pn.xy
		labels[i] = fmt.Sprintf("%v", pn.node.Value)
	}
	scatter, serr := plotter.NewScatter(pts)
	if serr != nil {
		return errors.Wrap(serr, "adding tree nodes")
	}
	p.Add(scatter)

	lab, lerr := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if lerr != nil {
		return errors.Wrap(lerr, "adding node labels")
	}
	p.Add(lab)

	if err := p.Save(12*vg.Centimeter, 8*vg.Centimeter, path); err != nil {
		return errors.NewRenderError(filepath.Ext(path), err)
	}

	log.GetLoggerWithName("render").Info("tree layout saved",
		log.OperationKey, log.OperationRender,
		log.NodesKey, len(nodes),
		log.HeightKey, root.Height(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
		"path", path,
	)
	return nil
}
