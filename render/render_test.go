package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuminosukeSato/treekit/pkg/errors"
	"github.com/YuminosukeSato/treekit/tree"
)

func threeNodes() *tree.Node[int] {
	n := tree.New(1)
	n.Left = tree.New(2)
	n.Right = tree.New(3)
	return n
}

func TestFprint(t *testing.T) {
	tests := []struct {
		order tree.Order
		want  string
	}{
		{tree.OrderPreorder, "1 2 3\n"},
		{tree.OrderInorder, "2 1 3\n"},
		{tree.OrderPostorder, "2 3 1\n"},
		{tree.OrderLevelOrder, "1 2 3\n"},
		{tree.OrderPreorderIterative, "1 2 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			var b strings.Builder
			if err := Fprint(&b, threeNodes(), tt.order); err != nil {
				t.Fatalf("Fprint: %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("output = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestFprintEmptyTree(t *testing.T) {
	var b strings.Builder
	if err := Fprint[int](&b, nil, tree.OrderLevelOrder); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if b.String() != "\n" {
		t.Errorf("output = %q, want bare newline", b.String())
	}
}

func TestFprintInvalidOrder(t *testing.T) {
	var b strings.Builder
	err := Fprint(&b, threeNodes(), tree.Order(99))
	if err == nil {
		t.Fatal("expected error for invalid order")
	}
	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *errors.ValidationError", err)
	}
}

func TestASCII(t *testing.T) {
	got := ASCII(threeNodes())
	// Right subtree on top, root in the middle, left below.
	want := "    3\n1\n    2\n"
	if got != want {
		t.Errorf("ASCII = %q, want %q", got, want)
	}

	if out := ASCII[int](nil); out != "" {
		t.Errorf("ASCII(empty) = %q, want empty", out)
	}
}

func TestDOT(t *testing.T) {
	got := DOT(threeNodes())
	for _, want := range []string{
		"digraph tree {",
		`n0 [label="1"]`,
		`n1 [label="2"]`,
		`n2 [label="3"]`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT output missing %q:\n%s", want, got)
		}
	}

	empty := DOT[int](nil)
	if empty != "digraph tree {\n}\n" {
		t.Errorf("DOT(empty) = %q", empty)
	}
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.png")
	if err := SavePlot(threeNodes(), path); err != nil {
		t.Fatalf("SavePlot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestSavePlotEmptyTree(t *testing.T) {
	err := SavePlot[int](nil, filepath.Join(t.TempDir(), "empty.png"))
	if err == nil {
		t.Fatal("expected error for empty tree")
	}
	var eerr *errors.EmptyTreeError
	if !errors.As(err, &eerr) {
		t.Fatalf("got %T, want *errors.EmptyTreeError", err)
	}
}

func TestSavePlotBadExtension(t *testing.T) {
	err := SavePlot(threeNodes(), filepath.Join(t.TempDir(), "tree.nope"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
