package bst

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YuminosukeSato/treekit/pkg/errors"
	"github.com/YuminosukeSato/treekit/tree"
)

func TestInsertKeepsSearchOrder(t *testing.T) {
	values := []int{32, 21, 38, 47, 28, 7, 35}
	root := FromSlice(values)

	want := []int{7, 21, 28, 32, 35, 38, 47}
	if diff := cmp.Diff(want, tree.Inorder(root)); diff != "" {
		t.Errorf("inorder of BST is not sorted (-want +got):\n%s", diff)
	}
	if root.Value != 32 {
		t.Errorf("root = %d, want first inserted value 32", root.Value)
	}
}

func TestFromSortedBalanced(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	root, err := FromSorted(values)
	if err != nil {
		t.Fatalf("FromSorted: %v", err)
	}
	if diff := cmp.Diff(values, tree.Inorder(root)); diff != "" {
		t.Errorf("inorder mismatch (-want +got):\n%s", diff)
	}
	// 12 nodes fit in height 4.
	if h := root.Height(); h != 4 {
		t.Errorf("Height = %d, want 4", h)
	}
	if root.Value != values[len(values)/2] {
		t.Errorf("root = %d, want midpoint %d", root.Value, values[len(values)/2])
	}
}

func TestFromSortedRejectsUnsorted(t *testing.T) {
	_, err := FromSorted([]int{1, 3, 2})
	if err == nil {
		t.Fatal("expected error for unsorted input")
	}
	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *errors.ValidationError", err)
	}
	if verr.ParamName != "values" {
		t.Errorf("ParamName = %q, want %q", verr.ParamName, "values")
	}
}

func TestFromSortedEmpty(t *testing.T) {
	root, err := FromSorted[int](nil)
	if err != nil {
		t.Fatalf("FromSorted(nil): %v", err)
	}
	if root != nil {
		t.Errorf("root = %v, want nil", root)
	}
}

func TestFromSliceWarnsOnDegenerateTree(t *testing.T) {
	var warned []error
	errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	defer errors.SetWarningHandler(func(error) {})

	sorted := make([]int, degenerateWarnMin)
	for i := range sorted {
		sorted[i] = i
	}
	root := FromSlice(sorted)

	if h := root.Height(); h != len(sorted) {
		t.Fatalf("Height = %d, want chain of %d", h, len(sorted))
	}
	if len(warned) != 1 {
		t.Fatalf("raised %d warnings, want 1", len(warned))
	}
	var dw *errors.DegenerateTreeWarning
	if !errors.As(warned[0], &dw) {
		t.Fatalf("got %T, want *errors.DegenerateTreeWarning", warned[0])
	}
	if dw.Nodes != len(sorted) || dw.Height != len(sorted) {
		t.Errorf("warning fields = (%d, %d), want (%d, %d)", dw.Nodes, dw.Height, len(sorted), len(sorted))
	}

	// Balanced construction over the same values stays quiet.
	warned = nil
	if _, err := FromSorted(sorted); err != nil {
		t.Fatalf("FromSorted: %v", err)
	}
	if len(warned) != 0 {
		t.Errorf("FromSorted raised %d warnings, want 0", len(warned))
	}
}

func TestContains(t *testing.T) {
	root := FromSlice([]int{5, 3, 8, 1, 4})
	for _, v := range []int{1, 3, 4, 5, 8} {
		if !Contains(root, v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	for _, v := range []int{0, 2, 9} {
		if Contains(root, v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}
	if Contains[int](nil, 1) {
		t.Error("Contains on empty tree = true, want false")
	}
}
