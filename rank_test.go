package ravl

import (
	"testing"
)

func TestRankOfPresentKeys(t *testing.T) {
	tree := New[string]()
	keys := []int64{40, 20, 60, 10, 30, 50, 70}
	for _, k := range keys {
		tree.Insert(k, "")
	}
	// sorted order: 10 20 30 40 50 60 70
	want := map[int64]int{10: 1, 20: 2, 30: 3, 40: 4, 50: 5, 60: 6, 70: 7}
	for k, r := range want {
		got, ok := tree.Rank(k)
		if !ok || got != r {
			t.Errorf("Rank(%d) = (%d, %v), expected (%d, true)", k, got, ok, r)
		}
	}
}

func TestRankOfAbsentKey(t *testing.T) {
	tree := New[string]()
	for _, k := range []int64{2, 4, 6} {
		tree.Insert(k, "")
	}
	for _, k := range []int64{1, 3, 5, 7} {
		if r, ok := tree.Rank(k); ok {
			t.Errorf("Rank(%d) = (%d, true), expected absent", k, r)
		}
	}
	var empty Tree[string]
	if _, ok := empty.Rank(1); ok {
		t.Errorf("Rank on empty tree should report absent")
	}
}

func TestFindRankOutOfRange(t *testing.T) {
	tree := New[string]()
	for _, k := range []int64{5, 3, 8} {
		tree.Insert(k, "")
	}
	if _, _, ok := tree.FindRank(0); ok {
		t.Errorf("FindRank(0) should report absent")
	}
	if _, _, ok := tree.FindRank(-3); ok {
		t.Errorf("FindRank(-3) should report absent")
	}
	if _, _, ok := tree.FindRank(tree.Len() + 1); ok {
		t.Errorf("FindRank(Len+1) should report absent")
	}
}

func TestRankFindRankInverse(t *testing.T) {
	tree := New[int]()
	keys := []int64{15, 7, 23, 3, 11, 19, 27, 1, 5, 9, 13, 17, 21, 25, 29}
	for _, k := range keys {
		tree.Insert(k, int(k))
	}
	for _, k := range keys {
		r, ok := tree.Rank(k)
		if !ok {
			t.Fatalf("Rank(%d) unexpectedly absent", k)
		}
		gotKey, gotVal, ok := tree.FindRank(r)
		if !ok || gotKey != k || gotVal != int(k) {
			t.Errorf("FindRank(Rank(%d)) = (%d, %d, %v)", k, gotKey, gotVal, ok)
		}
	}
	for r := 1; r <= tree.Len(); r++ {
		k, _, ok := tree.FindRank(r)
		if !ok {
			t.Fatalf("FindRank(%d) unexpectedly absent", r)
		}
		gotRank, ok := tree.Rank(k)
		if !ok || gotRank != r {
			t.Errorf("Rank(FindRank(%d)) = (%d, %v)", r, gotRank, ok)
		}
	}
}

func TestFindRankSequenceEqualsInorder(t *testing.T) {
	tree := New[int]()
	for _, k := range []int64{12, 4, 20, 2, 8, 16, 24, 6, 10} {
		tree.Insert(k, 0)
	}
	inorder := collectKeys(tree)
	for i := range inorder {
		k, _, ok := tree.FindRank(i + 1)
		if !ok || k != inorder[i] {
			t.Errorf("FindRank(%d) = %d, in-order position holds %d", i+1, k, inorder[i])
		}
		if i > 0 && inorder[i] <= inorder[i-1] {
			t.Errorf("in-order sequence not strictly increasing at %d", i)
		}
	}
}

func TestRankAfterDeletes(t *testing.T) {
	tree := New[int]()
	for k := int64(1); k <= 10; k++ {
		tree.Insert(k, 0)
	}
	tree.Delete(3)
	tree.Delete(7)
	// sorted order is now 1 2 4 5 6 8 9 10
	want := map[int64]int{1: 1, 2: 2, 4: 3, 5: 4, 6: 5, 8: 6, 9: 7, 10: 8}
	for k, r := range want {
		if got, ok := tree.Rank(k); !ok || got != r {
			t.Errorf("Rank(%d) = (%d, %v), expected (%d, true)", k, got, ok, r)
		}
	}
}
