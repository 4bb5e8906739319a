package avltree

import (
	"math/rand"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](t *Tree[T]) []T {
	return slices.Collect(t.InOrder())
}

func TestTree(t *testing.T) {
	assertEq := func(t *testing.T, exp, got int) {
		t.Helper()
		if exp != got {
			t.Fatalf("expected %d, got %d", exp, got)
		}
	}

	tree := NewOrdered[int]()
	tree.Insert(2)
	tree.Insert(12)
	tree.Insert(1)

	iter := tree.MakeIter()
	iter.First()
	for _, exp := range []int{1, 2, 12} {
		assertEq(t, exp, iter.Cur())
		iter.Next()
	}
	require.False(t, iter.Valid())
}

func TestEmpty(t *testing.T) {
	tree := NewOrdered[int]()
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.Height())
	require.Equal(t, 0, tree.Leaves())
	require.Nil(t, tree.Search(1))
	require.Nil(t, tree.Root())
	require.False(t, tree.Delete(1))
	require.Equal(t, ";", tree.String())
	require.Empty(t, collect(tree))
	require.Empty(t, slices.Collect(tree.PreOrder()))
	require.Empty(t, slices.Collect(tree.PostOrder()))
	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)
	require.NoError(t, tree.Check())
}

func TestReferenceScenario(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{33, 13, 11, 53, 61, 21, 8, 9} {
		require.True(t, tree.Insert(k))
		require.NoError(t, tree.Check())
	}
	require.Equal(t, "(((8)9(11))13(21))33(53(61))", tree.String())
	require.Equal(t, []int{8, 9, 11, 13, 21, 33, 53, 61}, collect(tree))
	require.Equal(t, []int{33, 13, 9, 8, 11, 21, 53, 61}, slices.Collect(tree.PreOrder()))
	require.Equal(t, 4, tree.Height())
	require.Equal(t, 4, tree.Leaves())

	for _, tc := range []struct {
		key    int
		expStr string
	}{
		// Two children: the successor 21 replaces 13 and the subtree, now
		// left-heavy with a balanced left child, is rotated right.
		{13, "((8)9((11)21))33(53(61))"},
		// Leaf.
		{11, "((8)9(21))33(53(61))"},
		// Only a right child, which is spliced up.
		{53, "((8)9(21))33(61)"},
		// Leaf; the root becomes left-heavy and is rotated right.
		{61, "(8)9((21)33)"},
	} {
		require.True(t, tree.Delete(tc.key), "delete %d", tc.key)
		require.Equal(t, tc.expStr, tree.String(), "after deleting %d", tc.key)
		require.Nil(t, tree.Search(tc.key))
		require.NoError(t, tree.Check())
	}
	require.Equal(t, []int{8, 9, 21, 33}, collect(tree))
	require.Equal(t, 4, tree.Len())
	require.Equal(t, 2, tree.Leaves())
	require.Equal(t, 3, tree.Height())
}

func TestRotations(t *testing.T) {
	for _, tc := range []struct {
		name   string
		keys   []int
		expStr string
	}{
		{"right", []int{3, 2, 1}, "(1)2(3)"},
		{"left", []int{1, 2, 3}, "(1)2(3)"},
		{"left-right", []int{3, 1, 2}, "(1)2(3)"},
		{"right-left", []int{1, 3, 2}, "(1)2(3)"},
		{"none", []int{2, 1, 3}, "(1)2(3)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tree := NewOrdered[int]()
			for _, k := range tc.keys {
				tree.Insert(k)
			}
			require.Equal(t, tc.expStr, tree.String())
			root := tree.Root()
			require.Equal(t, 2, root.Key())
			require.Equal(t, 2, root.Height())
			require.Equal(t, 0, root.BalanceFactor())
			require.True(t, root.Left().IsLeaf())
			require.True(t, root.Right().IsLeaf())
		})
	}
}

// Removing from the short side of a node whose other child is balanced must
// use a single rotation.
func TestDeleteBalancedChildSingleRotation(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{5, 3, 8, 2, 4} {
		tree.Insert(k)
	}
	require.Equal(t, "((2)3(4))5(8)", tree.String())
	require.True(t, tree.Delete(8))
	require.Equal(t, "(2)3((4)5)", tree.String())
	require.NoError(t, tree.Check())
}

func TestDuplicates(t *testing.T) {
	tree := NewOrdered[string]()
	for _, k := range []string{"4201", "1254", "8608", "1639", "8950", "6740"} {
		require.True(t, tree.Insert(k))
	}
	before := collect(tree)
	beforeStr := tree.String()
	for _, k := range []string{"4201", "1254", "1254", "6740"} {
		require.False(t, tree.Insert(k))
	}
	require.Equal(t, before, collect(tree))
	require.Equal(t, beforeStr, tree.String())
	require.Equal(t, 6, tree.Len())

	require.False(t, tree.Delete("0000"))
	require.Equal(t, before, collect(tree))
	require.Equal(t, 6, tree.Len())
	require.NoError(t, tree.Check())
}

func TestSearch(t *testing.T) {
	tree := New(strings.Compare)
	for _, k := range []string{"dog", "cat", "elephant", "bird"} {
		tree.Insert(k)
	}
	n := tree.Search("cat")
	require.NotNil(t, n)
	require.Equal(t, "cat", n.Key())
	require.True(t, tree.Contains("bird"))
	require.False(t, tree.Contains("cow"))
	lo, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, "bird", lo)
	hi, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, "elephant", hi)
}

func TestIterator(t *testing.T) {
	tree := NewOrdered[int]()
	for i := 0; i < 100; i += 2 {
		tree.Insert(i)
	}
	it := tree.MakeIter()

	it.SeekGE(31)
	require.True(t, it.Valid())
	require.Equal(t, 32, it.Cur())
	it.Next()
	require.Equal(t, 34, it.Cur())

	it.SeekGE(40)
	require.Equal(t, 40, it.Cur())

	it.SeekGE(99)
	require.False(t, it.Valid())

	it.SeekLT(40)
	require.True(t, it.Valid())
	require.Equal(t, 38, it.Cur())
	it.Next()
	require.Equal(t, 40, it.Cur())

	it.SeekLT(0)
	require.False(t, it.Valid())

	it.Last()
	require.Equal(t, 98, it.Cur())
	it.Next()
	require.False(t, it.Valid())

	require.Equal(t, []int{94, 96, 98}, slices.Collect(tree.Ascend(93)))
}

func TestPostOrder(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k)
	}
	require.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, slices.Collect(tree.PostOrder()))
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, slices.Collect(tree.PreOrder()))
	require.Equal(t, 4, tree.Leaves())

	// Sequences are restartable and may be abandoned early.
	var firstTwo []int
	for k := range tree.InOrder() {
		firstTwo = append(firstTwo, k)
		if len(firstTwo) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, firstTwo)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tree))
}

func TestClear(t *testing.T) {
	tree := NewOrdered[int]()
	for i := range 10 {
		tree.Insert(i)
	}
	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.Len())
	require.True(t, tree.Insert(3))
	require.Equal(t, 1, tree.Len())
}

func TestRandomOperations(t *testing.T) {
	t.Parallel()
	const maxN = 1000
	for iter := 0; iter < 20; iter++ {
		N := rand.Intn(maxN)
		tree := NewOrdered[int]()
		present := make(map[int]struct{})
		for _, k := range rand.Perm(N) {
			require.True(t, tree.Insert(k))
			present[k] = struct{}{}
		}
		require.NoError(t, tree.Check())
		// The sparsest AVL trees are Fibonacci trees.
		require.LessOrEqual(t, tree.Height(), avlHeightBound(N))

		for i := 0; i < N; i++ {
			k := rand.Intn(2 * maxN)
			if rand.Float64() < .5 {
				_, ok := present[k]
				assert.Equal(t, !ok, tree.Insert(k))
				present[k] = struct{}{}
			} else {
				_, ok := present[k]
				assert.Equal(t, ok, tree.Delete(k))
				delete(present, k)
				assert.Nil(t, tree.Search(k))
			}
		}
		require.NoError(t, tree.Check())

		exp := make([]int, 0, len(present))
		for k := range present {
			exp = append(exp, k)
		}
		sort.Ints(exp)
		if len(exp) == 0 {
			exp = nil
		}
		require.Equal(t, exp, collect(tree))
		require.Equal(t, len(exp), tree.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	const N = 500
	tree := NewOrdered[int]()
	for _, k := range rand.Perm(N) {
		tree.Insert(k)
	}
	for i, k := range rand.Perm(N) {
		before := collect(tree)
		require.True(t, tree.Delete(k))
		require.Nil(t, tree.Search(k))
		if i%25 == 0 {
			require.NoError(t, tree.Check())
			idx, found := slices.BinarySearch(before, k)
			require.True(t, found)
			require.Equal(t, slices.Delete(before, idx, idx+1), collect(tree))
		}
	}
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Check())
}

// avlHeightBound returns the greatest height an AVL tree of n nodes can have.
func avlHeightBound(n int) int {
	h, a, b := 0, 1, 2 // one more than the fewest nodes of heights h and h+1
	for a <= n+1 {
		a, b = b, a+b
		h++
	}
	return h - 1
}
