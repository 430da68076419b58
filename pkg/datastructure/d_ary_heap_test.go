package datastructure

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractsInTieBreakOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, d := range []int{2, 4} {
		h := NewdAryHeap[int](d)
		h.Preallocate(256)

		for i := 0; i < 256; i++ {
			c := NewCost(rng.Int31n(10), rng.Int31n(6), rng.Int31n(20), rng.Int31n(5))
			h.Insert(NewPriorityQueueNode(c, i))
		}
		require.Equal(t, 256, h.Size())

		prev, err := h.ExtractMin()
		require.NoError(t, err)
		for !h.IsEmpty() {
			cur, err := h.ExtractMin()
			require.NoError(t, err)
			require.False(t, cur.GetRank().Less(prev.GetRank()),
				"d=%d: extraction order not monotone: %v popped after %v",
				d, cur.GetRank(), prev.GetRank())
			prev = cur
		}
	}
}

func TestMinHeapGetMinDoesNotRemove(t *testing.T) {
	h := NewBinaryHeap[string]()
	h.Insert(NewPriorityQueueNode(NewCost(2, 0, 0, 0), "late"))
	h.Insert(NewPriorityQueueNode(NewCost(0, 3, 0, 0), "early"))

	top, err := h.GetMin()
	require.NoError(t, err)
	require.Equal(t, "early", top.GetItem())
	require.Equal(t, 2, h.Size())

	popped, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, "early", popped.GetItem())
	require.Equal(t, 1, h.Size())
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewFourAryHeap[int]()
	_, err := h.GetMin()
	require.ErrorIs(t, err, ErrEmptyHeap)
	_, err = h.ExtractMin()
	require.ErrorIs(t, err, ErrEmptyHeap)

	h.Insert(NewPriorityQueueNode(NewCost(0, 0, 0, 0), 1))
	h.Clear()
	require.True(t, h.IsEmpty())
}
