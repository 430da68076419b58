package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostComparable(t *testing.T) {
	testCases := []struct {
		name string
		a, b Cost
		want bool
	}{
		{
			name: "equal costs are comparable",
			a:    NewCost(1, 2, 10, 4),
			b:    NewCost(1, 2, 10, 4),
			want: true,
		},
		{
			name: "weak dominance on every criterion",
			a:    NewCost(1, 3, 10, 4),
			b:    NewCost(2, 3, 9, 4),
			want: true,
		},
		{
			name: "fewer turns but less fuel is ambiguous",
			a:    NewCost(1, 2, 10, 2),
			b:    NewCost(2, 2, 10, 4),
			want: false,
		},
		{
			name: "more moves but lower health is ambiguous",
			a:    NewCost(1, 3, 5, 4),
			b:    NewCost(1, 2, 10, 4),
			want: false,
		},
		{
			name: "strictly worse on all criteria",
			a:    NewCost(3, 0, 1, 1),
			b:    NewCost(1, 2, 10, 4),
			want: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Comparable(tt.b); got != tt.want {
				t.Errorf("Comparable(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// comparability is symmetric
			if got := tt.b.Comparable(tt.a); got != tt.want {
				t.Errorf("Comparable(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestCostLessTieBreakOrder(t *testing.T) {
	base := NewCost(2, 3, 10, 4)

	// fewer turns wins first
	assert.True(t, NewCost(1, 0, 0, 0).Less(base))
	// then more moves left
	assert.True(t, NewCost(2, 4, 0, 0).Less(base))
	assert.False(t, NewCost(2, 2, 99, 99).Less(base))
	// then more health
	assert.True(t, NewCost(2, 3, 11, 0).Less(base))
	// then more fuel
	assert.True(t, NewCost(2, 3, 10, 5).Less(base))

	// strictness
	assert.False(t, base.Less(base))
	assert.True(t, base.Equal(base))
}

func TestVertexBucketsAndEquality(t *testing.T) {
	a := Vertex{Location: 7, Loaded: NO_UNIT, Moved: false, Cost: NewCost(0, 3, 10, 0)}

	sameBucket := a
	sameBucket.Cost = NewCost(1, 3, 10, 0)
	assert.True(t, a.SameBucket(sameBucket))
	assert.True(t, a.Comparable(sameBucket))
	assert.False(t, a.Equal(sameBucket))

	otherTile := a
	otherTile.Location = 8
	assert.False(t, a.Comparable(otherTile), "different locations are never comparable")

	loaded := a
	loaded.Loaded = 3
	assert.False(t, a.Comparable(loaded), "loaded and unloaded states are distinct")

	moved := a
	moved.Moved = true
	assert.False(t, a.Comparable(moved), "moved flag splits the bucket")

	// equality ignores parent and order
	withParent := a
	withParent.Parent = &sameBucket
	assert.True(t, a.Equal(withParent))
}

func TestVertexIncomparableCostsInSameBucket(t *testing.T) {
	a := Vertex{Location: 7, Cost: NewCost(1, 2, 10, 2), Loaded: NO_UNIT}
	b := Vertex{Location: 7, Cost: NewCost(2, 2, 10, 4), Loaded: NO_UNIT}
	assert.True(t, a.SameBucket(b))
	assert.False(t, a.Comparable(b), "trading turns for fuel must keep both vertices")
}
