package datastructure

import (
	"github.com/lintang-b-s/unitpath/pkg"
)

// Index identifies a tile on the game map.
type Index uint32

// UnitID identifies a unit. NO_UNIT marks "not transported".
type UnitID int32

const (
	INVALID_TILE_ID Index  = ^Index(0)
	NO_UNIT         UnitID = -1
)

// Order describes the action that produced a search step: a move in some
// direction, a full-MP wait, or a targeted action (board, embark, alight,
// disembark).
type Order struct {
	Kind   pkg.OrderKind
	Dir    pkg.Direction
	Action pkg.ActionID
	Target Index
}

// Vertex is a point in search space: a hypothetical unit state reachable by
// some sequence of orders, keyed by (Location, Loaded, Moved). Parent points
// at the table-owned vertex this one was generated from; it is nil only for
// the search root.
type Vertex struct {
	Location Index
	Loaded   UnitID
	Moved    bool
	Cost     Cost
	Parent   *Vertex
	Order    Order
}

// SameBucket reports whether v and o live in the same best-known bucket,
// i.e. describe the same (tile, transporter, moved-this-turn) situation.
func (v Vertex) SameBucket(o Vertex) bool {
	return v.Location == o.Location && v.Loaded == o.Loaded && v.Moved == o.Moved
}

// Comparable reports whether one of v and o is unambiguously better than the
// other. Vertices in different buckets are never comparable and must be kept
// as distinct search states. Comparability is not transitive.
func (v Vertex) Comparable(o Vertex) bool {
	return v.SameBucket(o) && v.Cost.Comparable(o.Cost)
}

// Equal matches bucket key and cost. Parent and Order are deliberately left
// out: the frontier stores copies and re-resolves the table-owned vertex
// through this comparison.
func (v Vertex) Equal(o Vertex) bool {
	return v.SameBucket(o) && v.Cost.Equal(o.Cost)
}

// ChildForAction builds a successor vertex that performs a targeted action.
// The child starts as a copy of v with the action's move-point price already
// subtracted; the caller adjusts Location, Loaded and Moved as the action
// requires.
func (v *Vertex) ChildForAction(action pkg.ActionID, target Index, mpCost int32) Vertex {
	child := *v
	child.Parent = v
	child.Order = Order{
		Kind:   pkg.ORDER_PERFORM_ACTION,
		Dir:    pkg.DIR8_ORIGIN,
		Action: action,
		Target: target,
	}
	child.Cost.MovesLeft -= mpCost
	return child
}
