package pathfinder

import (
	"github.com/lintang-b-s/unitpath/pkg"
	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
)

// TileMap is the read-only adjacency view of the game map. Implementations
// must not yield neighbors whose terrain is unknown to the unit's owner
// (fog of war): the search treats unseen tiles as nonexistent.
type TileMap interface {
	// ForAdjacent calls fn for every visible neighbor of tile with the
	// direction that leads there.
	ForAdjacent(tile da.Index, fn func(target da.Index, dir pkg.Direction))

	// Contains reports whether tile is a valid tile id on this map.
	Contains(tile da.Index) bool
}

// Rules is the read-only slice of the game rules engine the search consults:
// movement legality and cost, action legality and cost, and the unit
// capability queries needed to simulate turn boundaries. Every query takes a
// probe, never the real unit, and must not mutate global state.
type Rules interface {
	// CanMoveTo reports whether the probe may perform a regular move onto
	// target from its current tile.
	CanMoveTo(probe *Probe, target da.Index) bool

	// MoveCost returns the move-point price of stepping onto target.
	MoveCost(probe *Probe, target da.Index) int32

	// ActionEnabledOnUnit reports whether the probe may perform action on the
	// given transport unit (board, embark, alight).
	ActionEnabledOnUnit(action pkg.ActionID, probe *Probe, transport da.UnitID) bool

	// ActionEnabledOnTile reports whether the probe may perform action
	// targeting the given tile (the two disembark variants).
	ActionEnabledOnTile(action pkg.ActionID, probe *Probe, target da.Index) bool

	// ActionMPCost returns the move points the probe pays for action itself,
	// excluding any terrain move cost.
	ActionMPCost(action pkg.ActionID, probe *Probe) int32

	// TransporterFor returns a transport on the probe's tile that could carry
	// it, if any.
	TransporterFor(probe *Probe) (da.UnitID, bool)

	// MoveRate returns the probe's full per-turn movement allowance, which
	// may depend on its current stats.
	MoveRate(probe *Probe) int32

	// FuelCapacity returns the probe's fuel capacity, or 0 for units that do
	// not burn fuel.
	FuelCapacity(probe *Probe) int32

	// Refueled reports whether the probe is somewhere it refuels at turn end.
	Refueled(probe *Probe) bool

	// RestoreHitpoints returns the probe's hitpoints after one turn of
	// regeneration or attrition at its current position.
	RestoreHitpoints(probe *Probe) int32
}
