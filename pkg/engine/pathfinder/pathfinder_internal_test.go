package pathfinder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lintang-b-s/unitpath/pkg"
	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
)

// lineWorld is a 1-dimensional strip of n tiles with east/west adjacency,
// flat move cost 1, optional fog, refuel tiles and a single stationary
// transport. Enough rules surface to drive every expansion operator.
type lineWorld struct {
	n        int32
	unknown  map[da.Index]bool
	refuel   map[da.Index]bool
	moveRate int32
	fuelCap  int32
	maxHP    int32
	regen    int32

	transportAt da.Index
	transportID da.UnitID
}

func newLineWorld(n int32) *lineWorld {
	return &lineWorld{
		n:           n,
		unknown:     make(map[da.Index]bool),
		refuel:      make(map[da.Index]bool),
		moveRate:    1,
		maxHP:       10,
		regen:       2,
		transportAt: da.INVALID_TILE_ID,
		transportID: da.NO_UNIT,
	}
}

func (w *lineWorld) ForAdjacent(tile da.Index, fn func(da.Index, pkg.Direction)) {
	if tile > 0 && !w.unknown[tile-1] {
		fn(tile-1, pkg.DIR8_WEST)
	}
	if int32(tile) < w.n-1 && !w.unknown[tile+1] {
		fn(tile+1, pkg.DIR8_EAST)
	}
}

func (w *lineWorld) Contains(tile da.Index) bool { return int32(tile) < w.n }

func (w *lineWorld) CanMoveTo(probe *Probe, target da.Index) bool {
	return probe.MovesLeft > 0
}

func (w *lineWorld) MoveCost(probe *Probe, target da.Index) int32 { return 1 }

func (w *lineWorld) TransporterFor(probe *Probe) (da.UnitID, bool) {
	if probe.Tile == w.transportAt {
		return w.transportID, true
	}
	return da.NO_UNIT, false
}

func (w *lineWorld) ActionEnabledOnUnit(action pkg.ActionID, probe *Probe, transport da.UnitID) bool {
	if transport != w.transportID {
		return false
	}
	switch action {
	case pkg.ACTION_TRANSPORT_BOARD:
		return probe.Tile == w.transportAt && probe.Transporter != transport
	case pkg.ACTION_TRANSPORT_EMBARK:
		return adjacentOnLine(probe.Tile, w.transportAt)
	case pkg.ACTION_TRANSPORT_ALIGHT:
		return probe.Transporter == transport
	}
	return false
}

func (w *lineWorld) ActionEnabledOnTile(action pkg.ActionID, probe *Probe, target da.Index) bool {
	if probe.Transporter == da.NO_UNIT || w.unknown[target] {
		return false
	}
	// Only the plain variant exists on the line.
	return action == pkg.ACTION_TRANSPORT_DISEMBARK1 && adjacentOnLine(probe.Tile, target)
}

func (w *lineWorld) ActionMPCost(action pkg.ActionID, probe *Probe) int32 { return 0 }

func (w *lineWorld) MoveRate(probe *Probe) int32 { return w.moveRate }

func (w *lineWorld) FuelCapacity(probe *Probe) int32 { return w.fuelCap }

func (w *lineWorld) Refueled(probe *Probe) bool { return w.refuel[probe.Tile] }

func (w *lineWorld) RestoreHitpoints(probe *Probe) int32 {
	return min(probe.HP+w.regen, w.maxHP)
}

func adjacentOnLine(a, b da.Index) bool {
	return a+1 == b || b+1 == a
}

func newTestFinder(t *testing.T, w *lineWorld, unit UnitState) *Pathfinder {
	t.Helper()
	pf, err := NewPathfinder(w, w, unit, zap.NewNop(), DefaultConfig())
	require.NoError(t, err)
	return pf
}

func freshUnit(tile da.Index) UnitState {
	return UnitState{ID: 1, Tile: tile, Transporter: da.NO_UNIT, MovesLeft: 1, HP: 10, Fuel: 0}
}

func TestTurnBoundaryDeathGeneratesNoVertex(t *testing.T) {
	w := newLineWorld(4)
	w.fuelCap = 2

	unit := freshUnit(0)
	unit.Fuel = 1
	pf := newTestFinder(t, w, unit)

	// A candidate with exhausted move points, one fuel and nowhere to refuel
	// must be silently discarded, never admitted and never an error.
	candidate := da.Vertex{
		Location: 1,
		Loaded:   da.NO_UNIT,
		Cost:     da.NewCost(0, 0, 10, 1),
	}
	pf.maybeInsertVertex(candidate)

	assert.Empty(t, pf.best[1], "dead candidate must not reach the table")
	assert.Equal(t, 1, pf.stats.Dropped)
	assert.Equal(t, 1, pf.queue.Size(), "only the root may be queued")
}

func TestTurnChangeAppliesUpkeep(t *testing.T) {
	for _, order := range []pkg.TurnChangeOrder{pkg.FUEL_THEN_HEALTH, pkg.HEALTH_THEN_FUEL} {
		w := newLineWorld(4)
		w.fuelCap = 3
		w.moveRate = 2

		unit := freshUnit(0)
		unit.Fuel = 3
		unit.HP = 5
		cfg := DefaultConfig()
		cfg.TurnChangeOrder = order
		pf, err := NewPathfinder(w, w, unit, zap.NewNop(), cfg)
		require.NoError(t, err)

		candidate := da.Vertex{
			Location: 1,
			Loaded:   da.NO_UNIT,
			Moved:    true,
			Cost:     da.NewCost(0, 0, 5, 3),
		}
		pf.maybeInsertVertex(candidate)

		require.Len(t, pf.best[1], 1)
		got := pf.best[1][0]
		assert.Equal(t, int32(1), got.Cost.Turns)
		assert.Equal(t, int32(2), got.Cost.MovesLeft, "moves reset to the full allowance")
		assert.Equal(t, int32(2), got.Cost.FuelLeft, "one fuel burned")
		assert.Equal(t, int32(7), got.Cost.Health, "regeneration applied")
		assert.False(t, got.Moved, "new turn clears the moved flag")
	}
}

func TestDominanceInvariantHoldsAfterEveryAdmission(t *testing.T) {
	w := newLineWorld(4)
	pf := newTestFinder(t, w, freshUnit(0))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		candidate := da.Vertex{
			Location: da.Index(rng.Int31n(4)),
			Loaded:   da.NO_UNIT,
			Moved:    rng.Intn(2) == 0,
			Cost: da.NewCost(rng.Int31n(4), 1+rng.Int31n(3),
				1+rng.Int31n(10), 1+rng.Int31n(5)),
		}
		pf.maybeInsertVertex(candidate)

		for loc, bucket := range pf.best {
			for x := 0; x < len(bucket); x++ {
				for y := x + 1; y < len(bucket); y++ {
					if bucket[x].SameBucket(*bucket[y]) {
						assert.False(t, bucket[x].Comparable(*bucket[y]),
							"tile %d holds comparable vertices %v and %v after admission %d",
							loc, bucket[x].Cost, bucket[y].Cost, i)
					}
				}
			}
		}
	}
}

func TestRunSearchIsIdempotentForSettledDestination(t *testing.T) {
	w := newLineWorld(6)
	pf := newTestFinder(t, w, freshUnit(0))

	first := pf.FindPath(5)
	require.False(t, first.Empty())
	expanded := pf.stats.Expanded

	require.True(t, pf.runSearch(5), "settled destination must report found immediately")
	assert.Equal(t, expanded, pf.stats.Expanded, "no vertex may be re-expanded")

	second := pf.FindPath(5)
	assert.Equal(t, first, second)
	assert.Equal(t, expanded, pf.stats.Expanded)
}

func TestExhaustionLeavesNoDestinationEntry(t *testing.T) {
	w := newLineWorld(5)
	w.unknown[3] = true // fog cuts the only route to tile 4

	pf := newTestFinder(t, w, freshUnit(0))

	path := pf.FindPath(4)
	assert.True(t, path.Empty())
	assert.True(t, pf.queue.IsEmpty(), "frontier must be exhausted")
	assert.Empty(t, pf.best[4], "unreachable destination must never enter the table")
}

func TestInvalidationResetsToSingleRoot(t *testing.T) {
	w := newLineWorld(6)
	pf := newTestFinder(t, w, freshUnit(0))
	require.False(t, pf.FindPath(5).Empty())

	moved := freshUnit(2)
	pf.UnitChanged(moved)

	require.Len(t, pf.best, 1, "table must hold exactly the new root's bucket")
	require.Len(t, pf.best[2], 1)
	root := pf.best[2][0]
	assert.Equal(t, da.Index(2), root.Location)
	assert.Nil(t, root.Parent)
	assert.Equal(t, 1, pf.queue.Size(), "frontier must hold exactly the new root")
	assert.Equal(t, Stats{}, pf.stats)
}

func TestEmbarkIntoAdjacentTransport(t *testing.T) {
	w := newLineWorld(3)
	w.transportAt = 1
	w.transportID = 99

	// The unit itself cannot enter tile 1; only the transport can carry it.
	pf, err := NewPathfinder(w, &noSelfMoveRules{w}, freshUnit(0), zap.NewNop(), DefaultConfig())
	require.NoError(t, err)

	path := pf.FindPath(1)
	require.Len(t, path, 1)
	step := path[0]
	assert.Equal(t, da.Index(1), step.Location)
	assert.Equal(t, int32(0), step.TurnArrived)
	assert.Equal(t, pkg.ORDER_PERFORM_ACTION, step.Order.Kind)
	assert.Equal(t, pkg.ACTION_TRANSPORT_EMBARK, step.Order.Action)

	// The vertex backing the step must carry the transport identity.
	arrived := pf.bestAt(1)
	require.NotNil(t, arrived)
	assert.Equal(t, da.UnitID(99), arrived.Loaded)
}

func TestFullMPWaitRefuelsBeforeCrossing(t *testing.T) {
	w := newLineWorld(5)
	w.moveRate = 2
	w.fuelCap = 2
	w.refuel[0] = true
	w.refuel[4] = true

	unit := freshUnit(0)
	unit.MovesLeft = 2
	unit.Fuel = 1
	pf := newTestFinder(t, w, unit)

	// With one fuel the unit dies mid-route; it must first forfeit a turn at
	// the refuel tile to top up, then fly two turns to tile 4.
	path := pf.FindPath(4)
	require.False(t, path.Empty())
	assert.Equal(t, pkg.ORDER_FULL_MP, path[0].Order.Kind,
		"the cheapest plan starts by waiting out the turn to refuel")
	assert.Equal(t, da.Index(4), path.Destination().Location)
}

// noSelfMoveRules wraps lineWorld but forbids regular movement, so only
// transport actions can advance the unit.
type noSelfMoveRules struct {
	*lineWorld
}

func (r *noSelfMoveRules) CanMoveTo(probe *Probe, target da.Index) bool { return false }
