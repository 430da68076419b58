// Package pathfinder computes the cheapest order sequence that carries one
// unit to a destination tile. Cheapest is a four-criteria, partially ordered
// quantity (turns, moves left, health, fuel), so the search is a Dijkstra
// generalized to Pareto dominance: per tile it keeps every currently
// undominated vertex, not a single distance label. The search state is long
// lived; querying a second destination resumes where the previous query
// stopped, and UnitChanged resets everything from a fresh unit snapshot.
package pathfinder

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/lintang-b-s/unitpath/pkg"
	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
	"github.com/lintang-b-s/unitpath/pkg/util"
)

const DEFAULT_PATH_CACHE_SIZE = 128

// Config carries the knobs the ruleset leaves open.
type Config struct {
	// TurnChangeOrder picks whether fuel or hitpoints are settled first at a
	// turn boundary. The game rules do not fix this order.
	TurnChangeOrder pkg.TurnChangeOrder

	// HeapArity is the d of the frontier d-ary heap.
	HeapArity int

	// PathCacheSize bounds the per-destination found-path cache.
	PathCacheSize int
}

func DefaultConfig() Config {
	return Config{
		TurnChangeOrder: pkg.FUEL_THEN_HEALTH,
		HeapArity:       4,
		PathCacheSize:   DEFAULT_PATH_CACHE_SIZE,
	}
}

// Pathfinder owns the frontier and the best-known table for one unit. It is
// single threaded: no internal locking, no reentrancy, every query runs to
// completion within the call.
type Pathfinder struct {
	world  TileMap
	rules  Rules
	unit   UnitState
	logger *zap.Logger

	queue *da.MinHeap[da.Vertex]

	// best maps a tile to its Pareto front of vertices. The table owns the
	// vertices; the frontier only holds value copies and parents only point
	// at table-owned entries.
	best map[da.Index][]*da.Vertex

	pathCache *lru.Cache[da.Index, da.Path]

	turnChangeOrder pkg.TurnChangeOrder
	stats           Stats
}

func NewPathfinder(world TileMap, rules Rules, unit UnitState, logger *zap.Logger,
	cfg Config) (*Pathfinder, error) {
	if world == nil {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "pathfinder: nil tile map")
	}
	if rules == nil {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "pathfinder: nil rules")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cacheSize := cfg.PathCacheSize
	if cacheSize <= 0 {
		cacheSize = DEFAULT_PATH_CACHE_SIZE
	}
	pathCache, err := lru.New[da.Index, da.Path](cacheSize)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "pathfinder: path cache")
	}

	arity := cfg.HeapArity
	if arity < 2 {
		arity = 4
	}

	pf := &Pathfinder{
		world:           world,
		rules:           rules,
		unit:            unit,
		logger:          logger,
		queue:           da.NewdAryHeap[da.Vertex](arity),
		best:            make(map[da.Index][]*da.Vertex),
		pathCache:       pathCache,
		turnChangeOrder: cfg.TurnChangeOrder,
	}
	pf.insertInitialVertex()
	return pf, nil
}

// insertInitialVertex seeds the search with the unit's current state.
func (pf *Pathfinder) insertInitialVertex() {
	v := da.Vertex{
		Location: pf.unit.Tile,
		Loaded:   pf.unit.Transporter,
		Moved:    pf.unit.Moved,
		Cost:     da.NewCost(0, pf.unit.MovesLeft, pf.unit.HP, pf.unit.Fuel),
	}

	owned := new(da.Vertex)
	*owned = v
	pf.best[v.Location] = append(pf.best[v.Location], owned)
	pf.queue.Insert(da.NewPriorityQueueNode(v.Cost, v))
}

// UnitChanged invalidates all search state: the unit died, moved by other
// means, or changed stats, so every settled vertex is suspect. The frontier,
// the table and the path cache are discarded and a fresh root is inserted
// from the new snapshot.
func (pf *Pathfinder) UnitChanged(unit UnitState) {
	pf.unit = unit
	pf.best = make(map[da.Index][]*da.Vertex)
	pf.queue.Clear()
	pf.pathCache.Purge()
	pf.stats = Stats{}
	pf.insertInitialVertex()
	pf.logger.Debug("pathfinder state invalidated",
		zap.Int32("unit", int32(unit.ID)), zap.Uint32("tile", uint32(unit.Tile)))
}

// Stats returns the counters accumulated since construction or the last
// invalidation.
func (pf *Pathfinder) Stats() Stats {
	return pf.stats
}

// applyTurnChange advances insert across a turn boundary, simulating the
// unit's upkeep on probe. Returns false when the unit would not survive the
// turn (out of fuel, or hitpoints reaching zero); no vertex is generated in
// that case, which silently prunes the search space.
func (pf *Pathfinder) applyTurnChange(insert *da.Vertex, probe *Probe) bool {
	insert.Cost.Turns++
	insert.Cost.MovesLeft = pf.rules.MoveRate(probe)

	switch pf.turnChangeOrder {
	case pkg.HEALTH_THEN_FUEL:
		return pf.settleHealth(insert, probe) && pf.settleFuel(insert, probe)
	default:
		return pf.settleFuel(insert, probe) && pf.settleHealth(insert, probe)
	}
}

func (pf *Pathfinder) settleFuel(insert *da.Vertex, probe *Probe) bool {
	if pf.rules.FuelCapacity(probe) == 0 {
		return true
	}
	if pf.rules.Refueled(probe) {
		probe.Fuel = pf.rules.FuelCapacity(probe)
		insert.Cost.FuelLeft = probe.Fuel
		return true
	}
	if probe.Fuel <= 1 {
		// The unit runs dry, don't generate a vertex.
		return false
	}
	probe.Fuel--
	insert.Cost.FuelLeft--
	return true
}

func (pf *Pathfinder) settleHealth(insert *da.Vertex, probe *Probe) bool {
	// Regeneration matters: a path may require the unit to heal before it
	// can continue, and healing is faster in the right places.
	hp := pf.rules.RestoreHitpoints(probe)
	if hp <= 0 {
		// Unit dies, don't let the caller send it there.
		return false
	}
	probe.HP = hp
	insert.Cost.Health = hp
	return true
}

// maybeInsertVertex offers a candidate to the best-known table. A candidate
// whose move points are exhausted first crosses the turn boundary, which may
// kill it. A surviving candidate is admitted only if no existing vertex in
// its bucket is already equal or better; admission evicts every strictly
// worse entry so the bucket stays a Pareto front.
func (pf *Pathfinder) maybeInsertVertex(v da.Vertex) {
	insert := v

	if v.Cost.MovesLeft <= 0 {
		probe := pf.probeFor(&v)
		if !pf.applyTurnChange(&insert, &probe) {
			pf.stats.Dropped++
			return
		}
		// New turn, no move used yet.
		insert.Moved = false
	}

	bucket := pf.best[insert.Location]
	doInsert := true
	kept := bucket[:0]
	for i, e := range bucket {
		if e.Comparable(insert) {
			if insert.Cost.Less(e.Cost) {
				// The new candidate is strictly better, evict the old one.
				continue
			}
			// Something equal or better is already known; keep the rest of
			// the bucket untouched.
			doInsert = false
			kept = append(kept, bucket[i:]...)
			break
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(bucket); i++ {
		bucket[i] = nil
	}
	pf.best[insert.Location] = kept

	if !doInsert {
		pf.stats.Rejected++
		return
	}

	owned := new(da.Vertex)
	*owned = insert
	pf.best[insert.Location] = append(pf.best[insert.Location], owned)
	pf.queue.Insert(da.NewPriorityQueueNode(insert.Cost, insert))
	pf.stats.Admitted++
}

// attemptMove opens vertices for regular moves to adjacent visible tiles.
// Loaded units cannot move on their own.
func (pf *Pathfinder) attemptMove(source *da.Vertex) {
	if source.Loaded != da.NO_UNIT {
		return
	}

	probe := pf.probeFor(source)

	pf.world.ForAdjacent(source.Location, func(target da.Index, dir pkg.Direction) {
		if !pf.rules.CanMoveTo(&probe, target) {
			return
		}
		moveCost := min(pf.rules.MoveCost(&probe, target), probe.MovesLeft)

		next := *source
		next.Location = target
		next.Moved = true
		next.Cost.MovesLeft -= moveCost
		next.Parent = source
		next.Order = da.Order{Kind: pkg.ORDER_MOVE, Dir: dir, Target: target}
		pf.maybeInsertVertex(next)
	})
}

// attemptFullMP opens the wait-out-the-turn vertex: identical to the source
// except that the remaining move points are forfeited, forcing the turn
// change to run. A last resort that can buy the unit hitpoints or fuel it
// needs to continue.
func (pf *Pathfinder) attemptFullMP(source *da.Vertex) {
	next := *source
	next.Cost.MovesLeft = 0 // trigger the turn change
	next.Parent = source
	next.Order = da.Order{Kind: pkg.ORDER_FULL_MP, Dir: pkg.DIR8_ORIGIN, Target: source.Location}
	pf.maybeInsertVertex(next)
}

// attemptLoad opens vertices that put the unit inside a transport: boarding
// one on its own tile, or embarking into one on an adjacent tile. Boarding
// is attempted even when already loaded, so transport chains work.
func (pf *Pathfinder) attemptLoad(source *da.Vertex) {
	probe := pf.probeFor(source)

	if transport, ok := pf.rules.TransporterFor(&probe); ok &&
		pf.rules.ActionEnabledOnUnit(pkg.ACTION_TRANSPORT_BOARD, &probe, transport) {
		next := source.ChildForAction(pkg.ACTION_TRANSPORT_BOARD, source.Location,
			pf.rules.ActionMPCost(pkg.ACTION_TRANSPORT_BOARD, &probe))
		next.Loaded = transport
		pf.maybeInsertVertex(next)
	}

	pf.world.ForAdjacent(source.Location, func(target da.Index, dir pkg.Direction) {
		probe.Tile = target
		transport, ok := pf.rules.TransporterFor(&probe)
		// Reset the probe; the embark legality check measures range from the
		// unit's real position.
		probe.Tile = source.Location
		if !ok || !pf.rules.ActionEnabledOnUnit(pkg.ACTION_TRANSPORT_EMBARK, &probe, transport) {
			return
		}

		next := source.ChildForAction(pkg.ACTION_TRANSPORT_EMBARK, target,
			pf.rules.ActionMPCost(pkg.ACTION_TRANSPORT_EMBARK, &probe))
		next.Location = target
		next.Moved = true
		next.Loaded = transport
		next.Cost.MovesLeft -= pf.rules.MoveCost(&probe, target)
		pf.maybeInsertVertex(next)
	})
}

// attemptUnload opens vertices that take the unit out of its transport:
// alighting in place, or disembarking onto an adjacent tile. The ruleset
// models two distinct disembark actions, both are checked.
func (pf *Pathfinder) attemptUnload(source *da.Vertex) {
	if source.Loaded == da.NO_UNIT {
		return
	}

	probe := pf.probeFor(source)

	if pf.rules.ActionEnabledOnUnit(pkg.ACTION_TRANSPORT_ALIGHT, &probe, probe.Transporter) {
		next := source.ChildForAction(pkg.ACTION_TRANSPORT_ALIGHT, source.Location,
			pf.rules.ActionMPCost(pkg.ACTION_TRANSPORT_ALIGHT, &probe))
		next.Loaded = da.NO_UNIT
		pf.maybeInsertVertex(next)
	}

	pf.world.ForAdjacent(source.Location, func(target da.Index, dir pkg.Direction) {
		for _, action := range [...]pkg.ActionID{pkg.ACTION_TRANSPORT_DISEMBARK1, pkg.ACTION_TRANSPORT_DISEMBARK2} {
			if !pf.rules.ActionEnabledOnTile(action, &probe, target) {
				continue
			}
			next := source.ChildForAction(action, target, pf.rules.ActionMPCost(action, &probe))
			next.Location = target
			next.Moved = true
			next.Loaded = da.NO_UNIT
			next.Cost.MovesLeft -= pf.rules.MoveCost(&probe, target)
			pf.maybeInsertVertex(next)
		}
	})
}

// resolve finds the table-owned vertex equal to the popped frontier copy, or
// nil when the copy went stale because a better vertex superseded it while
// it sat in the queue.
func (pf *Pathfinder) resolve(v da.Vertex) *da.Vertex {
	for _, e := range pf.best[v.Location] {
		if e.Equal(v) {
			return e
		}
	}
	return nil
}

// bestAt returns the lowest-cost table vertex at tile by the tie-break
// order, or nil when the tile has not been reached.
func (pf *Pathfinder) bestAt(tile da.Index) *da.Vertex {
	var best *da.Vertex
	for _, e := range pf.best[tile] {
		if best == nil || e.Cost.Less(best.Cost) {
			best = e
		}
	}
	return best
}

// runSearch expands the frontier until destination is reached or the
// frontier empties. A destination vertex is reported found but left in the
// queue, so a later, farther query resumes without losing it.
func (pf *Pathfinder) runSearch(destination da.Index) bool {
	// A previous query may already have settled the destination. The answer
	// is stable once nothing cheaper is left in the queue.
	if settled := pf.bestAt(destination); settled != nil {
		top, err := pf.queue.GetMin()
		if err != nil || !top.GetRank().Less(settled.Cost) {
			return true
		}
	}

	for !pf.queue.IsEmpty() {
		top, _ := pf.queue.GetMin()
		v := top.GetItem()

		// Keep an arrived vertex in the queue: its neighbors still need to
		// be generated if the search is expanded later.
		if v.Location == destination {
			return true
		}

		pf.queue.ExtractMin()

		// An equivalent or better vertex may have been processed while this
		// copy was queued; only table-owned vertices are expanded.
		source := pf.resolve(v)
		if source == nil {
			pf.stats.Stale++
			continue
		}

		pf.stats.Expanded++
		pf.attemptMove(source)
		pf.attemptFullMP(source)
		pf.attemptLoad(source)
		pf.attemptUnload(source)
	}

	return false
}

// FindPath runs the search toward destination and reconstructs the cheapest
// order sequence. A nil path means no path: the unit is frozen, already
// there, or the destination is unreachable. Infeasibility is never an error.
func (pf *Pathfinder) FindPath(destination da.Index) da.Path {
	if destination == da.INVALID_TILE_ID || !pf.world.Contains(destination) {
		pf.logger.Warn("pathfinder: invalid destination tile",
			zap.Uint32("destination", uint32(destination)))
		return nil
	}

	if pf.unit.Stay {
		return nil
	}
	if pf.unit.Tile == destination {
		return nil
	}

	if cached, ok := pf.pathCache.Get(destination); ok {
		return cached
	}

	if !pf.runSearch(destination) {
		return nil
	}

	// Several incomparable vertices may coexist at the destination; hand the
	// caller the one the tie-break order likes best.
	best := pf.bestAt(destination)

	steps := make([]da.Step, 0)
	for v := best; v.Parent != nil; v = v.Parent {
		// The parent's counter is the turn during which this step's order is
		// executed; the vertex's own counter is already past the turn change
		// when the step exhausted the unit's move points.
		steps = append(steps, da.Step{
			Location:    v.Location,
			TurnArrived: v.Parent.Cost.Turns,
			Order:       v.Order,
		})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	path := da.Path(steps)
	pf.pathCache.Add(destination, path)
	pf.logger.Debug("path found",
		zap.Uint32("destination", uint32(destination)),
		zap.Int("steps", len(path)),
		zap.Int32("turns", path.Turns()),
		zap.Int("expanded", pf.stats.Expanded))
	return path
}
