// Package grid is an in-memory rectangular tile world implementing the
// pathfinder's map and rules interfaces: terrain move costs, fog of war,
// refuel tiles, transports with capacity, and a few unit classes. It stands
// in for the real game state in tests, demos and benchmarks.
package grid

import (
	"github.com/lintang-b-s/unitpath/pkg"
	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
	"github.com/lintang-b-s/unitpath/pkg/engine/pathfinder"
	"github.com/lintang-b-s/unitpath/pkg/util"
)

type Terrain uint8

const (
	TERRAIN_PLAINS Terrain = iota
	TERRAIN_FOREST
	TERRAIN_HILLS
	TERRAIN_OCEAN
)

// moveCost in move points per terrain kind, indexed by Terrain.
var terrainMoveCost = [...]int32{1, 2, 2, 1}

type Class uint8

const (
	CLASS_LAND Class = iota
	CLASS_SEA
	CLASS_AIR
)

// UnitType is the static side of a unit: class, movement allowance, fuel
// capacity (0 for units that don't burn fuel), hitpoints and per-turn
// regeneration, and transport capability.
type UnitType struct {
	Name         string
	Class        Class
	MoveRate     int32
	FuelCapacity int32
	MaxHP        int32
	RegenPerTurn int32
	CargoSlots   int32 // 0 means not a transport
}

// Unit is a concrete unit placed on the world.
type Unit struct {
	ID          da.UnitID
	Type        *UnitType
	Tile        da.Index
	Transporter da.UnitID
	Moved       bool
	MovesLeft   int32
	HP          int32
	Fuel        int32
	Stay        bool
}

// Snapshot converts the unit into the state struct the pathfinder consumes.
func (u *Unit) Snapshot() pathfinder.UnitState {
	return pathfinder.UnitState{
		ID:          u.ID,
		Tile:        u.Tile,
		Transporter: u.Transporter,
		Moved:       u.Moved,
		MovesLeft:   u.MovesLeft,
		HP:          u.HP,
		Fuel:        u.Fuel,
		Stay:        u.Stay,
	}
}

// World is a width x height tile grid with 8-neighbor adjacency. Tiles are
// addressed row-major by da.Index. A World is mutated only during setup;
// path queries treat it as read-only, so many finders may share one World.
type World struct {
	width, height int32
	terrain       []Terrain
	known         []bool
	refuel        []bool
	units         map[da.UnitID]*Unit
	nextUnitID    da.UnitID
}

func NewWorld(width, height int32) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"grid: world size %dx%d", width, height)
	}
	n := int(width * height)
	w := &World{
		width:   width,
		height:  height,
		terrain: make([]Terrain, n),
		known:   make([]bool, n),
		refuel:  make([]bool, n),
		units:   make(map[da.UnitID]*Unit),
	}
	for i := range w.known {
		w.known[i] = true
	}
	return w, nil
}

func (w *World) TileID(x, y int32) da.Index {
	return da.Index(y*w.width + x)
}

func (w *World) XY(tile da.Index) (int32, int32) {
	return int32(tile) % w.width, int32(tile) / w.width
}

func (w *World) SetTerrain(tile da.Index, t Terrain) {
	w.terrain[tile] = t
}

// SetUnknown hides a tile behind fog of war: adjacency enumeration will not
// yield it.
func (w *World) SetUnknown(tile da.Index) {
	w.known[tile] = false
}

// SetRefuel marks a tile (a city, airbase, or friendly carrier berth) that
// refuels fueled units at turn end.
func (w *World) SetRefuel(tile da.Index) {
	w.refuel[tile] = true
}

// AddUnit places a new unit on the world with full stats.
func (w *World) AddUnit(ut *UnitType, tile da.Index) *Unit {
	w.nextUnitID++
	u := &Unit{
		ID:          w.nextUnitID,
		Type:        ut,
		Tile:        tile,
		Transporter: da.NO_UNIT,
		MovesLeft:   ut.MoveRate,
		HP:          ut.MaxHP,
		Fuel:        ut.FuelCapacity,
	}
	w.units[u.ID] = u
	return u
}

func (w *World) Unit(id da.UnitID) *Unit {
	return w.units[id]
}

// dir8Offsets, indexed by pkg.Direction.
var dir8Offsets = [...][2]int32{
	{0, -1},  // north
	{1, -1},  // northeast
	{1, 0},   // east
	{1, 1},   // southeast
	{0, 1},   // south
	{-1, 1},  // southwest
	{-1, 0},  // west
	{-1, -1}, // northwest
}

// ForAdjacent yields the visible neighbors of tile. Tiles beyond the map
// border or hidden by fog are skipped.
func (w *World) ForAdjacent(tile da.Index, fn func(target da.Index, dir pkg.Direction)) {
	x, y := w.XY(tile)
	for d, off := range dir8Offsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx >= w.width || ny < 0 || ny >= w.height {
			continue
		}
		target := w.TileID(nx, ny)
		if !w.known[target] {
			continue
		}
		fn(target, pkg.Direction(d))
	}
}

func (w *World) Contains(tile da.Index) bool {
	return int(tile) < len(w.terrain)
}

// adjacent reports whether a and b are distinct tiles at chebyshev
// distance 1.
func (w *World) adjacent(a, b da.Index) bool {
	ax, ay := w.XY(a)
	bx, by := w.XY(b)
	dx, dy := ax-bx, ay-by
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return a != b && dx <= 1 && dy <= 1
}

func (w *World) passable(class Class, tile da.Index) bool {
	if !w.known[tile] {
		return false
	}
	switch class {
	case CLASS_LAND:
		return w.terrain[tile] != TERRAIN_OCEAN
	case CLASS_SEA:
		return w.terrain[tile] == TERRAIN_OCEAN
	default: // air
		return true
	}
}
