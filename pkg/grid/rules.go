package grid

import (
	"github.com/lintang-b-s/unitpath/pkg"
	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
	"github.com/lintang-b-s/unitpath/pkg/engine/pathfinder"
)

// World implements pathfinder.Rules directly: the probe's Unit field keys
// the static unit type, everything dynamic comes from the probe itself.

func (w *World) unitType(probe *pathfinder.Probe) *UnitType {
	u, ok := w.units[probe.Unit]
	if !ok {
		return nil
	}
	return u.Type
}

func (w *World) CanMoveTo(probe *pathfinder.Probe, target da.Index) bool {
	ut := w.unitType(probe)
	if ut == nil {
		return false
	}
	if probe.MovesLeft <= 0 {
		return false
	}
	return w.passable(ut.Class, target)
}

func (w *World) MoveCost(probe *pathfinder.Probe, target da.Index) int32 {
	ut := w.unitType(probe)
	if ut != nil && ut.Class == CLASS_AIR {
		// Flying ignores terrain.
		return 1
	}
	return terrainMoveCost[w.terrain[target]]
}

// TransporterFor finds a transport on the probe's tile with a free slot that
// can carry the probe's class.
func (w *World) TransporterFor(probe *pathfinder.Probe) (da.UnitID, bool) {
	ut := w.unitType(probe)
	if ut == nil {
		return da.NO_UNIT, false
	}
	for id, t := range w.units {
		if id == probe.Unit || t.Tile != probe.Tile || t.Type.CargoSlots == 0 {
			continue
		}
		if !w.canCarry(t.Type, ut) {
			continue
		}
		if w.loadedCount(id) >= t.Type.CargoSlots {
			continue
		}
		return id, true
	}
	return da.NO_UNIT, false
}

func (w *World) canCarry(transport, cargo *UnitType) bool {
	// Sea transports carry land units, carriers refuel and carry air units.
	switch transport.Class {
	case CLASS_SEA:
		return cargo.Class == CLASS_LAND || cargo.Class == CLASS_AIR
	default:
		return false
	}
}

func (w *World) loadedCount(transport da.UnitID) int32 {
	var n int32
	for _, u := range w.units {
		if u.Transporter == transport {
			n++
		}
	}
	return n
}

func (w *World) ActionEnabledOnUnit(action pkg.ActionID, probe *pathfinder.Probe,
	transport da.UnitID) bool {
	ut := w.unitType(probe)
	t, ok := w.units[transport]
	if ut == nil || !ok || transport == probe.Unit {
		return false
	}

	switch action {
	case pkg.ACTION_TRANSPORT_BOARD:
		// Boarding happens in place, and re-boarding the carrier the unit is
		// already inside is pointless.
		return t.Tile == probe.Tile && probe.Transporter != transport &&
			w.canCarry(t.Type, ut) && w.loadedCount(transport) < t.Type.CargoSlots
	case pkg.ACTION_TRANSPORT_EMBARK:
		if probe.MovesLeft <= 0 {
			return false
		}
		return w.adjacent(t.Tile, probe.Tile) &&
			w.canCarry(t.Type, ut) && w.loadedCount(transport) < t.Type.CargoSlots
	case pkg.ACTION_TRANSPORT_ALIGHT:
		// Stepping off in place requires ground the unit can stand on.
		return probe.Transporter == transport && w.passable(ut.Class, probe.Tile)
	}
	return false
}

func (w *World) ActionEnabledOnTile(action pkg.ActionID, probe *pathfinder.Probe,
	target da.Index) bool {
	ut := w.unitType(probe)
	if ut == nil || probe.Transporter == da.NO_UNIT || !w.known[target] {
		return false
	}
	if !w.adjacent(probe.Tile, target) {
		return false
	}

	switch action {
	case pkg.ACTION_TRANSPORT_DISEMBARK1:
		// Plain disembark onto terrain the unit can stand on.
		return w.passable(ut.Class, target)
	case pkg.ACTION_TRANSPORT_DISEMBARK2:
		// Disembark into a friendly refuel tile regardless of terrain.
		return w.refuel[target]
	}
	return false
}

func (w *World) ActionMPCost(action pkg.ActionID, probe *pathfinder.Probe) int32 {
	// This ruleset charges no move points for the transport action itself;
	// embark and disembark pay the target tile's move cost separately.
	return 0
}

// MoveRate recomputes the per-turn allowance from current stats: units below
// half hitpoints move at half rate, with a floor of one move point.
func (w *World) MoveRate(probe *pathfinder.Probe) int32 {
	ut := w.unitType(probe)
	if ut == nil {
		return 0
	}
	rate := ut.MoveRate
	if probe.HP*2 < ut.MaxHP {
		rate = max(rate/2, 1)
	}
	return rate
}

func (w *World) FuelCapacity(probe *pathfinder.Probe) int32 {
	ut := w.unitType(probe)
	if ut == nil {
		return 0
	}
	return ut.FuelCapacity
}

// Refueled reports whether the probe sits somewhere fuel is replenished at
// turn end: a refuel tile, or inside a transport.
func (w *World) Refueled(probe *pathfinder.Probe) bool {
	return w.refuel[probe.Tile] || probe.Transporter != da.NO_UNIT
}

// RestoreHitpoints applies one turn of regeneration: base regen everywhere,
// doubled on refuel tiles (barracks heal faster), capped at the type
// maximum.
func (w *World) RestoreHitpoints(probe *pathfinder.Probe) int32 {
	ut := w.unitType(probe)
	if ut == nil {
		return probe.HP
	}
	regen := ut.RegenPerTurn
	if w.refuel[probe.Tile] {
		regen *= 2
	}
	return min(probe.HP+regen, ut.MaxHP)
}
