package pathfinder

import (
	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
)

// UnitState is the snapshot of the real unit a search is built from. The
// search never touches the unit itself; callers hand in a fresh snapshot on
// construction and again on UnitChanged.
type UnitState struct {
	ID          da.UnitID
	Tile        da.Index
	Transporter da.UnitID
	Moved       bool
	MovesLeft   int32
	HP          int32
	Fuel        int32

	// Stay marks a unit frozen in place by scenario rules; such a unit never
	// gets a path.
	Stay bool
}

// Probe is a disposable simulated unit handed to rules queries. It starts as
// a copy of the real unit's snapshot with the fields relevant to path
// finding overridden from a vertex, and never aliases the unit's storage.
type Probe struct {
	Unit        da.UnitID
	Tile        da.Index
	Transporter da.UnitID
	Moved       bool
	MovesLeft   int32
	HP          int32
	Fuel        int32
}

// probeFor builds a probe that reflects the hypothetical state v describes.
func (pf *Pathfinder) probeFor(v *da.Vertex) Probe {
	return Probe{
		Unit:        pf.unit.ID,
		Tile:        v.Location,
		Transporter: v.Loaded,
		Moved:       v.Moved,
		MovesLeft:   v.Cost.MovesLeft,
		HP:          v.Cost.Health,
		Fuel:        v.Cost.FuelLeft,
	}
}
