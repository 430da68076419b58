// pathdemo builds a small demo world and runs a handful of path queries
// concurrently: a land unit crossing a strait by transport, a fighter that
// has to plan around its fuel, and a batch of infantry through the planner.
package main

import (
	"flag"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
	"github.com/lintang-b-s/unitpath/pkg/engine/pathfinder"
	"github.com/lintang-b-s/unitpath/pkg/grid"
	"github.com/lintang-b-s/unitpath/pkg/logger"
	"github.com/lintang-b-s/unitpath/pkg/planner"
	"github.com/lintang-b-s/unitpath/pkg/util"
)

var (
	configPath = flag.String("config_path", "./data", "directory containing config.yaml")
)

var (
	infantryType = &grid.UnitType{Name: "infantry", Class: grid.CLASS_LAND,
		MoveRate: 1, MaxHP: 20, RegenPerTurn: 2}
	fighterType = &grid.UnitType{Name: "fighter", Class: grid.CLASS_AIR,
		MoveRate: 6, FuelCapacity: 2, MaxHP: 20, RegenPerTurn: 2}
	transportType = &grid.UnitType{Name: "transport", Class: grid.CLASS_SEA,
		MoveRate: 4, MaxHP: 30, RegenPerTurn: 3, CargoSlots: 4}
)

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := pathfinder.DefaultConfig()
	workers := 4
	if ruleset, err := util.ReadConfig(*configPath); err != nil {
		log.Warn("no ruleset config, using defaults", zap.Error(err))
	} else {
		cfg.TurnChangeOrder = ruleset.TurnOrder()
		cfg.HeapArity = ruleset.HeapArity
		cfg.PathCacheSize = ruleset.PathCacheSize
		workers = ruleset.PlannerWorkers
	}

	world := buildWorld(log)

	infantry := world.AddUnit(infantryType, world.TileID(1, 5))
	fighter := world.AddUnit(fighterType, world.TileID(2, 2))
	world.AddUnit(transportType, world.TileID(4, 5))

	var g errgroup.Group

	g.Go(func() error {
		// Across the strait: only reachable by transport.
		return runQuery(log, world, cfg, infantry.Snapshot(), world.TileID(8, 5), "infantry")
	})
	g.Go(func() error {
		// Long flight: the fighter must stage through the airbase.
		return runQuery(log, world, cfg, fighter.Snapshot(), world.TileID(8, 1), "fighter")
	})
	if err := g.Wait(); err != nil {
		log.Fatal("demo query failed", zap.Error(err))
	}

	runBatch(log, world, cfg, workers)
}

// buildWorld lays out a 10x8 map: land on both sides of a one-tile ocean
// strait at x=4, an airbase at (8,1), fog in the north-east corner. The
// strait is one tile wide because a parked transport only ferries across a
// single tile: the transport itself does not move during the search.
func buildWorld(log *zap.Logger) *grid.World {
	world, err := grid.NewWorld(10, 8)
	if err != nil {
		log.Fatal("build world", zap.Error(err))
	}
	for y := int32(0); y < 8; y++ {
		world.SetTerrain(world.TileID(4, y), grid.TERRAIN_OCEAN)
	}
	world.SetRefuel(world.TileID(8, 1))
	world.SetRefuel(world.TileID(2, 2))
	world.SetUnknown(world.TileID(9, 0))
	return world
}

func runQuery(log *zap.Logger, world *grid.World, cfg pathfinder.Config,
	unit pathfinder.UnitState, destination da.Index, name string) error {
	pf, err := pathfinder.NewPathfinder(world, world, unit, log, cfg)
	if err != nil {
		return err
	}

	path := pf.FindPath(destination)
	if path.Empty() {
		log.Info("no path", zap.String("unit", name),
			zap.Uint32("destination", uint32(destination)))
		return nil
	}

	log.Info("path found", zap.String("unit", name),
		zap.Uint32("destination", uint32(destination)),
		zap.Int("steps", len(path)), zap.Int32("turns", path.Turns()),
		zap.Int("expanded", pf.Stats().Expanded))
	for _, step := range path {
		log.Debug("step", zap.Uint32("tile", uint32(step.Location)),
			zap.Int32("turn", step.TurnArrived),
			zap.String("order", step.Order.Kind.String()),
			zap.String("action", step.Order.Action.String()))
	}
	return nil
}

func runBatch(log *zap.Logger, world *grid.World, cfg pathfinder.Config, workers int) {
	requests := make([]planner.Request, 0)
	for y := int32(0); y < 4; y++ {
		u := world.AddUnit(infantryType, world.TileID(0, y))
		requests = append(requests, planner.Request{
			Unit:        u.Snapshot(),
			Destination: world.TileID(3, 7-y),
		})
	}

	pl := planner.NewPlanner(world, world, log, cfg, workers)
	for _, res := range pl.PlanAll(requests) {
		log.Info("batch result", zap.Int32("unit", int32(res.Unit)),
			zap.Int("steps", len(res.Path)), zap.Int("expanded", res.Stats.Expanded))
	}
}
