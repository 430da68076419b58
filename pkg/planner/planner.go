// Package planner runs path queries for many units against one shared
// world. Each unit gets its own Pathfinder instance, so the per-instance
// no-sharing rule holds; the world itself is read-only during queries.
package planner

import (
	"go.uber.org/zap"

	"github.com/lintang-b-s/unitpath/pkg/concurrent"
	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
	"github.com/lintang-b-s/unitpath/pkg/engine/pathfinder"
)

// Request asks for a path carrying one unit to Destination.
type Request struct {
	Unit        pathfinder.UnitState
	Destination da.Index
}

// Result pairs the unit with its path (nil when no path exists) and the
// search counters of the query.
type Result struct {
	Unit  da.UnitID
	Path  da.Path
	Stats pathfinder.Stats
}

type Planner struct {
	world   pathfinder.TileMap
	rules   pathfinder.Rules
	logger  *zap.Logger
	cfg     pathfinder.Config
	workers int
}

func NewPlanner(world pathfinder.TileMap, rules pathfinder.Rules, logger *zap.Logger,
	cfg pathfinder.Config, workers int) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Planner{
		world:   world,
		rules:   rules,
		logger:  logger,
		cfg:     cfg,
		workers: workers,
	}
}

// PlanAll computes a path per request through the worker pool. Result order
// is not the request order.
func (p *Planner) PlanAll(requests []Request) []Result {
	pool := concurrent.NewWorkerPool[Request, Result](p.workers, len(requests))

	pool.Start(func(req Request) Result {
		pf, err := pathfinder.NewPathfinder(p.world, p.rules, req.Unit, p.logger, p.cfg)
		if err != nil {
			p.logger.Error("planner: pathfinder construction failed",
				zap.Int32("unit", int32(req.Unit.ID)), zap.Error(err))
			return Result{Unit: req.Unit.ID}
		}
		path := pf.FindPath(req.Destination)
		return Result{Unit: req.Unit.ID, Path: path, Stats: pf.Stats()}
	})

	for _, req := range requests {
		pool.AddJob(req)
	}
	pool.Close()
	pool.Wait()

	results := make([]Result, 0, len(requests))
	for res := range pool.CollectResults() {
		results = append(results, res)
	}
	return results
}
