package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	da "github.com/lintang-b-s/unitpath/pkg/datastructure"
	"github.com/lintang-b-s/unitpath/pkg/engine/pathfinder"
	"github.com/lintang-b-s/unitpath/pkg/grid"
	"github.com/lintang-b-s/unitpath/pkg/planner"
)

var infantryType = &grid.UnitType{Name: "infantry", Class: grid.CLASS_LAND,
	MoveRate: 1, MaxHP: 20, RegenPerTurn: 2}

func TestPlanAllComputesOnePathPerUnit(t *testing.T) {
	world, err := grid.NewWorld(6, 6)
	require.NoError(t, err)

	requests := make([]planner.Request, 0)
	for y := int32(0); y < 3; y++ {
		u := world.AddUnit(infantryType, world.TileID(0, y))
		requests = append(requests, planner.Request{
			Unit:        u.Snapshot(),
			Destination: world.TileID(5, y),
		})
	}
	// One hopeless request: destination fogged in on all sides.
	world.SetUnknown(world.TileID(4, 5))
	world.SetUnknown(world.TileID(5, 4))
	world.SetUnknown(world.TileID(4, 4))
	blocked := world.AddUnit(infantryType, world.TileID(0, 5))
	requests = append(requests, planner.Request{
		Unit:        blocked.Snapshot(),
		Destination: world.TileID(5, 5),
	})

	pl := planner.NewPlanner(world, world, zap.NewNop(), pathfinder.DefaultConfig(), 3)
	results := pl.PlanAll(requests)
	require.Len(t, results, len(requests))

	byUnit := make(map[da.UnitID]planner.Result, len(results))
	for _, res := range results {
		byUnit[res.Unit] = res
	}
	for _, req := range requests[:3] {
		res, ok := byUnit[req.Unit.ID]
		require.True(t, ok)
		require.False(t, res.Path.Empty())
		assert.Equal(t, req.Destination, res.Path.Destination().Location)
		assert.Greater(t, res.Stats.Expanded, 0)
	}
	assert.True(t, byUnit[blocked.ID].Path.Empty(), "fogged-in destination yields no path")
}
