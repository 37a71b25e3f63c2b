package astar_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypoint/astar"
	"github.com/katalvlaran/waypoint/gridgraph"
)

// manhattan is an admissible heuristic for Conn4 grids with unit minimum cost.
func manhattan(a, b astar.Location) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// route walks the predecessor chain of w back to the start.
func route(w *astar.Waypoint) []astar.Location {
	var out []astar.Location
	for ; w != nil; w = w.Previous() {
		out = append([]astar.Location{w.Location()}, out...)
	}
	return out
}

func mustGrid(t *testing.T, grid [][]int, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.From2D(grid, conn)
	require.NoError(t, err)
	return gg
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 0}}, gridgraph.Conn4)
	origin := astar.Location{X: 0, Y: 0}

	_, err := astar.Search(nil, origin, origin)
	assert.ErrorIs(t, err, astar.ErrNilMap)

	res, err := astar.Search(gg, astar.Location{X: 1, Y: 0}, origin)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, astar.ErrLocationNotFound, "start on a wall")

	_, err = astar.Search(gg, origin, astar.Location{X: 5, Y: 5})
	assert.ErrorIs(t, err, astar.ErrLocationNotFound, "goal outside")

	_, err = astar.Search(gg, origin, origin, astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.Search(gg, origin, origin, astar.WithHeuristic(nil))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestSearch_StartIsGoal(t *testing.T) {
	gg := mustGrid(t, [][]int{{1}}, gridgraph.Conn4)
	loc := astar.Location{X: 0, Y: 0}

	res, err := astar.Search(gg, loc, loc)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 1, res.Expanded)
	assert.Nil(t, res.Goal.Previous())
}

// TestSearch_AroundWall forces a detour around a wall.
//
//	S 1 1
//	0 0 1
//	G 1 1
func TestSearch_AroundWall(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)

	res, err := astar.Search(gg,
		astar.Location{X: 0, Y: 0}, astar.Location{X: 0, Y: 2},
		astar.WithHeuristic(manhattan),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 6.0, res.Cost)
	assert.Equal(t, []astar.Location{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}, route(res.Goal))
}

// TestSearch_PrefersCheapTerrain picks a longer but cheaper route.
//
//	S 9 G
//	1 1 1
func TestSearch_PrefersCheapTerrain(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{1, 9, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)

	res, err := astar.Search(gg, astar.Location{X: 0, Y: 0}, astar.Location{X: 2, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost, "S→(0,1)→(1,1)→(2,1)→G beats 9+1")
	assert.Len(t, route(res.Goal), 5)
}

// TestSearch_Diagonal uses Conn8 with √2-weighted diagonals.
func TestSearch_Diagonal(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.Conn8)

	res, err := astar.Search(gg, astar.Location{X: 0, Y: 0}, astar.Location{X: 2, Y: 2})
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt2, res.Cost, 1e-12)
	assert.Equal(t, []astar.Location{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, route(res.Goal))
}

// TestSearch_HeuristicReducesExpansions compares A* with uniform-cost search.
func TestSearch_HeuristicReducesExpansions(t *testing.T) {
	grid := make([][]int, 20)
	for y := range grid {
		grid[y] = make([]int, 20)
		for x := range grid[y] {
			grid[y][x] = 1
		}
	}
	gg := mustGrid(t, grid, gridgraph.Conn4)
	start, goal := astar.Location{X: 0, Y: 0}, astar.Location{X: 19, Y: 0}

	ucs, err := astar.Search(gg, start, goal)
	require.NoError(t, err)
	guided, err := astar.Search(gg, start, goal, astar.WithHeuristic(manhattan))
	require.NoError(t, err)

	assert.Equal(t, ucs.Cost, guided.Cost)
	assert.Less(t, guided.Expanded, ucs.Expanded)
}

// ------------------------------------------------------------------------
// 3. Failure modes
// ------------------------------------------------------------------------

func TestSearch_NoPath(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 0, 1}}, gridgraph.Conn4)

	res, err := astar.Search(gg, astar.Location{X: 0, Y: 0}, astar.Location{X: 2, Y: 0})
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Nil(t, res.Goal)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_Budget(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 1, 1, 1, 1}}, gridgraph.Conn4)

	res, err := astar.Search(gg,
		astar.Location{X: 0, Y: 0}, astar.Location{X: 4, Y: 0},
		astar.WithMaxExpansions(2),
	)
	require.ErrorIs(t, err, astar.ErrBudgetExceeded)
	assert.Equal(t, 2, res.Expanded)

	res, err = astar.Search(gg,
		astar.Location{X: 0, Y: 0}, astar.Location{X: 4, Y: 0},
		astar.WithMaxExpansions(5),
	)
	require.NoError(t, err, "goal is the fifth expansion")
	assert.True(t, res.Found)
}

func TestSearch_Cancelled(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 1}}, gridgraph.Conn4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := astar.Search(gg,
		astar.Location{X: 0, Y: 0}, astar.Location{X: 1, Y: 0},
		astar.WithContext(ctx),
	)
	require.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, res.Expanded)
}

// badMap reports a negative step cost.
type badMap struct{}

func (badMap) Contains(astar.Location) bool { return true }
func (badMap) Neighbors(loc astar.Location) []astar.Neighbor {
	return []astar.Neighbor{{Location: astar.Location{X: loc.X + 1}, Cost: -1}}
}

func TestSearch_InvalidStepCost(t *testing.T) {
	_, err := astar.Search(badMap{}, astar.Location{}, astar.Location{X: 3})
	require.ErrorIs(t, err, astar.ErrInvalidCost)
}

func TestSearch_InvalidHeuristic(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 1}}, gridgraph.Conn4)
	nan := func(astar.Location, astar.Location) float64 { return math.NaN() }

	_, err := astar.Search(gg, astar.Location{X: 0, Y: 0}, astar.Location{X: 1, Y: 0}, astar.WithHeuristic(nan))
	require.ErrorIs(t, err, astar.ErrInvalidCost)
}

// ------------------------------------------------------------------------
// 4. Hooks and reopening
// ------------------------------------------------------------------------

func TestSearch_Hooks(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 1, 1}}, gridgraph.Conn4)
	var closed []astar.Location
	accepted, rejected := 0, 0

	res, err := astar.Search(gg,
		astar.Location{X: 0, Y: 0}, astar.Location{X: 2, Y: 0},
		astar.WithOnClose(func(w *astar.Waypoint) { closed = append(closed, w.Location()) }),
		astar.WithOnCandidate(func(_ *astar.Waypoint, ok bool) {
			if ok {
				accepted++
			} else {
				rejected++
			}
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []astar.Location{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, closed)
	assert.Equal(t, res.Expanded, len(closed))
	assert.Equal(t, 2, accepted, "(1,0) then (2,0); closed (0,0) is skipped")
	assert.Equal(t, 0, rejected)
}

// TestSearch_HooksCompose verifies that repeated hook options all run.
func TestSearch_HooksCompose(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 1}}, gridgraph.Conn4)
	a, b := 0, 0

	_, err := astar.Search(gg,
		astar.Location{X: 0, Y: 0}, astar.Location{X: 1, Y: 0},
		astar.WithOnClose(func(*astar.Waypoint) { a++ }),
		astar.WithOnClose(func(*astar.Waypoint) { b++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

// diamond is a hand-built graph where an inconsistent heuristic closes C
// through the expensive edge first:
//
//	S→A (1), S→B (1), A→C (5), B→C (1), C→G (10)
//
// h(A)=0, h(B)=10, everything else 0. A* closes S, A, C (via A, g=6) before
// B; B then finds C at g=2.
type diamond struct{}

var (
	locS = astar.Location{X: 0, Y: 0}
	locA = astar.Location{X: 1, Y: 0}
	locB = astar.Location{X: 2, Y: 0}
	locC = astar.Location{X: 3, Y: 0}
	locG = astar.Location{X: 4, Y: 0}
)

func (diamond) Contains(astar.Location) bool { return true }
func (diamond) Neighbors(loc astar.Location) []astar.Neighbor {
	switch loc {
	case locS:
		return []astar.Neighbor{{Location: locA, Cost: 1}, {Location: locB, Cost: 1}}
	case locA:
		return []astar.Neighbor{{Location: locC, Cost: 5}}
	case locB:
		return []astar.Neighbor{{Location: locC, Cost: 1}}
	case locC:
		return []astar.Neighbor{{Location: locG, Cost: 10}}
	}
	return nil
}

func inconsistent(from, _ astar.Location) float64 {
	if from == locB {
		return 10
	}
	return 0
}

func TestSearch_Reopening(t *testing.T) {
	plain, err := astar.Search(diamond{}, locS, locG, astar.WithHeuristic(inconsistent))
	require.NoError(t, err)
	assert.Equal(t, 16.0, plain.Cost, "without reopening the first closing of C is final")

	reopened, err := astar.Search(diamond{}, locS, locG,
		astar.WithHeuristic(inconsistent),
		astar.WithReopening(),
	)
	require.NoError(t, err)
	assert.Equal(t, 12.0, reopened.Cost)
	assert.Equal(t, []astar.Location{locS, locB, locC, locG}, route(reopened.Goal))
}
