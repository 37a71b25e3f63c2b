package main

import (
	"math"

	"github.com/katalvlaran/waypoint/astar"
	"github.com/katalvlaran/waypoint/internal/config"
)

// minStepCost is the cheapest cell a route can step onto. Scaling a
// distance heuristic by it keeps the estimate admissible.
func minStepCost(grid [][]int, threshold int) float64 {
	best := math.MaxInt
	for _, row := range grid {
		for _, v := range row {
			if v >= threshold && v < best {
				best = v
			}
		}
	}
	if best == math.MaxInt {
		return 0
	}
	return float64(best)
}

// heuristicFor maps a scenario heuristic name to an astar.Heuristic.
// A nil result means the search runs as Dijkstra.
func heuristicFor(name string, scale float64) astar.Heuristic {
	switch name {
	case config.HeuristicManhattan:
		return func(from, goal astar.Location) float64 {
			dx, dy := absDelta(from, goal)
			return scale * float64(dx+dy)
		}
	case config.HeuristicOctile:
		return func(from, goal astar.Location) float64 {
			dx, dy := absDelta(from, goal)
			lo, hi := min(dx, dy), max(dx, dy)
			return scale * (float64(hi) + (math.Sqrt2-1)*float64(lo))
		}
	default:
		return nil
	}
}

func absDelta(a, b astar.Location) (dx, dy int) {
	dx, dy = a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}
