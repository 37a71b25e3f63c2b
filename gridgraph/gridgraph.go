// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a weighted map for path searches. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - The astar.Map contract (Contains, Neighbors)
//   - Identification of connected components of “land” cells
//
// Cells with value < LandThreshold are considered impassable “water”; cells with
// value ≥ LandThreshold are “land”, and stepping onto one costs its value.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/waypoint/astar"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and
// ErrBadThreshold if opts.LandThreshold is negative.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.LandThreshold < 0 {
		return nil, ErrBadThreshold
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph with the default land threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is in bounds and holds a land cell.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Contains implements astar.Map: loc must be in bounds and passable.
func (gg *GridGraph) Contains(loc astar.Location) bool {
	return gg.Passable(loc.X, loc.Y)
}

// Neighbors implements astar.Map. Every passable neighbor under gg.Conn is
// returned with the destination cell value as step cost; diagonal steps
// cost √2 times as much. Impassable or out-of-bounds loc yields nil.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighbors(loc astar.Location) []astar.Neighbor {
	if !gg.Contains(loc) {
		return nil
	}
	out := make([]astar.Neighbor, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := loc.X+d[0], loc.Y+d[1]
		if !gg.Passable(nx, ny) {
			continue
		}
		cost := float64(gg.CellValues[ny][nx])
		if d[0] != 0 && d[1] != 0 {
			cost *= math.Sqrt2
		}
		out = append(out, astar.Neighbor{
			Location: astar.Location{X: nx, Y: ny},
			Cost:     cost,
		})
	}

	return out
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Index returns the row-major index of loc. The result is meaningless for
// locations outside the grid.
func (gg *GridGraph) Index(loc astar.Location) int {
	return gg.index(loc.X, loc.Y)
}

// Location converts a row-major index into an astar.Location.
func (gg *GridGraph) Location(idx int) astar.Location {
	x, y := gg.Coordinate(idx)
	return astar.Location{X: x, Y: y}
}
