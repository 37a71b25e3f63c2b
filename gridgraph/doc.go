// Package gridgraph treats a 2D grid of cells as a weighted map that A*
// searches can navigate.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Implements astar.Map: Contains(loc) and Neighbors(loc) with step costs.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Answers reachability questions (Connected) before a search is started.
//
// Why:
//
//   - Game maps: weighted terrain where each cell value is its traversal cost.
//   - Robot or drone planning on occupancy grids.
//   - Cheap early-out: a goal in another island can never be closed.
//
// Complexity:
//
//   - Contains:            O(1).
//   - Neighbors:           O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Connected:           O(W×H×d) once, then O(1).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land" (≥ 0).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, diagonal steps cost ×√2).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold is negative.
package gridgraph
