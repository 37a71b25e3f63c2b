package gridgraph

import "github.com/katalvlaran/waypoint/astar"

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order. Components are numbered in row-major
// order of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	gg.labelsOnce.Do(gg.label)

	comps := make([][]int, gg.numComps)
	for _, i := range gg.visitOrder {
		c := gg.labels[i]
		comps[c] = append(comps[c], i)
	}
	return comps
}

// Connected reports whether a and b are land cells of the same component,
// i.e. whether a search from a can ever close b.
// The first call labels the whole grid in O(W·H·d); later calls are O(1).
func (gg *GridGraph) Connected(a, b astar.Location) bool {
	if !gg.Contains(a) || !gg.Contains(b) {
		return false
	}
	gg.labelsOnce.Do(gg.label)

	return gg.labels[gg.Index(a)] == gg.labels[gg.Index(b)]
}

// label assigns a component number to every land cell and -1 to water.
func (gg *GridGraph) label() {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	order := make([]int, 0, total)
	next := 0

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue // water
			}
			i0 := gg.index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to flood the component
			queue := []int{i0}
			labels[i0] = next
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			order = append(order, queue...)
			next++
		}
	}

	gg.labels = labels
	gg.visitOrder = order
	gg.numComps = next
}
