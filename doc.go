// Package waypoint is an A* path search toolkit built around a reusable
// search frontier.
//
// What is waypoint?
//
//	A small, dependency-light library and CLI that brings together:
//		• astar/         – the Frontier (open/closed bookkeeping) and the Search driver
//		• gridgraph/     – 2D integer grids exposed as an astar.Map, plus island labelling
//		• searchmetrics/ – Prometheus counters fed through search hooks
//		• cmd/gridpath   – runs a YAML scenario and prints the route cost
//
// The Frontier answers "which candidate next?" in O(log n) and never admits a
// more expensive route to a location it already knows. Everything else
// (heuristics, neighbor generation, route reconstruction) lives with the caller.
//
// Quick ASCII example:
//
//	    S 1 1
//	    # # 1
//	    G 1 1
//
//	start S and goal G on a 3×3 grid with a wall in the middle row; Search
//	returns the only route around it, cost 6.
//
//	go get github.com/katalvlaran/waypoint
package waypoint
