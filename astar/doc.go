// Package astar tracks the open and closed vertex sets of an A* search over a
// 2D grid-like map and provides a reference search loop built on top of them.
//
// What:
//
//   - Frontier owns the open candidates and the closed (finalized) waypoints
//     of one search and exposes the primitive steps an A* loop needs:
//     best-candidate selection, relaxation, promotion to closed and
//     closed-membership tests.
//   - Waypoint is an immutable vertex record: location, cost-so-far, total
//     cost (cost-so-far + heuristic remainder) and predecessor link.
//   - Search drives a Frontier over any Map until the goal is closed or the
//     open set is exhausted.
//
// Frontier contract:
//
//	NewFrontier(m Map) (*Frontier, error)           // ErrNilMap if m == nil
//	BestOpenCandidate() (*Waypoint, bool)            // O(1)
//	AddOrUpdateOpenCandidate(c *Waypoint) bool       // O(log n)
//	NumOpenCandidates() int                          // O(1)
//	CloseCandidate(loc Location) error               // O(log n), ErrNotOpen if absent
//	IsLocationClosed(loc Location) bool              // O(1)
//	Reopen(c *Waypoint) bool                         // O(log n), Closed → Open
//
// Per location the state machine is Unseen → Open → Closed. While Open a
// location may be relaxed any number of times; only a strictly cheaper total
// cost replaces the stored waypoint. Closed is terminal unless the caller
// explicitly calls Reopen with a strictly cheaper waypoint, which is only
// required for inconsistent heuristics.
//
// Selection order:
//
// Open candidates live in an indexed binary min-heap keyed by total cost.
// Ties are broken by the lowest Location (Y first, then X), so the selected
// candidate is deterministic across runs and platforms.
//
// Errors:
//
//   - ErrNilMap: a Frontier or Search was given no map.
//   - ErrNotOpen: CloseCandidate was called for a location that is not open.
//   - ErrInvalidCost: a waypoint cost is NaN, infinite or negative.
//   - ErrLocationNotFound: the start or goal is not contained in the map.
//   - ErrNoPath: the open set was exhausted before the goal was closed.
//   - ErrBudgetExceeded: Search hit the WithMaxExpansions limit.
//   - ErrOptionViolation: an invalid Option was supplied to Search.
//
// Thread safety:
//
// A Frontier is owned by exactly one search loop and performs no locking.
// Independent Search calls share no state and may run concurrently over a
// read-only Map.
package astar
