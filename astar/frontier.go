package astar

import (
	"container/heap"
	"fmt"
)

// Frontier holds the open and closed collections of a single A* search.
// It is bound to one Map for its lifetime and never mutates it.
//
// Invariants:
//   - at most one open and at most one closed waypoint per Location;
//   - a Location is never open and closed at the same time;
//   - the total cost stored for an open Location never increases.
type Frontier struct {
	m      Map
	open   map[Location]*openEntry
	queue  openQueue
	closed map[Location]*Waypoint
}

// NewFrontier returns an empty Frontier bound to m.
// Returns ErrNilMap if m is nil.
func NewFrontier(m Map) (*Frontier, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	return &Frontier{
		m:      m,
		open:   make(map[Location]*openEntry),
		queue:  make(openQueue, 0),
		closed: make(map[Location]*Waypoint),
	}, nil
}

// Map returns the map this frontier was created for.
func (f *Frontier) Map() Map { return f.m }

// BestOpenCandidate returns the open waypoint with the minimum total cost,
// or (nil, false) if there are no open candidates. Equal totals resolve to
// the lowest Location.
// Complexity: O(1).
func (f *Frontier) BestOpenCandidate() (*Waypoint, bool) {
	if len(f.queue) == 0 {
		return nil, false
	}

	return f.queue[0].wp, true
}

// AddOrUpdateOpenCandidate relaxes the open set with c.
//
//   - No open waypoint at c's location: c is inserted, returns true.
//   - The open waypoint there has a strictly greater total cost: it is
//     replaced by c, returns true.
//   - Otherwise the open set is unchanged and false is returned.
//
// A nil candidate, or one whose location is already closed, is rejected
// with false; use Reopen to move a closed location back to open.
// Complexity: O(log n).
func (f *Frontier) AddOrUpdateOpenCandidate(c *Waypoint) bool {
	if c == nil {
		return false
	}
	if _, ok := f.closed[c.loc]; ok {
		return false
	}

	e, ok := f.open[c.loc]
	if !ok {
		e = &openEntry{wp: c}
		heap.Push(&f.queue, e)
		f.open[c.loc] = e
		return true
	}
	if e.wp.totalCost > c.totalCost {
		e.wp = c
		heap.Fix(&f.queue, e.index)
		return true
	}

	return false
}

// NumOpenCandidates returns the number of open waypoints.
func (f *Frontier) NumOpenCandidates() int { return len(f.open) }

// NumClosed returns the number of closed waypoints.
func (f *Frontier) NumClosed() int { return len(f.closed) }

// OpenCandidate returns the open waypoint stored at loc.
func (f *Frontier) OpenCandidate(loc Location) (*Waypoint, bool) {
	e, ok := f.open[loc]
	if !ok {
		return nil, false
	}
	return e.wp, true
}

// ClosedWaypoint returns the closed waypoint stored at loc.
func (f *Frontier) ClosedWaypoint(loc Location) (*Waypoint, bool) {
	w, ok := f.closed[loc]
	return w, ok
}

// CloseCandidate moves the waypoint at loc from the open set to the closed
// set. Returns an error wrapping ErrNotOpen, and leaves both sets untouched,
// if loc is not open.
// Complexity: O(log n).
func (f *Frontier) CloseCandidate(loc Location) error {
	e, ok := f.open[loc]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotOpen, loc)
	}
	heap.Remove(&f.queue, e.index)
	delete(f.open, loc)
	f.closed[loc] = e.wp

	return nil
}

// PopBestOpenCandidate closes the best open candidate and returns it,
// or (nil, false) if the open set is empty.
func (f *Frontier) PopBestOpenCandidate() (*Waypoint, bool) {
	if len(f.queue) == 0 {
		return nil, false
	}
	e := heap.Pop(&f.queue).(*openEntry)
	delete(f.open, e.wp.loc)
	f.closed[e.wp.loc] = e.wp

	return e.wp, true
}

// IsLocationClosed reports whether loc has been closed.
func (f *Frontier) IsLocationClosed(loc Location) bool {
	_, ok := f.closed[loc]
	return ok
}

// Reopen moves a closed location back to the open set when c reaches it with
// a strictly smaller total cost than the closed waypoint. Returns false, with
// no change, if c is nil, its location is not closed, or it is no cheaper.
// Only needed with inconsistent heuristics.
func (f *Frontier) Reopen(c *Waypoint) bool {
	if c == nil {
		return false
	}
	old, ok := f.closed[c.loc]
	if !ok || old.totalCost <= c.totalCost {
		return false
	}
	delete(f.closed, c.loc)
	e := &openEntry{wp: c}
	heap.Push(&f.queue, e)
	f.open[c.loc] = e

	return true
}
