// Package astar defines the value types, collaborator contracts and sentinel
// errors shared by the Frontier and the Search driver.
package astar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for frontier and search operations.
var (
	// ErrNilMap indicates that no map was supplied.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrNotOpen indicates that a location was closed without being open.
	ErrNotOpen = errors.New("astar: location is not in the open set")

	// ErrInvalidCost indicates a NaN, infinite or negative cost.
	ErrInvalidCost = errors.New("astar: cost must be finite and non-negative")

	// ErrLocationNotFound indicates that the start or goal is not in the map.
	ErrLocationNotFound = errors.New("astar: location not contained in map")

	// ErrNoPath indicates that the open set was exhausted before the goal was closed.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrBudgetExceeded indicates that the expansion limit was reached.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Location identifies a cell of a 2D map. It is comparable and is used as the
// key of both the open and the closed collections.
type Location struct {
	X, Y int
}

// Less orders locations row-major: by Y, then by X.
func (l Location) Less(o Location) bool {
	if l.Y != o.Y {
		return l.Y < o.Y
	}
	return l.X < o.X
}

// String renders the location as "(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Neighbor is a location reachable from another one in a single step.
type Neighbor struct {
	Location Location
	Cost     float64 // step cost, must be finite and non-negative
}

// Map is the collaborator a search navigates. The Frontier only stores it;
// Search queries it for neighbors.
type Map interface {
	// Contains reports whether loc is inside the map and passable.
	Contains(loc Location) bool

	// Neighbors returns the passable locations one step away from loc.
	Neighbors(loc Location) []Neighbor
}

// Heuristic estimates the remaining cost from a location to the goal.
type Heuristic func(from, goal Location) float64

// Waypoint is an immutable vertex record of one search. The start waypoint
// has no predecessor.
type Waypoint struct {
	loc       Location
	prevCost  float64
	totalCost float64
	previous  *Waypoint
}

// NewWaypoint builds the waypoint for loc reached through previous at
// cost-so-far prevCost, with remaining as the heuristic estimate to the goal.
// Returns ErrInvalidCost if either cost is NaN, infinite or negative.
func NewWaypoint(loc Location, previous *Waypoint, prevCost, remaining float64) (*Waypoint, error) {
	if !validCost(prevCost) {
		return nil, fmt.Errorf("%w: previous cost %v at %v", ErrInvalidCost, prevCost, loc)
	}
	if !validCost(remaining) {
		return nil, fmt.Errorf("%w: remaining estimate %v at %v", ErrInvalidCost, remaining, loc)
	}
	total := prevCost + remaining
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total cost overflows at %v", ErrInvalidCost, loc)
	}

	return &Waypoint{
		loc:       loc,
		prevCost:  prevCost,
		totalCost: total,
		previous:  previous,
	}, nil
}

// Location returns the waypoint's location.
func (w *Waypoint) Location() Location { return w.loc }

// PreviousCost returns the cost of the path from the start to this waypoint.
func (w *Waypoint) PreviousCost() float64 { return w.prevCost }

// TotalCost returns PreviousCost plus the heuristic remainder.
func (w *Waypoint) TotalCost() float64 { return w.totalCost }

// Previous returns the predecessor, or nil for the start waypoint.
func (w *Waypoint) Previous() *Waypoint { return w.previous }

func validCost(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c >= 0
}
