package astar

import (
	"context"
	"fmt"
)

// searcher encapsulates the mutable state of one Search.
type searcher struct {
	frontier *Frontier
	opts     Options
	ctx      context.Context
	goal     Location
	res      *Result
}

// Search runs A* on m from start to goal, applying any number of functional
// Options. It follows the classical loop: close the best open candidate, stop
// if it is the goal, otherwise offer every neighbor that is not closed to the
// frontier.
//
// Validation errors (ErrNilMap, ErrOptionViolation, ErrLocationNotFound)
// return a nil Result. Once the loop has started, a non-nil Result carrying
// the expansion count accompanies ErrNoPath, ErrBudgetExceeded, ErrInvalidCost
// or the context error.
func Search(m Map, start, goal Location, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", ErrLocationNotFound, start)
	}
	if !m.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrLocationNotFound, goal)
	}

	f, err := NewFrontier(m)
	if err != nil {
		return nil, err
	}
	s := &searcher{
		frontier: f,
		opts:     o,
		ctx:      o.Ctx,
		goal:     goal,
		res:      &Result{},
	}

	origin, err := NewWaypoint(start, nil, 0, o.Heuristic(start, goal))
	if err != nil {
		return s.res, err
	}
	f.AddOrUpdateOpenCandidate(origin)

	return s.res, s.loop()
}

// loop pops and expands candidates until the goal is closed or the open set
// runs dry.
func (s *searcher) loop() error {
	for s.frontier.NumOpenCandidates() > 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		if s.opts.MaxExpansions > 0 && s.res.Expanded >= s.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, s.res.Expanded)
		}

		current, _ := s.frontier.PopBestOpenCandidate()
		s.res.Expanded++
		s.opts.OnClose(current)

		if current.Location() == s.goal {
			s.res.Goal = current
			s.res.Cost = current.PreviousCost()
			s.res.Found = true
			return nil
		}
		if err := s.expand(current); err != nil {
			return err
		}
	}

	return ErrNoPath
}

// expand offers every neighbor of current to the frontier.
func (s *searcher) expand(current *Waypoint) error {
	for _, nb := range s.frontier.Map().Neighbors(current.Location()) {
		closed := s.frontier.IsLocationClosed(nb.Location)
		if closed && !s.opts.Reopening {
			continue
		}
		if !validCost(nb.Cost) {
			return fmt.Errorf("%w: step %v→%v costs %v", ErrInvalidCost, current.Location(), nb.Location, nb.Cost)
		}

		candidate, err := NewWaypoint(
			nb.Location,
			current,
			current.PreviousCost()+nb.Cost,
			s.opts.Heuristic(nb.Location, s.goal),
		)
		if err != nil {
			return err
		}

		var accepted bool
		if closed {
			accepted = s.frontier.Reopen(candidate)
		} else {
			accepted = s.frontier.AddOrUpdateOpenCandidate(candidate)
		}
		s.opts.OnCandidate(candidate, accepted)
	}

	return nil
}
