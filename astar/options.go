package astar

import (
	"context"
	"fmt"
)

// Option configures Search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of a single Search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Heuristic estimates the remaining cost to the goal. The default
	// always returns 0, which turns the search into uniform-cost search.
	Heuristic Heuristic

	// MaxExpansions, if > 0, aborts the search with ErrBudgetExceeded after
	// this many waypoints have been closed without reaching the goal.
	MaxExpansions int

	// Reopening lets a cheaper path move a closed location back to open.
	Reopening bool

	// OnClose is called for every waypoint moved to the closed set.
	OnClose func(w *Waypoint)

	// OnCandidate is called for every neighbor waypoint offered to the
	// frontier, with accepted reporting whether it was stored.
	OnCandidate func(w *Waypoint, accepted bool)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the zero heuristic
//   - no expansion limit
//   - reopening disabled
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     func(Location, Location) float64 { return 0 },
		MaxExpansions: 0,
		Reopening:     false,
		OnClose:       func(*Waypoint) {},
		OnCandidate:   func(*Waypoint, bool) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic sets the remaining-cost estimate. A nil h is a violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions limits the number of closed waypoints.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithReopening allows closed locations to be reopened by cheaper paths.
func WithReopening() Option {
	return func(o *Options) {
		o.Reopening = true
	}
}

// WithOnClose registers a callback run after each waypoint is closed.
func WithOnClose(fn func(w *Waypoint)) Option {
	return func(o *Options) {
		if fn != nil {
			prev := o.OnClose
			o.OnClose = func(w *Waypoint) {
				prev(w)
				fn(w)
			}
		}
	}
}

// WithOnCandidate registers a callback run after each neighbor waypoint is
// offered to the frontier.
func WithOnCandidate(fn func(w *Waypoint, accepted bool)) Option {
	return func(o *Options) {
		if fn != nil {
			prev := o.OnCandidate
			o.OnCandidate = func(w *Waypoint, accepted bool) {
				prev(w, accepted)
				fn(w, accepted)
			}
		}
	}
}

// Result is the outcome of a Search.
type Result struct {
	// Goal is the closed goal waypoint; its Previous chain leads back to the
	// start. Nil if the goal was not reached.
	Goal *Waypoint

	// Cost is Goal.PreviousCost(), or 0 if the goal was not reached.
	Cost float64

	// Expanded counts the waypoints moved to the closed set.
	Expanded int

	// Found reports whether the goal was closed.
	Found bool
}
