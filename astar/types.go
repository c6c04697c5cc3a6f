// Package astar defines result types and configuration options for the
// best-first search over burrow configurations.
//
// Options:
//
//	– ReturnPath:       if true, the Result carries the optimal move sequence.
//	– Heuristic:        remaining-cost estimate; burrow.LowerBound by default.
//	                    Uniform turns the search into plain uniform-cost search.
//	– DirectTransfers:  forwarded to the move generator (default true).
//	– MaxExpansions:    optional cap on expanded states (0 = unlimited).
//	– Ctx:              cancellation, polled every 4096 expansions.
//	– OnExpand:         hook called for every non-stale expanded state.
//
// Errors (sentinel):
//
//	– ErrUninitialized   if the start configuration is the zero Burrow.
//	– ErrExpansionLimit  if MaxExpansions was reached before the search ended.
//	– ErrBadMaxExpansions (via panic) if MaxExpansions < 0.
//
// An instance without a solution is not an error: Solve returns a Result
// whose Status is Unsolvable.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
)

// Sentinel errors returned by Solve.
var (
	// ErrUninitialized indicates that the start configuration was never built
	// through burrow.New or burrow.FromSnapshot.
	ErrUninitialized = errors.New("astar: start configuration is uninitialized")

	// ErrExpansionLimit indicates that MaxExpansions states were expanded
	// without reaching a terminal outcome.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative MaxExpansions value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Status tags the outcome of a search.
type Status int

const (
	// Unsolvable means the frontier emptied without reaching the goal.
	Unsolvable Status = iota

	// Solved means the goal was reached; Result.Cost is the optimum.
	Solved
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single Solve call.
//
// Cost and Path are meaningful only when Status == Solved.
type Result struct {
	Status    Status
	Cost      int64        // minimum total energy
	Path      []moves.Move // optimal move sequence; nil unless ReturnPath
	Expanded  int          // states popped and expanded (stale entries excluded)
	Generated int          // successors pushed onto the frontier
}

// Solved reports whether the goal was reached.
func (r Result) Solved() bool { return r.Status == Solved }

// Heuristic estimates the remaining cost from a configuration to the goal.
// It must never overestimate, or Solve may return a suboptimal cost.
type Heuristic func(b burrow.Burrow) int64

// Uniform is the zero heuristic; with it Solve behaves as Dijkstra's algorithm.
func Uniform(burrow.Burrow) int64 { return 0 }

// Options configures the behavior of Solve.
type Options struct {
	Ctx             context.Context
	ReturnPath      bool
	Heuristic       Heuristic
	DirectTransfers bool
	MaxExpansions   int
	OnExpand        func(b burrow.Burrow, cost int64)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithReturnPath enables reconstruction of the optimal move sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithHeuristic replaces the default remaining-cost estimate.
// A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithDirectTransfers toggles bay → bay shortcut moves.
func WithDirectTransfers(enabled bool) Option {
	return func(o *Options) {
		o.DirectTransfers = enabled
	}
}

// WithMaxExpansions caps the number of expanded states (0 = unlimited).
// Panics with ErrBadMaxExpansions on a negative value.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a hook called with every expanded configuration and
// its cost-so-far.
func WithOnExpand(fn func(b burrow.Burrow, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns the defaults:
//   - Ctx:             context.Background()
//   - ReturnPath:      false
//   - Heuristic:       burrow.LowerBound
//   - DirectTransfers: true
//   - MaxExpansions:   0 (unlimited)
//   - OnExpand:        no-op
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		Heuristic:       burrow.LowerBound,
		DirectTransfers: true,
		OnExpand:        func(burrow.Burrow, int64) {},
	}
}
