package main

import (
	"context"

	"github.com/katalvlaran/burrow/astar"
	"github.com/katalvlaran/burrow/burrow"
)

// settings controls a single solve, whichever entry point built it.
type settings struct {
	Path    bool // return the move sequence
	Uniform bool // disable the heuristic (uniform-cost search)
	Direct  bool // allow bay → bay shortcut moves
	Limit   int  // expansion budget, 0 = unlimited
	Trace   func(b burrow.Burrow, cost int64)
}

// report is the JSON-serializable outcome of a solve.
type report struct {
	RunID    string   `json:"runId,omitempty"`
	Status   string   `json:"status"`
	Cost     *int64   `json:"cost,omitempty"`
	Expanded int      `json:"expanded"`
	TimeMs   int64    `json:"timeMs"`
	Path     []string `json:"path,omitempty"`
}

// solve runs the search on b and packages the outcome.
func solve(ctx context.Context, b burrow.Burrow, s settings) (report, astar.Result, error) {
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithDirectTransfers(s.Direct),
		astar.WithMaxExpansions(s.Limit),
	}
	if s.Path {
		opts = append(opts, astar.WithReturnPath())
	}
	if s.Uniform {
		opts = append(opts, astar.WithHeuristic(astar.Uniform))
	}
	if s.Trace != nil {
		opts = append(opts, astar.WithOnExpand(s.Trace))
	}

	res, err := astar.Solve(b, opts...)
	if err != nil {
		return report{}, res, err
	}

	rep := report{Status: res.Status.String(), Expanded: res.Expanded}
	if res.Solved() {
		cost := res.Cost
		rep.Cost = &cost
	}
	for _, m := range res.Path {
		rep.Path = append(rep.Path, m.String())
	}
	return rep, res, nil
}
