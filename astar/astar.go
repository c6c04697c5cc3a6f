// Package astar finds the minimum-energy way to sort a burrow.
//
// The search is A* over configurations: the frontier is a min-heap ordered by
// cost-so-far plus the heuristic estimate, ties broken by insertion order so
// that exploration is fully reproducible. A best-cost table keyed by
// burrow.Key records the cheapest known cost of every configuration seen.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: an improved configuration is
//     pushed again and the outdated heap entry is discarded when popped
//     (its cost no longer matches the best-cost table).
//   - Every move costs at least one step, so path costs never decrease and
//     the first goal popped is optimal for any admissible heuristic.
//   - Configurations are values; each successor is an independent copy.
//
// Complexity:
//
//   - Time:  O(S log S) heap work for S generated states, plus O(S) move
//     generation at O(HallwayLen·NumBays) each.
//   - Space: O(S) for the best-cost table and the frontier.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
)

// ctxPollMask controls how often the context is checked (every 4096 expansions).
const ctxPollMask = 4095

// Solve computes the minimum total energy needed to reach the goal from start.
//
// Returns:
//
//   - Result with Status Solved and the optimal Cost, or Status Unsolvable
//     when no sequence of legal moves reaches the goal.
//   - err: ErrUninitialized, ErrExpansionLimit, or the context error wrapped
//     with the number of expanded states.
//
// Each call owns its frontier and best-cost table; concurrent calls on the
// same start value are safe.
func Solve(start burrow.Burrow, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Reject a zero Burrow.
	if start.Depth() == 0 {
		return Result{}, ErrUninitialized
	}

	// 3) Prepare the runner and seed the frontier with start at cost 0.
	r := &runner{
		options: cfg,
		gen:     moves.New(moves.WithDirectTransfers(cfg.DirectTransfers)),
		best:    make(map[burrow.Key]int64),
	}
	if cfg.ReturnPath {
		r.prev = make(map[burrow.Key]step)
	}
	r.init(start)

	// 4) Run the main loop.
	if err := r.process(); err != nil {
		return r.result, err
	}

	return r.result, nil
}

// step remembers how a configuration was last improved.
type step struct {
	parent burrow.Key
	move   moves.Move
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	options Options
	gen     *moves.Generator
	best    map[burrow.Key]int64 // key → cheapest known cost-so-far
	prev    map[burrow.Key]step  // nil unless ReturnPath
	pq      statePQ
	seq     uint64
	startK  burrow.Key
	result  Result
}

// init seeds the best-cost table and the frontier with the start configuration.
func (r *runner) init(start burrow.Burrow) {
	r.startK = start.Key()
	r.best[r.startK] = 0
	heap.Init(&r.pq)
	r.push(start, r.startK, 0)
}

// push enqueues b with priority cost + heuristic(b).
func (r *runner) push(b burrow.Burrow, key burrow.Key, cost int64) {
	h := r.options.Heuristic(b)
	if h < 0 {
		panic(fmt.Sprintf("astar: negative heuristic %d for %s", h, key))
	}
	heap.Push(&r.pq, &stateItem{
		state:    b,
		key:      key,
		cost:     cost,
		priority: cost + h,
		seq:      r.seq,
	})
	r.seq++
}

// process pops states until the goal is reached or the frontier is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)

		// 1) Stale entry: a cheaper path to this key was found after it was pushed.
		if item.cost != r.best[item.key] {
			continue
		}

		// 2) Goal: the first goal popped is optimal.
		if item.state.IsGoal() {
			r.result.Status = Solved
			r.result.Cost = item.cost
			if r.prev != nil {
				r.result.Path = r.path(item.key)
			}
			return nil
		}

		// 3) Budget and cancellation.
		if r.options.MaxExpansions > 0 && r.result.Expanded >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, r.result.Expanded)
		}
		if r.result.Expanded&ctxPollMask == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return fmt.Errorf("astar: search aborted after %d expansions: %w", r.result.Expanded, err)
			}
		}

		r.result.Expanded++
		r.options.OnExpand(item.state, item.cost)

		// 4) Relax every successor.
		r.relax(item)
	}

	r.result.Status = Unsolvable
	return nil
}

// relax pushes every successor of item whose cost strictly improves on the
// best known cost for its key.
func (r *runner) relax(item *stateItem) {
	for _, s := range r.gen.Successors(item.state) {
		if s.Cost <= 0 {
			panic(fmt.Sprintf("astar: non-positive move cost %d (%s)", s.Cost, s.Move))
		}
		newCost := item.cost + s.Cost
		key := s.Next.Key()
		if old, seen := r.best[key]; seen && newCost >= old {
			continue
		}
		r.best[key] = newCost
		if r.prev != nil {
			r.prev[key] = step{parent: item.key, move: s.Move}
		}
		r.push(s.Next, key, newCost)
		r.result.Generated++
	}
}

// path rebuilds the move sequence that led from the start to key.
func (r *runner) path(key burrow.Key) []moves.Move {
	var rev []moves.Move
	for key != r.startK {
		st, ok := r.prev[key]
		if !ok {
			panic(fmt.Sprintf("astar: broken predecessor chain at %s", key))
		}
		rev = append(rev, st.move)
		key = st.parent
	}
	out := make([]moves.Move, len(rev))
	for i, m := range rev {
		out[len(rev)-1-i] = m
	}
	return out
}

// stateItem is a frontier entry.
type stateItem struct {
	state    burrow.Burrow
	key      burrow.Key
	cost     int64  // cost-so-far
	priority int64  // cost + heuristic
	seq      uint64 // insertion order, breaks priority ties
}

// statePQ is a min-heap of *stateItem ordered by (priority, seq).
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
