// Package moves enumerates every legal single-token move from a burrow
// configuration together with its exact energy cost.
//
// Move families:
//
//   - hallway → bay: a resting token walks to its own bay when that bay
//     accepts it and the hallway between is clear.
//   - bay → hallway: the top token of a bay that is not yet sorted walks to
//     any reachable empty stop.
//   - bay → bay (optional shortcut): the top token walks straight into its
//     accepting target bay without stopping.
//
// There is no hallway → hallway move. Settled tokens never move.
//
// Cost model: every traversed cell costs Token.Cost(). Leaving a bay whose top
// sits at slot len−1 takes depth−len+1 steps; dropping into a bay with len
// tokens takes depth−len steps.
//
// Output order is fixed (hallway positions ascending, then bays 0..3; within a
// bay the shortcut first, then stops ascending), which keeps searches built on
// top of it reproducible.
package moves

import "github.com/katalvlaran/burrow/burrow"

// Generator produces successors. It is stateless apart from its options and
// may be shared between goroutines.
type Generator struct {
	options Options
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{options: cfg}
}

// Successors lists every legal move from b.
func (g *Generator) Successors(b burrow.Burrow) []Successor {
	out := make([]Successor, 0, 16)
	out = g.appendEnters(out, b)
	for i := 0; i < burrow.NumBays; i++ {
		out = g.appendExits(out, b, i)
	}
	return out
}

// appendEnters adds hallway → bay moves.
func (g *Generator) appendEnters(out []Successor, b burrow.Burrow) []Successor {
	for pos := 0; pos < burrow.HallwayLen; pos++ {
		k := b.Hall(pos)
		if k == burrow.None {
			continue
		}
		t := k.Bay()
		bay := b.Bay(t)
		if !bay.Accepts(k) {
			continue
		}
		door := burrow.Entrance(t)
		if !b.PathClear(pos, door) {
			continue
		}
		steps := burrow.Distance(pos, door) + bay.Free()
		out = append(out, Successor{
			Move: newMove(k, Hallway(pos), InBay(t), steps),
			Next: b.Enter(pos),
		})
	}
	return out
}

// appendExits adds the moves that take the top token out of bay i.
func (g *Generator) appendExits(out []Successor, b burrow.Burrow, i int) []Successor {
	bay := b.Bay(i)
	if bay.Settled() {
		return out
	}
	k, _ := bay.Top()
	door := burrow.Entrance(i)
	lift := bay.Free() + 1

	if g.options.DirectTransfers {
		t := k.Bay()
		target := b.Bay(t)
		if t != i && target.Accepts(k) && b.PathClear(door, burrow.Entrance(t)) {
			steps := lift + burrow.Distance(door, burrow.Entrance(t)) + target.Free()
			out = append(out, Successor{
				Move: newMove(k, InBay(i), InBay(t), steps),
				Next: b.Transfer(i),
			})
		}
	}

	for _, pos := range burrow.Stops() {
		if b.Hall(pos) != burrow.None || !b.PathClear(door, pos) {
			continue
		}
		out = append(out, Successor{
			Move: newMove(k, InBay(i), Hallway(pos), lift+burrow.Distance(door, pos)),
			Next: b.Exit(i, pos),
		})
	}
	return out
}

// Apply replays m on b and returns the resulting configuration. It panics if
// m does not describe a move of the kinds produced by Successors.
func Apply(b burrow.Burrow, m Move) burrow.Burrow {
	switch {
	case m.From.InBay && m.To.InBay:
		return b.Transfer(m.From.Index)
	case m.From.InBay:
		return b.Exit(m.From.Index, m.To.Index)
	case m.To.InBay:
		return b.Enter(m.From.Index)
	default:
		panic("moves: hallway to hallway is not a move")
	}
}

func newMove(k burrow.Kind, from, to Place, steps int) Move {
	return Move{Token: k, From: from, To: to, Steps: steps, Cost: int64(steps) * k.Cost()}
}
