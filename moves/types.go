// Package moves defines the move and successor types and the options of the
// amphipod move generator.
package moves

import (
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
)

// Place is one end of a move: a hallway cell or a bay.
type Place struct {
	InBay bool // true: Index is a bay 0..3; false: Index is a hallway cell 0..10
	Index int
}

// Hallway returns the Place for hallway cell pos.
func Hallway(pos int) Place { return Place{Index: pos} }

// InBay returns the Place for bay i.
func InBay(i int) Place { return Place{InBay: true, Index: i} }

func (p Place) String() string {
	if p.InBay {
		return fmt.Sprintf("bay %d", p.Index)
	}
	return fmt.Sprintf("hall %d", p.Index)
}

// Move describes a single token relocation and its exact energy cost.
type Move struct {
	Token burrow.Kind // the amphipod being moved
	From  Place
	To    Place
	Steps int   // cells traversed, including lifts and drops
	Cost  int64 // Steps × Token.Cost()
}

func (m Move) String() string {
	return fmt.Sprintf("%s: %s → %s (%d steps, cost %d)", m.Token, m.From, m.To, m.Steps, m.Cost)
}

// Successor pairs a move with the configuration it produces.
type Successor struct {
	Move
	Next burrow.Burrow
}

// Options configures the generator.
//
// DirectTransfers – emit bay → bay moves that skip the hallway stop.
//
//	Optimal cost is the same either way; with transfers the search expands
//	fewer intermediate states. Default true.
type Options struct {
	DirectTransfers bool
}

// Option represents a functional option for configuring a Generator.
type Option func(*Options)

// WithDirectTransfers enables or disables the bay → bay shortcut.
func WithDirectTransfers(enabled bool) Option {
	return func(o *Options) {
		o.DirectTransfers = enabled
	}
}

// DefaultOptions returns the generator defaults (direct transfers enabled).
func DefaultOptions() Options {
	return Options{DirectTransfers: true}
}
