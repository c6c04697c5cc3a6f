package burrow

import "errors"

// Sentinel errors returned by the burrow constructors.
var (
	// ErrBadDepth indicates a bay depth other than 2 or 4.
	ErrBadDepth = errors.New("burrow: depth must be 2 or 4")

	// ErrBadBayLength indicates that a bay holds a number of tokens that does
	// not match the configured depth (or exceeds it, for snapshots).
	ErrBadBayLength = errors.New("burrow: bay length does not match depth")

	// ErrUnknownKind indicates a token symbol or value outside A..D.
	ErrUnknownKind = errors.New("burrow: unknown amphipod kind")

	// ErrKindCount indicates that some kind does not appear exactly depth times.
	ErrKindCount = errors.New("burrow: kind count does not match depth")

	// ErrBlockedEntrance indicates a token resting on a bay entrance cell.
	ErrBlockedEntrance = errors.New("burrow: token rests on a bay entrance")
)

// Geometry of the burrow. These never change between runs.
const (
	// HallwayLen is the number of hallway cells.
	HallwayLen = 11

	// NumBays is the number of side bays.
	NumBays = 4

	// MaxDepth is the deepest supported bay.
	MaxDepth = 4
)

// Panic messages for invariant violations.
const (
	panicBayFull     = "burrow: push into a full bay"
	panicBayEmpty    = "burrow: pop from an empty bay"
	panicHallEmpty   = "burrow: no token at hallway position"
	panicHallTaken   = "burrow: hallway position already occupied"
	panicNotAStop    = "burrow: position is not a hallway stop"
	panicBayRejected = "burrow: bay does not accept the token"
)
