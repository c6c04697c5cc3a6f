// Package parse turns puzzle input into a validated burrow.Burrow.
//
// Two formats are understood:
//
//   - Grid: the puzzle diagram.
//
//     #############
//     #...........#
//     ###B#C#B#D###
//     #A#D#C#A#
//     #########
//
//     Leading indentation and trailing blanks are ignored. The number of room
//     rows is the bay depth (2 or 4). The hallway row may hold resting tokens.
//
//   - JSON: {"depth": 2, "bays": [["A","B"], ...], "hallway": "..........."}
//     with bays listed bottom-to-top; "hallway" is optional.
//
// Errors are wrapped with the line (or field) they were found on and match
// the sentinels below or the burrow sentinels via errors.Is.
package parse

import "errors"

// Sentinel errors for malformed input.
var (
	// ErrEmptyInput indicates that no puzzle rows were found.
	ErrEmptyInput = errors.New("parse: empty input")

	// ErrMalformedRow indicates a row that is not a valid wall, hallway or room row.
	ErrMalformedRow = errors.New("parse: malformed row")

	// ErrRowCount indicates a depth other than 2 or 4 room rows.
	ErrRowCount = errors.New("parse: unsupported number of room rows")

	// ErrBadJSON indicates syntactically invalid JSON or a missing field.
	ErrBadJSON = errors.New("parse: invalid JSON document")
)

// foldedRows are the two rows hidden in the folded diagram, top first.
var foldedRows = [2]string{"DCBA", "DBAC"}

// Options configures Grid.
//
// Unfold – insert the two folded rows (DCBA, DBAC) below the first room row,
// turning a depth-2 diagram into a depth-4 one.
type Options struct {
	Unfold bool
}

// Option represents a functional option for configuring Grid.
type Option func(*Options)

// Unfold enables insertion of the folded rows.
func Unfold() Option {
	return func(o *Options) {
		o.Unfold = true
	}
}

// DefaultOptions returns the parser defaults (no unfolding).
func DefaultOptions() Options {
	return Options{}
}
