// Package burrow models the amphipod burrow: four kinds of amphipods, four
// fixed-depth side bays and the eleven-cell hallway that connects them.
//
// What:
//
//   - Kind: one of Amber, Bronze, Copper, Desert (A..D). Each kind carries a
//     fixed per-step energy cost (1, 10, 100, 1000) and a target bay.
//   - Bay: a bottom-to-top stack of kinds with a fixed depth (2 or 4).
//     Only the top is reachable; a bay accepts a newcomer only while every
//     token already inside is of its target kind.
//   - Burrow: the full configuration (hallway + bays). It is a plain value:
//     copying a Burrow copies every cell, so successors never alias parents.
//   - Key: a fixed-length, directly comparable canonical encoding of a Burrow,
//     used as the identity in best-cost tables.
//   - LowerBound: an admissible, consistent estimate of the remaining cost.
//
// Layout of the hallway and the bay entrances:
//
//	#############
//	#...........#     hallway cells 0..10
//	###B#C#B#D###     entrances at 2, 4, 6, 8 (never a resting stop)
//	  #A#D#C#A#       bay 0..3, bottom slot is index 0
//	  #########
//
// Errors:
//
//   - ErrBadDepth        depth is neither 2 nor 4.
//   - ErrBadBayLength    a bay has the wrong number of tokens.
//   - ErrUnknownKind     a symbol or kind is outside A..D.
//   - ErrKindCount       some kind does not appear exactly depth times.
//   - ErrBlockedEntrance a snapshot places a token on an entrance cell.
//
// Invariant violations (pushing into a full bay, popping an empty one,
// moving from an empty hallway cell) are programming errors and panic.
package burrow
