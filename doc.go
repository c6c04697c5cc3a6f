// Package burrow is the root of a small solver for the amphipod sorting
// puzzle: four kinds of tokens (A, B, C, D) start scrambled in four side
// bays below an 11-cell hallway and must each end up in their own bay,
// spending as little energy as possible.
//
// 🚀 What is in the box?
//
//   - burrow/ : the configuration model (hallway, bays, tokens), its
//     canonical key and an admissible lower bound on the remaining cost
//   - moves/  : the legal-move generator (bay → hallway, hallway → bay and
//     the optional bay → bay shortcut) and replay of a single move
//   - astar/  : A* search with a lazy decrease-key frontier, returning the
//     minimum energy, the optimal move sequence or Unsolvable
//   - parse/  : readers for the puzzle diagram and a JSON description
//   - cmd/amphipod : the command-line entry point (and, built with the
//     lambda tag, an AWS Lambda function URL handler)
//
// Quick ASCII example (depth 2, optimum 12521):
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
//	go run ./cmd/amphipod -f input.txt
//	go run ./cmd/amphipod -f input.txt -unfold -path
package burrow
