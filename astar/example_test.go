// Package astar_test provides runnable examples for the burrow search.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/burrow/astar"
	"github.com/katalvlaran/burrow/burrow"
)

// ExampleSolve sorts the classic depth-2 instance.
func ExampleSolve() {
	b, err := burrow.New(2, [burrow.NumBays][]burrow.Kind{
		{burrow.Amber, burrow.Bronze},
		{burrow.Desert, burrow.Copper},
		{burrow.Copper, burrow.Bronze},
		{burrow.Amber, burrow.Desert},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Cost)
	// Output: solved 12521
}

// ExampleSolve_path asks for the move sequence of a small swap.
// A steps aside, B walks straight into its own bay, A walks home.
func ExampleSolve_path() {
	b, _ := burrow.New(2, [burrow.NumBays][]burrow.Kind{
		{burrow.Amber, burrow.Bronze},
		{burrow.Bronze, burrow.Amber},
		{burrow.Copper, burrow.Copper},
		{burrow.Desert, burrow.Desert},
	})

	res, err := astar.Solve(b, astar.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost, "moves:", len(res.Path))
	fmt.Println(res.Path[1])
	// Output:
	// cost: 46 moves: 3
	// B: bay 0 → bay 1 (4 steps, cost 40)
}

// ExampleSolve_unsolvable shows that a deadlock is reported through Status.
func ExampleSolve_unsolvable() {
	var hall [burrow.HallwayLen]burrow.Kind
	hall[3] = burrow.Desert
	hall[5] = burrow.Amber
	b, _ := burrow.FromSnapshot(2, hall, [burrow.NumBays][]burrow.Kind{
		{burrow.Amber},
		{burrow.Bronze, burrow.Bronze},
		{burrow.Copper, burrow.Copper},
		{burrow.Desert},
	})

	res, err := astar.Solve(b)
	fmt.Println(res.Status, err)
	// Output: unsolvable <nil>
}
