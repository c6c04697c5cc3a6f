package burrow

// LowerBound estimates the energy still needed to reach the goal from b.
//
// Every token that is not settled is charged as if the hallway were empty
// and its target bay were ready:
//
//   - hallway token:  cost × (|pos − entrance(target)| + 1)
//   - bay token at slot i of bay j:
//     cost × ((depth − i) + |entrance(j) − entrance(target)| + 1)
//
// Settled tokens cost nothing. Congestion and the depth a token finally
// drops to are ignored, so the bound never overestimates (admissible), and
// no single move lowers it by more than the move costs (consistent).
//
// Complexity: O(HallwayLen + NumBays·depth).
func LowerBound(b Burrow) int64 {
	var total int64

	for pos, k := range b.hall {
		if k == None {
			continue
		}
		total += k.Cost() * int64(Distance(pos, Entrance(k.Bay()))+1)
	}

	for j, bay := range b.bays {
		for i := bay.SettledLen(); i < bay.Len(); i++ {
			k := bay.At(i)
			lift := b.depth - i
			across := Distance(Entrance(j), Entrance(k.Bay()))
			total += k.Cost() * int64(lift+across+1)
		}
	}

	return total
}
