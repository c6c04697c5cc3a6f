package burrow

import (
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"
)

// entrances holds the hallway cells directly above a bay. Tokens pass
// through them but never stop there.
var entrances = func() mapset.Set[int] {
	s := mapset.New[int]()
	for i := 0; i < NumBays; i++ {
		s.Put(Entrance(i))
	}
	return s
}()

// stops is the ascending list of resting cells, built once.
var stops = func() []int {
	out := make([]int, 0, HallwayLen-NumBays)
	for pos := 0; pos < HallwayLen; pos++ {
		if !entrances.Has(pos) {
			out = append(out, pos)
		}
	}
	return out
}()

// Distance returns |a − b|, the number of cells between two hallway positions.
func Distance[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Entrance returns the hallway cell above bay i.
func Entrance(i int) int { return 2 + 2*i }

// IsStop reports whether a token may rest at hallway position pos.
func IsStop(pos int) bool {
	return pos >= 0 && pos < HallwayLen && !entrances.Has(pos)
}

// Stops returns the seven resting cells in ascending order.
// The returned slice is shared; callers must not modify it.
func Stops() []int { return stops }

// PathClear reports whether every hallway cell strictly between from and to
// is empty. The endpoints themselves are not inspected.
func (b Burrow) PathClear(from, to int) bool {
	if from > to {
		from, to = to, from
	}
	for c := from + 1; c < to; c++ {
		if b.hall[c] != None {
			return false
		}
	}
	return true
}
