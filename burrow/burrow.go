package burrow

import (
	"fmt"
	"strings"
)

// Burrow is one configuration of the puzzle: hallway contents plus the four bays.
//
// A Burrow holds only arrays, so assignment is a deep copy. All transition
// methods have value receivers and return the successor; the receiver is
// never modified. The zero Burrow (Depth() == 0) is not a valid configuration.
type Burrow struct {
	depth int
	hall  [HallwayLen]Kind
	bays  [NumBays]Bay
}

// New builds the starting configuration: an empty hallway and, for each bay,
// its contents listed bottom-to-top. Every bay must hold exactly depth tokens
// and every kind must appear exactly depth times.
//
// Errors: ErrBadDepth, ErrBadBayLength, ErrUnknownKind, ErrKindCount.
func New(depth int, bays [NumBays][]Kind) (Burrow, error) {
	if err := checkDepth(depth); err != nil {
		return Burrow{}, err
	}
	for i, content := range bays {
		if len(content) != depth {
			return Burrow{}, fmt.Errorf("%w: bay %d has %d tokens, want %d", ErrBadBayLength, i, len(content), depth)
		}
	}

	return build(depth, [HallwayLen]Kind{}, bays)
}

// FromSnapshot builds an intermediate configuration in which some tokens may
// rest in the hallway. Bays may be partially filled but never above depth;
// hallway tokens must sit on stops.
//
// Errors: ErrBadDepth, ErrBadBayLength, ErrUnknownKind, ErrKindCount,
// ErrBlockedEntrance.
func FromSnapshot(depth int, hall [HallwayLen]Kind, bays [NumBays][]Kind) (Burrow, error) {
	if err := checkDepth(depth); err != nil {
		return Burrow{}, err
	}
	for i, content := range bays {
		if len(content) > depth {
			return Burrow{}, fmt.Errorf("%w: bay %d has %d tokens, depth %d", ErrBadBayLength, i, len(content), depth)
		}
	}
	for pos, k := range hall {
		if k != None && !IsStop(pos) {
			return Burrow{}, fmt.Errorf("%w: position %d", ErrBlockedEntrance, pos)
		}
	}

	return build(depth, hall, bays)
}

// Goal returns the unique solved configuration for the given depth.
// It panics on an unsupported depth.
func Goal(depth int) Burrow {
	if err := checkDepth(depth); err != nil {
		panic(err.Error())
	}
	b := Burrow{depth: depth}
	for i := range b.bays {
		b.bays[i] = newBay(i, depth)
		for j := 0; j < depth; j++ {
			b.bays[i] = b.bays[i].push(Kinds[i])
		}
	}
	return b
}

func checkDepth(depth int) error {
	if depth != 2 && depth != MaxDepth {
		return fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	return nil
}

// build fills a Burrow from validated shapes and checks kinds and counts.
func build(depth int, hall [HallwayLen]Kind, bays [NumBays][]Kind) (Burrow, error) {
	var counts [len(kindInfo)]int
	b := Burrow{depth: depth}

	for pos, k := range hall {
		if k == None {
			continue
		}
		if !k.Valid() {
			return Burrow{}, fmt.Errorf("%w: %d at hallway position %d", ErrUnknownKind, k, pos)
		}
		b.hall[pos] = k
		counts[k]++
	}
	for i, content := range bays {
		b.bays[i] = newBay(i, depth)
		for j, k := range content {
			if !k.Valid() {
				return Burrow{}, fmt.Errorf("%w: %d in bay %d slot %d", ErrUnknownKind, k, i, j)
			}
			b.bays[i] = b.bays[i].push(k)
			counts[k]++
		}
	}
	for _, k := range Kinds {
		if counts[k] != depth {
			return Burrow{}, fmt.Errorf("%w: %s appears %d times, want %d", ErrKindCount, k, counts[k], depth)
		}
	}

	return b, nil
}

// Depth returns the bay capacity shared by all bays.
func (b Burrow) Depth() int { return b.depth }

// Hall returns the token at hallway position pos (None if empty or out of range).
func (b Burrow) Hall(pos int) Kind {
	if pos < 0 || pos >= HallwayLen {
		return None
	}
	return b.hall[pos]
}

// Bay returns a copy of bay i.
func (b Burrow) Bay(i int) Bay { return b.bays[i] }

// IsGoal reports whether the hallway is empty and every bay is complete.
func (b Burrow) IsGoal() bool {
	for _, k := range b.hall {
		if k != None {
			return false
		}
	}
	for _, bay := range b.bays {
		if !bay.Complete() {
			return false
		}
	}
	return b.depth != 0
}

// Exit moves the top token of bay i to hallway stop pos.
// Legality of the path is the caller's concern; occupancy is checked.
func (b Burrow) Exit(i, pos int) Burrow {
	if !IsStop(pos) {
		panic(panicNotAStop)
	}
	if b.hall[pos] != None {
		panic(panicHallTaken)
	}
	var k Kind
	b.bays[i], k = b.bays[i].pop()
	b.hall[pos] = k
	return b
}

// Enter moves the hallway token at pos into its target bay.
func (b Burrow) Enter(pos int) Burrow {
	k := b.Hall(pos)
	if k == None {
		panic(panicHallEmpty)
	}
	t := k.Bay()
	if !b.bays[t].Accepts(k) {
		panic(panicBayRejected)
	}
	b.hall[pos] = None
	b.bays[t] = b.bays[t].push(k)
	return b
}

// Transfer moves the top token of bay from straight into its target bay.
func (b Burrow) Transfer(from int) Burrow {
	var k Kind
	b.bays[from], k = b.bays[from].pop()
	t := k.Bay()
	if t == from || !b.bays[t].Accepts(k) {
		panic(panicBayRejected)
	}
	b.bays[t] = b.bays[t].push(k)
	return b
}

// String renders the configuration as the familiar puzzle diagram.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for _, k := range b.hall {
		sb.WriteByte(k.Symbol())
	}
	sb.WriteString("#\n")
	for row := b.depth - 1; row >= 0; row-- {
		if row == b.depth-1 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for _, bay := range b.bays {
			sb.WriteByte(bay.At(row).Symbol())
			sb.WriteByte('#')
		}
		if row == b.depth-1 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")
	return sb.String()
}
