package burrow

// Bay is a fixed-depth stack of amphipods. Slot 0 is the bottom.
//
// Bay is a value type: push and pop return modified copies and never touch
// the receiver, so a Bay stored in a Burrow that sits in a frontier cannot
// change underneath it.
type Bay struct {
	target Kind
	depth  uint8
	n      uint8
	slots  [MaxDepth]Kind
}

// newBay builds an empty bay for index i with the given depth.
func newBay(i, depth int) Bay {
	return Bay{target: Kinds[i], depth: uint8(depth)}
}

// Target returns the kind that belongs in this bay.
func (b Bay) Target() Kind { return b.target }

// Index returns the bay position 0..3.
func (b Bay) Index() int { return b.target.Bay() }

// Depth returns the bay capacity.
func (b Bay) Depth() int { return int(b.depth) }

// Len returns the number of tokens inside.
func (b Bay) Len() int { return int(b.n) }

// Free returns the number of empty slots above the top token.
func (b Bay) Free() int { return int(b.depth - b.n) }

// At returns the token at slot i (0 = bottom), or None when the slot is empty.
func (b Bay) At(i int) Kind {
	if i < 0 || i >= int(b.n) {
		return None
	}
	return b.slots[i]
}

// Top returns the uppermost token, if any.
func (b Bay) Top() (Kind, bool) {
	if b.n == 0 {
		return None, false
	}
	return b.slots[b.n-1], true
}

// SettledLen returns the length of the bottom run of target-kind tokens.
// Every token in that run is settled: it is home and nothing wrong sits below it.
func (b Bay) SettledLen() int {
	var i uint8
	for i = 0; i < b.n; i++ {
		if b.slots[i] != b.target {
			break
		}
	}
	return int(i)
}

// Settled reports whether every present token is of the target kind,
// i.e. the bay is sorted from the bottom up to its current height.
func (b Bay) Settled() bool { return b.SettledLen() == int(b.n) }

// Complete reports whether the bay is full and sorted.
func (b Bay) Complete() bool { return b.n == b.depth && b.Settled() }

// Accepts reports whether k may enter: k must be the target kind, the bay
// must have room, and nothing foreign may be inside.
func (b Bay) Accepts(k Kind) bool {
	return k == b.target && b.n < b.depth && b.Settled()
}

// push returns a copy with k placed on top.
func (b Bay) push(k Kind) Bay {
	if b.n >= b.depth {
		panic(panicBayFull)
	}
	b.slots[b.n] = k
	b.n++
	return b
}

// pop returns a copy without its top token, and that token.
func (b Bay) pop() (Bay, Kind) {
	if b.n == 0 {
		panic(panicBayEmpty)
	}
	b.n--
	k := b.slots[b.n]
	b.slots[b.n] = None
	return b, k
}
