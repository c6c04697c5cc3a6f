package burrow

// Key is the canonical identity of a Burrow.
//
// Layout: the eleven hallway symbols left to right, then for each bay a '|'
// followed by exactly depth symbols bottom-to-top, padded with '.'. Every
// section has a fixed width, so two keys are equal iff the hallway and every
// bay hold identical contents. Keys are only comparable within one depth.
type Key string

// keySep separates the hallway section from each bay section.
const keySep = '|'

// Key returns the canonical key for b.
func (b Burrow) Key() Key {
	var buf [HallwayLen + NumBays*(MaxDepth+1)]byte
	n := 0
	for _, k := range b.hall {
		buf[n] = k.Symbol()
		n++
	}
	for _, bay := range b.bays {
		buf[n] = keySep
		n++
		for i := 0; i < b.depth; i++ {
			buf[n] = bay.At(i).Symbol()
			n++
		}
	}
	return Key(buf[:n])
}
