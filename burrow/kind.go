package burrow

import "fmt"

// Kind identifies an amphipod species. The zero value None marks an empty cell.
type Kind uint8

const (
	None Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// kindInfo is the per-kind table; index 0 describes None.
var kindInfo = [...]struct {
	symbol byte
	cost   int64
	bay    int
}{
	{'.', 0, -1},
	{'A', 1, 0},
	{'B', 10, 1},
	{'C', 100, 2},
	{'D', 1000, 3},
}

// Kinds lists the four real kinds in cost order.
var Kinds = [NumBays]Kind{Amber, Bronze, Copper, Desert}

// KindOf maps an input symbol 'A'..'D' to its Kind.
func KindOf(symbol byte) (Kind, error) {
	if symbol < 'A' || symbol > 'D' {
		return None, fmt.Errorf("%w: %q", ErrUnknownKind, symbol)
	}

	return Kind(symbol-'A') + Amber, nil
}

// Valid reports whether k is one of the four real kinds.
func (k Kind) Valid() bool { return k >= Amber && k <= Desert }

// Cost returns the energy spent per step; 0 for None.
func (k Kind) Cost() int64 {
	if k > Desert {
		return 0
	}
	return kindInfo[k].cost
}

// Bay returns the index of the bay this kind belongs in, or -1 for None.
func (k Kind) Bay() int {
	if k > Desert {
		return -1
	}
	return kindInfo[k].bay
}

// Symbol returns the diagram byte for k ('.' for None).
func (k Kind) Symbol() byte {
	if k > Desert {
		return '?'
	}
	return kindInfo[k].symbol
}

func (k Kind) String() string { return string(k.Symbol()) }
