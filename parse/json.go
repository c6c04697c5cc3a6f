package parse

import (
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/tidwall/gjson"
)

// JSON reads a configuration document:
//
//	{"depth": 2, "bays": [["A","B"], ["D","C"], ["C","B"], ["A","D"]], "hallway": "..........."}
//
// Bays are listed bottom-to-top. With no "hallway" (or an empty one) every bay
// must be full; otherwise the document describes a snapshot.
func JSON(data []byte) (burrow.Burrow, error) {
	doc := string(data)
	if !gjson.Valid(doc) {
		return burrow.Burrow{}, ErrBadJSON
	}

	depth := gjson.Get(doc, "depth")
	if depth.Type != gjson.Number {
		return burrow.Burrow{}, fmt.Errorf("%w: missing numeric \"depth\"", ErrBadJSON)
	}

	raw := gjson.Get(doc, "bays")
	if !raw.IsArray() || len(raw.Array()) != burrow.NumBays {
		return burrow.Burrow{}, fmt.Errorf("%w: \"bays\" must be an array of %d arrays", ErrBadJSON, burrow.NumBays)
	}

	var bays [burrow.NumBays][]burrow.Kind
	var err error
	for i, bay := range raw.Array() {
		if bays[i], err = bayKinds(bay); err != nil {
			return burrow.Burrow{}, fmt.Errorf("bays[%d]: %w", i, err)
		}
	}

	hall := gjson.Get(doc, "hallway")
	if !hall.Exists() || hall.String() == "" {
		return burrow.New(int(depth.Int()), bays)
	}
	if len(hall.String()) != burrow.HallwayLen {
		return burrow.Burrow{}, fmt.Errorf("%w: \"hallway\" must have %d cells", ErrBadJSON, burrow.HallwayLen)
	}
	cells, err := hallway(hall.String())
	if err != nil {
		return burrow.Burrow{}, fmt.Errorf("hallway: %w", err)
	}

	return burrow.FromSnapshot(int(depth.Int()), cells, bays)
}

// bayKinds converts one JSON array of single-letter strings.
func bayKinds(bay gjson.Result) ([]burrow.Kind, error) {
	if !bay.IsArray() {
		return nil, fmt.Errorf("%w: bay is not an array", ErrBadJSON)
	}
	var (
		out []burrow.Kind
		err error
	)
	bay.ForEach(func(_, v gjson.Result) bool {
		s := v.String()
		if v.Type != gjson.String || len(s) != 1 {
			err = fmt.Errorf("%w: %s", burrow.ErrUnknownKind, v.Raw)
			return false
		}
		var k burrow.Kind
		if k, err = burrow.KindOf(s[0]); err != nil {
			return false
		}
		out = append(out, k)
		return true
	})
	return out, err
}
