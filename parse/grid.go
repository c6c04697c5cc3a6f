package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/burrow/burrow"
)

// row kinds recognized by classify.
const (
	rowWall = iota
	rowHall
	rowRoom
)

// Grid reads a puzzle diagram from r.
//
// Complexity: O(input size).
func Grid(r io.Reader, opts ...Option) (burrow.Burrow, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		hall    [burrow.HallwayLen]burrow.Kind
		rooms   []string // top row first, '#' stripped
		lineNo  int
		sawHall bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		kind, cells, err := classify(line)
		if err != nil {
			return burrow.Burrow{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		switch kind {
		case rowHall:
			if sawHall || len(rooms) > 0 {
				return burrow.Burrow{}, fmt.Errorf("line %d: %w: unexpected hallway row", lineNo, ErrMalformedRow)
			}
			sawHall = true
			if hall, err = hallway(cells); err != nil {
				return burrow.Burrow{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case rowRoom:
			rooms = append(rooms, cells)
			if cfg.Unfold && len(rooms) == 1 {
				rooms = append(rooms, foldedRows[:]...)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return burrow.Burrow{}, fmt.Errorf("parse: reading input: %w", err)
	}
	if len(rooms) == 0 {
		return burrow.Burrow{}, ErrEmptyInput
	}

	return fromRows(hall, rooms)
}

// classify strips walls from line and decides what kind of row it is.
func classify(line string) (int, string, error) {
	cells := strings.ReplaceAll(line, "#", "")
	switch len(cells) {
	case 0:
		return rowWall, "", nil
	case burrow.HallwayLen:
		return rowHall, cells, nil
	case burrow.NumBays:
		return rowRoom, cells, nil
	default:
		return 0, "", fmt.Errorf("%w: %q", ErrMalformedRow, line)
	}
}

// hallway converts the eleven hallway symbols.
func hallway(cells string) ([burrow.HallwayLen]burrow.Kind, error) {
	var hall [burrow.HallwayLen]burrow.Kind
	for pos := 0; pos < len(cells); pos++ {
		k, err := symbol(cells[pos])
		if err != nil {
			return hall, err
		}
		hall[pos] = k
	}
	return hall, nil
}

// fromRows builds the burrow from the hallway and top-first room rows.
func fromRows(hall [burrow.HallwayLen]burrow.Kind, rooms []string) (burrow.Burrow, error) {
	depth := len(rooms)
	if depth != 2 && depth != burrow.MaxDepth {
		return burrow.Burrow{}, fmt.Errorf("%w: %d", ErrRowCount, depth)
	}

	var bays [burrow.NumBays][]burrow.Kind
	snapshot := false
	for _, k := range hall {
		if k != burrow.None {
			snapshot = true
		}
	}

	for i := 0; i < burrow.NumBays; i++ {
		content := make([]burrow.Kind, 0, depth)
		for row := depth - 1; row >= 0; row-- {
			k, err := symbol(rooms[row][i])
			if err != nil {
				return burrow.Burrow{}, fmt.Errorf("room row %d: %w", row+1, err)
			}
			if k == burrow.None {
				snapshot = true
				continue
			}
			if len(content) != depth-1-row {
				return burrow.Burrow{}, fmt.Errorf("%w: bay %d has a gap below row %d", ErrMalformedRow, i, row+1)
			}
			content = append(content, k)
		}
		bays[i] = content
	}

	if snapshot {
		return burrow.FromSnapshot(depth, hall, bays)
	}
	return burrow.New(depth, bays)
}

// symbol maps a diagram byte to a Kind; '.' is an empty cell.
func symbol(c byte) (burrow.Kind, error) {
	if c == '.' {
		return burrow.None, nil
	}
	return burrow.KindOf(c)
}
