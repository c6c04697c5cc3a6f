package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/parse"
)

const sample = `
#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func TestGrid_Sample(t *testing.T) {
	b, err := parse.Grid(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Depth())
	assert.Equal(t, burrow.Key("...........|AB|DC|CB|AD"), b.Key())
	assert.Equal(t, strings.TrimPrefix(sample, "\n"), b.String(), "diagram round-trips")
}

func TestGrid_Unfold(t *testing.T) {
	b, err := parse.Grid(strings.NewReader(sample), parse.Unfold())
	require.NoError(t, err)
	assert.Equal(t, 4, b.Depth())
	assert.Equal(t, burrow.Key("...........|ADDB|DBCC|CABB|ACAD"), b.Key())
}

func TestGrid_Depth4(t *testing.T) {
	in := "#############\n" +
		"#...........#\n" +
		"###A#B#C#D###\n" +
		"  #A#B#C#D#\n" +
		"  #A#B#C#D#\n" +
		"  #A#B#C#D#\n" +
		"  #########\n"
	b, err := parse.Grid(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, b.IsGoal())
	assert.Equal(t, 4, b.Depth())
}

// TestGrid_Snapshot reads a mid-solution diagram with resting tokens.
func TestGrid_Snapshot(t *testing.T) {
	in := "#############\n" +
		"#...D.A.....#\n" +
		"###.#B#C#.###\n" +
		"  #A#B#C#D#\n" +
		"  #########\n"
	b, err := parse.Grid(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, burrow.Desert, b.Hall(3))
	assert.Equal(t, burrow.Amber, b.Hall(5))
	assert.Equal(t, 1, b.Bay(0).Len())
	assert.Equal(t, 1, b.Bay(3).Len())
	assert.Equal(t, burrow.Key("...D.A.....|A.|BB|CC|D."), b.Key())
}

func TestGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", parse.ErrEmptyInput},
		{"walls only", "#############\n#########\n", parse.ErrEmptyInput},
		{"malformed", "#############\n#..#\n", parse.ErrMalformedRow},
		{"one room row", "#...........#\n###A#B#C#D###\n", parse.ErrRowCount},
		{"three room rows", "###A#B#C#D###\n#A#B#C#D#\n#A#B#C#D#\n", parse.ErrRowCount},
		{"unknown symbol", "###A#B#C#E###\n#A#B#C#D#\n", burrow.ErrUnknownKind},
		{"gap", "###A#B#C#D###\n#.#B#C#D#\n", parse.ErrMalformedRow},
		{"hallway after rooms", "###A#B#C#D###\n#...........#\n#A#B#C#D#\n", parse.ErrMalformedRow},
		{"two hallways", "#...........#\n#...........#\n", parse.ErrMalformedRow},
		{"wrong counts", "###A#A#C#D###\n#A#B#C#D#\n", burrow.ErrKindCount},
		{"blocked entrance", "#..A........#\n###.#B#C#D###\n#A#B#C#D#\n", burrow.ErrBlockedEntrance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.Grid(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
