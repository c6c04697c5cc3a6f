package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/parse"
)

func TestJSON_Sample(t *testing.T) {
	b, err := parse.JSON([]byte(`{"depth": 2, "bays": [["A","B"], ["D","C"], ["C","B"], ["A","D"]]}`))
	require.NoError(t, err)
	assert.Equal(t, burrow.Key("...........|AB|DC|CB|AD"), b.Key())
}

func TestJSON_Snapshot(t *testing.T) {
	doc := `{
		"depth": 2,
		"hallway": "...D.A.....",
		"bays": [["A"], ["B","B"], ["C","C"], ["D"]]
	}`
	b, err := parse.JSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, burrow.Key("...D.A.....|A.|BB|CC|D."), b.Key())

	// An empty hallway string means "no snapshot": partial bays are rejected.
	_, err = parse.JSON([]byte(`{"depth": 2, "hallway": "", "bays": [["A"], ["B","B"], ["C","C"], ["D"]]}`))
	assert.ErrorIs(t, err, burrow.ErrBadBayLength)
}

func TestJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"not json", `{"depth": 2,`, parse.ErrBadJSON},
		{"no depth", `{"bays": [["A","A"],["B","B"],["C","C"],["D","D"]]}`, parse.ErrBadJSON},
		{"string depth", `{"depth": "2", "bays": [["A","A"],["B","B"],["C","C"],["D","D"]]}`, parse.ErrBadJSON},
		{"three bays", `{"depth": 2, "bays": [["A","A"],["B","B"],["C","C"]]}`, parse.ErrBadJSON},
		{"bay not array", `{"depth": 2, "bays": ["AA",["B","B"],["C","C"],["D","D"]]}`, parse.ErrBadJSON},
		{"bad token", `{"depth": 2, "bays": [["A","E"],["B","B"],["C","C"],["D","D"]]}`, burrow.ErrUnknownKind},
		{"long token", `{"depth": 2, "bays": [["AA","A"],["B","B"],["C","C"],["D","D"]]}`, burrow.ErrUnknownKind},
		{"bad depth", `{"depth": 3, "bays": [["A","A"],["B","B"],["C","C"],["D","D"]]}`, burrow.ErrBadDepth},
		{"short hallway", `{"depth": 2, "hallway": "...", "bays": [["A"],["B","B"],["C","C"],["D","D"]]}`, parse.ErrBadJSON},
		{"bad hallway", `{"depth": 2, "hallway": "...X.......", "bays": [["A"],["B","B"],["C","C"],["D","D"]]}`, burrow.ErrUnknownKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.JSON([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
