package structure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestLatticeVolume(t *testing.T) {
	l := Lattice{A: r3.Vec{X: 2}, B: r3.Vec{Y: 3}, C: r3.Vec{Z: 4}}
	assert.InDelta(t, 24, l.Volume(), 1e-12)
	assert.False(t, l.Degenerate())

	flat := Lattice{A: r3.Vec{X: 1}, B: r3.Vec{X: 2}, C: r3.Vec{Z: 1}}
	assert.True(t, flat.Degenerate())
	assert.True(t, Lattice{}.Degenerate())
}

func TestLatticeEdges(t *testing.T) {
	l := Lattice{A: r3.Vec{X: 2}, B: r3.Vec{Y: 3}, C: r3.Vec{Z: 4}}
	edges := l.Edges()
	require.Len(t, edges, 12)

	var total float64
	seen := map[Edge]bool{}
	for _, e := range edges {
		total += r3.Norm(r3.Sub(e.To, e.From))
		require.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}
	assert.InDelta(t, 4*(2+3+4), total, 1e-12)
	assert.Contains(t, edges, Edge{From: r3.Vec{}, To: r3.Vec{X: 2}})
	assert.Contains(t, edges, Edge{From: r3.Vec{Y: 3, Z: 4}, To: r3.Vec{X: 2, Y: 3, Z: 4}})
}

func TestLatticeTranslation(t *testing.T) {
	l := Lattice{A: r3.Vec{X: 1, Y: 1}, B: r3.Vec{Y: 2}, C: r3.Vec{Z: 3}}
	assert.Equal(t, r3.Vec{X: 2, Y: 4, Z: 3}, l.Translation(Cell{IX: 2, IY: 1, IZ: 1}))
}

func TestClampAxis(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{1, 1}, {2, 2}, {3, 3}, {0, 1}, {-2, 1}, {4, 3}, {100, 3},
		{1.4, 1}, {1.5, 2}, {2.6, 3}, {0.5, 1},
		{math.NaN(), 1}, {math.Inf(1), 1}, {math.Inf(-1), 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampAxis(tc.in), "ClampAxis(%v)", tc.in)
	}
}

func TestParseReplication(t *testing.T) {
	cases := map[string]Replication{
		"2,1,1":     {2, 1, 1},
		"3x3x3":     {3, 3, 3},
		"2 2":       {2, 2, 1},
		"":          {1, 1, 1},
		"a,b,c":     {1, 1, 1},
		"9,-1,2.6":  {3, 1, 3},
		" 1 , 2 ,3": {1, 2, 3},
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseReplication(in), "ParseReplication(%q)", in)
	}
	assert.Equal(t, 1, ParseAxis("two"))
	assert.Equal(t, "2,1,3", Replication{2, 1, 3}.String())
}

func TestReplicationWithAxis(t *testing.T) {
	r := DefaultReplication.WithAxis(1, 5)
	assert.Equal(t, Replication{1, 3, 1}, r)
	assert.Equal(t, 3, r.Axis(1))
	assert.Panics(t, func() { r.WithAxis(3, 1) })
}

func TestGuessBonds(t *testing.T) {
	atoms := []Atom{
		{Element: "O", Position: r3.Vec{}},
		{Element: "H", Position: r3.Vec{X: 0.96}},
		{Element: "H", Position: r3.Vec{X: -0.24, Y: 0.93}},
		{Element: "H", Position: r3.Vec{X: 5}},
		{Element: "H", Position: r3.Vec{X: 5.3}},
	}
	bonds := GuessBonds(atoms)
	// The last pair is closer than TooClose and is not bonded.
	assert.Equal(t, []Bond{{0, 1}, {0, 2}}, bonds)
	assert.Empty(t, GuessBonds(nil))
}
