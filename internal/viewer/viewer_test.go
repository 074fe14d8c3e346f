package viewer

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/interact"
	"xtalview/internal/represent"
	"xtalview/internal/structure"
)

func pair() structure.Structure {
	return structure.Structure{
		Atoms: []structure.Atom{
			{Element: "Si", Position: r3.Vec{}},
			{Element: "O", Position: r3.Vec{X: 3, Y: 4}},
		},
		Bonds:   []structure.Bond{{I: 0, J: 1}, {I: 0, J: 7}},
		Lattice: structure.Lattice{A: r3.Vec{X: 10}, B: r3.Vec{Y: 10}, C: r3.Vec{Z: 10}},
	}
}

type recorder struct{ events []Event }

func (r *recorder) ViewerEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []EventKind {
	var out []EventKind
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func TestLoadDefaultsReplication(t *testing.T) {
	v := New(Options{})
	require.False(t, v.Loaded())
	v.LoadMolecule(pair(), structure.Replication{})
	assert.True(t, v.Loaded())
	assert.Equal(t, structure.DefaultReplication, v.Replication())
	assert.Len(t, v.Supercell().Atoms, 2)
	assert.Len(t, v.Supercell().Bonds, 1)
}

func TestScenarioCornerOrigin(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(structure.Structure{
		Atoms:   []structure.Atom{{Element: "Si"}},
		Lattice: structure.IdentityLattice(),
	}, structure.Replication{NX: 2, NY: 1, NZ: 1})
	require.Equal(t, []r3.Vec{{}, {X: 1}}, v.Supercell().Positions())
}

func TestScenarioMissClearsSelection(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(pair(), structure.DefaultReplication)
	v.Pick(interact.Hit(1))
	idx, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	v.Pick(interact.Miss)
	_, ok = v.Selected()
	assert.False(t, ok)
}

func TestScenarioMeasurement(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(pair(), structure.DefaultReplication)
	require.True(t, v.ToggleMeasurement())
	v.Pick(interact.Hit(0))
	v.Pick(interact.Hit(1))

	st := v.Measurement()
	require.Equal(t, interact.Complete, st.Phase)
	assert.InDelta(t, 5.0, st.Distance, 1e-12)
	assert.Equal(t, r3.Vec{X: 1.5, Y: 2}, st.Midpoint)
	_, highlighted := v.Selected()
	assert.False(t, highlighted, "measurement picks do not highlight")
}

func TestLoadResetsMeasurement(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(pair(), structure.DefaultReplication)
	v.ToggleMeasurement()
	v.Pick(interact.Hit(0))
	v.Pick(interact.Hit(1))
	v.Pick(interact.Hit(0))

	v.LoadMolecule(structure.Structure{Atoms: []structure.Atom{{Element: "H"}}}, structure.DefaultReplication)
	assert.Equal(t, interact.MeasurementState{Phase: interact.AwaitingFirst}, v.Measurement())

	// The old second index no longer exists and cannot be measured against.
	v.Pick(interact.Hit(1))
	assert.Equal(t, interact.AwaitingFirst, v.Measurement().Phase)
}

func TestSetReplicationInvalidatesReferences(t *testing.T) {
	v := New(Options{})
	require.ErrorIs(t, v.SetReplication(structure.DefaultReplication), ErrNotInitialized)

	v.LoadMolecule(pair(), structure.DefaultReplication)
	v.Pick(interact.Hit(1))
	require.NoError(t, v.SetReplication(structure.Replication{NX: 3, NY: 2, NZ: 5}))
	assert.Equal(t, structure.Replication{NX: 3, NY: 2, NZ: 3}, v.Replication())
	assert.Len(t, v.Supercell().Atoms, 2*18)
	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestToggleRepresentationKeepsState(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(pair(), structure.Replication{NX: 2, NY: 2, NZ: 1})
	v.Pick(interact.Hit(3))
	before := v.Supercell()
	frame := v.Framing()

	assert.Equal(t, represent.SpaceFilling, v.ToggleRepresentation())
	assert.Same(t, before, v.Supercell())
	assert.Equal(t, frame, v.Framing())
	idx, ok := v.Selected()
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Empty(t, v.Bonds())
	assert.Equal(t, represent.SpaceFilling, v.PickSet().Mode())

	assert.Equal(t, represent.BallAndStick, v.ToggleRepresentation())
	assert.Len(t, v.Bonds(), 4)
}

func TestPickHandle(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(pair(), structure.DefaultReplication)
	stale := v.PickSet().Objects()[1].Handle

	v.PickHandle(stale, true)
	idx, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	v.SetRepresentation(represent.SpaceFilling)
	v.PickHandle(stale, true)
	_, ok = v.Selected()
	assert.False(t, ok, "handle of hidden representation must miss")
}

func TestPickOutOfRangeIsMiss(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(pair(), structure.DefaultReplication)
	v.Pick(interact.Hit(0))
	v.Pick(interact.Hit(99))
	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestObservers(t *testing.T) {
	v := New(Options{})
	a, b := &recorder{}, &recorder{}
	subA := v.Subscribe(a)
	v.Subscribe(b)

	v.LoadMolecule(pair(), structure.DefaultReplication)
	v.Pick(interact.Hit(0))
	v.ToggleRepresentation()
	assert.True(t, v.Unsubscribe(subA))
	assert.False(t, v.Unsubscribe(subA))
	v.ToggleMeasurement()

	assert.Equal(t, []EventKind{EventLoaded, EventPicked, EventSelection, EventRepresentation}, a.kinds())
	assert.Equal(t, append(a.kinds(), EventMeasurement), b.kinds())
	assert.Equal(t, 0, b.events[2].Selected)
	assert.True(t, b.events[2].HasSelected)
}

func TestObserverMayUnsubscribeDuringNotify(t *testing.T) {
	v := New(Options{})
	var calls int
	var id Subscription
	id = v.Subscribe(ObserverFunc(func(Event) {
		calls++
		v.Unsubscribe(id)
	}))
	other := &recorder{}
	v.Subscribe(other)

	v.ToggleMeasurement()
	v.ToggleMeasurement()
	assert.Equal(t, 1, calls)
	assert.Len(t, other.events, 2)
}

func TestLoadLogsAndGuessesBonds(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := New(Options{Logger: log, GuessBonds: true})

	water := structure.Structure{Atoms: []structure.Atom{
		{Element: "O"},
		{Element: "H", Position: r3.Vec{X: 0.96}},
		{Element: "H", Position: r3.Vec{X: -0.24, Y: 0.93}},
	}}
	v.LoadMolecule(water, structure.DefaultReplication)
	assert.Len(t, v.Supercell().Bonds, 2)
	assert.Len(t, v.Structure().Bonds, 2)
	assert.Contains(t, buf.String(), "structure loaded")
	assert.Contains(t, buf.String(), "bonds inferred")
	assert.Empty(t, water.Bonds, "caller's structure is not modified")
}

func TestDegenerateLatticeWarns(t *testing.T) {
	var buf bytes.Buffer
	v := New(Options{Logger: slog.New(slog.NewTextHandler(&buf, nil))})
	s := pair()
	s.Lattice.C = r3.Vec{}
	v.LoadMolecule(s, structure.DefaultReplication)
	assert.Contains(t, buf.String(), "degenerate lattice")
}

func TestLoadNonFinitePositionKeepsFramingFinite(t *testing.T) {
	v := New(Options{})
	v.LoadMolecule(structure.Structure{
		Atoms: []structure.Atom{
			{Element: "Si", Position: r3.Vec{Z: math.NaN()}},
			{Element: "O", Position: r3.Vec{X: 1}},
		},
	}, structure.DefaultReplication)
	f := v.Framing()
	assert.Equal(t, r3.Vec{X: 1}, f.Center)
	assert.False(t, math.IsNaN(f.Distance))
	assert.GreaterOrEqual(t, f.Distance, 4.0)
}
