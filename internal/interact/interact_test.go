package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/spatial/r3"
)

type positions []r3.Vec

func (p positions) Position(i int) (r3.Vec, bool) {
	if i < 0 || i >= len(p) {
		return r3.Vec{}, false
	}
	return p[i], true
}

func TestSelection(t *testing.T) {
	var s Selection
	assert.True(t, s.Idle())

	assert.True(t, s.OnPick(Hit(3)))
	idx, ok := s.Highlighted()
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	assert.False(t, s.OnPick(Hit(3)), "re-selecting is idempotent")
	assert.True(t, s.OnPick(Hit(0)))
	idx, _ = s.Highlighted()
	assert.Equal(t, 0, idx)

	assert.True(t, s.OnPick(Miss))
	assert.True(t, s.Idle())
	assert.False(t, s.OnPick(Miss))
}

func TestDistanceSymmetry(t *testing.T) {
	a := r3.Vec{X: 1, Y: -2, Z: 0.5}
	b := r3.Vec{X: -3, Y: 4, Z: 2}
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Zero(t, Distance(a, a))
	assert.Equal(t, Midpoint(a, b), Midpoint(b, a))
}

type MeasurementSuite struct {
	suite.Suite
	atoms positions
	m     Measurement
}

func (s *MeasurementSuite) SetupTest() {
	s.atoms = positions{{}, {X: 3, Y: 4}, {X: 1}}
	s.m = Measurement{}
}

func (s *MeasurementSuite) TestInactiveIgnoresPicks() {
	s.False(s.m.OnPick(Hit(0), s.atoms))
	s.Equal(Inactive, s.m.State().Phase)
}

func (s *MeasurementSuite) TestDistanceAndMidpoint() {
	s.True(s.m.Toggle())
	s.Equal(AwaitingFirst, s.m.State().Phase)

	s.True(s.m.OnPick(Hit(0), s.atoms))
	st := s.m.State()
	s.Equal(AwaitingSecond, st.Phase)
	s.Equal(0, st.First)

	s.True(s.m.OnPick(Hit(1), s.atoms))
	st = s.m.State()
	s.Equal(Complete, st.Phase)
	s.Equal(1, st.Second)
	s.InDelta(5.0, st.Distance, 1e-12)
	s.Equal(r3.Vec{X: 1.5, Y: 2}, st.Midpoint)
}

func (s *MeasurementSuite) TestSameAtomSecondPickIsNoop() {
	s.m.Toggle()
	s.m.OnPick(Hit(2), s.atoms)
	before := s.m.State()
	s.False(s.m.OnPick(Hit(2), s.atoms))
	s.Equal(before, s.m.State())
}

func (s *MeasurementSuite) TestPickAfterCompleteRestarts() {
	s.m.Toggle()
	s.m.OnPick(Hit(0), s.atoms)
	s.m.OnPick(Hit(1), s.atoms)
	s.True(s.m.OnPick(Hit(2), s.atoms))
	s.Equal(MeasurementState{Phase: AwaitingSecond, First: 2}, s.m.State())
}

func (s *MeasurementSuite) TestMissAndUnknownIndexIgnored() {
	s.m.Toggle()
	s.m.OnPick(Hit(0), s.atoms)
	before := s.m.State()
	s.False(s.m.OnPick(Miss, s.atoms))
	s.False(s.m.OnPick(Hit(17), s.atoms))
	s.Equal(before, s.m.State())
}

func (s *MeasurementSuite) TestToggleOffDiscards() {
	for _, picks := range [][]int{nil, {0}, {0, 1}} {
		s.m = Measurement{}
		s.m.Toggle()
		for _, i := range picks {
			s.m.OnPick(Hit(i), s.atoms)
		}
		s.False(s.m.Toggle())
		s.Equal(MeasurementState{}, s.m.State())
	}
}

func (s *MeasurementSuite) TestResetDropsReferences() {
	s.m.Reset()
	s.Equal(Inactive, s.m.State().Phase)

	s.m.Toggle()
	s.m.OnPick(Hit(0), s.atoms)
	s.m.OnPick(Hit(1), s.atoms)
	s.m.Reset()
	s.Equal(MeasurementState{Phase: AwaitingFirst}, s.m.State())

	// A pick against a smaller atom set cannot complete with the old index.
	s.m.OnPick(Hit(0), positions{{X: 9}})
	s.Equal(MeasurementState{Phase: AwaitingSecond, First: 0}, s.m.State())
}

func (s *MeasurementSuite) TestStaleFirstRestartsFromSecond() {
	s.m.Toggle()
	s.m.OnPick(Hit(2), s.atoms)
	short := positions{{}, {X: 1}}
	s.True(s.m.OnPick(Hit(1), short))
	s.Equal(MeasurementState{Phase: AwaitingSecond, First: 1}, s.m.State())
}

func TestMeasurementSuite(t *testing.T) {
	suite.Run(t, new(MeasurementSuite))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "awaiting-second", AwaitingSecond.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
