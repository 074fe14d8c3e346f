package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/interact"
	"xtalview/internal/structure"
)

func TestHighlightLabel(t *testing.T) {
	sc := structure.Build(structure.Structure{Atoms: []structure.Atom{{Element: "Si"}, {Element: "O", Position: r3.Vec{X: 1}}}},
		structure.Replication{NX: 2, NY: 1, NZ: 1})
	assert.Equal(t, "None", HighlightLabel(sc, 0, false))
	assert.Equal(t, "Si #1", HighlightLabel(sc, 0, true))
	assert.Equal(t, "O #4", HighlightLabel(sc, 3, true))
	assert.Equal(t, "None", HighlightLabel(sc, 4, true))
}

func TestMeasurementLabel(t *testing.T) {
	assert.Equal(t, "Off", MeasurementLabel(interact.MeasurementState{}))
	assert.Equal(t, "Select first atom", MeasurementLabel(interact.MeasurementState{Phase: interact.AwaitingFirst}))
	assert.Equal(t, "Select second atom", MeasurementLabel(interact.MeasurementState{Phase: interact.AwaitingSecond}))
	assert.Equal(t, "5.00 Å", MeasurementLabel(interact.MeasurementState{Phase: interact.Complete, Distance: 5}))
	assert.Equal(t, "2.35 Å", DistanceLabel(2.3456))
}
