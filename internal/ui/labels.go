package ui

import (
	"fmt"

	"xtalview/internal/interact"
	"xtalview/internal/structure"
)

// Hints lists the key and pointer bindings shown under the controls.
var Hints = []string{
	"R      toggle representation",
	"M      toggle measurement",
	"C      toggle unit cell",
	"F      reframe",
	"L-click select / measure",
	"R-click set orbit pivot",
	"drag   orbit   wheel zoom",
	"Ctrl+S save   Q quit",
}

// HighlightLabel names the highlighted atom as "<element> #<n>" with a
// one-based n, or "None".
func HighlightLabel(sc *structure.Supercell, index int, ok bool) string {
	if !ok {
		return "None"
	}
	a, found := sc.Atom(index)
	if !found {
		return "None"
	}
	return fmt.Sprintf("%s #%d", a.Element, a.Index+1)
}

// MeasurementLabel prompts for the next pick or shows the result.
func MeasurementLabel(st interact.MeasurementState) string {
	switch st.Phase {
	case interact.AwaitingFirst:
		return "Select first atom"
	case interact.AwaitingSecond:
		return "Select second atom"
	case interact.Complete:
		return DistanceLabel(st.Distance)
	}
	return "Off"
}

// DistanceLabel formats a distance in angstrom with two decimals.
func DistanceLabel(d float64) string {
	return fmt.Sprintf("%.2f Å", d)
}
