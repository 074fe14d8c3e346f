package represent

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/chem"
	"xtalview/internal/structure"
)

// Scale factors applied to the tabulated radii.
const (
	BallScale  = 0.25
	VdWScale   = 0.17
	BondRadius = 0.12
)

// Radius returns the display radius of an element in mode m.
func Radius(element string, m Mode) float64 {
	if m == SpaceFilling {
		return chem.VdWRadius(element) * VdWScale
	}
	return chem.CovalentRadius(element) * BallScale
}

// Color returns the display color of an element.
func Color(element string) color.RGBA {
	return chem.Color(element)
}

// AtomStyle is the derived appearance of one supercell atom.
type AtomStyle struct {
	Index  int
	Center r3.Vec
	Radius float64
	Color  color.RGBA
}

// BondStyle is the derived appearance of one supercell bond.
type BondStyle struct {
	From, To r3.Vec
	Radius   float64
	Color    color.RGBA
}

// Atoms derives atom styles for every supercell atom. The supercell is not
// modified.
func Atoms(sc *structure.Supercell, m Mode) []AtomStyle {
	out := make([]AtomStyle, sc.Len())
	for i := range out {
		a := sc.Atoms[i]
		out[i] = AtomStyle{
			Index:  a.Index,
			Center: a.Position,
			Radius: Radius(a.Element, m),
			Color:  Color(a.Element),
		}
	}
	return out
}

// Bonds derives bond styles. Space-filling mode hides bonds and returns nil.
func Bonds(sc *structure.Supercell, m Mode) []BondStyle {
	if !m.ShowsBonds() || sc == nil {
		return nil
	}
	out := make([]BondStyle, 0, len(sc.Bonds))
	for _, b := range sc.Bonds {
		ai, aj := sc.Atoms[b.I], sc.Atoms[b.J]
		out = append(out, BondStyle{
			From:   ai.Position,
			To:     aj.Position,
			Radius: BondRadius,
			Color:  Blend(Color(ai.Element), Color(aj.Element)),
		})
	}
	return out
}

// Blend mixes two colors evenly.
func Blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: uint8((uint16(a.A) + uint16(b.A)) / 2),
	}
}
