// Package framing computes where a camera should look to show a set of atoms.
package framing

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DistanceScale multiplies the bounding-box diagonal.
	DistanceScale = 1.25
	// MinDistance keeps single-atom and empty structures in view.
	MinDistance = 4.0
)

// ViewDirection is the unit vector from the target towards the camera.
var ViewDirection = r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1})

// Framing is a suggested camera target and distance.
type Framing struct {
	Center   r3.Vec
	Distance float64
	Min, Max r3.Vec
}

// Frame fits the axis-aligned bounding box of points. Points with a NaN or
// infinite coordinate are skipped; with no finite point left the origin is
// framed at MinDistance.
func Frame(points []r3.Vec) Framing {
	var lo, hi r3.Vec
	n := 0
	for _, p := range points {
		if !finite(p) {
			continue
		}
		if n == 0 {
			lo, hi = p, p
		}
		n++
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	if n == 0 {
		return Framing{Distance: MinDistance}
	}
	diag := r3.Norm(r3.Sub(hi, lo))
	return Framing{
		Center:   r3.Scale(0.5, r3.Add(lo, hi)),
		Distance: math.Max(DistanceScale*diag, MinDistance),
		Min:      lo,
		Max:      hi,
	}
}

func finite(p r3.Vec) bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Diagonal returns the length of the bounding-box diagonal.
func (f Framing) Diagonal() float64 {
	return r3.Norm(r3.Sub(f.Max, f.Min))
}

// Eye returns the camera position along ViewDirection.
func (f Framing) Eye() r3.Vec {
	return r3.Add(f.Center, r3.Scale(f.Distance, ViewDirection))
}
