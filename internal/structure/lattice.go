package structure

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateVolume is the cell volume below which the lattice vectors are
// treated as linearly dependent.
const degenerateVolume = 1e-9

// Lattice holds the three cell vectors.
type Lattice struct {
	A, B, C r3.Vec
}

// Edge is a segment of the unit-cell frame.
type Edge struct {
	From, To r3.Vec
}

// IdentityLattice returns the unit basis.
func IdentityLattice() Lattice {
	return Lattice{
		A: r3.Vec{X: 1},
		B: r3.Vec{Y: 1},
		C: r3.Vec{Z: 1},
	}
}

// IsZero reports whether no lattice vectors were provided.
func (l Lattice) IsZero() bool {
	return l == Lattice{}
}

// OrIdentity substitutes the identity basis for a missing lattice.
func (l Lattice) OrIdentity() Lattice {
	if l.IsZero() {
		return IdentityLattice()
	}
	return l
}

// Matrix returns the lattice as a 3x3 matrix with one vector per row.
func (l Lattice) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		l.A.X, l.A.Y, l.A.Z,
		l.B.X, l.B.Y, l.B.Z,
		l.C.X, l.C.Y, l.C.Z,
	})
}

// Volume returns the absolute cell volume.
func (l Lattice) Volume() float64 {
	return math.Abs(mat.Det(l.Matrix()))
}

// Degenerate reports whether the cell has (near) zero volume.
func (l Lattice) Degenerate() bool {
	v := l.Volume()
	return math.IsNaN(v) || v < degenerateVolume
}

// Translation returns the offset of a replica: ix·a + iy·b + iz·c.
func (l Lattice) Translation(c Cell) r3.Vec {
	t := r3.Scale(float64(c.IX), l.A)
	t = r3.Add(t, r3.Scale(float64(c.IY), l.B))
	return r3.Add(t, r3.Scale(float64(c.IZ), l.C))
}

// Corners returns the eight corners of the cell anchored at the origin,
// indexed by the bit pattern (a, b, c).
func (l Lattice) Corners() [8]r3.Vec {
	var out [8]r3.Vec
	for i := range out {
		out[i] = l.Translation(Cell{IX: i & 1, IY: (i >> 1) & 1, IZ: (i >> 2) & 1})
	}
	return out
}

// Edges returns the twelve edges of the unit-cell parallelepiped.
func (l Lattice) Edges() []Edge {
	c := l.Corners()
	out := make([]Edge, 0, 12)
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				out = append(out, Edge{From: c[i], To: c[i|bit]})
			}
		}
	}
	return out
}
