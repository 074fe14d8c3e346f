package structure

import (
	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/chem"
)

// Distance thresholds for bond perception, in angstrom.
const (
	BondTolerance = 0.45
	TooClose      = 0.63
)

// GuessBonds infers bonds between base atoms from their separation: two atoms
// are bonded when their distance exceeds TooClose and is shorter than the sum
// of their covalent radii plus BondTolerance. Bond order and valence are not
// considered. The result is ordered by (I, J) with I < J.
func GuessBonds(atoms []Atom) []Bond {
	var bonds []Bond
	for i := 0; i < len(atoms); i++ {
		ri := chem.CovalentRadius(atoms[i].Element)
		for j := i + 1; j < len(atoms); j++ {
			d := r3.Norm(r3.Sub(atoms[j].Position, atoms[i].Position))
			limit := ri + chem.CovalentRadius(atoms[j].Element) + BondTolerance
			if d > TooClose && d < limit {
				bonds = append(bonds, Bond{I: i, J: j})
			}
		}
	}
	return bonds
}
