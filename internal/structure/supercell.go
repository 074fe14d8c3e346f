package structure

import "gonum.org/v1/gonum/spatial/r3"

// GlobalIndex returns the supercell index of base atom baseIndex in cell c.
// Cells are enumerated with ix outermost and iz innermost; atoms keep their
// base order within a cell.
func GlobalIndex(rep Replication, c Cell, baseIndex, baseCount int) int {
	cell := (c.IX*rep.NY+c.IY)*rep.NZ + c.IZ
	return cell*baseCount + baseIndex
}

// Build expands s into rep.NX × rep.NY × rep.NZ replicas. Replica (ix,iy,iz)
// is translated by ix·a + iy·b + iz·c, so the supercell grows from the
// origin corner. Bonds are repeated inside each replica only; bonds with an
// endpoint outside the base atom range, or joining an atom to itself, are
// dropped. A missing lattice is replaced by the identity basis.
//
// Build is deterministic and does not retain or modify its inputs.
func Build(s Structure, rep Replication) *Supercell {
	rep = rep.Clamp()
	lat := s.Lattice.OrIdentity()
	n := len(s.Atoms)

	valid := make([]Bond, 0, len(s.Bonds))
	for _, b := range s.Bonds {
		if b.I < 0 || b.I >= n || b.J < 0 || b.J >= n || b.I == b.J {
			continue
		}
		valid = append(valid, b)
	}

	sc := &Supercell{
		Atoms:       make([]SupercellAtom, 0, n*rep.Cells()),
		Bonds:       make([]SupercellBond, 0, len(valid)*rep.Cells()),
		Lattice:     lat,
		Replication: rep,
		Dropped:     len(s.Bonds) - len(valid),
	}

	for ix := 0; ix < rep.NX; ix++ {
		for iy := 0; iy < rep.NY; iy++ {
			for iz := 0; iz < rep.NZ; iz++ {
				cell := Cell{IX: ix, IY: iy, IZ: iz}
				offset := lat.Translation(cell)
				start := len(sc.Atoms)
				for i, a := range s.Atoms {
					sc.Atoms = append(sc.Atoms, SupercellAtom{
						BaseIndex: i,
						Cell:      cell,
						Index:     start + i,
						Element:   a.Element,
						Position:  r3.Add(a.Position, offset),
					})
				}
				for _, b := range valid {
					sc.Bonds = append(sc.Bonds, SupercellBond{I: start + b.I, J: start + b.J})
				}
			}
		}
	}
	return sc
}
