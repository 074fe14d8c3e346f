// Package structure models a periodic structure (lattice, base atoms and
// bonds) and expands it into a supercell of positioned atoms and bonds.
package structure

import "gonum.org/v1/gonum/spatial/r3"

// Atom is a base atom of the unit cell.
type Atom struct {
	Element  string
	Position r3.Vec
}

// Bond joins two base atoms by index. Endpoints are validated only when a
// supercell is built.
type Bond struct {
	I, J int
}

// Structure is the compact description a supercell is built from.
type Structure struct {
	Atoms   []Atom
	Bonds   []Bond
	Lattice Lattice
}

// Cell identifies one replica of the unit cell.
type Cell struct {
	IX, IY, IZ int
}

// SupercellAtom is an atom placed in a specific replica. Index is stable for
// a given replication and base atom count.
type SupercellAtom struct {
	BaseIndex int
	Cell      Cell
	Index     int
	Element   string
	Position  r3.Vec
}

// SupercellBond joins two supercell atoms by Index.
type SupercellBond struct {
	I, J int
}

// Supercell is the result of a build. Callers treat it as immutable; a
// rebuild produces a new value.
type Supercell struct {
	Atoms       []SupercellAtom
	Bonds       []SupercellBond
	Lattice     Lattice
	Replication Replication
	// Dropped counts base bonds rejected for invalid endpoints.
	Dropped int
}

// Atom returns the atom with the given index.
func (s *Supercell) Atom(index int) (SupercellAtom, bool) {
	if s == nil || index < 0 || index >= len(s.Atoms) {
		return SupercellAtom{}, false
	}
	return s.Atoms[index], true
}

// Len returns the number of supercell atoms.
func (s *Supercell) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Atoms)
}

// Positions returns a copy of the atom positions in index order.
func (s *Supercell) Positions() []r3.Vec {
	out := make([]r3.Vec, s.Len())
	for i := range out {
		out[i] = s.Atoms[i].Position
	}
	return out
}

// Position returns the position of the atom with the given index.
func (s *Supercell) Position(index int) (r3.Vec, bool) {
	a, ok := s.Atom(index)
	return a.Position, ok
}
