package represent

import (
	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/structure"
)

// Handle identifies a pickable object of one representation. Handles from
// different modes never resolve against each other.
type Handle struct {
	Mode Mode
	Slot int
}

// Pickable is a sphere the renderer can hit-test.
type Pickable struct {
	Handle Handle
	Center r3.Vec
	Radius float64
}

// PickSet is the pickable object set of the visible representation.
type PickSet struct {
	mode    Mode
	objects []Pickable
	atoms   []int
}

// Pickables builds the pick set for sc in mode m.
func Pickables(sc *structure.Supercell, m Mode) *PickSet {
	ps := &PickSet{mode: m}
	for _, st := range Atoms(sc, m) {
		h := Handle{Mode: m, Slot: len(ps.objects)}
		ps.objects = append(ps.objects, Pickable{Handle: h, Center: st.Center, Radius: st.Radius})
		ps.atoms = append(ps.atoms, st.Index)
	}
	return ps
}

// Mode returns the representation the set was built for.
func (ps *PickSet) Mode() Mode { return ps.mode }

// Objects returns the pickable spheres.
func (ps *PickSet) Objects() []Pickable {
	if ps == nil {
		return nil
	}
	return ps.objects
}

// Resolve maps a handle to the stable supercell atom index.
func (ps *PickSet) Resolve(h Handle) (int, bool) {
	if ps == nil || h.Mode != ps.mode || h.Slot < 0 || h.Slot >= len(ps.atoms) {
		return 0, false
	}
	return ps.atoms[h.Slot], true
}
