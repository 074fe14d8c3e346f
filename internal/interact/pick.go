// Package interact holds the selection and distance-measurement state
// machines driven by pick events.
package interact

import "gonum.org/v1/gonum/spatial/r3"

// Pick is a resolved pick event: either a hit on a supercell atom index or a
// miss.
type Pick struct {
	Index int
	Hit   bool
}

// Hit returns a pick event for atom index.
func Hit(index int) Pick { return Pick{Index: index, Hit: true} }

// Miss is a pick with nothing under the pointer.
var Miss = Pick{}

// Positioner resolves atom indices to positions.
type Positioner interface {
	Position(index int) (r3.Vec, bool)
}
