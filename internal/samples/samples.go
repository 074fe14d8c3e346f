// Package samples provides built-in structures for demos and tests.
package samples

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/structure"
)

func cubic(a float64) structure.Lattice {
	return structure.Lattice{A: r3.Vec{X: a}, B: r3.Vec{Y: a}, C: r3.Vec{Z: a}}
}

// SiO2 is a cubic silica model with each silicon bonded to the four oxygens
// around it.
func SiO2() structure.Structure {
	return structure.Structure{
		Atoms: []structure.Atom{
			{Element: "Si", Position: r3.Vec{}},
			{Element: "Si", Position: r3.Vec{X: 2.7155, Y: 2.7155, Z: 2.7155}},
			{Element: "O", Position: r3.Vec{X: 1.3578, Y: 1.3578}},
			{Element: "O", Position: r3.Vec{X: 1.3578, Z: 1.3578}},
			{Element: "O", Position: r3.Vec{Y: 1.3578, Z: 1.3578}},
			{Element: "O", Position: r3.Vec{X: 4.0733, Y: 4.0733, Z: 2.7155}},
			{Element: "O", Position: r3.Vec{X: 4.0733, Y: 2.7155, Z: 4.0733}},
			{Element: "O", Position: r3.Vec{X: 2.7155, Y: 4.0733, Z: 4.0733}},
		},
		Bonds: []structure.Bond{
			{I: 0, J: 2}, {I: 0, J: 3}, {I: 0, J: 4},
			{I: 1, J: 5}, {I: 1, J: 6}, {I: 1, J: 7},
			{I: 2, J: 1}, {I: 3, J: 1}, {I: 4, J: 1},
			{I: 5, J: 0}, {I: 6, J: 0}, {I: 7, J: 0},
		},
		Lattice: cubic(5.431),
	}
}

// Cu is the conventional face-centred cubic copper cell.
func Cu() structure.Structure {
	const h = 1.8075
	return structure.Structure{
		Atoms: []structure.Atom{
			{Element: "Cu", Position: r3.Vec{}},
			{Element: "Cu", Position: r3.Vec{X: h, Y: h}},
			{Element: "Cu", Position: r3.Vec{X: h, Z: h}},
			{Element: "Cu", Position: r3.Vec{Y: h, Z: h}},
		},
		Bonds:   []structure.Bond{{I: 0, J: 1}, {I: 0, J: 2}, {I: 0, J: 3}, {I: 1, J: 2}, {I: 1, J: 3}, {I: 2, J: 3}},
		Lattice: cubic(3.615),
	}
}

var registry = map[string]func() structure.Structure{
	"sio2": SiO2,
	"cu":   Cu,
}

// Names lists the registered sample names in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Get returns a fresh copy of the named sample.
func Get(name string) (structure.Structure, error) {
	f, ok := registry[name]
	if !ok {
		return structure.Structure{}, fmt.Errorf("samples: unknown sample %q (have %v)", name, Names())
	}
	return f(), nil
}
