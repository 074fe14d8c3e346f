// Package chem holds per-element display data: CPK colors, covalent radii and
// van der Waals radii, with fixed fallbacks for symbols the tables do not know.
package chem

import (
	"image/color"
	"strings"
)

const (
	// DefaultCovalentRadius is used for elements missing from the covalent table.
	DefaultCovalentRadius = 0.75
	// DefaultVdWRadius is used for elements missing from the van der Waals table.
	DefaultVdWRadius = 1.6
)

// DefaultColor is the display color for unknown elements.
var DefaultColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// Element bundles the display data for one element symbol.
type Element struct {
	Symbol   string
	Color    color.RGBA
	Covalent float64
	VdW      float64
	Known    bool
}

// Lookup returns the display data for symbol. Unknown symbols get the
// default color and radii and Known set to false.
func Lookup(symbol string) Element {
	_, known := cpkColors[symbol]
	return Element{
		Symbol:   symbol,
		Color:    Color(symbol),
		Covalent: CovalentRadius(symbol),
		VdW:      VdWRadius(symbol),
		Known:    known,
	}
}

// Color returns the CPK color for symbol.
func Color(symbol string) color.RGBA {
	hex, ok := cpkColors[symbol]
	if !ok {
		return DefaultColor
	}
	return rgba(hex)
}

// CovalentRadius returns the covalent radius of symbol in angstrom.
func CovalentRadius(symbol string) float64 {
	if r, ok := covalentRadii[symbol]; ok {
		return r
	}
	return DefaultCovalentRadius
}

// VdWRadius returns the van der Waals radius of symbol in angstrom.
func VdWRadius(symbol string) float64 {
	if r, ok := vdwRadii[symbol]; ok {
		return r
	}
	return DefaultVdWRadius
}

// Known reports whether symbol is present in the element tables.
func Known(symbol string) bool {
	_, ok := cpkColors[symbol]
	return ok
}

// Normalize turns labels as they appear in structure files ("SI", "o2",
// "Fe3+") into a table symbol ("Si", "O", "Fe"). Only ASCII letters count;
// labels that do not start with one are returned trimmed and otherwise
// untouched.
func Normalize(label string) string {
	label = strings.TrimSpace(label)
	end := 0
	for end < len(label) && end < 2 && isASCIILetter(label[end]) {
		end++
	}
	if end == 0 {
		return label
	}
	sym := strings.ToUpper(label[:1]) + strings.ToLower(label[1:end])
	if end == 2 && !Known(sym) && Known(sym[:1]) {
		return sym[:1]
	}
	return sym
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func rgba(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}
