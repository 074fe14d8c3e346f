// Package represent derives per-atom and per-bond display parameters for the
// ball-and-stick and space-filling representations.
package represent

import (
	"fmt"
	"strings"
)

// Mode selects a visual representation.
type Mode int

const (
	// BallAndStick draws covalent-scaled balls joined by sticks.
	BallAndStick Mode = iota
	// SpaceFilling draws van der Waals spheres without bonds.
	SpaceFilling
)

// ParseMode accepts "ball" or "vdw" plus a few common spellings.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ball", "ball-and-stick", "ballandstick", "bs":
		return BallAndStick, nil
	case "vdw", "space-filling", "spacefilling", "cpk", "sf":
		return SpaceFilling, nil
	}
	return BallAndStick, fmt.Errorf("represent: unknown mode %q", s)
}

// Toggle returns the other representation.
func (m Mode) Toggle() Mode {
	if m == SpaceFilling {
		return BallAndStick
	}
	return SpaceFilling
}

// Key is the short name accepted by ParseMode.
func (m Mode) Key() string {
	if m == SpaceFilling {
		return "vdw"
	}
	return "ball"
}

// String returns the display label.
func (m Mode) String() string {
	if m == SpaceFilling {
		return "Space-filling"
	}
	return "Ball-and-stick"
}

// ShowsBonds reports whether bonds are drawn in this mode.
func (m Mode) ShowsBonds() bool {
	return m == BallAndStick
}
