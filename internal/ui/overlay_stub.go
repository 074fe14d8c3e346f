//go:build !ebiten

package ui

import "xtalview/internal/interact"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any, interact.Positioner, interact.MeasurementState) {}
