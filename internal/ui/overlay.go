//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/interact"
	"xtalview/internal/render"
)

var (
	measureColor = color.RGBA{R: 255, G: 209, B: 35, A: 255}
	labelBG      = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// Overlay draws the measurement line and its distance label over the 3D view.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the measurement for st. atoms resolves the indices it
// references; the label sits at the projected midpoint, recomputed each frame.
func (o *Overlay) Draw(screen *ebiten.Image, proj render.Projector, atoms interact.Positioner, st interact.MeasurementState) {
	switch st.Phase {
	case interact.AwaitingSecond:
		a, ok := atoms.Position(st.First)
		if !ok {
			return
		}
		if x, y, depth, ok := proj.Project(a); ok {
			r := 0.5*proj.PixelsPerUnit(depth) + 4
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1.5, measureColor, true)
		}
	case interact.Complete:
		a, okA := atoms.Position(st.First)
		b, okB := atoms.Position(st.Second)
		if !okA || !okB {
			return
		}
		o.dashed(screen, proj, a, b)
		if x, y, _, ok := proj.Project(st.Midpoint); ok {
			o.label(screen, DistanceLabel(st.Distance), x, y)
		}
	}
}

func (o *Overlay) dashed(screen *ebiten.Image, proj render.Projector, a, b r3.Vec) {
	x0, y0, _, ok0 := proj.Project(a)
	x1, y1, _, ok1 := proj.Project(b)
	if !ok0 || !ok1 {
		return
	}
	const segments = 16
	for i := 0; i < segments; i += 2 {
		t0 := float64(i) / segments
		t1 := float64(i+1) / segments
		vector.StrokeLine(screen,
			float32(x0+(x1-x0)*t0), float32(y0+(y1-y0)*t0),
			float32(x0+(x1-x0)*t1), float32(y0+(y1-y0)*t1),
			2, measureColor, true)
	}
}

func (o *Overlay) label(screen *ebiten.Image, s string, x, y float64) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	w, h := float64(bounds.Dx()+8), float64(bounds.Dy()+6)
	left, top := x-w/2, y-h-6

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(labelBG)
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, s, face, int(left)+4, int(top)+bounds.Dy()+2, measureColor)
}
