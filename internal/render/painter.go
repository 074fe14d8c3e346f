//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/represent"
	"xtalview/internal/structure"
)

const spriteSize = 128

var (
	background     = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	cellEdgeColor  = color.RGBA{R: 110, G: 112, B: 124, A: 255}
	highlightColor = color.RGBA{R: 102, G: 224, B: 255, A: 255}
)

// Projector maps world points to screen pixels.
type Projector interface {
	Project(p r3.Vec) (x, y, depth float64, ok bool)
	PixelsPerUnit(depth float64) float64
}

// Scene is what the painter draws in one frame.
type Scene struct {
	Atoms        []represent.AtomStyle
	Bonds        []represent.BondStyle
	Edges        []structure.Edge
	Highlight    int
	HasHighlight bool
}

// ScenePainter draws atoms as shaded sprites and bonds as thick lines.
type ScenePainter struct {
	sprite *ebiten.Image
	discs  []Disc
}

// NewScenePainter allocates the sphere sprite.
func NewScenePainter() *ScenePainter {
	buf := make([]byte, 4*spriteSize*spriteSize)
	fillSphereRGBA(buf, spriteSize)
	img := ebiten.NewImage(spriteSize, spriteSize)
	img.WritePixels(buf)
	return &ScenePainter{sprite: img}
}

// Draw clears dst and paints s as seen through proj.
func (p *ScenePainter) Draw(dst *ebiten.Image, proj Projector, s Scene) {
	dst.Fill(background)

	for _, e := range s.Edges {
		x0, y0, _, ok0 := proj.Project(e.From)
		x1, y1, _, ok1 := proj.Project(e.To)
		if ok0 && ok1 {
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, cellEdgeColor, true)
		}
	}

	p.discs = p.discs[:0]
	near, far := 0.0, 0.0
	for _, a := range s.Atoms {
		x, y, depth, ok := proj.Project(a.Center)
		if !ok {
			continue
		}
		if len(p.discs) == 0 || depth < near {
			near = depth
		}
		if depth > far {
			far = depth
		}
		p.discs = append(p.discs, Disc{
			Index:  a.Index,
			X:      x,
			Y:      y,
			Depth:  depth,
			Radius: a.Radius * proj.PixelsPerUnit(depth),
			Color:  a.Color,
		})
	}

	for _, b := range s.Bonds {
		x0, y0, d0, ok0 := proj.Project(b.From)
		x1, y1, d1, ok1 := proj.Project(b.To)
		if !ok0 || !ok1 {
			continue
		}
		width := 2 * b.Radius * proj.PixelsPerUnit((d0+d1)/2)
		col := Shade(b.Color, DepthFade((d0+d1)/2, near, far))
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col, true)
	}

	SortBackToFront(p.discs)
	for _, d := range p.discs {
		p.drawDisc(dst, d, DepthFade(d.Depth, near, far))
		if s.HasHighlight && d.Index == s.Highlight {
			vector.StrokeCircle(dst, float32(d.X), float32(d.Y), float32(d.Radius+3), 2, highlightColor, true)
		}
	}
}

func (p *ScenePainter) drawDisc(dst *ebiten.Image, d Disc, fade float64) {
	if d.Radius <= 0.5 {
		return
	}
	scale := 2 * d.Radius / spriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(d.X-d.Radius, d.Y-d.Radius)
	op.ColorScale.ScaleWithColor(Shade(d.Color, fade))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(p.sprite, op)
}
