package render

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// lightDir points from the sphere surface towards the light, in screen space
// with y down.
var lightDir = r3.Unit(r3.Vec{X: -0.45, Y: -0.6, Z: 0.66})

const (
	ambient  = 0.28
	diffuse  = 0.72
	specular = 0.35
	shine    = 24
)

// fillSphereRGBA renders a white lit sphere of diameter size into buf, which
// must hold 4*size*size bytes. Pixels outside the disc are transparent; the
// rim is anti-aliased over one pixel. The sprite is tinted per atom when
// drawn.
func fillSphereRGBA(buf []byte, size int) {
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			base := (y*size + x) * 4
			nx := (float64(x) + 0.5 - r) / r
			ny := (float64(y) + 0.5 - r) / r
			d2 := nx*nx + ny*ny
			coverage := clamp01((1 - math.Sqrt(d2)) * r)
			if coverage <= 0 {
				buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
				continue
			}
			nz := math.Sqrt(math.Max(0, 1-d2))
			n := r3.Vec{X: nx, Y: ny, Z: nz}
			lambert := math.Max(0, r3.Dot(n, lightDir))
			half := r3.Unit(r3.Add(lightDir, r3.Vec{Z: 1}))
			spec := specular * math.Pow(math.Max(0, r3.Dot(n, half)), shine)
			v := clamp01(ambient+diffuse*lambert) + spec
			// Premultiplied alpha; the specular part may exceed the tint so
			// it is folded in as brightness only.
			lum := uint8(255 * clamp01(v) * coverage)
			buf[base+0], buf[base+1], buf[base+2] = lum, lum, lum
			buf[base+3] = uint8(255 * coverage)
		}
	}
}

// Shade scales a color's brightness by f, keeping alpha.
func Shade(c color.RGBA, f float64) color.RGBA {
	s := func(v uint8) uint8 { return uint8(math.Round(clamp01(float64(v)*f/255) * 255)) }
	return color.RGBA{R: s(c.R), G: s(c.G), B: s(c.B), A: c.A}
}

// Disc is a projected atom ready for painting.
type Disc struct {
	Index  int
	X, Y   float64
	Depth  float64
	Radius float64
	Color  color.RGBA
}

// SortBackToFront orders discs so the farthest is painted first. Equal
// depths keep index order.
func SortBackToFront(discs []Disc) {
	sort.SliceStable(discs, func(i, j int) bool {
		if discs[i].Depth != discs[j].Depth {
			return discs[i].Depth > discs[j].Depth
		}
		return discs[i].Index < discs[j].Index
	})
}

// DepthFade darkens far atoms slightly. near and far bound the scene depth.
func DepthFade(depth, near, far float64) float64 {
	if far <= near {
		return 1
	}
	t := clamp01((depth - near) / (far - near))
	return 1 - 0.35*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
