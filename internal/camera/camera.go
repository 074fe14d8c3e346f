// Package camera implements a perspective orbit camera: world-to-screen
// projection and screen-to-world pick rays.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/framing"
)

const (
	defaultFOV  = 50 * math.Pi / 180
	maxPitch    = math.Pi/2 - 0.01
	minDistance = 0.5
	maxDistance = 500.0
	near        = 1e-3
	// radiansPerPixel converts pointer drags to orbit angles.
	radiansPerPixel = 0.01
)

var worldUp = r3.Vec{Y: 1}

// Camera orbits Target at Distance. Yaw turns around the world Y axis, Pitch
// raises the eye above the XZ plane.
type Camera struct {
	Target   r3.Vec
	Distance float64
	Yaw      float64
	Pitch    float64
	FOV      float64

	Width, Height int
}

// New creates a camera looking at the origin for a w×h viewport.
func New(w, h int) *Camera {
	c := &Camera{FOV: defaultFOV, Width: w, Height: h}
	c.Fit(framing.Frame(nil))
	return c
}

// Fit aims the camera at a framing, looking along framing.ViewDirection.
func (c *Camera) Fit(f framing.Framing) {
	c.Target = f.Center
	c.Distance = f.Distance
	d := framing.ViewDirection
	c.Pitch = math.Asin(d.Y)
	c.Yaw = math.Atan2(d.X, d.Z)
}

// Resize updates the viewport.
func (c *Camera) Resize(w, h int) {
	c.Width, c.Height = w, h
}

// Orbit rotates by pointer deltas in pixels.
func (c *Camera) Orbit(dx, dy float64) {
	c.Yaw -= dx * radiansPerPixel
	c.Pitch += dy * radiansPerPixel
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch))
}

// Zoom scales the distance; factor > 1 moves closer.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = math.Max(minDistance, math.Min(maxDistance, c.Distance/factor))
}

// Eye returns the camera position.
func (c *Camera) Eye() r3.Vec {
	dir := r3.Vec{
		X: math.Cos(c.Pitch) * math.Sin(c.Yaw),
		Y: math.Sin(c.Pitch),
		Z: math.Cos(c.Pitch) * math.Cos(c.Yaw),
	}
	return r3.Add(c.Target, r3.Scale(c.Distance, dir))
}

// Basis returns the forward, right and up unit vectors.
func (c *Camera) Basis() (forward, right, up r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Eye()))
	right = r3.Unit(r3.Cross(forward, worldUp))
	up = r3.Cross(right, forward)
	return forward, right, up
}

func (c *Camera) focal() float64 {
	return float64(c.Height) / 2 / math.Tan(c.FOV/2)
}

// Project maps a world point to screen pixels. depth is the distance along
// the view axis; ok is false for points behind the camera.
func (c *Camera) Project(p r3.Vec) (x, y, depth float64, ok bool) {
	forward, right, up := c.Basis()
	v := r3.Sub(p, c.Eye())
	depth = r3.Dot(v, forward)
	if depth <= near {
		return 0, 0, depth, false
	}
	f := c.focal() / depth
	x = float64(c.Width)/2 + f*r3.Dot(v, right)
	y = float64(c.Height)/2 - f*r3.Dot(v, up)
	return x, y, depth, true
}

// PixelsPerUnit returns the screen size of one world unit at depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= near {
		return 0
	}
	return c.focal() / depth
}

// Ray returns the pick ray through screen point (sx, sy).
func (c *Camera) Ray(sx, sy float64) (origin, dir r3.Vec) {
	forward, right, up := c.Basis()
	f := c.focal()
	dx := (sx - float64(c.Width)/2) / f
	dy := (float64(c.Height)/2 - sy) / f
	dir = r3.Add(forward, r3.Add(r3.Scale(dx, right), r3.Scale(dy, up)))
	return c.Eye(), r3.Unit(dir)
}
