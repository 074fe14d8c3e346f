package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Glide eases a camera's target and distance towards a goal, one fixed step
// at a time.
type Glide struct {
	Target   r3.Vec
	Distance float64
	Rate     float64
	active   bool
}

// Aim starts easing towards target and distance.
func (g *Glide) Aim(target r3.Vec, distance float64) {
	g.Target, g.Distance, g.active = target, distance, true
	if g.Rate <= 0 || g.Rate > 1 {
		g.Rate = 0.2
	}
}

// Active reports whether the glide has not settled.
func (g *Glide) Active() bool { return g.active }

// Cancel stops easing, leaving the camera where it is.
func (g *Glide) Cancel() { g.active = false }

// Step moves c one step closer and reports whether it moved.
func (g *Glide) Step(c *Camera) bool {
	if !g.active {
		return false
	}
	c.Target = r3.Add(c.Target, r3.Scale(g.Rate, r3.Sub(g.Target, c.Target)))
	c.Distance += g.Rate * (g.Distance - c.Distance)
	if r3.Norm(r3.Sub(g.Target, c.Target)) < 1e-3 && math.Abs(g.Distance-c.Distance) < 1e-3 {
		c.Target, c.Distance = g.Target, g.Distance
		g.active = false
	}
	return true
}
