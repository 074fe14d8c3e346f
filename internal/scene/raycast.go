// Package scene hit-tests pick rays against the pickable spheres of the
// visible representation.
package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/represent"
)

const epsilon = 1e-4

// IntersectSphere returns the distance along the ray (origin, dir) to the
// first intersection with the sphere, ignoring hits behind the origin.
func IntersectSphere(origin, dir, center r3.Vec, radius float64) (float64, bool) {
	oc := r3.Sub(origin, center)
	a := r3.Dot(dir, dir)
	b := 2 * r3.Dot(oc, dir)
	c := r3.Dot(oc, oc) - radius*radius
	disc := b*b - 4*a*c
	if a == 0 || disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t := (-b - sq) / (2 * a); t > epsilon {
		return t, true
	}
	if t := (-b + sq) / (2 * a); t > epsilon {
		return t, true
	}
	return 0, false
}

// Hit is the nearest pickable along a ray.
type Hit struct {
	Handle   represent.Handle
	Distance float64
	Point    r3.Vec
}

// Raycast returns the nearest pickable hit by the ray. Ties keep the object
// that comes first.
func Raycast(origin, dir r3.Vec, objects []represent.Pickable) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, o := range objects {
		t, ok := IntersectSphere(origin, dir, o.Center, o.Radius)
		if ok && t < best.Distance {
			best = Hit{Handle: o.Handle, Distance: t}
			found = true
		}
	}
	if found {
		best.Point = r3.Add(origin, r3.Scale(best.Distance, dir))
	}
	return best, found
}
