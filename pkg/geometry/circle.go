package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a circle in the plane
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Inflate returns the circle with its radius grown by d
func (c Circle) Inflate(d float64) Circle {
	return Circle{Center: c.Center, Radius: c.Radius + d}
}

// Contains reports whether p lies inside or on the circle
func (c Circle) Contains(p r2.Vec) bool {
	return Distance(c.Center, p) <= c.Radius
}

// tieTolerance is the difference in x + y below which the two candidate
// intersection points are ranked by x alone.
const tieTolerance = 1e-9

// FindIntersection intersects two circles and returns one canonical point.
//
// There is no solution when the centres are further apart than the sum of the
// radii, when one circle lies inside the other, or when the circles are
// concentric. Otherwise the two points on the radical line are computed:
//
//	a  = (r₁² − r₂² + d²) / 2d
//	h  = √(r₁² − a²)
//	pm = c₁ + a·(c₂ − c₁)/d
//	p  = pm ± h·(dy, −dx)/d
//
// and the one with the larger x + y is returned, the larger x on a tie.
func FindIntersection(c1, c2 Circle) (r2.Vec, bool) {
	delta := r2.Sub(c2.Center, c1.Center)
	d := r2.Norm(delta)
	ra, rb := c1.Radius, c2.Radius

	if d > ra+rb || d < math.Abs(ra-rb) || d == 0 {
		return r2.Vec{}, false
	}

	a := (ra*ra - rb*rb + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, ra*ra-a*a))
	mid := r2.Add(c1.Center, r2.Scale(a/d, delta))

	offset := r2.Vec{X: h * delta.Y / d, Y: -h * delta.X / d}
	p1 := r2.Add(mid, offset)
	p2 := r2.Sub(mid, offset)

	s1, s2 := p1.X+p1.Y, p2.X+p2.Y
	switch {
	case s1-s2 > tieTolerance:
		return p1, true
	case s2-s1 > tieTolerance:
		return p2, true
	case p1.X >= p2.X:
		return p1, true
	default:
		return p2, true
	}
}

// TangentAngle returns the angle between the vectors from at to the centres
// of two circles. For two circles touching at a common point this is the
// angle between their tangents there.
func TangentAngle(at r2.Vec, c1, c2 Circle) float64 {
	u := r2.Sub(c1.Center, at)
	v := r2.Sub(c2.Center, at)
	return math.Acos(r2.Dot(u, v) / (r2.Norm(u) * r2.Norm(v)))
}
