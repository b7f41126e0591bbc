package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NewPoint creates a new 2D point
func NewPoint(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

// Translate moves p by distance along the direction given by angle
func Translate(p r2.Vec, angle, distance float64) r2.Vec {
	return r2.Add(p, r2.Vec{
		X: math.Cos(angle) * distance,
		Y: math.Sin(angle) * distance,
	})
}

// Distance returns the distance between two points
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Bearing returns the direction of to as seen from from, in radians
func Bearing(from, to r2.Vec) float64 {
	d := r2.Sub(to, from)
	return math.Atan2(d.Y, d.X)
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b r2.Vec) r2.Vec {
	return r2.Scale(0.5, r2.Add(a, b))
}

// IsFinite reports whether both coordinates are neither NaN nor infinite
func IsFinite(p r2.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(radians float64) float64 {
	return radians / math.Pi * 180
}
