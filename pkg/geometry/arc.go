package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Arc is a circular arc swept from StartAngle to EndAngle in the direction
// of increasing angle. Thickness is the stroke width of the physical object
// the arc models; it does not change the arc's geometry.
type Arc struct {
	Center     r2.Vec  `json:"center"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Thickness  float64 `json:"thickness"`
}

// Circle returns the full circle the arc lies on
func (a Arc) Circle() Circle {
	return Circle{Center: a.Center, Radius: a.Radius}
}

// PointAt returns the point on the arc's circle at the given angle
func (a Arc) PointAt(angle float64) r2.Vec {
	return Translate(a.Center, angle, a.Radius)
}

// Start returns the point at the start angle
func (a Arc) Start() r2.Vec {
	return a.PointAt(a.StartAngle)
}

// End returns the point at the end angle (the arc's tip)
func (a Arc) End() r2.Vec {
	return a.PointAt(a.EndAngle)
}

// Span returns the swept angle in [0, 2π)
func (a Arc) Span() float64 {
	return ArcRadians(a.StartAngle, a.EndAngle)
}

// Sweep returns the angle a renderer sweeps when drawing the arc. It equals
// Span except that an arc whose end lies a full turn or more past its start
// is drawn as a whole circle.
func (a Arc) Sweep() float64 {
	if a.EndAngle-a.StartAngle >= 2*math.Pi {
		return 2 * math.Pi
	}
	return a.Span()
}

// Length returns the arc length
func (a Arc) Length() float64 {
	return a.Span() * a.Radius
}

// WithStart returns a copy of the arc with a new start angle
func (a Arc) WithStart(angle float64) Arc {
	a.StartAngle = angle
	return a
}

// WithEnd returns a copy of the arc with a new end angle
func (a Arc) WithEnd(angle float64) Arc {
	a.EndAngle = angle
	return a
}

// Finite reports whether every field of the arc is a finite number
func (a Arc) Finite() bool {
	for _, v := range []float64{a.Radius, a.StartAngle, a.EndAngle, a.Thickness} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return IsFinite(a.Center)
}

// Sample returns n+1 evenly spaced points along the arc from start to end
func (a Arc) Sample(n int) []r2.Vec {
	if n < 1 {
		n = 1
	}
	span := a.Sweep()
	points := make([]r2.Vec, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, a.PointAt(a.StartAngle+span*float64(i)/float64(n)))
	}
	return points
}

// ArcRadians returns the angle swept from start to end going in the
// direction of increasing angle, normalised to [0, 2π)
func ArcRadians(start, end float64) float64 {
	r := math.Mod(end-start, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}
