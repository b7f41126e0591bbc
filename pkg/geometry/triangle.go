package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Triangle represents a 2D triangle
type Triangle struct {
	V1, V2, V3 r2.Vec
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 r2.Vec) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Tooth returns the triangular outline used for an incisor: the apex sits at
// tip and the base lies height along x from it, one third of height either side.
// A negative height points the tooth the other way.
func Tooth(tip r2.Vec, height float64) Triangle {
	width := height / 3
	return Triangle{
		V1: tip,
		V2: r2.Vec{X: tip.X + height, Y: tip.Y + width},
		V3: r2.Vec{X: tip.X + height, Y: tip.Y - width},
	}
}

// Vertices returns the three corners in order
func (t Triangle) Vertices() [3]r2.Vec {
	return [3]r2.Vec{t.V1, t.V2, t.V3}
}

// Area returns the unsigned area of the triangle
func (t Triangle) Area() float64 {
	c := r2.Cross(r2.Sub(t.V2, t.V1), r2.Sub(t.V3, t.V1))
	if c < 0 {
		c = -c
	}
	return c / 2
}

// Center returns the centroid of the triangle
func (t Triangle) Center() r2.Vec {
	return r2.Scale(1.0/3.0, r2.Add(r2.Add(t.V1, t.V2), t.V3))
}

// Contains reports whether p lies inside or on the edge of the triangle
func (t Triangle) Contains(p r2.Vec) bool {
	d1 := r2.Cross(r2.Sub(t.V2, t.V1), r2.Sub(p, t.V1))
	d2 := r2.Cross(r2.Sub(t.V3, t.V2), r2.Sub(p, t.V2))
	d3 := r2.Cross(r2.Sub(t.V1, t.V3), r2.Sub(p, t.V3))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
