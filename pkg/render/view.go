// Package render draws solved airway geometry as PNG or SVG.
//
// The scene is built once in millimetres from an airway.Geometry and then
// handed to a painter, which projects it through a View into pixels.
package render

import (
	"github.com/philipparndt/gointubate/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

// View maps millimetre coordinates to pixels: (p + offset) * factor.
// The y axis points down in both spaces.
type View struct {
	Factor  float64 `json:"factor" toml:"factor"`
	XOffset float64 `json:"xOffset" toml:"x_offset"`
	YOffset float64 `json:"yOffset" toml:"y_offset"`
}

// DefaultView is the projection used unless configured otherwise
func DefaultView() View {
	return View{Factor: 5, XOffset: -100, YOffset: -100}
}

// Project converts a model point to screen pixels
func (v View) Project(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: (p.X + v.XOffset) * v.Factor,
		Y: (p.Y + v.YOffset) * v.Factor,
	}
}

// Unproject converts screen pixels back to a model point
func (v View) Unproject(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: p.X/v.Factor - v.XOffset,
		Y: p.Y/v.Factor - v.YOffset,
	}
}

// Length converts a model length to pixels
func (v View) Length(mm float64) float64 {
	return mm * v.Factor
}

// Scaled returns the view magnified by k around the origin of the screen,
// used to render supersampled images
func (v View) Scaled(k float64) View {
	v.Factor *= k
	return v
}

// Zoom changes the factor by the given fraction while keeping the model
// point under the screen position anchor fixed
func (v View) Zoom(delta float64, anchor r2.Vec) View {
	fixed := v.Unproject(anchor)
	v.Factor *= 1 + delta
	if v.Factor < 0.5 {
		v.Factor = 0.5
	}
	if v.Factor > 50 {
		v.Factor = 50
	}
	// keep Project(fixed) == anchor
	v.XOffset = anchor.X/v.Factor - fixed.X
	v.YOffset = anchor.Y/v.Factor - fixed.Y
	return v
}

// Pan moves the view by a screen-space delta
func (v View) Pan(dx, dy float64) View {
	v.XOffset += dx / v.Factor
	v.YOffset += dy / v.Factor
	return v
}

// finitePoints reports whether every point is a finite number
func finitePoints(points ...r2.Vec) bool {
	for _, p := range points {
		if !geometry.IsFinite(p) {
			return false
		}
	}
	return true
}
