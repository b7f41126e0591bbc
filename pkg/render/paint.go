package render

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// PaintKind selects how a Paint fills pixels
type PaintKind int

const (
	PaintNone PaintKind = iota
	PaintSolid
	PaintLinear
	PaintRadial
)

// Stop is one colour stop of a gradient, Offset in [0, 1]
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Paint is a fill or stroke style in model coordinates. Linear gradients
// run from From to To; radial gradients run from radius R0 to R1 around
// Center.
type Paint struct {
	Kind   PaintKind
	Stops  []Stop
	From   r2.Vec
	To     r2.Vec
	Center r2.Vec
	R0     float64
	R1     float64
}

// Solid returns a single colour paint
func Solid(c color.NRGBA) Paint {
	return Paint{Kind: PaintSolid, Stops: []Stop{{0, c}}}
}

// Linear returns a linear gradient paint
func Linear(from, to r2.Vec, stops ...Stop) Paint {
	return Paint{Kind: PaintLinear, From: from, To: to, Stops: stops}
}

// Radial returns a radial gradient paint
func Radial(center r2.Vec, r0, r1 float64, stops ...Stop) Paint {
	return Paint{Kind: PaintRadial, Center: center, R0: r0, R1: r1, Stops: stops}
}

// Visible reports whether the paint draws anything
func (p Paint) Visible() bool {
	return p.Kind != PaintNone && len(p.Stops) > 0
}

func (p Paint) finite() bool {
	switch p.Kind {
	case PaintLinear:
		return finitePoints(p.From, p.To)
	case PaintRadial:
		return finitePoints(p.Center) && !math.IsNaN(p.R0) && !math.IsNaN(p.R1) &&
			!math.IsInf(p.R0, 0) && !math.IsInf(p.R1, 0)
	}
	return true
}

// project converts the paint geometry to screen pixels
func (p Paint) project(v View) Paint {
	p.From = v.Project(p.From)
	p.To = v.Project(p.To)
	p.Center = v.Project(p.Center)
	p.R0 = v.Length(p.R0)
	p.R1 = v.Length(p.R1)
	return p
}

// colorAt interpolates the stops at t, clamping outside the stop range
func colorAt(stops []Stop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// source returns an image that yields the paint colour at each pixel. The
// paint must already be in screen coordinates.
func (p Paint) source() image.Image {
	switch p.Kind {
	case PaintLinear:
		return &linearGradient{paint: p}
	case PaintRadial:
		return &radialGradient{paint: p}
	}
	return image.NewUniform(colorAt(p.Stops, 0))
}

// unbounded is the bounds of a gradient, which is defined everywhere
var unbounded = image.Rect(-1e9, -1e9, 1e9, 1e9)

type linearGradient struct {
	paint Paint
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *linearGradient) Bounds() image.Rectangle { return unbounded }

func (g *linearGradient) At(x, y int) color.Color {
	d := r2.Sub(g.paint.To, g.paint.From)
	length := r2.Dot(d, d)
	if length == 0 {
		return colorAt(g.paint.Stops, 0)
	}
	p := r2.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	t := r2.Dot(r2.Sub(p, g.paint.From), d) / length
	return colorAt(g.paint.Stops, t)
}

type radialGradient struct {
	paint Paint
}

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *radialGradient) Bounds() image.Rectangle { return unbounded }

func (g *radialGradient) At(x, y int) color.Color {
	p := r2.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	d := r2.Norm(r2.Sub(p, g.paint.Center))
	span := g.paint.R1 - g.paint.R0
	if span <= 0 {
		return colorAt(g.paint.Stops, 1)
	}
	return colorAt(g.paint.Stops, (d-g.paint.R0)/span)
}
