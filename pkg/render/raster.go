package render

import (
	"image"
	"math"

	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// rasterizer fills screen-space paths onto an RGBA image. All subpaths of
// one fill are added with the same winding so overlapping pieces merge
// instead of cancelling.
type rasterizer struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func newRasterizer(dst *image.RGBA) *rasterizer {
	b := dst.Bounds()
	return &rasterizer{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (r *rasterizer) begin() {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *rasterizer) flush(src image.Image) {
	r.z.Draw(r.dst, r.dst.Bounds(), src, image.Point{})
}

// polygon adds a closed subpath, reversed if needed so its signed area is
// positive
func (r *rasterizer) polygon(points []r2.Vec) {
	if len(points) < 3 {
		return
	}
	if signedArea(points) < 0 {
		reversed := make([]r2.Vec, len(points))
		for i, p := range points {
			reversed[len(points)-1-i] = p
		}
		points = reversed
	}
	r.z.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
}

func signedArea(points []r2.Vec) float64 {
	area := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += r2.Cross(p, q)
	}
	return area / 2
}

func (r *rasterizer) fillPolygon(points []r2.Vec, src image.Image) {
	r.begin()
	r.polygon(points)
	r.flush(src)
}

func (r *rasterizer) fillCircle(center r2.Vec, radius float64, src image.Image) {
	r.begin()
	r.polygon(circlePoints(center, radius))
	r.flush(src)
}

// strokePolyline strokes the segments between points with butt ends and
// round joins
func (r *rasterizer) strokePolyline(points []r2.Vec, width float64, closed bool, src image.Image) {
	if width <= 0 || len(points) < 2 {
		return
	}
	r.begin()
	half := width / 2
	n := len(points)
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		a, b := points[i], points[(i+1)%n]
		d := r2.Sub(b, a)
		length := r2.Norm(d)
		if length == 0 {
			continue
		}
		normal := r2.Scale(half/length, r2.Vec{X: -d.Y, Y: d.X})
		r.polygon([]r2.Vec{r2.Add(a, normal), r2.Add(b, normal), r2.Sub(b, normal), r2.Sub(a, normal)})
	}
	for i, p := range points {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		r.polygon(circlePoints(p, half))
	}
	r.flush(src)
}

// strokeArc strokes a circular arc starting at start and sweeping by sweep
// radians in the direction of increasing angle
func (r *rasterizer) strokeArc(center r2.Vec, radius, start, sweep, width float64, src image.Image) {
	if width <= 0 || sweep <= 0 || radius <= 0 {
		return
	}
	outer := radius + width/2
	inner := math.Max(0, radius-width/2)
	steps := int(math.Ceil(sweep*outer/2)) + 2
	if steps > 4096 {
		steps = 4096
	}

	points := make([]r2.Vec, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		points = append(points, r2.Add(center, r2.Vec{X: outer * math.Cos(a), Y: outer * math.Sin(a)}))
	}
	for i := steps; i >= 0; i-- {
		a := start + sweep*float64(i)/float64(steps)
		points = append(points, r2.Add(center, r2.Vec{X: inner * math.Cos(a), Y: inner * math.Sin(a)}))
	}

	r.begin()
	r.polygon(points)
	r.flush(src)
}

func circlePoints(center r2.Vec, radius float64) []r2.Vec {
	steps := int(math.Ceil(radius)) + 8
	if steps > 256 {
		steps = 256
	}
	points := make([]r2.Vec, steps)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(steps)
		points[i] = r2.Add(center, r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return points
}

// flattenQuads approximates a quadratic curve chain with line segments
func flattenQuads(start r2.Vec, controls, ends []r2.Vec, stepsPerPiece int) []r2.Vec {
	points := []r2.Vec{start}
	p0 := start
	for i, c := range controls {
		e := ends[i]
		for s := 1; s <= stepsPerPiece; s++ {
			t := float64(s) / float64(stepsPerPiece)
			u := 1 - t
			p := r2.Add(r2.Add(r2.Scale(u*u, p0), r2.Scale(2*u*t, c)), r2.Scale(t*t, e))
			points = append(points, p)
		}
		p0 = e
	}
	return points
}
