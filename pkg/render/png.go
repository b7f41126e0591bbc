package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/philipparndt/gointubate/pkg/airway"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// curveSteps is the number of line segments per quadratic piece
const curveSteps = 12

// Image renders the geometry into a new image of the given size
func Image(g airway.Geometry, opts Options, view View, size image.Point) (*image.RGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", size.X, size.Y)
	}
	if view.Factor <= 0 {
		return nil, fmt.Errorf("invalid view factor %g", view.Factor)
	}

	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}

	large := image.NewRGBA(image.Rect(0, 0, size.X*ss, size.Y*ss))
	draw.Draw(large, large.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if err := Draw(large, NewScene(g, opts), view.Scaled(float64(ss))); err != nil {
		return nil, err
	}
	if ss == 1 {
		return large, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.CatmullRom.Scale(out, out.Bounds(), large, large.Bounds(), draw.Src, nil)
	return out, nil
}

// PNG renders the geometry and writes it PNG encoded
func PNG(w io.Writer, g airway.Geometry, opts Options, view View, size image.Point) error {
	img, err := Image(g, opts, view, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Draw paints a scene onto dst through the view
func Draw(dst *image.RGBA, sc Scene, view View) error {
	r := newRasterizer(dst)
	for _, s := range sc.Shapes {
		paintShape(r, s, view)
	}

	fc := faces{}
	defer fc.close()
	for _, l := range sc.Labels {
		if err := paintLabel(dst, fc, l, view); err != nil {
			return err
		}
	}
	return nil
}

func paintShape(r *rasterizer, s Shape, view View) {
	width := view.Length(s.Width)
	points := make([]r2.Vec, len(s.Points))
	for i, p := range s.Points {
		points[i] = view.Project(p)
	}

	switch s.Kind {
	case ShapeCurve:
		start, controls, ends := quadSegments(points)
		if s.Stroke.Visible() {
			r.strokePolyline(flattenQuads(start, controls, ends, curveSteps), width, false, s.Stroke.project(view).source())
		}
	case ShapePolygon:
		if s.Fill.Visible() {
			r.fillPolygon(points, s.Fill.project(view).source())
		}
		if s.Stroke.Visible() {
			r.strokePolyline(points, width, true, s.Stroke.project(view).source())
		}
	case ShapeLine:
		if s.Stroke.Visible() {
			r.strokePolyline(points, width, false, s.Stroke.project(view).source())
		}
	case ShapeDot:
		if s.Fill.Visible() && len(points) > 0 {
			r.fillCircle(points[0], view.Length(s.Radius), s.Fill.project(view).source())
		}
	case ShapeArc:
		if s.Stroke.Visible() {
			a := s.Arc
			r.strokeArc(view.Project(a.Center), view.Length(a.Radius), a.StartAngle, a.Sweep(),
				view.Length(a.Thickness), s.Stroke.project(view).source())
		}
	}
}

func paintLabel(dst *image.RGBA, fc faces, l Label, view View) error {
	size := view.Length(l.Size)
	face, err := fc.get(size)
	if err != nil {
		return err
	}
	width := float64(font.MeasureString(face, l.Text)) / 64
	origin := labelOrigin(view.Project(l.At), l.Align, width, size, view.Length(l.Offset))

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(l.Color),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(origin.X * 64),
			Y: fixed.Int26_6(origin.Y * 64),
		},
	}
	d.DrawString(l.Text)
	return nil
}
