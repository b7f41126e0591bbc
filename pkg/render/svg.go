package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/philipparndt/gointubate/pkg/airway"
	"gonum.org/v1/gonum/spatial/r2"
)

// svgWriter accumulates output and keeps the first write error
type svgWriter struct {
	w         *bufio.Writer
	err       error
	gradients int
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// SVG writes the same scene as PNG as an SVG document
func SVG(w io.Writer, g airway.Geometry, opts Options, view View, size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("invalid image size %dx%d", size.X, size.Y)
	}
	sc := NewScene(g, opts)

	s := &svgWriter{w: bufio.NewWriter(w)}
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		size.X, size.Y, size.X, size.Y)
	s.printf(`<rect width="100%%" height="100%%" fill="white"/>` + "\n")
	for _, shape := range sc.Shapes {
		s.shape(shape, view)
	}
	for _, l := range sc.Labels {
		s.label(l, view)
	}
	s.printf("</svg>\n")

	if s.err != nil {
		return fmt.Errorf("failed to write svg: %w", s.err)
	}
	return s.w.Flush()
}

// paint returns an SVG paint attribute value, emitting a gradient
// definition first when needed
func (s *svgWriter) paint(p Paint, view View) string {
	if !p.Visible() {
		return "none"
	}
	p = p.project(view)
	switch p.Kind {
	case PaintLinear:
		id := s.nextGradient()
		s.printf(`<defs><linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, num(p.From.X), num(p.From.Y), num(p.To.X), num(p.To.Y))
		s.stops(p.Stops, func(o float64) float64 { return o })
		s.printf("</linearGradient></defs>\n")
		return "url(#" + id + ")"
	case PaintRadial:
		id := s.nextGradient()
		r1 := math.Max(p.R1, 1e-9)
		inner := math.Max(0, p.R0) / r1
		s.printf(`<defs><radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
			id, num(p.Center.X), num(p.Center.Y), num(r1))
		// SVG radial gradients start at the centre, so shift the stops out
		// to the inner radius
		s.stops(p.Stops, func(o float64) float64 { return inner + o*(1-inner) })
		s.printf("</radialGradient></defs>\n")
		return "url(#" + id + ")"
	}
	return rgb(p.Stops[0].Color)
}

func (s *svgWriter) nextGradient() string {
	s.gradients++
	return fmt.Sprintf("g%d", s.gradients)
}

func (s *svgWriter) stops(stops []Stop, offset func(float64) float64) {
	for _, st := range stops {
		s.printf(`<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
			num(offset(st.Offset)), rgb(st.Color), num(float64(st.Color.A)/255))
	}
}

// opacity returns the alpha of a solid paint as an attribute, empty for
// gradients which carry it in their stops
func opacity(attr string, p Paint) string {
	if p.Kind != PaintSolid || len(p.Stops) == 0 || p.Stops[0].Color.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, num(float64(p.Stops[0].Color.A)/255))
}

func (s *svgWriter) shape(sh Shape, view View) {
	width := num(view.Length(sh.Width))
	points := make([]r2.Vec, len(sh.Points))
	for i, p := range sh.Points {
		points[i] = view.Project(p)
	}

	switch sh.Kind {
	case ShapeCurve:
		start, controls, ends := quadSegments(points)
		var d strings.Builder
		fmt.Fprintf(&d, "M%s %s", num(start.X), num(start.Y))
		for i, c := range controls {
			fmt.Fprintf(&d, " Q%s %s %s %s", num(c.X), num(c.Y), num(ends[i].X), num(ends[i].Y))
		}
		stroke := s.paint(sh.Stroke, view)
		s.printf(`<path id="%s" d="%s" fill="none" stroke="%s"%s stroke-width="%s"/>`+"\n",
			sh.Name, d.String(), stroke, opacity("stroke-opacity", sh.Stroke), width)

	case ShapePolygon:
		fill := s.paint(sh.Fill, view)
		stroke := s.paint(sh.Stroke, view)
		s.printf(`<polygon id="%s" points="%s" fill="%s"%s stroke="%s" stroke-width="%s"/>`+"\n",
			svgID(sh.Name), pointList(points), fill, opacity("fill-opacity", sh.Fill), stroke, width)

	case ShapeLine:
		if len(points) < 2 {
			return
		}
		stroke := s.paint(sh.Stroke, view)
		s.printf(`<line id="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			sh.Name, num(points[0].X), num(points[0].Y), num(points[1].X), num(points[1].Y), stroke, width)

	case ShapeDot:
		if len(points) == 0 {
			return
		}
		s.printf(`<circle id="%s" cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			sh.Name, num(points[0].X), num(points[0].Y), num(view.Length(sh.Radius)), s.paint(sh.Fill, view))

	case ShapeArc:
		a := sh.Arc
		sweep := a.Sweep()
		if sweep <= 0 || a.Thickness <= 0 {
			return
		}
		stroke := s.paint(sh.Stroke, view)
		center := view.Project(a.Center)
		radius := view.Length(a.Radius)
		thickness := num(view.Length(a.Thickness))
		if sweep >= 2*math.Pi {
			s.printf(`<circle id="%s" cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
				sh.Name, num(center.X), num(center.Y), num(radius), stroke, thickness)
			return
		}
		start := r2.Add(center, r2.Vec{X: radius * math.Cos(a.StartAngle), Y: radius * math.Sin(a.StartAngle)})
		end := r2.Add(center, r2.Vec{X: radius * math.Cos(a.StartAngle+sweep), Y: radius * math.Sin(a.StartAngle+sweep)})
		large := 0
		if sweep > math.Pi {
			large = 1
		}
		s.printf(`<path id="%s" d="M%s %s A%s %s 0 %d 1 %s %s" fill="none" stroke="%s"%s stroke-width="%s"/>`+"\n",
			sh.Name, num(start.X), num(start.Y), num(radius), num(radius), large, num(end.X), num(end.Y),
			stroke, opacity("stroke-opacity", sh.Stroke), thickness)
	}
}

func (s *svgWriter) label(l Label, view View) {
	anchor := view.Project(l.At)
	size := view.Length(l.Size)
	offset := view.Length(l.Offset)

	x, y := anchor.X, anchor.Y
	textAnchor := "end"
	switch l.Align {
	case AlignRight:
		x += offset
		y += size / 2
		textAnchor = "start"
	case AlignAbove:
		y -= offset
		textAnchor = "middle"
	case AlignBelow:
		y += offset + size
		textAnchor = "middle"
	default:
		x -= offset
		y += size / 2
	}

	var text strings.Builder
	if err := xml.EscapeText(&text, []byte(l.Text)); err != nil {
		s.err = err
		return
	}
	s.printf(`<text x="%s" y="%s" font-family="Go, sans-serif" font-size="%s" fill="%s" text-anchor="%s">%s</text>`+"\n",
		num(x), num(y), num(size), rgb(l.Color), textAnchor, text.String())
}

func pointList(points []r2.Vec) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func svgID(name string) string {
	return strings.NewReplacer(":", "-", " ", "-").Replace(name)
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
