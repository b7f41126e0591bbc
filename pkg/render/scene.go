package render

import (
	"image/color"
	"math"

	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

// Options are the display toggles
type Options struct {
	ShowLabels bool `json:"showLabels"`
	ShowHelp   bool `json:"showHelp"`
	// Supersample renders at this multiple of the output size and scales
	// down, values below 2 disable it. PNG output only.
	Supersample int `json:"supersample,omitempty"`
}

// ShapeKind tells a painter how to read a Shape
type ShapeKind int

const (
	// ShapeCurve is a chain of quadratic curves through Points, each point
	// a control point and the midpoints between them on-curve
	ShapeCurve ShapeKind = iota
	ShapePolygon
	ShapeArc
	ShapeLine
	ShapeDot
)

// Shape is one drawable element in model coordinates
type Shape struct {
	Kind   ShapeKind
	Name   string
	Points []r2.Vec
	Arc    geometry.Arc
	Radius float64 // dots
	Width  float64 // stroke width
	Fill   Paint
	Stroke Paint
}

func (s Shape) finite() bool {
	if !finitePoints(s.Points...) || !s.Fill.finite() || !s.Stroke.finite() {
		return false
	}
	if s.Kind == ShapeArc && !s.Arc.Finite() {
		return false
	}
	return !math.IsNaN(s.Radius) && !math.IsNaN(s.Width)
}

// Align positions a label relative to its anchor
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignAbove
	AlignBelow
)

// Label is a text annotation anchored at a model point
type Label struct {
	At     r2.Vec
	Text   string
	Align  Align
	Offset float64
	Size   float64
	Color  color.NRGBA
}

// Scene is the ordered list of shapes followed by the labels drawn on top
type Scene struct {
	Shapes []Shape
	Labels []Label
}

// Shape returns the first shape with the given name
func (s Scene) Shape(name string) (Shape, bool) {
	for _, shape := range s.Shapes {
		if shape.Name == name {
			return shape, true
		}
	}
	return Shape{}, false
}

var (
	colorGray       = color.NRGBA{128, 128, 128, 255}
	colorRed        = color.NRGBA{255, 0, 0, 255}
	colorBlue       = color.NRGBA{0, 0, 255, 255}
	colorDarkGray   = color.NRGBA{169, 169, 169, 255}
	colorLightGreen = color.NRGBA{144, 238, 144, 255}
	colorProfile    = color.NRGBA{139, 69, 19, 153}
)

// Sizes in millimetres
const (
	toothHeight      = 10.0
	toothStroke      = 1.0
	dotRadius        = 2.0
	handleWidth      = 20.0
	glottisWidth     = 4.0
	profileWidth     = 1.6
	labelSize        = 6.0
	labelOffset      = 15.0
	pronathism       = 100.0
	handleStartShift = 0.08
	handleEndShift   = 0.3
)

// NewScene lays out everything drawn for a geometry. Shapes or labels with a
// non-finite coordinate are left out.
func NewScene(g airway.Geometry, opts Options) Scene {
	var sc Scene
	add := func(s Shape) {
		if s.finite() {
			sc.Shapes = append(sc.Shapes, s)
		}
	}

	for _, curve := range profileCurves(g) {
		add(Shape{Kind: ShapeCurve, Name: curve.name, Points: curve.points, Width: profileWidth, Stroke: Solid(colorProfile)})
	}

	toothStrokeColor := colorGray
	if g.DentalDamage() {
		toothStrokeColor = colorRed
	}
	add(tooth("upperIncisor", g.UpperIncisor, toothHeight, toothStrokeColor))
	add(tooth("lowerIncisor", g.LowerIncisor, -toothHeight, colorGray))

	add(Shape{Kind: ShapeArc, Name: "blade", Arc: g.Blade, Stroke: metal(g.Blade)})
	add(dot("bladeTip", g.BladeTip, colorGray))

	handleStart := geometry.Translate(g.Blade.Center, g.Blade.StartAngle+handleStartShift, g.Blade.Radius)
	handleEnd := geometry.Translate(handleStart, math.Pi+g.Blade.StartAngle+handleEndShift, g.Blade.Radius)
	add(Shape{
		Kind:   ShapeLine,
		Name:   "handle",
		Points: []r2.Vec{handleStart, handleEnd},
		Width:  handleWidth,
		Stroke: Linear(handleStart, handleEnd,
			Stop{0, color.NRGBA{0xaa, 0xaa, 0xaa, 255}},
			Stop{1, color.NRGBA{0x88, 0x88, 0x88, 255}}),
	})

	add(Shape{
		Kind:   ShapeLine,
		Name:   "glottis",
		Points: []r2.Vec{g.Glottis.Start, g.Glottis.End},
		Width:  glottisWidth,
		Stroke: Linear(g.Glottis.Start, g.Glottis.End,
			Stop{0, color.NRGBA{0xff, 0x88, 0x88, 255}},
			Stop{1, color.NRGBA{0xff, 0x33, 0x33, 255}}),
	})

	add(tubeArc("tubeSegment2", g.TubeSegment2))
	if g.TubeSegment3 != nil {
		add(tubeArc("tubeSegment3", *g.TubeSegment3))
		if g.Intersection != nil {
			add(dot("intersection", *g.Intersection, colorRed))
		}
	}
	if g.TubeSegment1 != nil {
		add(tubeArc("tubeSegment1", *g.TubeSegment1))
	}

	add(Shape{Kind: ShapeArc, Name: "fiducial", Arc: g.Fiducial, Stroke: Solid(colorBlue)})

	if opts.ShowLabels {
		upper := "Upper Incisor"
		if g.DentalDamage() {
			upper = "Damaged Upper Incisor"
		}
		sc.addLabel(label(g.LowerIncisor, "Lower Incisor", AlignLeft, labelOffset, colorDarkGray))
		sc.addLabel(label(g.UpperIncisor, upper, AlignRight, labelOffset, colorDarkGray))
		sc.addLabel(label(g.BladeTip, "Blade", AlignAbove, labelOffset, colorDarkGray))
		sc.addLabel(label(g.Glottis.Start, "Glottis", AlignLeft, 5, colorDarkGray))
		sc.addLabel(label(g.TubeTip, "Tube", AlignBelow, labelOffset, colorDarkGray))
	}

	if opts.ShowHelp {
		for _, a := range helpArrows(g.UpperIncisor) {
			add(a.shape())
			sc.addLabel(label(a.at, a.text, a.align, a.labelOffset, colorLightGreen))
		}
	}

	return sc
}

func (sc *Scene) addLabel(l Label) {
	if finitePoints(l.At) {
		sc.Labels = append(sc.Labels, l)
	}
}

func label(at r2.Vec, text string, align Align, offset float64, c color.NRGBA) Label {
	return Label{At: at, Text: text, Align: align, Offset: offset, Size: labelSize, Color: c}
}

func tooth(name string, tip r2.Vec, height float64, stroke color.NRGBA) Shape {
	t := geometry.Tooth(tip, height)
	v := t.Vertices()
	return Shape{
		Kind:   ShapePolygon,
		Name:   name,
		Points: v[:],
		Width:  toothStroke,
		Fill: Linear(tip, r2.Add(tip, r2.Vec{X: height}),
			Stop{0, color.NRGBA{0xff, 0xff, 0xff, 255}},
			Stop{0.5, color.NRGBA{0xdd, 0xdd, 0xdd, 255}},
			Stop{1, color.NRGBA{0xff, 0xff, 0xff, 255}}),
		Stroke: Solid(stroke),
	}
}

func dot(name string, at r2.Vec, c color.NRGBA) Shape {
	return Shape{Kind: ShapeDot, Name: name, Points: []r2.Vec{at}, Radius: dotRadius, Fill: Solid(c)}
}

func tubeArc(name string, a geometry.Arc) Shape {
	return Shape{
		Kind: ShapeArc,
		Name: name,
		Arc:  a,
		Stroke: Radial(a.Center, a.Radius-a.Thickness, a.Radius+a.Thickness,
			Stop{0, color.NRGBA{255, 255, 255, 128}},
			Stop{1, color.NRGBA{0, 0, 255, 128}}),
	}
}

func metal(a geometry.Arc) Paint {
	return Radial(a.Center, a.Radius-a.Thickness, a.Radius+a.Thickness,
		Stop{0, color.NRGBA{192, 192, 192, 255}},
		Stop{1, color.NRGBA{128, 128, 128, 255}})
}
