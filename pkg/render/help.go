package render

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// helpArrow is a double-headed arrow hinting at a drag gesture
type helpArrow struct {
	at          r2.Vec
	text        string
	align       Align
	labelOffset float64
	vertical    bool
}

const (
	arrowLength     = 20.0
	arrowShaftWidth = 25.0
	arrowHeadWidth  = 15.0
	arrowHeadLength = 10.0
	arrowStroke     = 1.0
)

func helpArrows(upperIncisor r2.Vec) []helpArrow {
	rotateTube := r2.Add(upperIncisor, r2.Vec{X: 70, Y: -70})
	blade := r2.Add(upperIncisor, r2.Vec{X: -70, Y: -70})
	jaw := r2.Add(upperIncisor, r2.Vec{X: -20, Y: 75})
	return []helpArrow{
		{at: rotateTube, text: "Rotate tube", align: AlignAbove, labelOffset: 10},
		{at: blade, text: "Advance-withdraw blade", align: AlignAbove, labelOffset: 25, vertical: true},
		{at: blade, text: "Rotate blade", align: AlignLeft, labelOffset: 25},
		{at: jaw, text: "Jaw thrust", align: AlignBelow, labelOffset: 25, vertical: true},
		{at: jaw, text: "Mouth opening", align: AlignRight, labelOffset: 25},
	}
}

// outline returns the arrow polygon around its anchor
func (a helpArrow) outline() []r2.Vec {
	l, s, w, h := arrowLength/2, arrowShaftWidth/2, arrowHeadWidth/2, arrowHeadLength
	offsets := []r2.Vec{
		{X: -l, Y: s}, {X: l, Y: s}, {X: l, Y: w}, {X: l + h, Y: 0},
		{X: l, Y: -w}, {X: l, Y: -s}, {X: -l, Y: -s}, {X: -l, Y: -w},
		{X: -l - h, Y: 0}, {X: -l, Y: w},
	}
	points := make([]r2.Vec, len(offsets))
	for i, o := range offsets {
		if a.vertical {
			o.X, o.Y = o.Y, o.X
		}
		points[i] = r2.Add(a.at, o)
	}
	return points
}

func (a helpArrow) shape() Shape {
	return Shape{
		Kind:   ShapePolygon,
		Name:   "help:" + a.text,
		Points: a.outline(),
		Width:  arrowStroke,
		Fill:   Solid(colorLightGreen),
		Stroke: Solid(colorLightGreen),
	}
}
