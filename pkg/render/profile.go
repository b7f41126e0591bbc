package render

import (
	"github.com/philipparndt/gointubate/pkg/airway"
	"gonum.org/v1/gonum/spatial/r2"
)

type curve struct {
	name   string
	points []r2.Vec
}

// profileCurves returns the lower (jaw and neck) and upper (face) outlines
// of the patient, placed relative to the teeth, the blade tip and the glottis
func profileCurves(g airway.Geometry) []curve {
	ui, li := g.UpperIncisor, g.LowerIncisor
	at := func(base r2.Vec, dx, dy float64) r2.Vec {
		return r2.Vec{X: base.X + dx, Y: base.Y + dy}
	}

	subnasale := at(ui, 30, -18)
	upperLip := at(ui, 5, -20)
	hardPalate := at(ui, 0, 70)
	upper := []r2.Vec{
		at(subnasale, 100, -20), // forehead
		at(subnasale, 65, 0),
		at(subnasale, 60, 0),   // nasion
		at(subnasale, 19, -30), // pronasale
		at(subnasale, 7, -25),
		subnasale,
		at(subnasale, -1, -1),
		upperLip,
		at(upperLip, -5, 16),
		at(ui, 30, -6),
		at(ui, 10, -6),
		at(ui, 10, 4),
		hardPalate,
		at(hardPalate, -20, 10), // uvula
	}

	lowerLip := at(li, 0, -15)
	gnathion := at(li, -40, -15-pronathism*0.1)
	thyroid := g.Glottis.Start
	lower := []r2.Vec{
		at(li, -10, 4),
		at(li, -10, -6),
		at(li, -30, -6),
		at(lowerLip, -5, 10),
		lowerLip,
		at(lowerLip, -5, -5), // sublabiale
		at(gnathion, 19, 6),
		gnathion,
		at(gnathion, -10, 10), // menton
		at(g.BladeTip, 0, -20),
		at(thyroid, 0, -10),
		at(thyroid, -10, -4),
		at(thyroid, -50, -4), // anterior neck
	}

	return []curve{{"profileLower", lower}, {"profileUpper", upper}}
}

// quadSegments expands a curve into its quadratic pieces: it starts at the
// first point, and each following point except the last is a control point
// with the piece ending halfway to the next point
func quadSegments(points []r2.Vec) (start r2.Vec, controls, ends []r2.Vec) {
	if len(points) == 0 {
		return r2.Vec{}, nil, nil
	}
	start = points[0]
	for i := 1; i < len(points)-1; i++ {
		controls = append(controls, points[i])
		ends = append(ends, r2.Scale(0.5, r2.Add(points[i], points[i+1])))
	}
	return start, controls, ends
}
