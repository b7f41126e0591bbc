package airway

import (
	"math"

	"github.com/philipparndt/gointubate/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

// Fixed sizes of the decorative elements, in millimetres.
const (
	GlottisHalfLength = 10.0
	FiducialRadius    = 5.0
)

// Segment is a straight line segment
type Segment struct {
	Start r2.Vec `json:"start"`
	End   r2.Vec `json:"end"`
}

// Geometry is everything derived from one set of Parameters.
//
// TubeSegment2 is always present. Intersection is set whenever the segment 2
// circle meets the blade circle inflated by half the blade thickness and tube
// OD, even if the meeting point lies outside the blade's reach. TubeSegment3
// is set only when that point is an actual contact, and TubeSegment1 only
// when tube length is left over after segments 2 and 3.
type Geometry struct {
	UpperIncisor r2.Vec `json:"upperIncisor"`
	LowerIncisor r2.Vec `json:"lowerIncisor"`

	Blade    geometry.Arc `json:"blade"`
	BladeTip r2.Vec       `json:"bladeTip"`
	// Clearance between the blade and the upper incisor less the blade
	// thickness. Negative means the blade is pressing on the tooth.
	BladeUpperIncisorDistance float64 `json:"bladeUpperIncisorDistance"`

	TubeSegment1 *geometry.Arc `json:"tubeSegment1,omitempty"`
	TubeSegment2 geometry.Arc  `json:"tubeSegment2"`
	TubeSegment3 *geometry.Arc `json:"tubeSegment3,omitempty"`
	Intersection *r2.Vec       `json:"intersection,omitempty"`
	TubeTip      r2.Vec        `json:"tubeTip"`

	// Bend is the deflection imparted to the tube at the blade, zero when
	// there is no contact.
	Bend float64 `json:"bend"`
	// DrawnTubeRadians is the angle consumed by segments 2 and 3.
	DrawnTubeRadians float64 `json:"drawnTubeRadians"`

	Glottis  Segment      `json:"glottis"`
	Fiducial geometry.Arc `json:"fiducial"`
}

// DentalDamage reports whether the blade presses on the upper incisor
func (g Geometry) DentalDamage() bool {
	return g.BladeUpperIncisorDistance < 0
}

// Contact reports whether the tube was deflected by the blade
func (g Geometry) Contact() bool {
	return g.TubeSegment3 != nil
}

// TubeSegments returns the present tube arcs in drawing order: 2, 3, 1
func (g Geometry) TubeSegments() []geometry.Arc {
	arcs := []geometry.Arc{g.TubeSegment2}
	if g.TubeSegment3 != nil {
		arcs = append(arcs, *g.TubeSegment3)
	}
	if g.TubeSegment1 != nil {
		arcs = append(arcs, *g.TubeSegment1)
	}
	return arcs
}

// TubeArcRadians returns the total angle swept by all present tube segments
func (g Geometry) TubeArcRadians() float64 {
	total := 0.0
	for _, arc := range g.TubeSegments() {
		total += arc.Span()
	}
	return total
}

// NonFinite returns the names of the fields holding NaN or infinite values
func (g Geometry) NonFinite() []string {
	var fields []string
	check := func(name string, ok bool) {
		if !ok {
			fields = append(fields, name)
		}
	}

	check("upperIncisor", geometry.IsFinite(g.UpperIncisor))
	check("lowerIncisor", geometry.IsFinite(g.LowerIncisor))
	check("blade", g.Blade.Finite())
	check("bladeTip", geometry.IsFinite(g.BladeTip))
	check("bladeUpperIncisorDistance", finite(g.BladeUpperIncisorDistance))
	check("tubeSegment2", g.TubeSegment2.Finite())
	if g.TubeSegment3 != nil {
		check("tubeSegment3", g.TubeSegment3.Finite())
	}
	if g.TubeSegment1 != nil {
		check("tubeSegment1", g.TubeSegment1.Finite())
	}
	if g.Intersection != nil {
		check("intersection", geometry.IsFinite(*g.Intersection))
	}
	check("tubeTip", geometry.IsFinite(g.TubeTip))
	check("bend", finite(g.Bend))
	check("glottis", geometry.IsFinite(g.Glottis.Start) && geometry.IsFinite(g.Glottis.End))
	check("fiducial", g.Fiducial.Finite())

	return fields
}

// Finite reports whether every field of the geometry is a finite number
func (g Geometry) Finite() bool {
	return len(g.NonFinite()) == 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
