package airway

import (
	"math"

	"github.com/philipparndt/gointubate/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

// Solve derives the full airway geometry from p.
//
// The tube is laid out starting with its middle segment (2), pivoting on the
// upper teeth at TubeAngle. If that arc runs into the blade the tube deflects
// along a tangent arc (3) towards the glottic plane, and whatever length is
// left is drawn as the outer segment (1) beyond the teeth, bent by the same
// amount. Solve never fails; out-of-domain input yields NaN fields.
func Solve(p Parameters) Geometry {
	var g Geometry

	// Teeth
	g.UpperIncisor = geometry.NewPoint(p.UpperIncisorX, p.UpperIncisorY)
	g.LowerIncisor = r2.Add(g.UpperIncisor, geometry.NewPoint(p.LowerIncisorX, p.LowerIncisorY))

	// Blade, resting against the lower incisor
	g.Blade = placeBlade(p, g.LowerIncisor)
	g.BladeTip = g.Blade.End()
	g.BladeUpperIncisorDistance = geometry.Distance(g.Blade.Center, g.UpperIncisor) -
		(p.BladeRadius + p.BladeThickness)

	// Tube
	pivot := toothRotationCentre(p)
	segment2 := geometry.Arc{
		Center:     geometry.Translate(pivot, p.TubeAngle+math.Pi, p.TubeRadius),
		Radius:     p.TubeRadius,
		StartAngle: p.TubeAngle,
		EndAngle:   p.TubeAngle + 1,
		Thickness:  p.TubeOD,
	}

	padded := g.Blade.Circle().Inflate((g.Blade.Thickness + p.TubeOD) / 2)
	intersection, hit := geometry.FindIntersection(segment2.Circle(), padded)
	if hit {
		g.Intersection = &intersection
	}

	if hit && bladeContact(intersection, g.BladeTip, p) {
		var segment3 geometry.Arc
		segment2, segment3, g.Bend = deflect(segment2, g.Blade, intersection, p)
		g.TubeSegment3 = &segment3
		g.TubeTip = segment3.End()
		g.DrawnTubeRadians += segment3.Span()
	} else {
		segment2 = segment2.WithEnd(glotticAngle(segment2, p.GlotticPlaneX))
		g.TubeTip = segment2.End()
	}
	g.DrawnTubeRadians += segment2.Span()
	g.TubeSegment2 = segment2

	if remaining := p.TubeLength/p.TubeRadius - g.DrawnTubeRadians; remaining > 0 {
		end := p.TubeAngle + g.Bend
		g.TubeSegment1 = &geometry.Arc{
			Center:     geometry.Translate(pivot, p.TubeAngle+math.Pi+g.Bend, p.TubeRadius),
			Radius:     p.TubeRadius,
			StartAngle: end - remaining,
			EndAngle:   end,
			Thickness:  p.TubeOD,
		}
	}

	g.Glottis = Segment{
		Start: geometry.NewPoint(p.GlotticPlaneX, g.BladeTip.Y-GlottisHalfLength),
		End:   geometry.NewPoint(p.GlotticPlaneX, g.BladeTip.Y+GlottisHalfLength),
	}
	g.Fiducial = geometry.Arc{
		Center:     geometry.NewPoint(p.FiducialX, p.FiducialY),
		Radius:     FiducialRadius,
		StartAngle: p.FiducialStartAngle,
		EndAngle:   p.FiducialEndAngle,
		Thickness:  p.FiducialThickness,
	}

	return g
}

// BladeSpan returns the angle subtended by a blade arc of the given chord
// length. NaN when the chord is longer than the diameter.
func BladeSpan(length, radius float64) float64 {
	return math.Asin(length/(2*radius)) * 2
}

// placeBlade returns the blade arc through the lower incisor. Insertion moves
// the arc forward around its centre without changing its span.
func placeBlade(p Parameters, lowerIncisor r2.Vec) geometry.Arc {
	span := BladeSpan(p.BladeLength, p.BladeRadius)
	insertion := p.BladeInsertion / 100
	return geometry.Arc{
		Center:     geometry.Translate(lowerIncisor, p.BladeAngle+math.Pi, p.BladeRadius),
		Radius:     p.BladeRadius,
		StartAngle: p.BladeAngle - span*(1-insertion),
		EndAngle:   p.BladeAngle + span*insertion,
		Thickness:  p.BladeThickness,
	}
}

// toothRotationCentre is the point the tube pivots about, offset from the
// upper incisor by half the tube's outer diameter.
func toothRotationCentre(p Parameters) r2.Vec {
	return geometry.NewPoint(p.UpperIncisorX-p.TubeOD/2, p.UpperIncisorY-p.TubeOD/2)
}

// bladeContact filters out intersection roots that cannot be a real
// deflection: the contact must lie beyond the blade tip and below the upper
// incisor on screen.
func bladeContact(intersection, bladeTip r2.Vec, p Parameters) bool {
	return intersection.X > bladeTip.X && intersection.Y > p.UpperIncisorY
}

// deflect bends the tube off the blade at the intersection. It returns
// segment 2 ending at the contact, the new tangent segment 3 running to the
// glottic plane, and the bend angle between them.
func deflect(segment2, blade geometry.Arc, intersection r2.Vec, p Parameters) (geometry.Arc, geometry.Arc, float64) {
	bladeBearing := geometry.Bearing(intersection, blade.Center)
	segment2Bearing := geometry.Bearing(intersection, segment2.Center)
	segment2 = segment2.WithEnd(segment2Bearing - math.Pi)

	segment3 := geometry.Arc{
		Center:     geometry.Translate(intersection, bladeBearing, p.TubeRadius),
		Radius:     p.TubeRadius,
		StartAngle: bladeBearing + math.Pi,
		Thickness:  p.TubeOD,
	}
	// Arcs never sweep backwards; an unreachable plane also ends up here.
	segment3.EndAngle = segment3.StartAngle
	if final := glotticAngle(segment3, p.GlotticPlaneX); final > segment3.StartAngle {
		segment3.EndAngle = final
	}

	bend := geometry.TangentAngle(intersection, segment3.Circle(), segment2.Circle())
	return segment2, segment3, bend
}

// glotticAngle is the angle at which arc reaches x = planeX. NaN when the
// plane is further than one radius from the arc's centre.
func glotticAngle(arc geometry.Arc, planeX float64) float64 {
	return math.Acos((planeX - arc.Center.X) / arc.Radius)
}
