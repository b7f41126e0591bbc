package app

import (
	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/geometry"
	"github.com/philipparndt/gointubate/pkg/render"
	"gonum.org/v1/gonum/spatial/r2"
)

// Target is the object a drag manipulates
type Target int

const (
	TargetNone Target = iota
	TargetLowerIncisor
	TargetTube
	TargetBlade
	TargetGlottis
)

func (t Target) String() string {
	switch t {
	case TargetLowerIncisor:
		return "lowerIncisor"
	case TargetTube:
		return "tube"
	case TargetBlade:
		return "blade"
	case TargetGlottis:
		return "glottis"
	}
	return "none"
}

// lowerIncisorGrabRadius is the screen distance within which a press picks
// the lower incisor
const lowerIncisorGrabRadius = 50.0

// HitTest picks the drag target for a press at screen position p. Presses
// near the lower incisor grab it; above the upper incisor the left half
// grabs the blade and the right half the tube; anything else falls back to
// the lower incisor.
func HitTest(g airway.Geometry, view render.View, p r2.Vec) Target {
	lower := view.Project(g.LowerIncisor)
	upper := view.Project(g.UpperIncisor)

	if geometry.Distance(p, lower) < lowerIncisorGrabRadius {
		return TargetLowerIncisor
	}
	if p.Y < upper.Y {
		if p.X < (lower.X+upper.X)/2 {
			return TargetBlade
		}
		return TargetTube
	}
	return TargetLowerIncisor
}
