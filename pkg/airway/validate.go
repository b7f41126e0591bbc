package airway

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBladeChord is returned when the blade is longer than its arc's diameter
	ErrBladeChord = errors.New("blade length exceeds blade diameter")
	// ErrInsertionRange is returned when blade insertion is outside 0-100 %
	ErrInsertionRange = errors.New("blade insertion out of range")
	// ErrNonPositive is returned when a radius or length that must be positive is not
	ErrNonPositive = errors.New("value must be positive")
	// ErrNotANumber is returned when an input is NaN or infinite
	ErrNotANumber = errors.New("value is not a finite number")
	// ErrUnreachableGlottis is returned when the tube cannot reach the glottic plane
	ErrUnreachableGlottis = errors.New("glottic plane unreachable by tube")
	// ErrNonFinite is returned when the solved geometry contains NaN or infinite values
	ErrNonFinite = errors.New("geometry contains non-finite values")
	// ErrTubeTooShort is returned when the arcs needed to reach the glottic
	// plane are longer than the tube
	ErrTubeTooShort = errors.New("tube too short for solved path")
)

// lengthSlack absorbs rounding in the arc length sum, in mm
const lengthSlack = 1e-6

// DomainError describes an input or result outside the solvable domain
type DomainError struct {
	Field  string
	Reason string
	Err    error
}

func (e *DomainError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Field, e.Err, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Validate checks that p lies in the domain Solve can handle without
// producing NaN from the blade construction. Reachability of the glottic
// plane depends on the solved layout and is checked by SolveChecked.
func Validate(p Parameters) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"upperIncisorX", p.UpperIncisorX},
		{"upperIncisorY", p.UpperIncisorY},
		{"lowerIncisorX", p.LowerIncisorX},
		{"lowerIncisorY", p.LowerIncisorY},
		{"bladeLength", p.BladeLength},
		{"bladeRadius", p.BladeRadius},
		{"bladeAngle", p.BladeAngle},
		{"bladeInsertion", p.BladeInsertion},
		{"bladeThickness", p.BladeThickness},
		{"tubeLength", p.TubeLength},
		{"tubeRadius", p.TubeRadius},
		{"tubeOD", p.TubeOD},
		{"tubeAngle", p.TubeAngle},
		{"glotticPlaneX", p.GlotticPlaneX},
		{"fiducialStartAngle", p.FiducialStartAngle},
		{"fiducialEndAngle", p.FiducialEndAngle},
		{"fiducialThickness", p.FiducialThickness},
		{"fiducialX", p.FiducialX},
		{"fiducialY", p.FiducialY},
	}
	for _, f := range fields {
		if !finite(f.value) {
			return &DomainError{Field: f.name, Err: ErrNotANumber}
		}
	}

	if p.BladeRadius <= 0 {
		return &DomainError{Field: "bladeRadius", Reason: fmt.Sprintf("got %.4g", p.BladeRadius), Err: ErrNonPositive}
	}
	if p.TubeRadius <= 0 {
		return &DomainError{Field: "tubeRadius", Reason: fmt.Sprintf("got %.4g", p.TubeRadius), Err: ErrNonPositive}
	}
	if p.BladeLength <= 0 {
		return &DomainError{Field: "bladeLength", Reason: fmt.Sprintf("got %.4g", p.BladeLength), Err: ErrNonPositive}
	}
	if p.BladeLength > 2*p.BladeRadius {
		return &DomainError{
			Field:  "bladeLength",
			Reason: fmt.Sprintf("%.4g > 2 × %.4g", p.BladeLength, p.BladeRadius),
			Err:    ErrBladeChord,
		}
	}
	if p.BladeInsertion < 0 || p.BladeInsertion > 100 {
		return &DomainError{Field: "bladeInsertion", Reason: fmt.Sprintf("got %.4g", p.BladeInsertion), Err: ErrInsertionRange}
	}

	return nil
}

// SolveChecked validates p, solves it and reports whether the result is
// usable. The geometry is returned even alongside an error so that a
// renderer can still draw its finite parts.
func SolveChecked(p Parameters) (Geometry, error) {
	g := Solve(p)
	if err := Validate(p); err != nil {
		return g, err
	}

	final := g.TubeSegment2
	if g.TubeSegment3 != nil {
		final = *g.TubeSegment3
	}
	if reach := math.Abs(p.GlotticPlaneX - final.Center.X); reach > p.TubeRadius {
		return g, &DomainError{
			Field:  "glotticPlaneX",
			Reason: fmt.Sprintf("%.4g mm from arc centre, tube radius %.4g mm", reach, p.TubeRadius),
			Err:    ErrUnreachableGlottis,
		}
	}

	if bad := g.NonFinite(); len(bad) > 0 {
		return g, &DomainError{Field: bad[0], Reason: fmt.Sprintf("%d field(s) affected", len(bad)), Err: ErrNonFinite}
	}

	if need := g.TubeArcRadians() * p.TubeRadius; need > p.TubeLength+lengthSlack {
		return g, &DomainError{
			Field:  "tubeLength",
			Reason: fmt.Sprintf("arcs need %.4g mm, tube is %.4g mm", need, p.TubeLength),
			Err:    ErrTubeTooShort,
		}
	}

	return g, nil
}
