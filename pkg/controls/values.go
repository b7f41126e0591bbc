package controls

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/geometry"
)

// ErrUnknownSlider is returned for a slider id that does not exist
var ErrUnknownSlider = errors.New("unknown slider")

// Values holds the position of every slider. Angles are in degrees, as the
// sliders show them; Parameters converts to the solver's units.
type Values struct {
	TubeAngle          float64 `json:"tubeAngle" yaml:"tubeAngle" toml:"tubeAngle"`
	TubeRadius         float64 `json:"tubeRadius" yaml:"tubeRadius" toml:"tubeRadius"`
	TubeOD             float64 `json:"tubeOD" yaml:"tubeOD" toml:"tubeOD"`
	GlotticPlaneX      float64 `json:"glotticPlaneX" yaml:"glotticPlaneX" toml:"glotticPlaneX"`
	TubeLength         float64 `json:"tubeLength" yaml:"tubeLength" toml:"tubeLength"`
	BladeLength        float64 `json:"bladeLength" yaml:"bladeLength" toml:"bladeLength"`
	BladeThickness     float64 `json:"bladeThickness" yaml:"bladeThickness" toml:"bladeThickness"`
	BladeInsertion     float64 `json:"bladeInsertion" yaml:"bladeInsertion" toml:"bladeInsertion"`
	BladeRadius        float64 `json:"bladeRadius" yaml:"bladeRadius" toml:"bladeRadius"`
	BladeAngle         float64 `json:"bladeAngle" yaml:"bladeAngle" toml:"bladeAngle"`
	LowerIncisorX      float64 `json:"lowerIncisorX" yaml:"lowerIncisorX" toml:"lowerIncisorX"`
	LowerIncisorY      float64 `json:"lowerIncisorY" yaml:"lowerIncisorY" toml:"lowerIncisorY"`
	FiducialStartAngle float64 `json:"fiducialStartAngle" yaml:"fiducialStartAngle" toml:"fiducialStartAngle"`
	FiducialEndAngle   float64 `json:"fiducialEndAngle" yaml:"fiducialEndAngle" toml:"fiducialEndAngle"`
	FiducialThickness  float64 `json:"fiducialThickness" yaml:"fiducialThickness" toml:"fiducialThickness"`
	FiducialX          float64 `json:"fiducialX" yaml:"fiducialX" toml:"fiducialX"`
	FiducialY          float64 `json:"fiducialY" yaml:"fiducialY" toml:"fiducialY"`
}

// Defaults returns the slider positions of a fresh session
func Defaults() Values {
	return Values{
		TubeAngle:          26,
		TubeRadius:         150,
		TubeOD:             10,
		GlotticPlaneX:      165,
		TubeLength:         280,
		BladeLength:        140,
		BladeThickness:     15,
		BladeInsertion:     72,
		BladeRadius:        118,
		BladeAngle:         18,
		LowerIncisorX:      -25,
		LowerIncisorY:      0,
		FiducialStartAngle: 0,
		FiducialEndAngle:   360,
		FiducialThickness:  2,
		FiducialX:          250,
		FiducialY:          150,
	}
}

// Parameters converts slider values to solver parameters anchored at the
// default upper incisor position
func (v Values) Parameters() airway.Parameters {
	return airway.Parameters{
		UpperIncisorX:      airway.DefaultUpperIncisorX,
		UpperIncisorY:      airway.DefaultUpperIncisorY,
		LowerIncisorX:      v.LowerIncisorX,
		LowerIncisorY:      v.LowerIncisorY,
		BladeLength:        v.BladeLength,
		BladeRadius:        v.BladeRadius,
		BladeAngle:         geometry.Radians(v.BladeAngle),
		BladeInsertion:     v.BladeInsertion,
		BladeThickness:     v.BladeThickness,
		TubeLength:         v.TubeLength,
		TubeRadius:         v.TubeRadius,
		TubeOD:             v.TubeOD,
		TubeAngle:          geometry.Radians(v.TubeAngle),
		GlotticPlaneX:      v.GlotticPlaneX,
		FiducialStartAngle: geometry.Radians(v.FiducialStartAngle),
		FiducialEndAngle:   geometry.Radians(v.FiducialEndAngle),
		FiducialThickness:  v.FiducialThickness,
		FiducialX:          v.FiducialX,
		FiducialY:          v.FiducialY,
	}
}

// FromParameters converts solver parameters back to slider values. The upper
// incisor anchor is not a slider and is dropped.
func FromParameters(p airway.Parameters) Values {
	return Values{
		TubeAngle:          geometry.Degrees(p.TubeAngle),
		TubeRadius:         p.TubeRadius,
		TubeOD:             p.TubeOD,
		GlotticPlaneX:      p.GlotticPlaneX,
		TubeLength:         p.TubeLength,
		BladeLength:        p.BladeLength,
		BladeThickness:     p.BladeThickness,
		BladeInsertion:     p.BladeInsertion,
		BladeRadius:        p.BladeRadius,
		BladeAngle:         geometry.Degrees(p.BladeAngle),
		LowerIncisorX:      p.LowerIncisorX,
		LowerIncisorY:      p.LowerIncisorY,
		FiducialStartAngle: geometry.Degrees(p.FiducialStartAngle),
		FiducialEndAngle:   geometry.Degrees(p.FiducialEndAngle),
		FiducialThickness:  p.FiducialThickness,
		FiducialX:          p.FiducialX,
		FiducialY:          p.FiducialY,
	}
}

// field returns a pointer to the value behind a slider id
func (v *Values) field(id string) (*float64, error) {
	switch id {
	case TubeAngle:
		return &v.TubeAngle, nil
	case TubeRadius:
		return &v.TubeRadius, nil
	case TubeOD:
		return &v.TubeOD, nil
	case GlotticPlaneX:
		return &v.GlotticPlaneX, nil
	case TubeLength:
		return &v.TubeLength, nil
	case BladeLength:
		return &v.BladeLength, nil
	case BladeThickness:
		return &v.BladeThickness, nil
	case BladeInsertion:
		return &v.BladeInsertion, nil
	case BladeRadius:
		return &v.BladeRadius, nil
	case BladeAngle:
		return &v.BladeAngle, nil
	case LowerIncisorX:
		return &v.LowerIncisorX, nil
	case LowerIncisorY:
		return &v.LowerIncisorY, nil
	case FiducialStartAngle:
		return &v.FiducialStartAngle, nil
	case FiducialEndAngle:
		return &v.FiducialEndAngle, nil
	case FiducialThickness:
		return &v.FiducialThickness, nil
	case FiducialX:
		return &v.FiducialX, nil
	case FiducialY:
		return &v.FiducialY, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSlider, id)
}

// Get returns the value of a slider
func (v Values) Get(id string) (float64, error) {
	f, err := v.field(id)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// Set assigns a slider value as is, without clamping
func (v *Values) Set(id string, value float64) error {
	f, err := v.field(id)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// Nudge adds delta to a slider and clamps it to the slider's range
func (v *Values) Nudge(id string, delta float64) error {
	s, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlider, id)
	}
	f, _ := v.field(id)
	*f = s.Clamp(*f + delta)
	return nil
}

// Adjust moves a slider by amount steps and clamps it to the slider's range
func (v *Values) Adjust(id string, amount float64) error {
	s, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlider, id)
	}
	return v.Nudge(id, amount*s.Step)
}

// Clamp returns a copy with every slider limited to its range
func (v Values) Clamp() Values {
	for _, s := range Sliders() {
		f, _ := v.field(s.ID)
		*f = s.Clamp(*f)
	}
	return v
}

// Map returns the values keyed by slider id
func (v Values) Map() map[string]float64 {
	m := make(map[string]float64, len(sliders))
	for _, s := range Sliders() {
		m[s.ID], _ = v.Get(s.ID)
	}
	return m
}

// Apply sets sliders from "id=value" assignments, clamping each value to
// its slider's range
func (v *Values) Apply(assignments []string) error {
	for _, a := range assignments {
		id, raw, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("invalid assignment %q: expected id=value", a)
		}
		id = strings.TrimSpace(id)
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", id, err)
		}
		s, ok := Lookup(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSlider, id)
		}
		if err := v.Set(id, s.Clamp(value)); err != nil {
			return err
		}
	}
	return nil
}
