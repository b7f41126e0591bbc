package controls

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrPresetNotFound is returned when a preset name is not known
var ErrPresetNotFound = errors.New("preset not found")

// Overrides is a partial set of slider values. Nil fields keep the value
// they are merged over.
type Overrides struct {
	TubeAngle          *float64 `json:"tubeAngle,omitempty" yaml:"tubeAngle,omitempty"`
	TubeRadius         *float64 `json:"tubeRadius,omitempty" yaml:"tubeRadius,omitempty"`
	TubeOD             *float64 `json:"tubeOD,omitempty" yaml:"tubeOD,omitempty"`
	GlotticPlaneX      *float64 `json:"glotticPlaneX,omitempty" yaml:"glotticPlaneX,omitempty"`
	TubeLength         *float64 `json:"tubeLength,omitempty" yaml:"tubeLength,omitempty"`
	BladeLength        *float64 `json:"bladeLength,omitempty" yaml:"bladeLength,omitempty"`
	BladeThickness     *float64 `json:"bladeThickness,omitempty" yaml:"bladeThickness,omitempty"`
	BladeInsertion     *float64 `json:"bladeInsertion,omitempty" yaml:"bladeInsertion,omitempty"`
	BladeRadius        *float64 `json:"bladeRadius,omitempty" yaml:"bladeRadius,omitempty"`
	BladeAngle         *float64 `json:"bladeAngle,omitempty" yaml:"bladeAngle,omitempty"`
	LowerIncisorX      *float64 `json:"lowerIncisorX,omitempty" yaml:"lowerIncisorX,omitempty"`
	LowerIncisorY      *float64 `json:"lowerIncisorY,omitempty" yaml:"lowerIncisorY,omitempty"`
	FiducialStartAngle *float64 `json:"fiducialStartAngle,omitempty" yaml:"fiducialStartAngle,omitempty"`
	FiducialEndAngle   *float64 `json:"fiducialEndAngle,omitempty" yaml:"fiducialEndAngle,omitempty"`
	FiducialThickness  *float64 `json:"fiducialThickness,omitempty" yaml:"fiducialThickness,omitempty"`
	FiducialX          *float64 `json:"fiducialX,omitempty" yaml:"fiducialX,omitempty"`
	FiducialY          *float64 `json:"fiducialY,omitempty" yaml:"fiducialY,omitempty"`
}

// Merge returns v with every set field of o applied
func (v Values) Merge(o Overrides) Values {
	apply := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&v.TubeAngle, o.TubeAngle)
	apply(&v.TubeRadius, o.TubeRadius)
	apply(&v.TubeOD, o.TubeOD)
	apply(&v.GlotticPlaneX, o.GlotticPlaneX)
	apply(&v.TubeLength, o.TubeLength)
	apply(&v.BladeLength, o.BladeLength)
	apply(&v.BladeThickness, o.BladeThickness)
	apply(&v.BladeInsertion, o.BladeInsertion)
	apply(&v.BladeRadius, o.BladeRadius)
	apply(&v.BladeAngle, o.BladeAngle)
	apply(&v.LowerIncisorX, o.LowerIncisorX)
	apply(&v.LowerIncisorY, o.LowerIncisorY)
	apply(&v.FiducialStartAngle, o.FiducialStartAngle)
	apply(&v.FiducialEndAngle, o.FiducialEndAngle)
	apply(&v.FiducialThickness, o.FiducialThickness)
	apply(&v.FiducialX, o.FiducialX)
	apply(&v.FiducialY, o.FiducialY)
	return v
}

// Diff returns the overrides that turn base into v
func (v Values) Diff(base Values) Overrides {
	var o Overrides
	set := func(dst **float64, value, reference float64) {
		if value != reference {
			x := value
			*dst = &x
		}
	}
	set(&o.TubeAngle, v.TubeAngle, base.TubeAngle)
	set(&o.TubeRadius, v.TubeRadius, base.TubeRadius)
	set(&o.TubeOD, v.TubeOD, base.TubeOD)
	set(&o.GlotticPlaneX, v.GlotticPlaneX, base.GlotticPlaneX)
	set(&o.TubeLength, v.TubeLength, base.TubeLength)
	set(&o.BladeLength, v.BladeLength, base.BladeLength)
	set(&o.BladeThickness, v.BladeThickness, base.BladeThickness)
	set(&o.BladeInsertion, v.BladeInsertion, base.BladeInsertion)
	set(&o.BladeRadius, v.BladeRadius, base.BladeRadius)
	set(&o.BladeAngle, v.BladeAngle, base.BladeAngle)
	set(&o.LowerIncisorX, v.LowerIncisorX, base.LowerIncisorX)
	set(&o.LowerIncisorY, v.LowerIncisorY, base.LowerIncisorY)
	set(&o.FiducialStartAngle, v.FiducialStartAngle, base.FiducialStartAngle)
	set(&o.FiducialEndAngle, v.FiducialEndAngle, base.FiducialEndAngle)
	set(&o.FiducialThickness, v.FiducialThickness, base.FiducialThickness)
	set(&o.FiducialX, v.FiducialX, base.FiducialX)
	set(&o.FiducialY, v.FiducialY, base.FiducialY)
	return o
}

func ptr(v float64) *float64 { return &v }

// builtinOrder is the order presets are offered in
var builtinOrder = []string{"normal", "difficult", "pediatric", "optimal"}

func builtinPresets() map[string]Overrides {
	return map[string]Overrides{
		"normal": {},
		"difficult": {
			LowerIncisorX:  ptr(-20),
			LowerIncisorY:  ptr(5),
			BladeAngle:     ptr(12),
			BladeInsertion: ptr(85),
			TubeAngle:      ptr(34),
			GlotticPlaneX:  ptr(180),
		},
		"pediatric": {
			TubeRadius:     ptr(100),
			TubeOD:         ptr(6),
			TubeLength:     ptr(180),
			BladeLength:    ptr(90),
			BladeRadius:    ptr(80),
			BladeThickness: ptr(8),
			GlotticPlaneX:  ptr(215),
			LowerIncisorX:  ptr(-15),
		},
		"optimal": {
			TubeAngle:      ptr(30),
			BladeInsertion: ptr(80),
			BladeAngle:     ptr(20),
			LowerIncisorX:  ptr(-30),
		},
	}
}

// PresetBook is a named collection of partial parameter sets, each merged
// over Defaults when loaded
type PresetBook struct {
	presets map[string]Overrides
	order   []string
}

// NewPresetBook returns a book holding the built-in presets
func NewPresetBook() *PresetBook {
	return &PresetBook{
		presets: builtinPresets(),
		order:   append([]string(nil), builtinOrder...),
	}
}

// Add registers or replaces a preset
func (b *PresetBook) Add(name string, o Overrides) {
	if _, exists := b.presets[name]; !exists {
		b.order = append(b.order, name)
	}
	b.presets[name] = o
}

// Names returns preset names, built-ins first and then additions in the
// order they were added
func (b *PresetBook) Names() []string {
	return append([]string(nil), b.order...)
}

// Overrides returns the raw partial set for a preset
func (b *PresetBook) Overrides(name string) (Overrides, error) {
	o, ok := b.presets[name]
	if !ok {
		return Overrides{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return o, nil
}

// Values returns the defaults merged with the named preset
func (b *PresetBook) Values(name string) (Values, error) {
	o, err := b.Overrides(name)
	if err != nil {
		return Values{}, err
	}
	return Defaults().Merge(o), nil
}

// LoadPresets reads additional presets from YAML and adds them to a book of
// built-ins. The document maps preset names to slider overrides:
//
//	difficult:
//	  tubeAngle: 36
//	large-adult:
//	  tubeRadius: 170
//	  tubeLength: 320
//
// Entries with a built-in name replace the built-in.
func LoadPresets(r io.Reader) (*PresetBook, error) {
	var doc map[string]Overrides
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	book := NewPresetBook()
	for _, name := range names {
		book.Add(name, doc[name])
	}
	return book, nil
}

// Preset returns the defaults merged with a built-in preset
func Preset(name string) (Values, error) {
	return NewPresetBook().Values(name)
}

// PresetNames returns the built-in preset names in display order
func PresetNames() []string {
	return append([]string(nil), builtinOrder...)
}
