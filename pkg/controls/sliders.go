package controls

import "math"

// Slider ids, matching the keys used in saved configurations
const (
	TubeAngle          = "tubeAngle"
	TubeRadius         = "tubeRadius"
	TubeOD             = "tubeOD"
	GlotticPlaneX      = "glotticPlaneX"
	TubeLength         = "tubeLength"
	BladeLength        = "bladeLength"
	BladeThickness     = "bladeThickness"
	BladeInsertion     = "bladeInsertion"
	BladeRadius        = "bladeRadius"
	BladeAngle         = "bladeAngle"
	LowerIncisorX      = "lowerIncisorX"
	LowerIncisorY      = "lowerIncisorY"
	FiducialStartAngle = "fiducialStartAngle"
	FiducialEndAngle   = "fiducialEndAngle"
	FiducialThickness  = "fiducialThickness"
	FiducialX          = "fiducialX"
	FiducialY          = "fiducialY"
)

// Slider describes one numeric input
type Slider struct {
	ID      string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Degrees bool // value is shown in degrees and converted to radians for solving
}

// Clamp limits value to the slider's range
func (s Slider) Clamp(value float64) float64 {
	return math.Min(s.Max, math.Max(s.Min, value))
}

// Format renders a value the way the slider label shows it
func (s Slider) Format(value float64) string {
	if s.ID == TubeAngle {
		return formatFixed(value, 1)
	}
	return formatFixed(value, decimals(s.Step))
}

var sliders = []Slider{
	{ID: TubeAngle, Label: "Tube angle", Unit: "°", Min: 0, Max: 60, Step: 0.5, Degrees: true},
	{ID: TubeRadius, Label: "Tube radius", Unit: "mm", Min: 80, Max: 200, Step: 1},
	{ID: TubeOD, Label: "Tube outer diameter", Unit: "mm", Min: 4, Max: 14, Step: 0.5},
	{ID: GlotticPlaneX, Label: "Glottic plane", Unit: "mm", Min: 100, Max: 220, Step: 1},
	{ID: TubeLength, Label: "Tube length", Unit: "mm", Min: 150, Max: 320, Step: 1},
	{ID: BladeLength, Label: "Blade length", Unit: "mm", Min: 80, Max: 160, Step: 1},
	{ID: BladeThickness, Label: "Blade thickness", Unit: "mm", Min: 5, Max: 20, Step: 1},
	{ID: BladeInsertion, Label: "Blade insertion", Unit: "%", Min: 0, Max: 100, Step: 1},
	{ID: BladeRadius, Label: "Blade radius", Unit: "mm", Min: 60, Max: 160, Step: 1},
	{ID: BladeAngle, Label: "Blade angle", Unit: "°", Min: 0, Max: 40, Step: 1, Degrees: true},
	{ID: LowerIncisorX, Label: "Lower incisor X", Unit: "mm", Min: -50, Max: 50, Step: 1},
	{ID: LowerIncisorY, Label: "Lower incisor Y", Unit: "mm", Min: -50, Max: 50, Step: 1},
	{ID: FiducialStartAngle, Label: "Fiducial start", Unit: "°", Min: 0, Max: 360, Step: 1, Degrees: true},
	{ID: FiducialEndAngle, Label: "Fiducial end", Unit: "°", Min: 0, Max: 360, Step: 1, Degrees: true},
	{ID: FiducialThickness, Label: "Fiducial thickness", Unit: "mm", Min: 0, Max: 10, Step: 0.5},
	{ID: FiducialX, Label: "Fiducial X", Unit: "mm", Min: 0, Max: 400, Step: 1},
	{ID: FiducialY, Label: "Fiducial Y", Unit: "mm", Min: 0, Max: 400, Step: 1},
}

// Sliders returns every slider in panel order
func Sliders() []Slider {
	out := make([]Slider, len(sliders))
	copy(out, sliders)
	return out
}

// Lookup finds a slider by id
func Lookup(id string) (Slider, bool) {
	for _, s := range sliders {
		if s.ID == id {
			return s, true
		}
	}
	return Slider{}, false
}
