package airway

// Default anchor of the upper incisor. Every other position is derived from it.
const (
	DefaultUpperIncisorX = 300.0
	DefaultUpperIncisorY = 200.0
)

// Parameters describes jaw position, blade placement and tube routing.
// Lengths are millimetres, angles radians, BladeInsertion a percentage.
type Parameters struct {
	UpperIncisorX float64 `json:"upperIncisorX" yaml:"upperIncisorX"`
	UpperIncisorY float64 `json:"upperIncisorY" yaml:"upperIncisorY"`
	// Offsets of the lower incisor from the upper incisor.
	LowerIncisorX float64 `json:"lowerIncisorX" yaml:"lowerIncisorX"`
	LowerIncisorY float64 `json:"lowerIncisorY" yaml:"lowerIncisorY"`

	BladeLength    float64 `json:"bladeLength" yaml:"bladeLength"`
	BladeRadius    float64 `json:"bladeRadius" yaml:"bladeRadius"`
	BladeAngle     float64 `json:"bladeAngle" yaml:"bladeAngle"`
	BladeInsertion float64 `json:"bladeInsertion" yaml:"bladeInsertion"`
	BladeThickness float64 `json:"bladeThickness" yaml:"bladeThickness"`

	TubeLength float64 `json:"tubeLength" yaml:"tubeLength"`
	TubeRadius float64 `json:"tubeRadius" yaml:"tubeRadius"`
	TubeOD     float64 `json:"tubeOD" yaml:"tubeOD"`
	TubeAngle  float64 `json:"tubeAngle" yaml:"tubeAngle"`

	GlotticPlaneX float64 `json:"glotticPlaneX" yaml:"glotticPlaneX"`

	// The fiducial ring is a calibration reference with no relation to the
	// rest of the airway.
	FiducialStartAngle float64 `json:"fiducialStartAngle" yaml:"fiducialStartAngle"`
	FiducialEndAngle   float64 `json:"fiducialEndAngle" yaml:"fiducialEndAngle"`
	FiducialThickness  float64 `json:"fiducialThickness" yaml:"fiducialThickness"`
	FiducialX          float64 `json:"fiducialX" yaml:"fiducialX"`
	FiducialY          float64 `json:"fiducialY" yaml:"fiducialY"`
}
