package render

import (
	"image/color"
	"testing"

	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func solveValues(t *testing.T, v controls.Values) airway.Geometry {
	t.Helper()
	return airway.Solve(v.Parameters())
}

func shapeNames(sc Scene) []string {
	names := make([]string, len(sc.Shapes))
	for i, s := range sc.Shapes {
		names[i] = s.Name
	}
	return names
}

func TestSceneDrawingOrder(t *testing.T) {
	g := solveValues(t, controls.Defaults())
	require.NotNil(t, g.TubeSegment3)

	sc := NewScene(g, Options{})
	names := shapeNames(sc)

	want := []string{
		"profileLower", "profileUpper",
		"upperIncisor", "lowerIncisor",
		"blade", "bladeTip", "handle", "glottis",
		"tubeSegment2", "tubeSegment3", "intersection",
	}
	if g.TubeSegment1 != nil {
		want = append(want, "tubeSegment1")
	}
	want = append(want, "fiducial")
	assert.Equal(t, want, names)
	assert.Empty(t, sc.Labels)
}

func TestSceneWithoutContact(t *testing.T) {
	v := controls.Defaults()
	v.TubeAngle = 10
	g := solveValues(t, v)
	require.Nil(t, g.TubeSegment3)

	sc := NewScene(g, Options{})
	_, ok := sc.Shape("tubeSegment3")
	assert.False(t, ok)
	_, ok = sc.Shape("intersection")
	assert.False(t, ok)
	_, ok = sc.Shape("tubeSegment2")
	assert.True(t, ok)
}

func TestSceneLabels(t *testing.T) {
	g := solveValues(t, controls.Defaults())
	sc := NewScene(g, Options{ShowLabels: true})

	var texts []string
	for _, l := range sc.Labels {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{"Lower Incisor", "Upper Incisor", "Blade", "Glottis", "Tube"}, texts)
	assert.Equal(t, g.TubeTip, sc.Labels[4].At)
	assert.Equal(t, AlignBelow, sc.Labels[4].Align)
}

func TestSceneHelpArrows(t *testing.T) {
	g := solveValues(t, controls.Defaults())
	sc := NewScene(g, Options{ShowHelp: true})

	assert.Len(t, sc.Labels, 5)
	arrow, ok := sc.Shape("help:Rotate tube")
	require.True(t, ok)
	require.Len(t, arrow.Points, 10)

	// the horizontal arrow tips sit 20mm either side of its anchor
	anchor := r2.Add(g.UpperIncisor, r2.Vec{X: 70, Y: -70})
	assert.Equal(t, r2.Add(anchor, r2.Vec{X: 20}), arrow.Points[3])
	assert.Equal(t, r2.Add(anchor, r2.Vec{X: -20}), arrow.Points[8])

	vertical, ok := sc.Shape("help:Jaw thrust")
	require.True(t, ok)
	jaw := r2.Add(g.UpperIncisor, r2.Vec{X: -20, Y: 75})
	assert.Equal(t, r2.Add(jaw, r2.Vec{Y: 20}), vertical.Points[3])
}

func TestSceneDentalDamage(t *testing.T) {
	v := controls.Defaults()
	v.LowerIncisorX = -15
	g := solveValues(t, v)
	require.True(t, g.DentalDamage())

	sc := NewScene(g, Options{ShowLabels: true})
	tooth, ok := sc.Shape("upperIncisor")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, tooth.Stroke.Stops[0].Color)
	assert.Equal(t, "Damaged Upper Incisor", sc.Labels[1].Text)

	healthy := NewScene(solveValues(t, controls.Defaults()), Options{})
	tooth, _ = healthy.Shape("upperIncisor")
	assert.Equal(t, colorGray, tooth.Stroke.Stops[0].Color)
}

func TestSceneSkipsNonFiniteShapes(t *testing.T) {
	v := controls.Defaults()
	v.BladeLength = 160
	v.BladeRadius = 60
	g := solveValues(t, v)
	require.False(t, g.Finite())

	sc := NewScene(g, Options{ShowLabels: true, ShowHelp: true})
	for _, s := range sc.Shapes {
		assert.True(t, s.finite(), s.Name)
	}
	for _, l := range sc.Labels {
		assert.True(t, geometry.IsFinite(l.At), l.Text)
	}
	_, ok := sc.Shape("blade")
	assert.False(t, ok)
	// the teeth do not depend on the blade and are still drawn
	_, ok = sc.Shape("upperIncisor")
	assert.True(t, ok)
}

func TestProfileCurves(t *testing.T) {
	g := solveValues(t, controls.Defaults())
	curves := profileCurves(g)
	require.Len(t, curves, 2)
	assert.Len(t, curves[0].points, 13)
	assert.Len(t, curves[1].points, 14)
	// the jaw line passes 20mm above the blade tip
	assert.Equal(t, r2.Add(g.BladeTip, r2.Vec{Y: -20}), curves[0].points[9])
}

func TestQuadSegments(t *testing.T) {
	start, controls, ends := quadSegments([]r2.Vec{{X: 0}, {X: 2}, {X: 4, Y: 2}, {X: 6}})
	assert.Equal(t, r2.Vec{}, start)
	assert.Equal(t, []r2.Vec{{X: 2}, {X: 4, Y: 2}}, controls)
	assert.Equal(t, []r2.Vec{{X: 3, Y: 1}, {X: 5, Y: 1}}, ends)
}
