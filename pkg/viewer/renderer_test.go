package viewer

import (
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func whiteSource(size image.Point) (*image.RGBA, error) {
	return image.NewRGBA(image.Rectangle{Max: size}), nil
}

func TestToSceneContainFit(t *testing.T) {
	scene := image.Pt(1600, 1200)

	// Exact fit at half scale
	p := toScene(fyne.NewSize(800, 600), scene, fyne.NewPos(400, 300))
	assert.InDelta(t, 800, p.X, 1e-9)
	assert.InDelta(t, 600, p.Y, 1e-9)

	// Wider widget letterboxes horizontally
	p = toScene(fyne.NewSize(1000, 600), scene, fyne.NewPos(100, 0))
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Taller widget letterboxes vertically
	p = toScene(fyne.NewSize(800, 800), scene, fyne.NewPos(0, 100))
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestToSceneZeroSize(t *testing.T) {
	p := toScene(fyne.NewSize(0, 0), image.Pt(1600, 1200), fyne.NewPos(12, 34))
	assert.Equal(t, r2.Vec{X: 12, Y: 34}, p)
}

func TestDragReportsPressPosition(t *testing.T) {
	test.NewTempApp(t)

	v := NewAirwayView(whiteSource, image.Pt(800, 600))
	v.Resize(fyne.NewSize(800, 600))

	var starts, moves []r2.Vec
	ended := 0
	v.SetOnDrag(
		func(p r2.Vec) { starts = append(starts, p) },
		func(p r2.Vec) { moves = append(moves, p) },
		func() { ended++ },
	)

	v.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(110, 205)},
		Dragged:    fyne.NewDelta(10, 5),
	})
	v.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(120, 210)},
		Dragged:    fyne.NewDelta(10, 5),
	})
	v.DragEnd()

	require.Len(t, starts, 1)
	assert.InDelta(t, 100, starts[0].X, 1e-4)
	assert.InDelta(t, 200, starts[0].Y, 1e-4)
	require.Len(t, moves, 2)
	assert.InDelta(t, 120, moves[1].X, 1e-4)
	assert.Equal(t, 1, ended)

	// A new drag starts again
	v.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)},
	})
	assert.Len(t, starts, 2)
}

func TestKeysForwarded(t *testing.T) {
	test.NewTempApp(t)

	v := NewAirwayView(whiteSource, image.Pt(100, 100))
	var keys []string
	v.SetOnKey(func(name string) { keys = append(keys, name) })

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	v.TypedRune('r')
	v.TypedRune('2')

	assert.Equal(t, []string{"ArrowUp", "ArrowLeft", "r", "2"}, keys)
}

func TestRenderErrorReported(t *testing.T) {
	test.NewTempApp(t)

	boom := errors.New("boom")
	fail := false
	v := NewAirwayView(func(size image.Point) (*image.RGBA, error) {
		if fail {
			return nil, boom
		}
		return whiteSource(size)
	}, image.Pt(100, 100))

	var got error
	v.SetOnError(func(err error) { got = err })
	fail = true
	v.Render()

	assert.ErrorIs(t, got, boom)
	assert.NotNil(t, v.image.Image)
}

func TestRenderUsesSceneSize(t *testing.T) {
	test.NewTempApp(t)

	var requested image.Point
	v := NewAirwayView(func(size image.Point) (*image.RGBA, error) {
		requested = size
		return whiteSource(size)
	}, image.Pt(320, 240))
	v.Render()

	assert.Equal(t, image.Pt(320, 240), requested)
	assert.Equal(t, image.Pt(320, 240), v.SceneSize())
}

func TestScrollZoomLimited(t *testing.T) {
	assert.InDelta(t, 0.1, scrollZoom(10), 1e-9)
	assert.InDelta(t, -0.1, scrollZoom(-10), 1e-9)
	assert.Equal(t, 0.5, scrollZoom(1000))
	assert.Equal(t, -0.5, scrollZoom(-1000))
}
