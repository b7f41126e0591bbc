// Package viewer provides a fyne widget that displays a rendered airway and
// reports pointer input in scene pixel coordinates.
package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/gonum/spatial/r2"
)

// Source renders the scene at the requested pixel size
type Source func(size image.Point) (*image.RGBA, error)

// AirwayView shows a fixed-size scene image scaled to fit the widget
type AirwayView struct {
	widget.BaseWidget

	source    Source
	sceneSize image.Point
	image     *canvas.Image
	dragging  bool

	onDragStart func(p r2.Vec)
	onDrag      func(p r2.Vec)
	onDragEnd   func()
	onScroll    func(delta float64, at r2.Vec)
	onKey       func(name string)
	onError     func(err error)
}

// NewAirwayView creates a view rendering sceneSize pixel frames from source
func NewAirwayView(source Source, sceneSize image.Point) *AirwayView {
	v := &AirwayView{
		source:    source,
		sceneSize: sceneSize,
		image:     canvas.NewImageFromImage(blank(sceneSize)),
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.ExtendBaseWidget(v)
	return v
}

// SetOnDrag sets the callbacks for a drag: start receives the press
// position, move every following position and end the release
func (v *AirwayView) SetOnDrag(start, move func(p r2.Vec), end func()) {
	v.onDragStart = start
	v.onDrag = move
	v.onDragEnd = end
}

// SetOnScroll sets the callback for scroll wheel zooming
func (v *AirwayView) SetOnScroll(callback func(delta float64, at r2.Vec)) {
	v.onScroll = callback
}

// SetOnKey sets the callback for keys typed while the view has focus. Names
// follow the browser convention: "ArrowUp", "r", "1".
func (v *AirwayView) SetOnKey(callback func(name string)) {
	v.onKey = callback
}

// SetOnError sets the callback for render failures
func (v *AirwayView) SetOnError(callback func(err error)) {
	v.onError = callback
}

// SceneSize returns the pixel size frames are rendered at
func (v *AirwayView) SceneSize() image.Point {
	return v.sceneSize
}

// Render regenerates the frame from the source
func (v *AirwayView) Render() {
	img, err := v.source(v.sceneSize)
	if err != nil {
		if v.onError != nil {
			v.onError(err)
		}
		return
	}
	v.image.Image = img
	v.image.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *AirwayView) CreateRenderer() fyne.WidgetRenderer {
	v.Render()
	return &airwayViewRenderer{view: v}
}

// ToScene converts a widget position to scene pixels
func (v *AirwayView) ToScene(pos fyne.Position) r2.Vec {
	return toScene(v.Size(), v.sceneSize, pos)
}

// Dragged handles mouse drag events. The first event of a drag reports the
// press position as the drag start.
func (v *AirwayView) Dragged(event *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = true
		press := event.Position.Subtract(fyne.NewPos(event.Dragged.DX, event.Dragged.DY))
		if v.onDragStart != nil {
			v.onDragStart(v.ToScene(press))
		}
	}
	if v.onDrag != nil {
		v.onDrag(v.ToScene(event.Position))
	}
}

// DragEnd handles the end of a drag event
func (v *AirwayView) DragEnd() {
	v.dragging = false
	if v.onDragEnd != nil {
		v.onDragEnd()
	}
}

// Tapped takes keyboard focus so shortcuts reach the view
func (v *AirwayView) Tapped(_ *fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil {
		c.Focus(v)
	}
}

// Scrolled handles scroll events for zooming
func (v *AirwayView) Scrolled(event *fyne.ScrollEvent) {
	if v.onScroll != nil {
		v.onScroll(scrollZoom(event.Scrolled.DY), v.ToScene(event.Position))
	}
}

// FocusGained is part of fyne.Focusable
func (v *AirwayView) FocusGained() {}

// FocusLost is part of fyne.Focusable
func (v *AirwayView) FocusLost() {}

// TypedRune forwards printable keys
func (v *AirwayView) TypedRune(r rune) {
	if v.onKey != nil {
		v.onKey(string(r))
	}
}

// TypedKey forwards the arrow keys
func (v *AirwayView) TypedKey(event *fyne.KeyEvent) {
	name, ok := arrowKeys[event.Name]
	if ok && v.onKey != nil {
		v.onKey(name)
	}
}

// scrollZoom converts a scroll distance to a zoom fraction, ten percent per
// wheel notch, limited so one event never more than halves the scale
func scrollZoom(dy float32) float64 {
	delta := float64(dy) * 0.01
	return math.Max(-0.5, math.Min(0.5, delta))
}

var arrowKeys = map[fyne.KeyName]string{
	fyne.KeyUp:    "ArrowUp",
	fyne.KeyDown:  "ArrowDown",
	fyne.KeyLeft:  "ArrowLeft",
	fyne.KeyRight: "ArrowRight",
}

// toScene inverts the contain fit of a scene of sceneSize pixels centred in
// a widget of the given size
func toScene(size fyne.Size, sceneSize image.Point, pos fyne.Position) r2.Vec {
	if size.Width <= 0 || size.Height <= 0 || sceneSize.X <= 0 || sceneSize.Y <= 0 {
		return r2.Vec{X: float64(pos.X), Y: float64(pos.Y)}
	}
	sx := float64(size.Width) / float64(sceneSize.X)
	sy := float64(size.Height) / float64(sceneSize.Y)
	scale := sx
	if sy < scale {
		scale = sy
	}
	offX := (float64(size.Width) - float64(sceneSize.X)*scale) / 2
	offY := (float64(size.Height) - float64(sceneSize.Y)*scale) / 2
	return r2.Vec{
		X: (float64(pos.X) - offX) / scale,
		Y: (float64(pos.Y) - offY) / scale,
	}
}

func blank(size image.Point) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, max(size.X, 1), max(size.Y, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// airwayViewRenderer implements fyne.WidgetRenderer
type airwayViewRenderer struct {
	view *AirwayView
}

func (r *airwayViewRenderer) Layout(size fyne.Size) {
	r.view.image.Resize(size)
	r.view.image.Move(fyne.NewPos(0, 0))
}

func (r *airwayViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *airwayViewRenderer) Refresh() {
	r.view.Render()
}

func (r *airwayViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *airwayViewRenderer) Destroy() {}
