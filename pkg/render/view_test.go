package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestDefaultViewProjectsUpperIncisor(t *testing.T) {
	v := DefaultView()
	p := v.Project(r2.Vec{X: 300, Y: 200})
	assert.Equal(t, r2.Vec{X: 1000, Y: 500}, p)
	assert.Equal(t, 50.0, v.Length(10))
}

func TestUnprojectInvertsProject(t *testing.T) {
	v := View{Factor: 3.5, XOffset: -80, YOffset: -120}
	for _, p := range []r2.Vec{{X: 0, Y: 0}, {X: 300, Y: 200}, {X: -12.5, Y: 417}} {
		back := v.Unproject(v.Project(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestScaled(t *testing.T) {
	v := DefaultView().Scaled(2)
	assert.Equal(t, r2.Vec{X: 2000, Y: 1000}, v.Project(r2.Vec{X: 300, Y: 200}))
}

func TestZoomKeepsAnchorFixed(t *testing.T) {
	v := DefaultView()
	anchor := r2.Vec{X: 640, Y: 360}
	model := v.Unproject(anchor)

	zoomed := v.Zoom(0.25, anchor)
	assert.InDelta(t, 6.25, zoomed.Factor, 1e-12)
	p := zoomed.Project(model)
	assert.InDelta(t, anchor.X, p.X, 1e-9)
	assert.InDelta(t, anchor.Y, p.Y, 1e-9)
}

func TestZoomIsBounded(t *testing.T) {
	v := DefaultView().Zoom(-0.99, r2.Vec{})
	assert.Equal(t, 0.5, v.Factor)
	v = DefaultView().Zoom(100, r2.Vec{})
	assert.Equal(t, 50.0, v.Factor)
}

func TestPan(t *testing.T) {
	v := DefaultView().Pan(50, -25)
	assert.Equal(t, r2.Vec{X: 1050, Y: 475}, v.Project(r2.Vec{X: 300, Y: 200}))
}
