package app

import (
	"errors"
	"testing"

	"github.com/philipparndt/gointubate/internal/logx"
	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *store.MemoryStore) {
	t.Helper()
	m := store.NewMemoryStore()
	return NewSession(Config{Store: m, Logger: logx.Discard()}), m
}

func TestNewSessionStartsAtDefaults(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, controls.Defaults(), s.Values)
	assert.True(t, s.Options.ShowLabels)
	assert.True(t, s.Options.ShowHelp)
	assert.NoError(t, s.Err())
	assert.True(t, s.Geometry().Finite())
	assert.Equal(t, airway.Solve(controls.Defaults().Parameters()), s.Geometry())
}

func TestSetValueRecomputes(t *testing.T) {
	s, _ := newTestSession(t)
	before := s.Geometry()

	require.NoError(t, s.SetValue(controls.TubeAngle, 30))
	assert.Equal(t, 30.0, s.Values.TubeAngle)
	assert.NotEqual(t, before.TubeTip, s.Geometry().TubeTip)

	require.NoError(t, s.SetValue(controls.TubeAngle, 99))
	assert.Equal(t, 60.0, s.Values.TubeAngle, "clamped to the slider range")

	assert.ErrorIs(t, s.SetValue("neck", 1), controls.ErrUnknownSlider)
}

func TestRecomputeKeepsGeometryOnDomainError(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.SetValue(controls.GlotticPlaneX, 220))
	require.NoError(t, s.SetValue(controls.TubeAngle, 0))
	require.NoError(t, s.SetValue(controls.BladeLength, 160))
	require.NoError(t, s.SetValue(controls.BladeRadius, 60))

	err := s.Err()
	require.Error(t, err)
	var domainErr *airway.DomainError
	assert.True(t, errors.As(err, &domainErr))
	// upper incisor is a fixed anchor and is always solved
	assert.Equal(t, 300.0, s.Geometry().UpperIncisor.X)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetValue(controls.BladeInsertion, 80))
	s.SetShowHelp(false)
	want := s.Snapshot()
	wantGeometry := s.Geometry()

	n := s.Save()
	assert.Equal(t, NoticeSuccess, n.Kind)
	assert.Equal(t, "Configuration saved successfully!", n.Message)

	s.Reset()
	assert.Equal(t, controls.Defaults(), s.Values)

	n = s.Load()
	assert.False(t, n.IsError())
	assert.Equal(t, want, s.Snapshot())
	assert.Equal(t, wantGeometry, s.Geometry())
}

func TestLoadWithoutSaveLeavesStateUnchanged(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetValue(controls.TubeRadius, 170))
	before := s.Snapshot()

	n := s.Load()
	assert.Equal(t, NoticeError, n.Kind)
	assert.Equal(t, "No saved configuration found.", n.Message)
	assert.Equal(t, before, s.Snapshot())
}

func TestLoadPreset(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetShowLabels(false)

	n := s.LoadPreset("difficult")
	assert.Equal(t, NoticeInfo, n.Kind)
	assert.Equal(t, "Loaded preset: Difficult", n.Message)
	assert.Equal(t, 34.0, s.Values.TubeAngle)
	assert.False(t, s.Options.ShowLabels, "toggles are kept")

	n = s.LoadPreset("sideways")
	assert.Equal(t, NoticeError, n.Kind)
	assert.Equal(t, "Preset not found!", n.Message)
	assert.Equal(t, 34.0, s.Values.TubeAngle)
}

func TestReset(t *testing.T) {
	s, _ := newTestSession(t)
	s.LoadPreset("pediatric")
	s.SetShowLabels(false)

	s.Reset()
	assert.Equal(t, store.DefaultSnapshot(), s.Snapshot())
}

func TestNoticeKindString(t *testing.T) {
	assert.Equal(t, "success", NoticeSuccess.String())
	assert.Equal(t, "info", NoticeInfo.String())
	assert.Equal(t, "error", NoticeError.String())
}
