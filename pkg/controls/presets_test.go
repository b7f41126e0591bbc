package controls

import (
	"strings"
	"testing"

	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresetsAreSolvable(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			v, err := Preset(name)
			require.NoError(t, err)
			assert.Equal(t, v, v.Clamp(), "preset stays within slider ranges")

			g, err := airway.SolveChecked(v.Parameters())
			require.NoError(t, err)
			assert.True(t, g.Finite())
		})
	}
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"normal", "difficult", "pediatric", "optimal"}, PresetNames())
}

func TestNormalPresetIsDefaults(t *testing.T) {
	v, err := Preset("normal")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), v)
}

func TestPresetMergesOverDefaults(t *testing.T) {
	v, err := Preset("pediatric")
	require.NoError(t, err)

	assert.Equal(t, 100.0, v.TubeRadius)
	assert.Equal(t, 6.0, v.TubeOD)
	// untouched fields keep their defaults
	assert.Equal(t, Defaults().TubeAngle, v.TubeAngle)
	assert.Equal(t, Defaults().FiducialX, v.FiducialX)
}

func TestUnknownPreset(t *testing.T) {
	_, err := Preset("giraffe")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestMergeAndDiff(t *testing.T) {
	base := Defaults()
	changed := base
	changed.TubeAngle = 40
	changed.BladeRadius = 100

	o := changed.Diff(base)
	require.NotNil(t, o.TubeAngle)
	require.NotNil(t, o.BladeRadius)
	assert.Nil(t, o.TubeRadius)

	assert.Equal(t, changed, base.Merge(o))
	assert.Equal(t, base, base.Merge(Overrides{}))
}

func TestLoadPresets(t *testing.T) {
	doc := `
large-adult:
  tubeRadius: 170
  tubeLength: 320
difficult:
  tubeAngle: 36
`
	book, err := LoadPresets(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"normal", "difficult", "pediatric", "optimal", "large-adult"}, book.Names())

	v, err := book.Values("large-adult")
	require.NoError(t, err)
	assert.Equal(t, 170.0, v.TubeRadius)
	assert.Equal(t, 320.0, v.TubeLength)
	assert.Equal(t, Defaults().TubeAngle, v.TubeAngle)

	d, err := book.Values("difficult")
	require.NoError(t, err)
	assert.Equal(t, 36.0, d.TubeAngle)
	assert.Equal(t, Defaults().LowerIncisorX, d.LowerIncisorX, "file entry replaces the built-in")
}

func TestLoadPresetsEmpty(t *testing.T) {
	book, err := LoadPresets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, PresetNames(), book.Names())
}

func TestLoadPresetsInvalid(t *testing.T) {
	_, err := LoadPresets(strings.NewReader("difficult: [1, 2"))
	assert.Error(t, err)
}
