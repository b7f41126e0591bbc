package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/philipparndt/gointubate/internal/logx"
	"github.com/philipparndt/gointubate/pkg/config"
	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/store"
	"github.com/philipparndt/gointubate/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv isolates the settings file and store directory of a test
type testEnv struct {
	dir        string
	configPath string
}

func newTestEnv(t *testing.T, extra string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	doc := fmt.Sprintf("[store]\ndir = %q\n\n[render]\nwidth = 400\nheight = 300\nsupersample = 1\n%s", filepath.Join(dir, "store"), extra)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return &testEnv{dir: dir, configPath: path}
}

func (e *testEnv) run(args ...string) (string, error) {
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSolveReport(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("solve")
	require.NoError(t, err)
	assert.Contains(t, out, "Preset           normal")
	assert.Contains(t, out, "Upper incisor    (300.00, 200.00) mm")
	assert.Contains(t, out, "Lower incisor    (275.00, 200.00) mm")
	assert.Contains(t, out, "Status")
}

func TestSolveJSON(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("solve", "--json", "--set", "tubeAngle=32")
	require.NoError(t, err)

	var report solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 32.0, report.Values.TubeAngle)
	require.NotNil(t, report.Geometry)
	assert.Equal(t, 300.0, report.Geometry.UpperIncisor.X)
	assert.Empty(t, report.Error)
}

func TestSolveUnknownSlider(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("solve", "--set", "bogus=1")
	assert.ErrorIs(t, err, controls.ErrUnknownSlider)
}

func TestSolveUnknownPreset(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("solve", "--preset", "nope")
	assert.ErrorIs(t, err, controls.ErrPresetNotFound)
}

func TestSolveCheckFailsOutOfDomain(t *testing.T) {
	env := newTestEnv(t, "")
	// a 160 mm blade cannot lie on a 60 mm radius arc
	args := []string{"solve", "--set", "bladeLength=160", "--set", "bladeRadius=60"}

	out, err := env.run(append(args, "--json")...)
	require.NoError(t, err)
	var report solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.Error)

	_, err = env.run(append(args, "--check")...)
	assert.ErrorIs(t, err, errCheckFailed)
}

func TestRenderPNG(t *testing.T) {
	env := newTestEnv(t, "")
	path := filepath.Join(env.dir, "airway.png")

	_, err := env.run("render", "-o", path, "--preset", "difficult")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 300, cfg.Height)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRenderSVGToStdout(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("render", "-o", "-", "--format", "svg", "--width", "200")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `width="200" height="300"`)
	assert.NotContains(t, out, "NaN")
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("render", "-o", filepath.Join(env.dir, "airway.gif"))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestRenderRequiresOutput(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("render")
	assert.Error(t, err)
}

func TestPresetsList(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "normal       defaults", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "difficult"))
	assert.Contains(t, lines[1], "tubeAngle=34.0")
	assert.Contains(t, lines[1], "lowerIncisorX=-20")
}

func TestPresetsFromSettingsFile(t *testing.T) {
	env := newTestEnv(t, "\n[presets]\nfile = \"presets.yaml\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "presets.yaml"), []byte("large-adult:\n  tubeRadius: 170\n"), 0o644))

	out, err := env.run("presets")
	require.NoError(t, err)
	assert.Contains(t, out, "large-adult  tubeRadius=170")

	out, err = env.run("solve", "--json", "--preset", "large-adult")
	require.NoError(t, err)
	var report solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 170.0, report.Values.TubeRadius)
}

func TestSaveAndLoad(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("save", "mine", "--preset", "difficult", "--labels=false")
	require.NoError(t, err)
	assert.Equal(t, "Configuration saved successfully!\n", out)

	out, err = env.run("load", "mine")
	require.NoError(t, err)
	assert.Contains(t, out, "tubeAngle            34.0 °")
	assert.Contains(t, out, "showLabels           false")

	out, err = env.run("load", "mine", "--json")
	require.NoError(t, err)
	snap, err := store.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 34.0, snap.TubeAngle)
	assert.False(t, snap.ShowLabels)
	assert.True(t, snap.ShowHelp)
}

func TestSaveUsesDefaultName(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("save")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.dir, "store", store.DefaultName+".json"))
}

func TestLoadMissing(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("load", "absent")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRenderFromSaved(t *testing.T) {
	env := newTestEnv(t, "")
	_, err := env.run("save", "mine", "--help-arrows=false")
	require.NoError(t, err)

	out, err := env.run("render", "-o", "-", "--format", "svg", "--from", "mine")
	require.NoError(t, err)
	assert.NotContains(t, out, "Rotate tube")
	assert.Contains(t, out, "Glottis")
}

func TestConfigPrintsEffectiveSettings(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("config")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Render.Width)
	assert.Equal(t, filepath.Join(env.dir, "store"), cfg.Store.Dir)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "gointubate dev"))
}

func TestWatchRendersOnChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "snapshot.json")
	output := filepath.Join(dir, "airway.png")

	fs, err := store.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.Save("snapshot", store.DefaultSnapshot()))

	cfg := config.Default()
	cfg.Render.Width, cfg.Render.Height, cfg.Render.Supersample = 200, 150, 1
	c := &cli{cfg: cfg, log: logx.Discard(), presets: controls.NewPresetBook()}
	out := &renderFlags{output: output, labels: true, helpArrows: true}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchAndRender(ctx, c, out, &bytes.Buffer{}, input, 10*time.Millisecond)
	}()

	assert.Eventually(t, func() bool {
		if _, err := os.Stat(output); err == nil {
			return true
		}
		_ = fs.Save("snapshot", store.DefaultSnapshot())
		return false
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestVersionJSON(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("version", "--json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info.Version)
}
