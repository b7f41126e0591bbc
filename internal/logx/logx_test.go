package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		name      string
		vv, v, q  bool
		wantLevel slog.Level
	}{
		{"none", false, false, false, slog.LevelWarn},
		{"verbose", false, true, false, slog.LevelInfo},
		{"very verbose", true, false, false, slog.LevelDebug},
		{"quiet", false, false, true, slog.LevelError},
		{"vv wins over q", true, false, true, slog.LevelDebug},
		{"v wins over q", false, true, true, slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, LevelFromFlags(tt.vv, tt.v, tt.q))
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown", "field", "tubeAngle")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "field=tubeAngle")
}
