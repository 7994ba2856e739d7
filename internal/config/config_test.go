package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDemo_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadDemo(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDemo(), cfg)
}

func TestLoadDemo_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := []byte(`
log_level: debug
p1: {x: 10, y: 20}
v1: {x: -5, y: 12}
divisor: 4
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadDemo(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Coord{X: 10, Y: 20}, cfg.P1)
	assert.Equal(t, Coord{X: -5, Y: 12}, cfg.V1)
	assert.Equal(t, 4.0, cfg.Divisor)
	// Untouched keys keep their defaults.
	assert.Equal(t, Coord{X: 300, Y: 400}, cfg.P2)
	assert.Equal(t, 2.0, cfg.Scale)
}

func TestLoadDemo_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("p1: ["), 0o644))

	_, err := LoadDemo(path)
	assert.Error(t, err)
}

func TestDemo_SlogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", "debug", slog.LevelDebug, false},
		{"info", "info", slog.LevelInfo, false},
		{"warn", "warn", slog.LevelWarn, false},
		{"error", "error", slog.LevelError, false},
		{"empty defaults to info", "", slog.LevelInfo, false},
		{"unknown", "loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Demo{LogLevel: tt.level}.SlogLevel()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
