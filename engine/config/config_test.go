package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-engine/prism/engine/renderer/metadata"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prism.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[application]
name = "Demo"
width = 1280
height = 720

[log]
level = "debug"

[renderer]
power_preference = "low-power"
force_fallback_adapter = true
clear_color = [0.1, 0.2, 0.3, 1.0]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.Application.Name)
	assert.Equal(t, uint32(1280), cfg.Application.Width)
	assert.Equal(t, uint32(720), cfg.Application.Height)
	// Untouched tables keep their defaults.
	assert.Equal(t, uint32(100), cfg.Application.PosX)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "low-power", cfg.Renderer.PowerPreference)
	assert.True(t, cfg.Renderer.ForceFallbackAdapter)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `[application`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Application.Width = 0 }, false},
		{"zero height", func(c *Config) { c.Application.Height = 0 }, false},
		{"bad power preference", func(c *Config) { c.Renderer.PowerPreference = "turbo" }, false},
		{"empty power preference", func(c *Config) { c.Renderer.PowerPreference = "" }, true},
		{"clear color wrong length", func(c *Config) { c.Renderer.ClearColor = []float64{1, 0} }, false},
		{"clear color out of range", func(c *Config) { c.Renderer.ClearColor = []float64{0, 0, 2, 1} }, false},
		{"clear color valid", func(c *Config) { c.Renderer.ClearColor = []float64{0, 0.5, 1, 1} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBackendConfig(t *testing.T) {
	cfg := Default()
	bc := cfg.BackendConfig()
	assert.Equal(t, "Prism", bc.ApplicationName)
	assert.Equal(t, metadata.PowerPreferenceHighPerformance, bc.PowerPreference)
	assert.False(t, bc.ForceFallbackAdapter)
	assert.Equal(t, metadata.ColorBlack, bc.InitialClearColor)

	cfg.Renderer.PowerPreference = "low-power"
	cfg.Renderer.ForceFallbackAdapter = true
	cfg.Renderer.ClearColor = []float64{0.1, 0.2, 0.3, 1}
	bc = cfg.BackendConfig()
	assert.Equal(t, metadata.PowerPreferenceLowPower, bc.PowerPreference)
	assert.True(t, bc.ForceFallbackAdapter)
	assert.Equal(t, metadata.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}, bc.InitialClearColor)
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prism.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[application]
width = 800
height = 600
`), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`[application]
width = 1024
height = 768
`), 0o644))

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, uint32(1024), cfg.Application.Width)
		assert.Equal(t, uint32(768), cfg.Application.Height)
	case <-time.After(3 * time.Second):
		t.Fatal("no config update delivered")
	}
}

func TestWatcherSkipsInvalidWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prism.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	// A truncated write must not surface as an update.
	require.NoError(t, os.WriteFile(path, []byte(`[application`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`[log]
level = "warn"
`), 0o644))

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, "warn", cfg.Log.Level)
	case <-time.After(3 * time.Second):
		t.Fatal("no config update delivered")
	}
}
