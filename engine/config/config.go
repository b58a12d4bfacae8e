package config

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/prism-engine/prism/engine/renderer/metadata"
)

// Config is the full on-disk configuration. Every field has a default,
// so a missing file or an empty table is valid.
type Config struct {
	Application ApplicationConfig `toml:"application"`
	Log         LogConfig         `toml:"log"`
	Renderer    RendererConfig    `toml:"renderer"`
}

type ApplicationConfig struct {
	Name   string `toml:"name"`
	PosX   uint32 `toml:"pos_x"`
	PosY   uint32 `toml:"pos_y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type RendererConfig struct {
	// PowerPreference is "high-performance" or "low-power".
	PowerPreference      string    `toml:"power_preference"`
	ForceFallbackAdapter bool      `toml:"force_fallback_adapter"`
	ClearColor           []float64 `toml:"clear_color"`
}

func Default() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:   "Prism",
			PosX:   100,
			PosY:   100,
			Width:  800,
			Height: 600,
		},
		Log: LogConfig{
			Level: "info",
		},
		Renderer: RendererConfig{
			PowerPreference: "high-performance",
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing
// file is not an error; a malformed or invalid one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Application.Width == 0 || c.Application.Height == 0 {
		return fmt.Errorf("window size must be positive, got %dx%d",
			c.Application.Width, c.Application.Height)
	}
	switch c.Renderer.PowerPreference {
	case "", "high-performance", "low-power":
	default:
		return fmt.Errorf("unknown power_preference %q", c.Renderer.PowerPreference)
	}
	if n := len(c.Renderer.ClearColor); n != 0 && n != 4 {
		return fmt.Errorf("clear_color needs exactly 4 channels, got %d", n)
	}
	for _, ch := range c.Renderer.ClearColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("clear_color channels must be in [0, 1], got %v", ch)
		}
	}
	return nil
}

// BackendConfig converts the renderer table into what the backend
// consumes.
func (c *Config) BackendConfig() *metadata.RendererBackendConfig {
	bc := &metadata.RendererBackendConfig{
		ApplicationName:      c.Application.Name,
		ForceFallbackAdapter: c.Renderer.ForceFallbackAdapter,
		InitialClearColor:    metadata.ColorBlack,
	}
	if c.Renderer.PowerPreference == "low-power" {
		bc.PowerPreference = metadata.PowerPreferenceLowPower
	}
	if len(c.Renderer.ClearColor) == 4 {
		bc.InitialClearColor = metadata.Color{
			R: c.Renderer.ClearColor[0],
			G: c.Renderer.ClearColor[1],
			B: c.Renderer.ClearColor[2],
			A: c.Renderer.ClearColor[3],
		}
	}
	return bc
}
