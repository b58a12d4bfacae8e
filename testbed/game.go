package testbed

import (
	"github.com/prism-engine/prism/engine"
	"github.com/prism-engine/prism/engine/config"
	"github.com/prism-engine/prism/engine/core"
)

// DemoGame is the cursor-clear demo: the engine clears the window to a
// color that follows the pointer, and the hooks below only observe the
// lifecycle.
type DemoGame struct {
	*engine.Game
}

type demoState struct {
	width  uint32
	height uint32
}

func NewDemoGame(cfg *config.Config, configPath string) *DemoGame {
	state := &demoState{}

	dg := &DemoGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   cfg.Application.PosX,
				StartPosY:   cfg.Application.PosY,
				StartWidth:  cfg.Application.Width,
				StartHeight: cfg.Application.Height,
				Name:        cfg.Application.Name,
				LogLevel:    cfg.Log.Level,
				Backend:     cfg.BackendConfig(),
				ConfigPath:  configPath,
			},
			State: state,
		},
	}

	dg.FnInitialize = func() error {
		core.LogInfo("demo game initialized")
		return nil
	}

	// Per-frame logic placeholder; the demo has none.
	dg.FnUpdate = func(deltaTime float64) error {
		return nil
	}

	dg.FnOnResize = func(width, height uint32) error {
		state.width = width
		state.height = height
		core.LogDebug("demo game sees %dx%d", width, height)
		return nil
	}

	return dg
}
