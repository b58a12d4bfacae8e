package engine

import (
	"github.com/prism-engine/prism/engine/renderer/metadata"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width.
	StartWidth uint32
	// Window starting height.
	StartHeight uint32
	// The application name used in windowing.
	Name string
	// Log level name ("debug", "info", ...). Empty keeps the level
	// derived from the environment.
	LogLevel string
	// Renderer backend settings.
	Backend *metadata.RendererBackendConfig
	// Path of the config file to watch for live reloads. Empty
	// disables watching.
	ConfigPath string
}
