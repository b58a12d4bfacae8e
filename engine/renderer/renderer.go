package renderer

import (
	"fmt"

	"github.com/prism-engine/prism/engine/core"
	"github.com/prism-engine/prism/engine/platform"
	"github.com/prism-engine/prism/engine/renderer/metadata"
	"github.com/prism-engine/prism/engine/renderer/webgpu"
)

// Renderer is the front-end the engine talks to. It tracks the surface
// dimensions and the clear color and delegates GPU work to the backend.
type Renderer struct {
	backend RendererBackend

	width      uint32
	height     uint32
	clearColor metadata.Color
}

func New(p *platform.Platform, config *metadata.RendererBackendConfig) *Renderer {
	return newWithBackend(webgpu.New(p, config), config)
}

func newWithBackend(backend RendererBackend, config *metadata.RendererBackendConfig) *Renderer {
	clear := metadata.ColorBlack
	if config != nil {
		clear = config.InitialClearColor
	}
	return &Renderer{
		backend:    backend,
		clearColor: clear,
	}
}

// Initialize builds the GPU context for a window of the given size.
// Fails before any GPU allocation when either dimension is zero.
func (r *Renderer) Initialize(appName string, width, height uint32) error {
	if err := r.backend.Initialize(appName, width, height); err != nil {
		return fmt.Errorf("renderer backend: %w", err)
	}
	r.width = width
	r.height = height
	return nil
}

// OnResize reconfigures the surface for a new window size. Zero-sized
// and unchanged targets are no-ops.
func (r *Renderer) OnResize(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	if width == r.width && height == r.height {
		return nil
	}
	r.width = width
	r.height = height
	return r.backend.Resized(width, height)
}

// Reconfigure re-applies the current size to the surface. Used to
// recover from lost or outdated surfaces.
func (r *Renderer) Reconfigure() error {
	return r.backend.Resized(r.width, r.height)
}

// PointerMoved recomputes the clear color from the cursor position.
// Always reports the event as handled.
func (r *Renderer) PointerMoved(x, y float64) bool {
	r.clearColor = metadata.ColorFromCursor(x, y, r.width, r.height)
	r.backend.SetClearColor(r.clearColor)
	return true
}

// DrawFrame renders one clear pass and presents it. Surface errors
// propagate to the caller for per-frame policy handling.
func (r *Renderer) DrawFrame() error {
	return r.backend.DrawFrame()
}

func (r *Renderer) Shutdown() error {
	core.LogDebug("renderer shutting down")
	return r.backend.Shutdown()
}

// Size returns the dimensions the surface is currently configured for.
func (r *Renderer) Size() (uint32, uint32) {
	return r.width, r.height
}

// ClearColor returns the color the next frame will clear to.
func (r *Renderer) ClearColor() metadata.Color {
	return r.clearColor
}
