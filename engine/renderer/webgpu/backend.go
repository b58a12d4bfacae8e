package webgpu

import (
	"fmt"
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/prism-engine/prism/engine/core"
	"github.com/prism-engine/prism/engine/platform"
	"github.com/prism-engine/prism/engine/renderer/metadata"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// WebGPURenderer owns the device, queue and presentation surface for the
// application window. Everything is created once in Initialize and torn
// down in Shutdown; only the surface configuration mutates afterwards.
type WebGPURenderer struct {
	platform *platform.Platform
	config   *metadata.RendererBackendConfig

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	surfaceConfig *wgpu.SurfaceConfiguration
	clearColor    wgpu.Color
}

func New(p *platform.Platform, config *metadata.RendererBackendConfig) *WebGPURenderer {
	if config == nil {
		config = &metadata.RendererBackendConfig{InitialClearColor: metadata.ColorBlack}
	}
	return &WebGPURenderer{
		platform:   p,
		config:     config,
		clearColor: toWGPUColor(config.InitialClearColor),
	}
}

// Initialize builds the full GPU context against the platform window.
// Any failure is returned to the caller; nothing here panics and no GPU
// resource is allocated before the size check passes.
func (r *WebGPURenderer) Initialize(appName string, width, height uint32) (err error) {
	if width == 0 || height == 0 {
		return metadata.ErrZeroSizedSurface
	}

	defer func() {
		if err != nil {
			r.release()
		}
	}()

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(r.platform.SurfaceDescriptor())

	r.adapter, err = r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      toWGPUPowerPreference(r.config.PowerPreference),
		ForceFallbackAdapter: r.config.ForceFallbackAdapter || forceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}

	r.device, err = r.adapter.RequestDevice(nil)
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}
	r.queue = r.device.GetQueue()

	caps := r.surface.GetCapabilities(r.adapter)
	format := preferredSurfaceFormat(caps.Formats)

	r.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       width,
		Height:      height,
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}
	r.surface.Configure(r.adapter, r.device, r.surfaceConfig)

	core.LogInfo("%s: surface configured, format=%v present=%v size=%dx%d",
		appName, format, r.surfaceConfig.PresentMode, width, height)

	return nil
}

// Resized reconfigures the presentation surface to the new dimensions.
// The caller guarantees both are positive.
func (r *WebGPURenderer) Resized(width, height uint32) error {
	if width == 0 || height == 0 {
		return metadata.ErrZeroSizedSurface
	}
	if r.surfaceConfig == nil {
		return fmt.Errorf("surface not configured")
	}
	r.surfaceConfig.Width = width
	r.surfaceConfig.Height = height
	r.surface.Configure(r.adapter, r.device, r.surfaceConfig)
	return nil
}

func (r *WebGPURenderer) SetClearColor(c metadata.Color) {
	r.clearColor = toWGPUColor(c)
}

func (r *WebGPURenderer) Shutdown() error {
	r.release()
	return nil
}

func (r *WebGPURenderer) release() {
	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
	if r.adapter != nil {
		r.adapter.Release()
		r.adapter = nil
	}
	if r.surface != nil {
		r.surface.Release()
		r.surface = nil
	}
	if r.instance != nil {
		r.instance.Release()
		r.instance = nil
	}
	r.surfaceConfig = nil
}

func toWGPUColor(c metadata.Color) wgpu.Color {
	return wgpu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toWGPUPowerPreference(p metadata.PowerPreference) wgpu.PowerPreference {
	if p == metadata.PowerPreferenceLowPower {
		return wgpu.PowerPreferenceLowPower
	}
	return wgpu.PowerPreferenceHighPerformance
}
