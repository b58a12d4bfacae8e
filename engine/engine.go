package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/prism-engine/prism/engine/config"
	"github.com/prism-engine/prism/engine/core"
	"github.com/prism-engine/prism/engine/platform"
	"github.com/prism-engine/prism/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	sessionID    string
	isRunning    atomic.Bool
	isSuspended  bool
	platform     *platform.Platform
	renderer     *renderer.Renderer
	watcher      *config.Watcher
	width        uint32
	height       uint32
	clock        *core.Clock
	lastTime     float64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("engine requires a game with an application config")
	}

	p := platform.New()

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		sessionID:    core.NewSessionID(),
		clock:        core.NewClock(),
		platform:     p,
		renderer:     renderer.New(p, g.ApplicationConfig.Backend),
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}, nil
}

// Initialize creates the window and the GPU context, exactly once. Every
// failure, including adapter or device acquisition, is reported to the
// caller instead of aborting the process.
func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine is already initialized")
	}
	e.currentStage = EngineStageBooting

	cfg := e.gameInstance.ApplicationConfig
	if cfg.LogLevel != "" {
		core.SetLogLevel(cfg.LogLevel)
	}
	core.LogInfo("engine session %s booting", e.sessionID)

	if err := core.InputInitialize(); err != nil {
		return err
	}
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)
	core.EventRegister(core.EVENT_CODE_MOUSE_MOVED, e.onMouseMoved)

	if err := e.platform.Startup(cfg.Name, cfg.StartPosX, cfg.StartPosY,
		cfg.StartWidth, cfg.StartHeight); err != nil {
		return err
	}

	// The framebuffer can differ from the requested window size on
	// high-dpi displays; the surface follows the framebuffer.
	fbWidth, fbHeight := e.platform.FramebufferSize()
	e.width, e.height = fbWidth, fbHeight

	if err := e.renderer.Initialize(cfg.Name, fbWidth, fbHeight); err != nil {
		core.LogError("renderer initialization failed: %v", err)
		return err
	}

	if cfg.ConfigPath != "" {
		w, err := config.Watch(cfg.ConfigPath)
		if err != nil {
			core.LogWarn("config watching disabled: %v", err)
		} else {
			e.watcher = w
		}
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("window and renderer ready, %dx%d", e.width, e.height)
	return nil
}

// Run drives the continuous poll loop: pump window events, update, draw
// one clear frame, until the window closes or a fatal render error hits.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before running")
	}
	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	var frameCount uint64

	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}

		e.applyConfigUpdates()

		if e.isSuspended {
			continue
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed, shutting down: %v", err)
				e.isRunning.Store(false)
				break
			}
		}

		switch err := e.renderer.DrawFrame(); renderActionFor(err) {
		case renderProceed:
		case renderReconfigure:
			core.LogDebug("surface needs reconfiguring: %v", err)
			if rerr := e.renderer.Reconfigure(); rerr != nil {
				core.LogError("surface reconfigure failed: %v", rerr)
				e.isRunning.Store(false)
			}
		case renderSkipFrame:
			core.LogWarn("surface acquire timed out, skipping frame")
		case renderAbort:
			core.LogError("fatal render error: %v", err)
			e.isRunning.Store(false)
		}

		e.clock.Update()
		core.MetricsUpdate(e.clock.Elapsed() - currentTime)
		frameCount++
		if frameCount%240 == 0 {
			fps, frameMS := core.MetricsFrame()
			core.LogDebug("fps: %.1f, frame: %.2fms", fps, frameMS)
		}

		// Input state copying is the last thing of the frame, after
		// everything that records input has run.
		core.InputUpdate(delta)

		e.lastTime = currentTime
	}

	core.LogInfo("event loop finished")
	return nil
}

// Stop asks the run loop to exit after the current frame. Safe to call
// from another goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	core.LogInfo("engine session %s shutting down", e.sessionID)

	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	return e.platform.Shutdown()
}

// FramebufferSize returns the width and height (in this order) of the
// application framebuffer.
func (e *Engine) FramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(ctx core.EventContext) bool {
	if ctx.Type == core.EVENT_CODE_APPLICATION_QUIT {
		core.LogInfo("quit requested, stopping the loop")
		e.isRunning.Store(false)
		return true
	}
	return false
}

func (e *Engine) onKey(ctx core.EventContext) bool {
	ke, ok := ctx.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong payload for event type %d", ctx.Type)
		return false
	}

	if ctx.Type == core.EVENT_CODE_KEY_PRESSED && ke.KeyCode == core.KEY_ESCAPE {
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		return true
	}

	core.LogDebug("key %#x pressed=%t", uint16(ke.KeyCode), ke.Pressed)
	return false
}

func (e *Engine) onMouseMoved(ctx core.EventContext) bool {
	me, ok := ctx.Data.(*core.MouseEvent)
	if !ok {
		core.LogError("wrong payload for event type %d", ctx.Type)
		return false
	}
	// The renderer gets first pick of input; it claims pointer moves.
	return e.renderer.PointerMoved(me.PosX, me.PosY)
}

func (e *Engine) onResized(ctx core.EventContext) bool {
	se, ok := ctx.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong payload for event type %d", ctx.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("window minimized, suspending application")
		e.isSuspended = true
		return false
	}
	if e.isSuspended {
		core.LogInfo("window restored, resuming application")
		e.isSuspended = false
	}

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError("game resize hook failed: %v", err)
		}
	}
	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError("surface resize failed: %v", err)
	}
	return false
}

func (e *Engine) applyConfigUpdates() {
	if e.watcher == nil {
		return
	}
	select {
	case cfg := <-e.watcher.Updates():
		if cfg.Log.Level != "" {
			core.SetLogLevel(cfg.Log.Level)
		}
		e.platform.SetTitle(cfg.Application.Name)
		core.LogInfo("configuration reloaded")
	default:
	}
}
