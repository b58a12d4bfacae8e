package engine

// Game bundles the application-provided hooks driven by the engine run
// loop. Every hook is optional; FnUpdate in particular is the per-frame
// placeholder for logic this skeleton does not have yet.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnResize        OnResize
}

type Initialize func() error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
