package metadata

import "errors"

// Surface acquisition error taxonomy. Backends map whatever their GPU
// binding reports onto exactly one of these so the engine's per-frame
// policy can match with errors.Is.
var (
	// ErrSurfaceLost is returned when the presentation surface was lost
	// and must be reconfigured before the next frame.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutdated is returned when the surface no longer matches
	// the window, typically mid-resize. Reconfigure and continue.
	ErrSurfaceOutdated = errors.New("surface outdated")

	// ErrSurfaceTimeout is returned when acquiring the next surface
	// texture timed out. The frame is skippable.
	ErrSurfaceTimeout = errors.New("surface acquire timeout")

	// ErrOutOfMemory is returned when the GPU is out of memory. Fatal.
	ErrOutOfMemory = errors.New("gpu out of memory")

	// ErrZeroSizedSurface is returned when a surface would be created or
	// configured with a zero dimension.
	ErrZeroSizedSurface = errors.New("surface dimensions must be positive")
)
