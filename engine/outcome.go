package engine

import (
	"errors"

	"github.com/prism-engine/prism/engine/renderer/metadata"
)

// renderAction is the per-frame policy decision for a render outcome.
type renderAction uint8

const (
	// Frame rendered, nothing to do.
	renderProceed renderAction = iota
	// Surface lost or outdated, reconfigure at the current size.
	renderReconfigure
	// Transient acquire timeout, skip the frame.
	renderSkipFrame
	// Out of memory or unclassified failure, stop the loop.
	renderAbort
)

// renderActionFor classifies a DrawFrame result. The mapping is total:
// every error lands on exactly one action, with unknown errors treated
// as fatal.
func renderActionFor(err error) renderAction {
	switch {
	case err == nil:
		return renderProceed
	case errors.Is(err, metadata.ErrSurfaceLost),
		errors.Is(err, metadata.ErrSurfaceOutdated):
		return renderReconfigure
	case errors.Is(err, metadata.ErrSurfaceTimeout):
		return renderSkipFrame
	default:
		return renderAbort
	}
}
