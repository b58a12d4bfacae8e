package webgpu

import (
	"fmt"
	"strings"

	"github.com/prism-engine/prism/engine/renderer/metadata"
)

// classifyAcquireError maps the binding's surface acquisition failure
// onto the metadata sentinels. The binding reports the wgpu status by
// name inside the error text, so matching is by status name; anything
// unrecognized stays an unclassified (fatal) error.
func classifyAcquireError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %s", metadata.ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %s", metadata.ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %s", metadata.ErrSurfaceTimeout, err)
	case strings.Contains(msg, "memory"):
		return fmt.Errorf("%w: %s", metadata.ErrOutOfMemory, err)
	}
	return fmt.Errorf("acquire surface texture: %w", err)
}
