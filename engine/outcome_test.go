package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prism-engine/prism/engine/renderer/metadata"
)

func TestRenderActionForIsTotal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want renderAction
	}{
		{"success", nil, renderProceed},
		{"lost reconfigures", metadata.ErrSurfaceLost, renderReconfigure},
		{"outdated reconfigures", metadata.ErrSurfaceOutdated, renderReconfigure},
		{"wrapped outdated reconfigures",
			fmt.Errorf("draw: %w", metadata.ErrSurfaceOutdated), renderReconfigure},
		{"timeout skips the frame", metadata.ErrSurfaceTimeout, renderSkipFrame},
		{"out of memory aborts", metadata.ErrOutOfMemory, renderAbort},
		{"zero sized surface aborts", metadata.ErrZeroSizedSurface, renderAbort},
		{"unknown error aborts", errors.New("driver exploded"), renderAbort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderActionFor(tt.err))
		})
	}
}
