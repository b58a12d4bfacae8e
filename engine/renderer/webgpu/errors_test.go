package webgpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prism-engine/prism/engine/renderer/metadata"
)

func TestClassifyAcquireError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"outdated", errors.New("surface texture is Outdated"), metadata.ErrSurfaceOutdated},
		{"lost", errors.New("Surface was Lost"), metadata.ErrSurfaceLost},
		{"timeout", errors.New("acquire Timeout"), metadata.ErrSurfaceTimeout},
		{"timed out", errors.New("surface acquire timed out"), metadata.ErrSurfaceTimeout},
		{"out of memory", errors.New("OutOfMemory"), metadata.ErrOutOfMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAcquireError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassifyAcquireErrorKeepsUnknownFatal(t *testing.T) {
	got := classifyAcquireError(fmt.Errorf("some driver hiccup"))
	assert.Error(t, got)
	for _, sentinel := range []error{
		metadata.ErrSurfaceLost,
		metadata.ErrSurfaceOutdated,
		metadata.ErrSurfaceTimeout,
		metadata.ErrOutOfMemory,
	} {
		assert.NotErrorIs(t, got, sentinel)
	}
}
