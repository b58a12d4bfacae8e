package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-engine/prism/engine/core"
)

func TestOnResizedContinuesWhenGameHookFails(t *testing.T) {
	var hookCalls int
	game := &Game{
		ApplicationConfig: &ApplicationConfig{
			Name:        "resize-test",
			StartWidth:  800,
			StartHeight: 600,
		},
		FnOnResize: func(width, height uint32) error {
			hookCalls++
			return errors.New("not ready")
		},
	}
	eng, err := New(game)
	require.NoError(t, err)

	handled := eng.onResized(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{WindowWidth: 1024, WindowHeight: 768},
	})
	assert.False(t, handled)
	assert.Equal(t, 1, hookCalls)

	// The failing hook must not keep the renderer from tracking the
	// new window size.
	w, h := eng.renderer.Size()
	assert.Equal(t, uint32(1024), w)
	assert.Equal(t, uint32(768), h)
}
