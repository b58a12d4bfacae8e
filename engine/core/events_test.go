package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFireDeliversInOrderAndStopsWhenHandled(t *testing.T) {
	require.True(t, EventSystemInitialize() || eventInitialized)
	t.Cleanup(func() {
		EventSystemShutdown()
		EventSystemInitialize()
	})

	var order []int
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(ctx EventContext) bool {
		order = append(order, 1)
		return false
	})
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(ctx EventContext) bool {
		order = append(order, 2)
		return true
	})
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(ctx EventContext) bool {
		order = append(order, 3)
		return false
	})

	handled := EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})

	assert.True(t, handled)
	assert.Equal(t, []int{1, 2}, order)
}

func TestEventFireWithoutListeners(t *testing.T) {
	require.True(t, EventSystemInitialize() || eventInitialized)

	handled := EventFire(EventContext{Type: EVENT_CODE_MOUSE_WHEEL})
	assert.False(t, handled)
}

func TestEventRegisterRejectsNilCallback(t *testing.T) {
	require.True(t, EventSystemInitialize() || eventInitialized)

	assert.False(t, EventRegister(EVENT_CODE_RESIZED, nil))
}

func TestEventSystemShutdownDropsListeners(t *testing.T) {
	require.True(t, EventSystemInitialize() || eventInitialized)
	t.Cleanup(func() {
		EventSystemInitialize()
	})

	fired := false
	EventRegister(EVENT_CODE_RESIZED, func(ctx EventContext) bool {
		fired = true
		return true
	})

	require.NoError(t, EventSystemShutdown())
	require.True(t, EventSystemInitialize())

	EventFire(EventContext{Type: EVENT_CODE_RESIZED})
	assert.False(t, fired)
}
