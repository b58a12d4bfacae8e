package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRollingFrameTime(t *testing.T) {
	require.NoError(t, MetricsInitialize())

	// A full averaging window of 10ms frames.
	for i := uint8(0); i < AVG_COUNT; i++ {
		MetricsUpdate(0.010)
	}

	assert.InDelta(t, 10.0, MetricsFrameTime(), 0.001)
}

func TestMetricsFPSAfterOneSecond(t *testing.T) {
	require.NoError(t, MetricsInitialize())

	// 101 frames of 10ms push the accumulator past one second.
	for i := 0; i < 101; i++ {
		MetricsUpdate(0.010)
	}

	fps, _ := MetricsFrame()
	assert.Greater(t, fps, 0.0)
}

func TestMetricsBeforeInitializeAreZero(t *testing.T) {
	// Reading through the nil guard must not panic even if another
	// test initialized already; values stay finite.
	assert.GreaterOrEqual(t, MetricsFPS(), 0.0)
	assert.GreaterOrEqual(t, MetricsFrameTime(), 0.0)
}
