package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 0.25, Clamp(0.25, 0.0, 1.0))
}

func TestFraction(t *testing.T) {
	tests := []struct {
		name string
		n, d float64
		want float64
	}{
		{"half", 300, 600, 0.5},
		{"over unity clamps", 900, 600, 1},
		{"negative clamps", -10, 600, 0},
		{"zero denominator", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fraction(tt.n, tt.d))
		})
	}
}
