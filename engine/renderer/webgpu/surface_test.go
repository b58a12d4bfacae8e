package webgpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/prism-engine/prism/engine/renderer/metadata"
)

func TestPreferredSurfaceFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			name:    "srgb wins over earlier linear",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
			want:    wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			name:    "rgba srgb recognized",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb},
			want:    wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			name:    "no srgb falls back to first",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm},
			want:    wgpu.TextureFormatBGRA8Unorm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preferredSurfaceFormat(tt.formats))
		})
	}
}

func TestInitializeRejectsZeroSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A nil platform proves nothing GPU-side is touched
			// before the size check.
			r := New(nil, nil)
			err := r.Initialize("prism", tt.width, tt.height)
			assert.ErrorIs(t, err, metadata.ErrZeroSizedSurface)
			assert.Nil(t, r.instance)
			assert.Nil(t, r.surface)
			assert.Nil(t, r.device)
		})
	}
}
