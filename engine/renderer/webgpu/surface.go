package webgpu

import "github.com/cogentcore/webgpu/wgpu"

// preferredSurfaceFormat picks the first sRGB format the surface
// supports, falling back to the first supported format.
func preferredSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGB(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	// The capability list is never empty for a valid surface/adapter
	// pair; this keeps the zero value deterministic if it ever is.
	return wgpu.TextureFormatBGRA8UnormSrgb
}

func isSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}
