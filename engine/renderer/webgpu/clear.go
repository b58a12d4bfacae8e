package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// DrawFrame acquires the next surface texture, encodes a single render
// pass that clears it to the current clear color, submits the command
// buffer and presents. Acquisition failures are classified onto the
// surface error taxonomy and returned to the caller.
func (r *WebGPURenderer) DrawFrame() error {
	texture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return classifyAcquireError(err)
	}
	defer func() {
		if texture != nil {
			texture.Release()
		}
	}()

	view, err := texture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}
	defer view.Release()

	encoder, err := r.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearSurface",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearSurface",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.clearColor,
			},
		},
	})
	if err := pass.End(); err != nil {
		pass.Release()
		return fmt.Errorf("end render pass: %w", err)
	}
	pass.Release()

	buf, err := encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearSurface"})
	if err != nil {
		return fmt.Errorf("finish command buffer: %w", err)
	}
	defer buf.Release()

	r.queue.Submit(buf)
	r.surface.Present()

	// present consumed the texture, do not release it again
	texture = nil

	return nil
}
