package renderer

import "github.com/prism-engine/prism/engine/renderer/metadata"

// RendererBackend is the contract a GPU backend fulfills for the
// front-end. The front-end guarantees Resized is only called with
// positive dimensions that differ from the previous ones.
type RendererBackend interface {
	Initialize(appName string, width, height uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	SetClearColor(c metadata.Color)
	DrawFrame() error
}
