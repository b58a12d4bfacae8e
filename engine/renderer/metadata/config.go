package metadata

// PowerPreference selects which adapter class the backend asks for.
type PowerPreference uint8

const (
	PowerPreferenceHighPerformance PowerPreference = iota
	PowerPreferenceLowPower
)

// RendererBackendConfig carries everything a backend needs to build its
// device and presentation surface.
type RendererBackendConfig struct {
	ApplicationName      string
	PowerPreference      PowerPreference
	ForceFallbackAdapter bool
	InitialClearColor    Color
}
