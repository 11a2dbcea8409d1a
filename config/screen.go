package config

// Viewer window configuration
const (
	// Window dimensions in pixels
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Height of the message panel along the bottom edge
	MessagePanelHeight = 96
	// Line height of the debug font used for the message panel
	MessageLineHeight = 16

	// Map viewport, everything above the message panel
	ViewportWidth  = ScreenWidth
	ViewportHeight = ScreenHeight - MessagePanelHeight

	// Camera limits in pixels per world unit
	MinZoom = 1.0
	MaxZoom = 64.0
	// Share of the viewport a freshly generated cave is fitted to
	FitMargin = 0.92
)

// GetScreenDimensions returns the logical screen size in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the initial window size
func GetWindowSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}
